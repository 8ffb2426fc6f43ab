package useritems

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grail-tracker/core/database"
	"grail-tracker/feature/progress"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrMissingUser is returned when a request names no user.
var ErrMissingUser = errors.New("missing user id")

// ErrMissingItemKey is returned for set requests without an item key.
var ErrMissingItemKey = errors.New("missing item key")

// Service stores user progress rows.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new user-items service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, now: time.Now}
}

// Migrate creates or updates the user_items table.
func (s *Service) Migrate() error {
	if err := s.db.AutoMigrate(&UserItem{}); err != nil {
		return fmt.Errorf("failed to migrate user_items: %w", err)
	}
	return nil
}

// CheckSchema returns the columns missing from an existing user_items table.
func (s *Service) CheckSchema() ([]string, error) {
	return database.MissingColumns(s.db, UserItem{}.TableName(), Columns)
}

// List returns every row of the user ordered by item key, including rows with found false.
func (s *Service) List(ctx context.Context, userID string) ([]UserItem, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	var items []UserItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("item_key").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list user items: %w", err)
	}
	return items, nil
}

// Set upserts one row. Setting found keeps an earlier FoundAt; clearing it
// keeps the row with found false and no FoundAt.
func (s *Service) Set(ctx context.Context, userID, itemKey string, found bool) (*UserItem, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if itemKey == "" {
		return nil, ErrMissingItemKey
	}

	var out UserItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var at *time.Time
		if found {
			now := s.now().UTC()
			at = &now
		}
		item, err := s.upsert(tx, userID, itemKey, found, at, false)
		if err != nil {
			return err
		}
		out = *item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetBulk upserts every item in one transaction. Items carrying FoundAt
// overwrite the stored timestamp; this is how backups restore history.
func (s *Service) SetBulk(ctx context.Context, userID string, items []progress.BulkItem) (int, error) {
	if userID == "" {
		return 0, ErrMissingUser
	}
	for _, it := range items {
		if it.ItemKey == "" {
			return 0, ErrMissingItemKey
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := s.now().UTC()
		for _, it := range items {
			found := it.IsFound()
			var at *time.Time
			switch {
			case !found:
			case it.FoundAt != nil:
				v := it.FoundAt.UTC()
				at = &v
			default:
				at = &now
			}
			if _, err := s.upsert(tx, userID, it.ItemKey, found, at, it.FoundAt != nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Info("Bulk set user items", zap.String("user_id", userID), zap.Int("items", len(items)))
	return len(items), nil
}

func (s *Service) upsert(tx *gorm.DB, userID, itemKey string, found bool, at *time.Time, overwrite bool) (*UserItem, error) {
	var item UserItem
	err := tx.Where("user_id = ? AND item_key = ?", userID, itemKey).Take(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = UserItem{ID: uuid.NewString(), UserID: userID, ItemKey: itemKey, Found: found, FoundAt: at}
		if err := tx.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to create user item %s: %w", itemKey, err)
		}
		return &item, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load user item %s: %w", itemKey, err)
	}

	switch {
	case !found:
		item.FoundAt = nil
	case overwrite || !item.Found || item.FoundAt == nil:
		item.FoundAt = at
	}
	item.Found = found
	if err := tx.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update user item %s: %w", itemKey, err)
	}
	return &item, nil
}

// Clear deletes every row of the user and returns how many were removed.
func (s *Service) Clear(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, ErrMissingUser
	}
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&UserItem{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear user items: %w", res.Error)
	}
	s.logger.Info("Cleared user items", zap.String("user_id", userID), zap.Int64("deleted", res.RowsAffected))
	return res.RowsAffected, nil
}
