package useritems

import (
	"time"

	"grail-tracker/feature/progress"
)

// UserItem is the stored progress of one item for one user.
type UserItem struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:64;not null;uniqueIndex:idx_user_items_user_item"`
	ItemKey   string `gorm:"size:191;not null;uniqueIndex:idx_user_items_user_item"`
	Found     bool   `gorm:"not null"`
	FoundAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName pins the table name independent of gorm naming rules.
func (UserItem) TableName() string {
	return "user_items"
}

// Remote converts the row to its wire form.
func (u UserItem) Remote() progress.RemoteItem {
	return progress.RemoteItem{
		ID:      u.ID,
		UserID:  u.UserID,
		ItemKey: u.ItemKey,
		Found:   u.Found,
		FoundAt: u.FoundAt,
	}
}

// Columns lists the columns the service reads and writes.
var Columns = []string{"id", "user_id", "item_key", "found", "found_at", "created_at", "updated_at"}
