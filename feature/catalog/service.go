package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"grail-tracker/core/storage"
	"grail-tracker/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Source loads catalog sections.
type Source interface {
	Load(ctx context.Context, types ...models.Type) (*models.Catalog, error)
}

type cachedSection struct {
	catalog  *models.Catalog
	loadedAt time.Time
}

// Service loads catalog sections from object storage.
type Service struct {
	client storage.Client
	bucket string
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	group singleflight.Group
	mu    sync.RWMutex
	cache map[models.Type]cachedSection
}

// NewService creates a storage backed catalog source. A ttl of zero disables caching.
func NewService(client storage.Client, bucket string, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
		cache:  make(map[models.Type]cachedSection),
	}
}

// Load returns a catalog holding the requested sections, or every section
// when none are named. Sections are read concurrently.
func (s *Service) Load(ctx context.Context, types ...models.Type) (*models.Catalog, error) {
	if len(types) == 0 {
		types = models.Types
	}

	sections := make([]*models.Catalog, len(types))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range types {
		g.Go(func() error {
			section, err := s.section(gctx, t)
			if err != nil {
				return err
			}
			sections[i] = section
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &models.Catalog{}
	for _, section := range sections {
		out.Merge(section)
	}
	return out, nil
}

func (s *Service) section(ctx context.Context, t models.Type) (*models.Catalog, error) {
	if cat, ok := s.cached(t); ok {
		return cat, nil
	}

	v, err, shared := s.group.Do(string(t), func() (any, error) {
		data, err := storage.ReadObject(ctx, s.client, s.bucket, t.ObjectName())
		if err != nil {
			return nil, err
		}
		cat, err := models.DecodeSection(t, data)
		if err != nil {
			return nil, err
		}
		s.store(t, cat)
		return cat, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", t, err)
	}
	if shared {
		s.logger.Debug("Shared catalog load", zap.String("type", string(t)))
	}
	return v.(*models.Catalog), nil
}

func (s *Service) cached(t models.Type) (*models.Catalog, bool) {
	if s.ttl <= 0 {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[t]
	if !ok || s.now().Sub(entry.loadedAt) >= s.ttl {
		return nil, false
	}
	return entry.catalog, true
}

func (s *Service) store(t models.Type, cat *models.Catalog) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	s.cache[t] = cachedSection{catalog: cat, loadedAt: s.now()}
	s.mu.Unlock()
}

// Invalidate drops every cached section.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cache = make(map[models.Type]cachedSection)
	s.mu.Unlock()
}

// Check returns the object names of catalog sections missing from the bucket.
func (s *Service) Check(ctx context.Context) ([]string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	missing := []string{}
	for _, t := range models.Types {
		found, err := storage.ObjectExists(ctx, s.client, s.bucket, t.ObjectName())
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", t.ObjectName(), err)
		}
		if !found {
			missing = append(missing, t.ObjectName())
		}
	}
	return missing, nil
}

// Upload validates a section document and stores it, creating the bucket if needed.
func (s *Service) Upload(ctx context.Context, t models.Type, data []byte) error {
	cat, err := models.DecodeSection(t, data)
	if err != nil {
		return err
	}
	if err := cat.Validate(); err != nil {
		return err
	}
	if err := storage.EnsureBucket(ctx, s.client, s.bucket, ""); err != nil {
		return err
	}
	if err := storage.WriteObject(ctx, s.client, s.bucket, t.ObjectName(), data, "application/json"); err != nil {
		return err
	}
	s.Invalidate()
	s.logger.Info("Uploaded catalog section", zap.String("type", string(t)), zap.Int("bytes", len(data)))
	return nil
}

// Remove deletes a section object. Loads fail until it is uploaded again.
func (s *Service) Remove(ctx context.Context, t models.Type) error {
	if err := s.client.RemoveObject(ctx, s.bucket, t.ObjectName(), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", t.ObjectName(), err)
	}
	s.Invalidate()
	s.logger.Info("Removed catalog section", zap.String("type", string(t)))
	return nil
}
