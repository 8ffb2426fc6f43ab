package grail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grail-tracker/core/reconcile"
	"grail-tracker/core/storage"
	"grail-tracker/feature/catalog"
	"grail-tracker/feature/catalog/models"
	"grail-tracker/feature/grail/formats"
	"grail-tracker/feature/grail/stats"
	"grail-tracker/feature/progress"

	"go.uber.org/zap"
)

var (
	// ErrUnknownItem is returned when a key is not in the catalog.
	ErrUnknownItem = errors.New("unknown item")
	// ErrNoStorage is returned by UploadExport when no bucket is configured.
	ErrNoStorage = errors.New("export storage is not configured")
)

// DefaultExportPrefix is where uploaded exports go when no prefix is given.
const DefaultExportPrefix = "exports/"

// Tracker is the part of the coordinator the service drives.
type Tracker interface {
	Snapshot() progress.Record
	SetFound(key string, found bool)
	BulkSetFound(ctx context.Context, items []progress.BulkItem) error
	Clear(ctx context.Context) error
}

var _ Tracker = (*progress.Coordinator)(nil)

// Option configures a Service.
type Option func(*Service)

// WithStorage enables UploadExport. Exports are stored under prefix.
func WithStorage(client storage.Client, bucket, prefix string) Option {
	return func(s *Service) {
		s.store = client
		s.bucket = bucket
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithClock overrides the time used for export file names.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service implements the grail operations.
type Service struct {
	catalog  catalog.Source
	tracker  Tracker
	registry *formats.Registry
	store    storage.Client
	bucket   string
	prefix   string
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new grail service.
func NewService(source catalog.Source, tracker Tracker, registry *formats.Registry, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		catalog:  source,
		tracker:  tracker,
		registry: registry,
		logger:   logger,
		prefix:   DefaultExportPrefix,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RemainingView is the per-base breakdown of uniques and sets.
type RemainingView struct {
	Uniques []stats.BaseGroup `json:"uniques"`
	Sets    []stats.BaseGroup `json:"sets"`
}

// Export is an encoded document ready to be written.
type Export struct {
	Format   formats.Format
	Filename string
	Data     []byte
}

func (s *Service) load(ctx context.Context) (*models.Catalog, error) {
	cat, err := s.catalog.Load(ctx, models.Types...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// Stats returns the completion table.
func (s *Service) Stats(ctx context.Context) ([]stats.Row, error) {
	cat, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return stats.BuildTableRows(cat, s.tracker.Snapshot()), nil
}

// Remaining groups catalog items by base. Groups outside filter are flagged
// hidden; groups with nothing left to find are dropped.
func (s *Service) Remaining(ctx context.Context, filter stats.Filter) (*RemainingView, error) {
	cat, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	rec := s.tracker.Snapshot()
	return &RemainingView{
		Uniques: stats.Remaining(stats.RemainingUniqueBases(cat, rec, filter)),
		Sets:    stats.Remaining(stats.RemainingSetBases(cat, rec, filter)),
	}, nil
}

// Mark sets the found state of one catalog item. The remote write is debounced.
func (s *Service) Mark(ctx context.Context, key string, found bool) error {
	cat, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !cat.Has(key) {
		return fmt.Errorf("%w: %q", ErrUnknownItem, key)
	}
	s.tracker.SetFound(key, found)
	return nil
}

// Clear removes every found item.
func (s *Service) Clear(ctx context.Context) error {
	return s.tracker.Clear(ctx)
}

// Export encodes the current record in format f.
func (s *Service) Export(ctx context.Context, f formats.Format) (*Export, error) {
	adapter, err := s.registry.Adapter(f)
	if err != nil {
		return nil, err
	}
	cat, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	data, err := adapter.Encode(cat, s.tracker.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to export %s: %w", f, err)
	}
	return &Export{Format: f, Filename: formats.Filename(f, s.now()), Data: data}, nil
}

// UploadExport stores exp in the bucket under the export prefix and returns the object name.
func (s *Service) UploadExport(ctx context.Context, exp *Export) (string, error) {
	if s.store == nil || s.bucket == "" {
		return "", ErrNoStorage
	}
	if err := storage.EnsureBucket(ctx, s.store, s.bucket, ""); err != nil {
		return "", err
	}
	name := s.prefix + exp.Filename
	contentType := "application/json"
	if exp.Format.Extension() == "txt" {
		contentType = "text/plain"
	}
	if err := storage.WriteObject(ctx, s.store, s.bucket, name, exp.Data, contentType); err != nil {
		return "", err
	}
	s.logger.Info("Uploaded export", zap.String("object", name), zap.Int("bytes", len(exp.Data)))
	return name, nil
}

// PlanImport decodes data and classifies it against the current record.
// Nothing is changed.
func (s *Service) PlanImport(ctx context.Context, f formats.Format, data []byte) (*reconcile.Plan, error) {
	adapter, err := s.registry.Adapter(f)
	if err != nil {
		return nil, err
	}
	cat, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	decoded, err := adapter.Decode(data, cat, s.tracker.Snapshot())
	if err != nil {
		return nil, err
	}
	plan := reconcile.NewPlan(string(f), reconcile.Diff{Found: decoded.Found, NotFound: decoded.NotFound}, decoded.Skipped)
	s.logger.Info("Planned import",
		zap.String("format", plan.Format),
		zap.Int("found", plan.Summary.Found),
		zap.Int("not_found", plan.Summary.NotFound),
		zap.Int("skipped", plan.Summary.Skipped),
	)
	return plan, nil
}

// ApplyImport merges plan.NotFound into the record.
func (s *Service) ApplyImport(ctx context.Context, plan *reconcile.Plan, opts reconcile.Options) (int, error) {
	return reconcile.ApplyPlan(ctx, s.tracker, plan, opts)
}
