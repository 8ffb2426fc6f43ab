package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Option customizes a Coordinator.
type Option func(*Coordinator)

// WithScheduler replaces the timer used for debounced writes.
func WithScheduler(s Scheduler) Option {
	return func(c *Coordinator) { c.scheduler = s }
}

// WithClock replaces the time source used for FoundAt.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

type pendingWrite struct {
	task  Task
	found bool
}

// Coordinator owns the in-memory progress record and persists changes to a
// Remote. Single-item writes are debounced per key so only the last state
// inside the window is sent. Failed writes are logged and not retried; the
// in-memory record stays authoritative.
type Coordinator struct {
	remote    Remote
	logger    *zap.Logger
	debounce  time.Duration
	scheduler Scheduler
	now       func() time.Time
	newID     func() string

	mu       sync.Mutex
	record   Record
	hydrated bool
	closed   bool
	pending  map[string]*pendingWrite
	inflight sync.WaitGroup
}

// NewCoordinator creates a coordinator with an empty record.
func NewCoordinator(remote Remote, cfg Config, logger *zap.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		remote:    remote,
		logger:    logger,
		debounce:  cfg.Debounce,
		scheduler: timerScheduler{},
		now:       time.Now,
		newID:     uuid.NewString,
		record:    NewRecord(),
		pending:   make(map[string]*pendingWrite),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns the current record.
func (c *Coordinator) Snapshot() Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record
}

// SetFound marks key as found or removes it, then schedules a debounced
// write. An item that is already found keeps its id and FoundAt.
func (c *Coordinator) SetFound(key string, found bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if found {
		if !c.record.Has(key) {
			c.record = c.record.with(Entry{ID: c.newID(), ItemKey: key, FoundAt: c.now().UTC()})
		}
	} else {
		c.record = c.record.without(key)
	}

	if c.closed {
		c.logger.Warn("Coordinator closed, change kept in memory only", zap.String("item_key", key))
		return
	}
	c.schedule(key, found)
}

// schedule replaces any pending write for key. Callers hold c.mu.
func (c *Coordinator) schedule(key string, found bool) {
	c.cancel(key)

	p := &pendingWrite{found: found}
	c.inflight.Add(1)
	p.task = c.scheduler.AfterFunc(c.debounce, func() { c.fire(key, p) })
	c.pending[key] = p
}

// cancel drops the pending write for key. Callers hold c.mu.
func (c *Coordinator) cancel(key string) {
	p, ok := c.pending[key]
	if !ok {
		return
	}
	delete(c.pending, key)
	if p.task.Stop() {
		c.inflight.Done()
	}
}

func (c *Coordinator) fire(key string, p *pendingWrite) {
	defer c.inflight.Done()

	c.mu.Lock()
	if c.pending[key] != p {
		c.mu.Unlock()
		return
	}
	delete(c.pending, key)
	c.mu.Unlock()

	if err := c.remote.SetFound(context.Background(), key, p.found); err != nil {
		c.logger.Warn("Failed to persist progress",
			zap.String("item_key", key),
			zap.Bool("found", p.found),
			zap.Error(err))
		return
	}
	c.logger.Debug("Persisted progress", zap.String("item_key", key), zap.Bool("found", p.found))
}

// BulkSetFound sends all items in one call and, only if it succeeds, merges
// them into the record. Items already found are left untouched. Pending
// debounced writes for the merged keys are cancelled.
func (c *Coordinator) BulkSetFound(ctx context.Context, items []BulkItem) error {
	if len(items) == 0 {
		return nil
	}

	now := c.now().UTC()
	found := true
	wire := make([]BulkItem, 0, len(items))
	for _, it := range items {
		at := now
		if it.FoundAt != nil {
			at = it.FoundAt.UTC()
		}
		wire = append(wire, BulkItem{ItemKey: it.ItemKey, Found: &found, FoundAt: &at})
	}

	if err := c.remote.SetBulk(ctx, wire); err != nil {
		return fmt.Errorf("bulk set of %d items failed: %w", len(wire), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	merged := make([]Entry, 0, len(wire))
	for _, it := range wire {
		c.cancel(it.ItemKey)
		if c.record.Has(it.ItemKey) {
			continue
		}
		merged = append(merged, Entry{ID: c.newID(), ItemKey: it.ItemKey, FoundAt: *it.FoundAt})
	}
	c.record = c.record.with(merged...)
	c.logger.Info("Merged bulk progress", zap.Int("sent", len(wire)), zap.Int("added", len(merged)))
	return nil
}

// Load hydrates the record from a remote listing. It runs at most once and
// is skipped when the record already holds local changes. Rows with found
// false are dropped. It reports whether the listing was applied.
func (c *Coordinator) Load(items []RemoteItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hydrated || c.record.Len() > 0 {
		c.hydrated = true
		c.logger.Debug("Skipping progress load, record already populated", zap.Int("entries", c.record.Len()))
		return false
	}
	c.hydrated = true

	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		if !it.Found {
			continue
		}
		e := Entry{ID: it.ID, ItemKey: it.ItemKey}
		if it.FoundAt != nil {
			e.FoundAt = it.FoundAt.UTC()
		}
		entries = append(entries, e)
	}
	c.record = NewRecord(entries...)
	return true
}

// Hydrate fetches the remote listing and loads it.
func (c *Coordinator) Hydrate(ctx context.Context) error {
	items, err := c.remote.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to list progress: %w", err)
	}
	c.Load(items)
	return nil
}

// Clear deletes every remote item and empties the record.
func (c *Coordinator) Clear(ctx context.Context) error {
	if err := c.remote.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear progress: %w", err)
	}
	c.Reset()
	return nil
}

// Flush sends every pending write now and waits for in-flight writes.
func (c *Coordinator) Flush(ctx context.Context) error {
	type due struct {
		key string
		p   *pendingWrite
	}

	c.mu.Lock()
	var ready []due
	for key, p := range c.pending {
		if p.task.Stop() {
			ready = append(ready, due{key: key, p: p})
		}
	}
	c.mu.Unlock()

	for _, d := range ready {
		go c.fire(d.key, d.p)
	}

	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reset cancels pending writes without sending them and empties the record.
// The next Load is applied again.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.pending {
		c.cancel(key)
	}
	c.record = NewRecord()
	c.hydrated = false
}

// Close flushes pending writes. Later changes stay in memory only.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return c.Flush(context.Background())
}
