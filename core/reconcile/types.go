package reconcile

import (
	"context"
	"errors"
	"time"

	"grail-tracker/feature/progress"
)

// ErrNotConfirmed is returned when a plan is applied without confirmation.
var ErrNotConfirmed = errors.New("import not confirmed")

// Candidate is an item an import document marks as found.
type Candidate struct {
	ItemKey string     `json:"itemKey"`
	FoundAt *time.Time `json:"foundAt,omitempty"`
}

// Skip is an external reference that could not be resolved.
type Skip struct {
	// Ref identifies the entry in the source document, e.g. "unique:381".
	Ref    string `json:"ref"`
	Reason string `json:"reason"`
}

// Diff is the classification of candidates against the current record.
type Diff struct {
	Found    []Candidate `json:"found"`
	NotFound []Candidate `json:"notFound"`
}

// Presence answers whether an item is currently found. progress.Record implements it.
type Presence interface {
	Has(key string) bool
}

// Applier merges a batch of found items. progress.Coordinator implements it.
type Applier interface {
	BulkSetFound(ctx context.Context, items []progress.BulkItem) error
}

// Summary counts the entries of a plan.
type Summary struct {
	Total    int `json:"total"`
	Found    int `json:"found"`
	NotFound int `json:"notFound"`
	Skipped  int `json:"skipped"`
}

// Plan is a classified import waiting for confirmation.
type Plan struct {
	Format   string      `json:"format"`
	Found    []Candidate `json:"found"`
	NotFound []Candidate `json:"notFound"`
	Skipped  []Skip      `json:"skipped"`
	Summary  Summary     `json:"summary"`
}

// Options controls ApplyPlan.
type Options struct {
	// DryRun reports the plan without applying it.
	DryRun bool
	// Confirmed records explicit user confirmation of the import.
	Confirmed bool
}
