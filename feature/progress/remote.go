package progress

import (
	"context"
	"time"
)

// RemoteItem is one row of the remote listing. Rows with Found false may
// appear and mean the item is not found.
type RemoteItem struct {
	ID      string     `json:"id"`
	UserID  string     `json:"userId"`
	ItemKey string     `json:"itemKey"`
	Found   bool       `json:"found"`
	FoundAt *time.Time `json:"foundAt"`
}

// BulkItem is one entry of a bulk set. A nil Found means true.
type BulkItem struct {
	ItemKey string     `json:"itemKey"`
	Found   *bool      `json:"found,omitempty"`
	FoundAt *time.Time `json:"foundAt,omitempty"`
}

// IsFound resolves the optional Found flag.
func (b BulkItem) IsFound() bool {
	return b.Found == nil || *b.Found
}

// Remote is the persistence service for one user's progress.
type Remote interface {
	ListItems(ctx context.Context) ([]RemoteItem, error)
	SetFound(ctx context.Context, itemKey string, found bool) error
	SetBulk(ctx context.Context, items []BulkItem) error
	Clear(ctx context.Context) error
}
