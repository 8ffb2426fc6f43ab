package formats

import (
	"encoding/json"
	"time"

	"grail-tracker/core/reconcile"
	"grail-tracker/feature/catalog/models"
	"grail-tracker/feature/progress"
)

// BackupEntry is one record of the backup file.
type BackupEntry struct {
	ItemKey string     `json:"itemKey"`
	Found   bool       `json:"found"`
	FoundAt *time.Time `json:"foundAt,omitempty"`
}

// BackupAdapter reads and writes the lossless backup format.
type BackupAdapter struct{}

// NewBackupAdapter creates the backup adapter.
func NewBackupAdapter() *BackupAdapter {
	return &BackupAdapter{}
}

func (a *BackupAdapter) Format() Format { return FormatBackup }

// Encode writes one record per found item ordered by item key. The catalog is not consulted.
func (a *BackupAdapter) Encode(_ *models.Catalog, rec progress.Record) ([]byte, error) {
	entries := make([]BackupEntry, 0, rec.Len())
	for _, e := range rec.Entries() {
		out := BackupEntry{ItemKey: e.ItemKey, Found: true}
		if !e.FoundAt.IsZero() {
			at := e.FoundAt.UTC()
			out.FoundAt = &at
		}
		entries = append(entries, out)
	}
	return json.MarshalIndent(entries, "", "  ")
}

// Decode classifies every record with found true against rec.
func (a *BackupAdapter) Decode(data []byte, _ *models.Catalog, rec progress.Record) (*Decoded, error) {
	if _, err := parseDocument(FormatBackup, data); err != nil {
		return nil, err
	}

	var entries []BackupEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, malformed(FormatBackup, err)
	}

	candidates := make([]reconcile.Candidate, 0, len(entries))
	for _, e := range entries {
		if !e.Found {
			continue
		}
		candidates = append(candidates, reconcile.Candidate{ItemKey: e.ItemKey, FoundAt: e.FoundAt})
	}
	return classify(candidates, rec, nil), nil
}
