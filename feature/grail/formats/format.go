package formats

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"grail-tracker/core/reconcile"
	"grail-tracker/feature/catalog/models"
	"grail-tracker/feature/progress"

	"go.uber.org/zap"
)

// Format names one external document schema.
type Format string

const (
	// FormatBackup is the lossless flat backup of this tracker.
	FormatBackup Format = "backup"
	// FormatToD2 is the numeric id triple format.
	FormatToD2 Format = "tod2"
	// FormatNested is the nested category format of D2-Holy-Grail.
	FormatNested Format = "d2-holy-grail"
)

// Formats lists every supported format.
var Formats = []Format{FormatBackup, FormatToD2, FormatNested}

var formatAliases = map[string]Format{
	"backup":        FormatBackup,
	"tod2":          FormatToD2,
	"numeric":       FormatToD2,
	"d2-holy-grail": FormatNested,
	"d2holygrail":   FormatNested,
	"nested":        FormatNested,
}

// ParseFormat resolves a user supplied format name.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the export file extension of the format.
func (f Format) Extension() string {
	if f == FormatToD2 {
		return "txt"
	}
	return "json"
}

// Filename returns the export file name, e.g. "tod2-backup-2024-03-01.txt".
func Filename(f Format, at time.Time) string {
	return fmt.Sprintf("%s-backup-%s.%s", f, at.UTC().Format(time.DateOnly), f.Extension())
}

// Decoded is the classified content of an import document.
type Decoded struct {
	Found    []reconcile.Candidate
	NotFound []reconcile.Candidate
	Skipped  []reconcile.Skip
}

// Adapter converts between the progress record and one external document.
// Encode never mutates the record; Decode reports a diff against it.
type Adapter interface {
	Format() Format
	Encode(cat *models.Catalog, rec progress.Record) ([]byte, error)
	Decode(data []byte, cat *models.Catalog, rec progress.Record) (*Decoded, error)
}

func classify(candidates []reconcile.Candidate, rec progress.Record, skipped []reconcile.Skip) *Decoded {
	diff := reconcile.Classify(candidates, rec)
	if skipped == nil {
		skipped = []reconcile.Skip{}
	}
	return &Decoded{Found: diff.Found, NotFound: diff.NotFound, Skipped: skipped}
}

// skip logs a resolution failure and records it.
func skip(logger *zap.Logger, f Format, skipped []reconcile.Skip, err error) []reconcile.Skip {
	ref := ""
	var u *UnresolvedError
	if errors.As(err, &u) {
		ref = u.Ref
	}
	logger.Warn("Skipping unresolved import entry", zap.String("format", string(f)), zap.String("ref", ref), zap.Error(err))
	return append(skipped, reconcile.Skip{Ref: ref, Reason: err.Error()})
}

// Registry holds one adapter per format.
type Registry struct {
	adapters map[Format]Adapter
}

// NewRegistry returns a registry with the built-in adapters.
func NewRegistry(logger *zap.Logger) *Registry {
	r := &Registry{adapters: make(map[Format]Adapter)}
	r.Register(NewBackupAdapter())
	r.Register(NewNumericAdapter(DefaultReference(), logger))
	r.Register(NewNestedAdapter(logger))
	return r
}

// Register adds or replaces the adapter for its format.
func (r *Registry) Register(a Adapter) {
	r.adapters[a.Format()] = a
}

// Adapter returns the adapter for f.
func (r *Registry) Adapter(f Format) (Adapter, error) {
	a, ok := r.adapters[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return a, nil
}
