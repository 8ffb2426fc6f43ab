package formats

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks import documents that fail to parse or validate.
	ErrMalformed = errors.New("malformed import document")
	// ErrUnresolved marks an external reference with no catalog item.
	ErrUnresolved = errors.New("unresolved reference")
	// ErrUnknownCategory marks an armor or weapon category outside the classification tables.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownFormat is returned by ParseFormat.
	ErrUnknownFormat = errors.New("unknown format")
)

// MalformedError describes an import document that could not be read.
// Guidance tells the user what the format expects.
type MalformedError struct {
	Format   Format
	Guidance string
	Err      error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed %s file: %v. %s", e.Format, e.Err, e.Guidance)
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

// UnresolvedError is one reference that resolution gave up on.
type UnresolvedError struct {
	Ref    string
	Reason string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved reference %s: %s", e.Ref, e.Reason)
}

func (e *UnresolvedError) Is(target error) bool { return target == ErrUnresolved }

func unresolved(ref, format string, args ...any) error {
	return &UnresolvedError{Ref: ref, Reason: fmt.Sprintf(format, args...)}
}
