// Package progress holds a user's grail progress and keeps it in sync with a
// remote persistence service.
//
// # Record
//
// A Record maps Item Key to Entry. Absence is the only "not found" state;
// there are no entries with found false. Records are copy-on-write, so a
// Snapshot can be read by the aggregator or a format adapter while the
// Coordinator keeps mutating.
//
// # Writes
//
// SetFound changes the record immediately and schedules a remote write after
// the debounce window. A later SetFound for the same key cancels the pending
// write and schedules its own, so rapid toggles send at most one request
// carrying the final state. Different keys never wait on each other.
//
// BulkSetFound is the import path. It is one remote call followed by a local
// merge, and nothing is merged when the call fails.
//
// # Hydration
//
// Load applies the remote listing once. If the user already changed
// something locally, the listing is discarded.
package progress
