// Package grail runs the user-facing operations over a catalog source and a
// progress coordinator.
//
// # Reads
//
// Stats and Remaining take one snapshot of the record and compute the
// aggregator views from it, so a concurrent SetFound never tears a result.
//
// # Import
//
// Import is two steps. PlanImport decodes and validates the document and
// classifies every resolved key against the current snapshot without
// changing anything:
//
//	plan, err := svc.PlanImport(ctx, formats.FormatToD2, data)
//	// show plan.Summary and plan.Skipped, ask the user
//	n, err := svc.ApplyImport(ctx, plan, reconcile.Options{Confirmed: true})
//
// ApplyImport sends plan.NotFound in one bulk write. A malformed document
// fails in PlanImport and leaves the record untouched.
//
// # Export
//
// Export encodes the snapshot and names the file after the format and the
// current date. UploadExport stores it under the export prefix (exports/ by default) in the
// configured bucket.
package grail
