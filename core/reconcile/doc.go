// Package reconcile turns a decoded import document into a plan and applies it.
//
// # Classification
//
// Every import adapter resolves external references to Item Keys and then
// classifies each key against the current progress record:
//
//   - Found: the key is already in the record.
//   - NotFound: the key is absent and would be added by the import.
//
// Both lists are sorted by key and deduplicated. Classify never mutates the
// record.
//
// # Plan and Apply
//
// A Plan bundles the two lists with the references that were skipped and a
// Summary. ApplyPlan sends NotFound in one BulkSetFound call. It refuses to
// run without Options.Confirmed and does nothing on Options.DryRun:
//
//	plan := reconcile.NewPlan("backup", diff, skipped)
//	applied, err := reconcile.ApplyPlan(ctx, coordinator, plan, reconcile.Options{Confirmed: true})
//
// Importing the same document twice yields an empty NotFound the second time.
package reconcile
