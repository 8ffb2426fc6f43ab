package reconcile

import (
	"context"
	"fmt"
	"sort"

	"grail-tracker/feature/progress"
)

// Classify splits candidates into those already present and those missing.
// Duplicate keys collapse to one candidate; the first non-nil FoundAt wins.
func Classify(candidates []Candidate, present Presence) Diff {
	merged := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		prev, seen := merged[c.ItemKey]
		if seen && prev.FoundAt != nil {
			continue
		}
		merged[c.ItemKey] = c
	}

	diff := Diff{Found: []Candidate{}, NotFound: []Candidate{}}
	for _, c := range merged {
		if present.Has(c.ItemKey) {
			diff.Found = append(diff.Found, c)
		} else {
			diff.NotFound = append(diff.NotFound, c)
		}
	}
	sortCandidates(diff.Found)
	sortCandidates(diff.NotFound)
	return diff
}

func sortCandidates(c []Candidate) {
	sort.Slice(c, func(i, j int) bool { return c[i].ItemKey < c[j].ItemKey })
}

// NewPlan builds a plan from a classified import.
func NewPlan(format string, diff Diff, skipped []Skip) *Plan {
	if skipped == nil {
		skipped = []Skip{}
	}
	return &Plan{
		Format:   format,
		Found:    diff.Found,
		NotFound: diff.NotFound,
		Skipped:  skipped,
		Summary: Summary{
			Total:    len(diff.Found) + len(diff.NotFound),
			Found:    len(diff.Found),
			NotFound: len(diff.NotFound),
			Skipped:  len(skipped),
		},
	}
}

// ApplyPlan merges plan.NotFound through applier in a single call and
// returns how many items were sent. Nothing is applied on DryRun, and an
// unconfirmed plan fails with ErrNotConfirmed.
func ApplyPlan(ctx context.Context, applier Applier, plan *Plan, opts Options) (int, error) {
	if opts.DryRun {
		return 0, nil
	}
	if !opts.Confirmed {
		return 0, ErrNotConfirmed
	}
	if len(plan.NotFound) == 0 {
		return 0, nil
	}

	items := make([]progress.BulkItem, 0, len(plan.NotFound))
	for _, c := range plan.NotFound {
		items = append(items, progress.BulkItem{ItemKey: c.ItemKey, FoundAt: c.FoundAt})
	}
	if err := applier.BulkSetFound(ctx, items); err != nil {
		return 0, fmt.Errorf("failed to apply %s import: %w", plan.Format, err)
	}
	return len(items), nil
}
