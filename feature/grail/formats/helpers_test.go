package formats_test

import (
	"time"

	"grail-tracker/core/reconcile"
	"grail-tracker/feature/progress"
)

var foundAt = time.Date(2024, 2, 10, 18, 30, 0, 0, time.UTC)

func emptyRecord() progress.Record {
	return progress.NewRecord()
}

func recordOf(keys ...string) progress.Record {
	entries := make([]progress.Entry, 0, len(keys))
	for i, k := range keys {
		entries = append(entries, progress.Entry{ID: k, ItemKey: k, FoundAt: foundAt.Add(time.Duration(i) * time.Minute)})
	}
	return progress.NewRecord(entries...)
}

func keysOf(candidates []reconcile.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ItemKey)
	}
	return out
}
