package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"grail-tracker/feature/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingApplier struct {
	calls [][]progress.BulkItem
	err   error
}

func (a *recordingApplier) BulkSetFound(_ context.Context, items []progress.BulkItem) error {
	a.calls = append(a.calls, items)
	return a.err
}

func TestClassify(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	record := progress.NewRecord(progress.Entry{ItemKey: "Windforce"})

	diff := Classify([]Candidate{
		{ItemKey: "Shaftstop"},
		{ItemKey: "Windforce"},
		{ItemKey: "Annihilus"},
		{ItemKey: "Shaftstop", FoundAt: &at},
		{ItemKey: "Shaftstop"},
	}, record)

	assert.Equal(t, []Candidate{{ItemKey: "Windforce"}}, diff.Found)
	require.Len(t, diff.NotFound, 2)
	assert.Equal(t, "Annihilus", diff.NotFound[0].ItemKey)
	assert.Equal(t, "Shaftstop", diff.NotFound[1].ItemKey)
	assert.Equal(t, &at, diff.NotFound[1].FoundAt, "first timestamp wins")
}

func TestClassify_Empty(t *testing.T) {
	diff := Classify(nil, progress.NewRecord())
	assert.NotNil(t, diff.Found)
	assert.NotNil(t, diff.NotFound)
	assert.Empty(t, diff.Found)
	assert.Empty(t, diff.NotFound)
}

func TestNewPlan_Summary(t *testing.T) {
	plan := NewPlan("tod2", Diff{
		Found:    []Candidate{{ItemKey: "A"}},
		NotFound: []Candidate{{ItemKey: "B"}, {ItemKey: "C"}},
	}, []Skip{{Ref: "unique:9999", Reason: "unknown id"}})

	assert.Equal(t, Summary{Total: 3, Found: 1, NotFound: 2, Skipped: 1}, plan.Summary)
	assert.Equal(t, "tod2", plan.Format)
	assert.NotNil(t, NewPlan("backup", Diff{}, nil).Skipped)
}

func TestApplyPlan(t *testing.T) {
	plan := NewPlan("backup", Diff{NotFound: []Candidate{{ItemKey: "Ber"}, {ItemKey: "Jah"}}}, nil)

	t.Run("Dry Run", func(t *testing.T) {
		a := &recordingApplier{}
		n, err := ApplyPlan(context.Background(), a, plan, Options{DryRun: true, Confirmed: true})
		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, a.calls)
	})

	t.Run("Not Confirmed", func(t *testing.T) {
		a := &recordingApplier{}
		_, err := ApplyPlan(context.Background(), a, plan, Options{})
		assert.ErrorIs(t, err, ErrNotConfirmed)
		assert.Empty(t, a.calls)
	})

	t.Run("Confirmed Sends One Batch", func(t *testing.T) {
		a := &recordingApplier{}
		n, err := ApplyPlan(context.Background(), a, plan, Options{Confirmed: true})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		require.Len(t, a.calls, 1)
		assert.Equal(t, "Ber", a.calls[0][0].ItemKey)
	})

	t.Run("Nothing To Add", func(t *testing.T) {
		a := &recordingApplier{}
		n, err := ApplyPlan(context.Background(), a, NewPlan("backup", Diff{}, nil), Options{Confirmed: true})
		assert.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, a.calls)
	})

	t.Run("Applier Failure", func(t *testing.T) {
		a := &recordingApplier{err: errors.New("offline")}
		_, err := ApplyPlan(context.Background(), a, plan, Options{Confirmed: true})
		assert.ErrorContains(t, err, "offline")
	})
}
