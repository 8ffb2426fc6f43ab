package progress_test

import (
	"testing"
	"time"

	"grail-tracker/feature/progress"

	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	r := progress.NewRecord(
		progress.Entry{ID: "b", ItemKey: "Windforce", FoundAt: at},
		progress.Entry{ID: "a", ItemKey: "Annihilus", FoundAt: at},
	)

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Has("Windforce"))
	assert.False(t, r.Has("Ber"))
	assert.Equal(t, []string{"Annihilus", "Windforce"}, r.Keys())

	entries := r.Entries()
	assert.Equal(t, "a", entries[0].ID)

	var empty progress.Record
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Has("x"))
	assert.Empty(t, empty.Keys())
}
