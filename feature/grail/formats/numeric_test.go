package formats_test

import (
	"encoding/json"
	"testing"

	"grail-tracker/feature/catalog/catalogtest"
	"grail-tracker/feature/grail/formats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func decodeTriples(t *testing.T, data []byte) [][3]any {
	t.Helper()
	var doc struct {
		Grail [][3]any `json:"grail"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc.Grail
}

func TestNumeric_Encode(t *testing.T) {
	a := formats.NewNumericAdapter(formats.DefaultReference(), zap.NewNop())
	cat := catalogtest.Sample()

	data, err := a.Encode(cat, recordOf("Windforce", "Lenymo", "Angelic Halo", "Ber"))
	require.NoError(t, err)

	triples := decodeTriples(t, data)
	assert.Equal(t, [][3]any{
		{float64(1), "unique", float64(220)},
		{float64(2), "unique", float64(275)},
		{float64(3), "set", float64(50)},
	}, triples, "runes have no ToD2 id; Lenymo uses its ToD2 name")
}

func TestNumeric_FacetCollapse(t *testing.T) {
	a := formats.NewNumericAdapter(formats.DefaultReference(), zap.NewNop())
	cat := catalogtest.Sample()

	data, err := a.Encode(cat, recordOf(
		"Rainbow Facet (Cold Die)",
		"Rainbow Facet (Cold Level Up)",
		"Rainbow Facet (Fire Level Up)",
	))
	require.NoError(t, err)

	triples := decodeTriples(t, data)
	require.Len(t, triples, 2, "one triple per element")
	assert.Equal(t, float64(384), triples[0][2])
	assert.Equal(t, float64(385), triples[1][2])
}

func TestNumeric_FacetFanOut(t *testing.T) {
	a := formats.NewNumericAdapter(formats.DefaultReference(), zap.NewNop())
	cat := catalogtest.Sample()

	decoded, err := a.Decode([]byte(`{"grail": [[1, "unique", 384]]}`), cat, emptyRecord())
	require.NoError(t, err)
	assert.Equal(t, []string{"Rainbow Facet (Cold Die)", "Rainbow Facet (Cold Level Up)"}, keysOf(decoded.NotFound))
	assert.Empty(t, decoded.Found)

	partial, err := a.Decode([]byte(`{"grail": [[1, "unique", 384]]}`), cat, recordOf("Rainbow Facet (Cold Die)"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Rainbow Facet (Cold Die)"}, keysOf(partial.Found))
	assert.Equal(t, []string{"Rainbow Facet (Cold Level Up)"}, keysOf(partial.NotFound))
}

func TestNumeric_RoundTrip(t *testing.T) {
	a := formats.NewNumericAdapter(formats.DefaultReference(), zap.NewNop())
	cat := catalogtest.Sample()
	rec := recordOf("The Gnasher", "Lenymo", "Tal Rasha's Guardianship", "Civerb's Ward")

	data, err := a.Encode(cat, rec)
	require.NoError(t, err)

	decoded, err := a.Decode(data, cat, rec)
	require.NoError(t, err)
	assert.Equal(t, rec.Keys(), keysOf(decoded.Found))
	assert.Empty(t, decoded.NotFound)
	assert.Empty(t, decoded.Skipped)
}

func TestNumeric_SkipsUnresolved(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	a := formats.NewNumericAdapter(formats.DefaultReference(), zap.New(core))
	cat := catalogtest.Sample()

	doc := `{"grail": [[1, "unique", 9999], [2, "unique", 1], [3, "set", 0], [4, "unique", 275]]}`
	decoded, err := a.Decode([]byte(doc), cat, emptyRecord())
	require.NoError(t, err)

	assert.Equal(t, []string{"Civerb's Ward", "Windforce"}, keysOf(decoded.NotFound))
	require.Len(t, decoded.Skipped, 2)
	assert.Equal(t, "unique:9999", decoded.Skipped[0].Ref)
	assert.Contains(t, decoded.Skipped[0].Reason, "unknown unique id")
	assert.Equal(t, "unique:1", decoded.Skipped[1].Ref)
	assert.Contains(t, decoded.Skipped[1].Reason, "Deathspade")
	assert.Equal(t, 2, logs.FilterMessage("Skipping unresolved import entry").Len())
}

func TestNumeric_EncodeLogsMissingReference(t *testing.T) {
	ref, err := formats.LoadReference([]byte(`{"unique": {"1": "Windforce"}}`))
	require.NoError(t, err)

	core, logs := observer.New(zapcore.WarnLevel)
	a := formats.NewNumericAdapter(ref, zap.New(core))
	data, err := a.Encode(catalogtest.Sample(), recordOf("Windforce", "Shaftstop"))
	require.NoError(t, err)

	assert.Len(t, decodeTriples(t, data), 1)
	assert.Equal(t, 1, logs.FilterMessage("No ToD2 id for found item").Len())
}

func TestNumeric_RejectsBadDocuments(t *testing.T) {
	a := formats.NewNumericAdapter(formats.DefaultReference(), zap.NewNop())
	for _, doc := range []string{
		`{"items": []}`,
		`{"grail": [[1, "rune", 3]]}`,
		`{"grail": [[1, "unique"]]}`,
		`{"grail": [[1, "unique", 2.5]]}`,
	} {
		_, err := a.Decode([]byte(doc), catalogtest.Sample(), emptyRecord())
		assert.ErrorIs(t, err, formats.ErrMalformed, doc)
	}
}

func TestLoadReference(t *testing.T) {
	_, err := formats.LoadReference([]byte(`{"rune": {"1": "El"}}`))
	assert.Error(t, err)
	_, err = formats.LoadReference([]byte(`{"unique": {"x": "Windforce"}}`))
	assert.Error(t, err)

	ref := formats.DefaultReference()
	name, ok := ref.Name(formats.KindUnique, 384)
	require.True(t, ok)
	assert.Equal(t, "Rainbow Facet (Cold)", name)
	id, ok := ref.ID(formats.KindSet, "Angelic Halo")
	require.True(t, ok)
	assert.Equal(t, 50, id)
}
