package models_test

import (
	"encoding/json"
	"testing"

	"grail-tracker/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "uniques": {
    "The Gnasher": {"name": "The Gnasher", "type": "Hand Axe", "category": "Unique Axes"}
  },
  "sets": {
    "Angelic Halo": {"name": "Angelic Halo", "type": "Ring", "category": "Set Rings", "set": "Angelic Raiment"}
  },
  "runes": {
    "El": {"name": "El Rune", "type": "Rune", "category": "Runes", "number": 1}
  },
  "bases": {
    "Hand Axe": {"name": "Hand Axe", "type": "Hand Axe", "category": "Axes",
      "implicits": [{"template": "One-Hand Damage: {0} to {1}", "values": [3, 6]}]}
  }
}`

func TestCatalog_UnmarshalAssignsKeys(t *testing.T) {
	var cat models.Catalog
	require.NoError(t, json.Unmarshal([]byte(sampleJSON), &cat))

	assert.Equal(t, "The Gnasher", cat.Uniques["The Gnasher"].ItemKey())
	assert.Equal(t, "Angelic Raiment", cat.Sets["Angelic Halo"].Set)
	assert.Equal(t, "El", cat.Runes["El"].ItemKey())
	assert.Equal(t, "El Rune", cat.Runes["El"].DisplayName())

	base, ok := cat.Base("Hand Axe")
	require.True(t, ok)
	assert.Equal(t, "One-Hand Damage: {0} to {1}", base.ImplicitAffixes()[0].Template)
}

func TestCatalog_Lookups(t *testing.T) {
	var cat models.Catalog
	require.NoError(t, json.Unmarshal([]byte(sampleJSON), &cat))

	assert.True(t, cat.Has("The Gnasher"))
	assert.True(t, cat.Has("Angelic Halo"))
	assert.True(t, cat.Has("El"))
	assert.False(t, cat.Has("Hand Axe"), "bases are not trackable")

	item, ok := cat.Lookup("Angelic Halo")
	require.True(t, ok)
	assert.Equal(t, "Set Rings", item.ItemCategory())

	_, ok = cat.Base("Missing Base")
	assert.False(t, ok)
	assert.NoError(t, cat.Validate())
}

func TestCatalog_ValidateDuplicateKeys(t *testing.T) {
	cat := models.Catalog{
		Uniques: map[string]models.UniqueItem{"Dup": {}},
		Runes:   map[string]models.Rune{"Dup": {}},
	}
	err := cat.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dup")
}

func TestCatalog_SelectAndMerge(t *testing.T) {
	var cat models.Catalog
	require.NoError(t, json.Unmarshal([]byte(sampleJSON), &cat))

	runesOnly := cat.Select([]models.Type{models.TypeRunes})
	assert.Len(t, runesOnly.Runes, 1)
	assert.Nil(t, runesOnly.Uniques)

	merged := &models.Catalog{}
	merged.Merge(runesOnly)
	merged.Merge(cat.Select([]models.Type{models.TypeUniques}))
	merged.Merge(nil)
	assert.Len(t, merged.Runes, 1)
	assert.Len(t, merged.Uniques, 1)
	assert.Equal(t, []string{"The Gnasher"}, merged.UniqueKeys())
}

func TestParseTypes(t *testing.T) {
	types, err := models.ParseTypes(nil)
	require.NoError(t, err)
	assert.Equal(t, models.Types, types)

	types, err = models.ParseTypes([]string{"runes", "sets", "runes"})
	require.NoError(t, err)
	assert.Equal(t, []models.Type{models.TypeRunes, models.TypeSets}, types)

	_, err = models.ParseTypes([]string{"gems"})
	assert.ErrorIs(t, err, models.ErrUnknownType)

	assert.Equal(t, "catalog/uniques.json", models.TypeUniques.ObjectName())
}

func TestBucketOf(t *testing.T) {
	tests := []struct {
		category string
		want     models.Bucket
	}{
		{"Unique Axes", models.BucketWeapons},
		{"Elite Unique Crossbows", models.BucketWeapons},
		{"Exceptional Unique Amazon Javelins", models.BucketWeapons},
		{"Elite Unique Armor", models.BucketArmor},
		{"Unique Helmets", models.BucketArmor},
		{"Set Shields", models.BucketArmor},
		{"Unique Rings", models.BucketOther},
		{"Unique Charms", models.BucketOther},
		{"Unique Jewels", models.BucketOther},
		{"Runes", models.BucketOther},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, models.BucketOf(tt.category))
		})
	}
}

func TestParseBucket(t *testing.T) {
	b, err := models.ParseBucket(" Weapons ")
	require.NoError(t, err)
	assert.Equal(t, models.BucketWeapons, b)

	_, err = models.ParseBucket("gems")
	assert.Error(t, err)
}

func TestDecodeSection(t *testing.T) {
	cat, err := models.DecodeSection(models.TypeRunes, []byte(`{"Ber": {"name": "Ber Rune", "number": 30}}`))
	require.NoError(t, err)
	assert.Equal(t, "Ber", cat.Runes["Ber"].ItemKey())
	assert.Equal(t, 30, cat.Runes["Ber"].Number)
	assert.Nil(t, cat.Uniques)

	_, err = models.DecodeSection(models.TypeRunes, []byte(`[1, 2]`))
	assert.Error(t, err)
}
