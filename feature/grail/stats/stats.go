package stats

import (
	"math"

	"grail-tracker/feature/catalog/models"
	"grail-tracker/feature/progress"
)

// Row labels in display order.
const (
	LabelUniqueWeapons = "Unique Weapons"
	LabelUniqueArmor   = "Unique Armor"
	LabelUniqueOther   = "Unique Other"
	LabelSetItems      = "Set Items"
	LabelRunes         = "Runes"
)

// Row is the completion of one bucket. Percentage is nil for an empty bucket.
type Row struct {
	Label      string `json:"label"`
	Total      int    `json:"total"`
	Found      int    `json:"found"`
	Percentage *int   `json:"percentage"`
}

// Percent returns floor(found/total*100) computed in float64, or nil when total is zero.
func Percent(found, total int) *int {
	if total == 0 {
		return nil
	}
	p := int(math.Floor(float64(found) / float64(total) * 100))
	return &p
}

type tally struct {
	total, found int
}

func (t *tally) add(rec progress.Record, key string) {
	t.total++
	if rec.Has(key) {
		t.found++
	}
}

func (t tally) row(label string) Row {
	return Row{Label: label, Total: t.total, Found: t.found, Percentage: Percent(t.found, t.total)}
}

// BuildTableRows counts catalog items and found entries for the five fixed buckets.
func BuildTableRows(cat *models.Catalog, rec progress.Record) []Row {
	var weapons, armor, other, sets, runes tally

	for key, item := range cat.Uniques {
		switch models.BucketOf(item.Category) {
		case models.BucketWeapons:
			weapons.add(rec, key)
		case models.BucketArmor:
			armor.add(rec, key)
		default:
			other.add(rec, key)
		}
	}
	for key := range cat.Sets {
		sets.add(rec, key)
	}
	for key := range cat.Runes {
		runes.add(rec, key)
	}

	return []Row{
		weapons.row(LabelUniqueWeapons),
		armor.row(LabelUniqueArmor),
		other.row(LabelUniqueOther),
		sets.row(LabelSetItems),
		runes.row(LabelRunes),
	}
}
