// Package catalogtest provides a small but representative catalog for tests
// of the format adapters, the aggregator and the grail service.
package catalogtest

import "grail-tracker/feature/catalog/models"

const (
	oneHand = "One-Hand Damage: {0} to {1}"
	twoHand = "Two-Hand Damage: {0} to {1}"
)

func unique(name, base, category string) models.UniqueItem {
	return models.UniqueItem{Props: models.Props{Key: name, Name: name, Type: base, Category: category}}
}

func setItem(name, base, category, set string) models.SetItem {
	return models.SetItem{Props: models.Props{Key: name, Name: name, Type: base, Category: category}, Set: set}
}

func base(name, category string, implicits ...string) models.BaseItem {
	affixes := make([]models.Affix, 0, len(implicits))
	for _, tpl := range implicits {
		affixes = append(affixes, models.Affix{Template: tpl})
	}
	return models.BaseItem{Props: models.Props{Key: name, Name: name, Type: name, Category: category, Implicits: affixes}}
}

func runeItem(key string, number int) models.Rune {
	return models.Rune{Props: models.Props{Key: key, Name: key + " Rune", Type: "Rune", Category: "Runes"}, Number: number}
}

// FacetKeys lists the eight rainbow facet keys of Sample.
var FacetKeys = []string{
	"Rainbow Facet (Cold Die)",
	"Rainbow Facet (Cold Level Up)",
	"Rainbow Facet (Fire Die)",
	"Rainbow Facet (Fire Level Up)",
	"Rainbow Facet (Lightning Die)",
	"Rainbow Facet (Lightning Level Up)",
	"Rainbow Facet (Poison Die)",
	"Rainbow Facet (Poison Level Up)",
}

// Sample returns a fresh catalog covering every classification branch.
func Sample() *models.Catalog {
	cat := &models.Catalog{
		Uniques: map[string]models.UniqueItem{},
		Sets:    map[string]models.SetItem{},
		Runes:   map[string]models.Rune{},
		Runewords: map[string]models.Runeword{
			"Enigma": {Props: models.Props{Key: "Enigma", Name: "Enigma", Type: "Body Armor", Category: "Runewords"}, Runes: []string{"Jah", "Ith", "Ber"}, Bases: []string{"Body Armor"}},
			"Spirit": {Props: models.Props{Key: "Spirit", Name: "Spirit", Type: "Swords", Category: "Runewords"}, Runes: []string{"Tal", "Thul", "Ort", "Amn"}, Bases: []string{"Swords", "Shields"}},
		},
		Bases: map[string]models.BaseItem{},
	}

	for _, u := range []models.UniqueItem{
		unique("The Gnasher", "Hand Axe", "Unique Axes"),
		unique("Bladebone", "Double Axe", "Unique Axes"),
		unique("Butcher's Pupil", "Cleaver", "Exceptional Unique Axes"),
		unique("Messerschmidt's Reaver", "Champion Axe", "Elite Unique Axes"),
		unique("Nord's Tenderizer", "Truncheon", "Exceptional Unique Maces"),
		unique("The Grandfather", "Colossus Blade", "Elite Unique Swords"),
		unique("Azurewrath", "Phase Blade", "Elite Unique Swords"),
		unique("Windforce", "Hydra Bow", "Elite Unique Bows"),
		unique("Buriza-Do Kyanon", "Ballista", "Exceptional Unique Crossbows"),
		unique("Harlequin Crest", "Shako", "Exceptional Unique Helmets"),
		unique("Tyrael's Might", "Sacred Armor", "Elite Unique Armor"),
		unique("Shaftstop", "Mesh Armor", "Exceptional Unique Armor"),
		unique("Lenymo", "Sash", "Unique Belts"),
		unique("Stone of Jordan", "Ring", "Unique Rings"),
		unique("Mara's Kaleidoscope", "Amulet", "Unique Amulets"),
		unique("Annihilus", "Small Charm", "Unique Charms"),
		unique("Arreat's Face", "Slayer Guard", "Elite Unique Barbarian Helmets"),
		unique("Titan's Revenge", "Ceremonial Javelin", "Exceptional Unique Amazon Javelins"),
	} {
		cat.Uniques[u.Key] = u
	}
	for _, key := range FacetKeys {
		cat.Uniques[key] = unique(key, "Jewel", "Unique Jewels")
	}

	for _, s := range []models.SetItem{
		setItem("Tal Rasha's Horadric Crest", "Death Mask", "Set Helmets", "Tal Rasha's Wrappings"),
		setItem("Tal Rasha's Guardianship", "Lacquered Plate", "Set Armor", "Tal Rasha's Wrappings"),
		setItem("Angelic Halo", "Ring", "Set Rings", "Angelic Raiment"),
		setItem("Angelic Mantle", "Ring Mail", "Set Armor", "Angelic Raiment"),
		setItem("Civerb's Ward", "Large Shield", "Set Shields", "Civerb's Vestments"),
	} {
		cat.Sets[s.Key] = s
	}

	for i, key := range []string{"El", "Eld", "Tir", "Ber", "Jah"} {
		cat.Runes[key] = runeItem(key, i+1)
	}

	for _, b := range []models.BaseItem{
		base("Hand Axe", "Axes", oneHand),
		base("Double Axe", "Axes", twoHand),
		base("Cleaver", "Axes", oneHand),
		base("Champion Axe", "Axes", twoHand),
		base("Truncheon", "Maces", oneHand),
		base("Colossus Blade", "Swords", oneHand, twoHand),
		base("Phase Blade", "Swords", oneHand),
		base("Hydra Bow", "Bows", twoHand),
		base("Ballista", "Crossbows", twoHand),
		base("Shako", "Helmets", "Defense: {0}"),
		base("Sacred Armor", "Armor", "Defense: {0}"),
		base("Mesh Armor", "Armor", "Defense: {0}"),
		base("Sash", "Belts", "Defense: {0}"),
		base("Ring", "Rings"),
		base("Amulet", "Amulets"),
		base("Small Charm", "Charms"),
		base("Slayer Guard", "Barbarian Helmets", "Defense: {0}"),
		base("Ceremonial Javelin", "Javelins", oneHand, "Throw Damage: {0} to {1}"),
		base("Jewel", "Jewels"),
		base("Death Mask", "Helmets", "Defense: {0}"),
		base("Lacquered Plate", "Armor", "Defense: {0}"),
		base("Ring Mail", "Armor", "Defense: {0}"),
		base("Large Shield", "Shields", "Defense: {0}"),
	} {
		cat.Bases[b.Key] = b
	}

	return cat
}
