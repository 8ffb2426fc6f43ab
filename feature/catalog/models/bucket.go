package models

import (
	"fmt"
	"strings"
)

// Bucket is the top-level classification of an item: weapons, armor or other.
type Bucket string

const (
	BucketWeapons Bucket = "weapons"
	BucketArmor   Bucket = "armor"
	BucketOther   Bucket = "other"
)

// Jewelry, charms and jewels are "other" whatever else the category says.
var otherWords = []string{"Rings", "Amulets", "Charms", "Jewels"}

var weaponWords = []string{
	"Axes", "Bows", "Crossbows", "Daggers", "Hammers", "Maces", "Clubs",
	"Polearms", "Scepters", "Spears", "Staves", "Swords", "Wands",
	"Throwing", "Javelins", "Orbs", "Claws", "Katars", "Weapons",
}

var armorWords = []string{
	"Armor", "Helmets", "Helms", "Circlets", "Gloves", "Belts", "Boots",
	"Shields", "Pelts", "Heads",
}

// BucketOf classifies a category string. Matching is case sensitive on the
// plural family word, so "Crossbows" never matches "Bows".
func BucketOf(category string) Bucket {
	if containsAny(category, otherWords) {
		return BucketOther
	}
	if containsAny(category, weaponWords) {
		return BucketWeapons
	}
	if containsAny(category, armorWords) {
		return BucketArmor
	}
	return BucketOther
}

// ParseBucket resolves a bucket name given on the command line or query string.
func ParseBucket(s string) (Bucket, error) {
	switch b := Bucket(strings.ToLower(strings.TrimSpace(s))); b {
	case BucketWeapons, BucketArmor, BucketOther:
		return b, nil
	default:
		return "", fmt.Errorf("unknown bucket %q", s)
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
