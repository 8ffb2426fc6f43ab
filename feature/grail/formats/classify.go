package formats

import (
	"fmt"
	"strings"

	"grail-tracker/feature/catalog/models"
)

type bucketRule struct {
	word   string
	bucket string
	split  bool
}

// armorBuckets is matched in order; the first rule whose word is a
// substring of the category wins.
var armorBuckets = []bucketRule{
	{word: "Armor", bucket: "chest"},
	{word: "Helmets", bucket: "helm"},
	{word: "Circlets", bucket: "circlet"},
	{word: "Gloves", bucket: "gloves"},
	{word: "Belts", bucket: "belts"},
	{word: "Boots", bucket: "boots"},
	{word: "Shields", bucket: "shields"},
}

// weaponBuckets is matched in order. Split buckets are further divided by
// hand count.
var weaponBuckets = []bucketRule{
	{word: "Axes", bucket: "axe", split: true},
	{word: "Bows", bucket: "bow"},
	{word: "Crossbows", bucket: "crossbow"},
	{word: "Daggers", bucket: "dagger"},
	{word: "Hammers", bucket: "clubs", split: true},
	{word: "Maces", bucket: "clubs", split: true},
	{word: "Polearms", bucket: "polearms"},
	{word: "Scepters", bucket: "scepters"},
	{word: "Spears", bucket: "spears"},
	{word: "Staves", bucket: "staves"},
	{word: "Swords", bucket: "swords", split: true},
	{word: "Wands", bucket: "wands"},
	{word: "Throwing", bucket: "throwing"},
	{word: "Javelins", bucket: "throwing"},
}

var classNames = []string{"Amazon", "Assassin", "Barbarian", "Druid", "Necromancer", "Paladin", "Sorceress"}

// RouteKind is the branch of the nested document an item lands in.
type RouteKind int

const (
	RouteSkip RouteKind = iota
	RouteArmor
	RouteWeapon
	RouteRing
	RouteAmulet
	RouteCharm
	RouteClass
	RouteFacet
)

// Route is the position of a unique item in the nested document.
// Bucket holds the armor or weapon type, the lowercase class name, or the
// facet trigger. Key is the leaf name.
type Route struct {
	Kind   RouteKind
	Bucket string
	Tier   string
	Key    string
}

// Tier buckets a category into normal, exceptional or elite.
func Tier(category string) string {
	switch {
	case strings.Contains(category, "Exceptional"):
		return "exceptional"
	case strings.Contains(category, "Elite"):
		return "elite"
	default:
		return "normal"
	}
}

func matchRule(category string, rules []bucketRule) (bucketRule, bool) {
	for _, r := range rules {
		if strings.Contains(category, r.word) {
			return r, true
		}
	}
	return bucketRule{}, false
}

// ArmorBucket returns the armor type of a category.
func ArmorBucket(category string) (string, error) {
	r, ok := matchRule(category, armorBuckets)
	if !ok {
		return "", fmt.Errorf("%w: no armor type for %q", ErrUnknownCategory, category)
	}
	return r.bucket, nil
}

// WeaponBucket returns the weapon type of an item, splitting axes, clubs
// and swords into "1h <type>" and "2h <type>" from its base's damage affixes.
func WeaponBucket(cat *models.Catalog, item models.Item) (string, error) {
	r, ok := matchRule(item.ItemCategory(), weaponBuckets)
	if !ok {
		return "", fmt.Errorf("%w: no weapon type for %q", ErrUnknownCategory, item.ItemCategory())
	}
	if !r.split {
		return r.bucket, nil
	}
	if twoHanded(cat, item) {
		return "2h " + r.bucket, nil
	}
	return "1h " + r.bucket, nil
}

// twoHanded inspects the base item's implicit affix templates for
// "Two-Hand Damage". A base listing both damage kinds is two handed; a
// missing base is one handed.
func twoHanded(cat *models.Catalog, item models.Item) bool {
	base, ok := cat.Base(item.BaseType())
	if !ok {
		return false
	}
	for _, a := range base.ImplicitAffixes() {
		if strings.Contains(a.Template, "Two-Hand Damage") {
			return true
		}
	}
	return false
}

func className(category string) (string, bool) {
	for _, name := range classNames {
		if strings.Contains(category, name) {
			return strings.ToLower(name), true
		}
	}
	return "", false
}

// nestedElement maps a catalog element to the abbreviation used by the nested format.
func nestedElement(element string) string {
	if element == "Lightning" {
		return "light"
	}
	return strings.ToLower(element)
}

// catalogElement is the inverse of nestedElement.
func catalogElement(element string) (string, bool) {
	switch element {
	case "light":
		return "Lightning", true
	case "cold", "fire", "poison":
		return strings.ToUpper(element[:1]) + element[1:], true
	}
	return "", false
}

// ClassifyUnique routes a unique item into the nested document. Facets,
// class items and jewelry are checked before the armor and weapon tables.
// Items of the other bucket that match none of them are skipped.
func ClassifyUnique(cat *models.Catalog, item models.Item) (Route, error) {
	category := item.ItemCategory()
	name := externalName(item.ItemKey())

	if isFacet(item) {
		element, trigger, ok := parseFacet(item.ItemKey())
		if !ok {
			return Route{Kind: RouteSkip}, nil
		}
		return Route{Kind: RouteFacet, Bucket: strings.ToLower(trigger), Key: nestedElement(element)}, nil
	}

	if class, ok := className(category); ok {
		return Route{Kind: RouteClass, Bucket: class, Key: name}, nil
	}

	switch {
	case strings.Contains(category, "Rings"):
		return Route{Kind: RouteRing, Key: name}, nil
	case strings.Contains(category, "Amulets"):
		return Route{Kind: RouteAmulet, Key: name}, nil
	case strings.Contains(category, "Charms"):
		return Route{Kind: RouteCharm, Key: name}, nil
	}

	switch models.BucketOf(category) {
	case models.BucketArmor:
		bucket, err := ArmorBucket(category)
		if err != nil {
			return Route{}, fmt.Errorf("%s: %w", item.ItemKey(), err)
		}
		return Route{Kind: RouteArmor, Bucket: bucket, Tier: Tier(category), Key: name}, nil
	case models.BucketWeapons:
		bucket, err := WeaponBucket(cat, item)
		if err != nil {
			return Route{}, fmt.Errorf("%s: %w", item.ItemKey(), err)
		}
		return Route{Kind: RouteWeapon, Bucket: bucket, Tier: Tier(category), Key: name}, nil
	default:
		return Route{Kind: RouteSkip}, nil
	}
}
