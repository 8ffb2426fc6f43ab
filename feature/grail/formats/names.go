package formats

import (
	"sort"
	"strings"

	"grail-tracker/feature/catalog/models"
)

// nameExceptions maps names used by other trackers to catalog keys that differ.
var nameExceptions = map[string]string{
	"Lenyms Cord": "Lenymo",
}

var reverseExceptions = func() map[string]string {
	m := make(map[string]string, len(nameExceptions))
	for external, key := range nameExceptions {
		m[key] = external
	}
	return m
}()

// internalName maps an external item name to a catalog key.
func internalName(external string) string {
	if key, ok := nameExceptions[external]; ok {
		return key
	}
	return external
}

// externalName maps a catalog key to the name other trackers use.
func externalName(key string) string {
	if external, ok := reverseExceptions[key]; ok {
		return external
	}
	return key
}

const facetPrefix = "Rainbow Facet ("

// Facet triggers as they appear in catalog keys.
const (
	triggerLevelUp = "Level Up"
	triggerDie     = "Die"
)

// parseFacet splits a facet key such as "Rainbow Facet (Cold Level Up)"
// into its element and trigger.
func parseFacet(key string) (element, trigger string, ok bool) {
	if !strings.HasPrefix(key, facetPrefix) || !strings.HasSuffix(key, ")") {
		return "", "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(key, facetPrefix), ")")
	for _, t := range []string{triggerLevelUp, triggerDie} {
		if el, found := strings.CutSuffix(inner, " "+t); found && el != "" {
			return el, t, true
		}
	}
	return "", "", false
}

// facetKey builds the catalog key of one facet variant.
func facetKey(element, trigger string) string {
	return facetPrefix + element + " " + trigger + ")"
}

// facetFamily is the name of a facet element without its trigger, e.g. "Rainbow Facet (Cold)".
func facetFamily(element string) string {
	return facetPrefix + element + ")"
}

// facetVariants returns the catalog keys belonging to a facet family name, sorted.
func facetVariants(cat *models.Catalog, family string) []string {
	if !strings.HasPrefix(family, facetPrefix) {
		return nil
	}
	prefix := strings.TrimSuffix(family, ")") + " "
	var keys []string
	for key := range cat.Uniques {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// isFacet reports whether a catalog item is an elemental facet.
func isFacet(item models.Item) bool {
	if !strings.Contains(item.ItemCategory(), "Jewels") {
		return false
	}
	name := item.ItemKey()
	return strings.Contains(name, "Level") || strings.Contains(name, "Die")
}
