package formats

import (
	"encoding/json"
	"sort"
	"strings"

	"grail-tracker/core/reconcile"
	"grail-tracker/feature/catalog/models"
	"grail-tracker/feature/progress"

	"go.uber.org/zap"
)

// Leaf is the state of one item in the nested document.
type Leaf struct {
	WasFound bool `json:"wasFound"`
}

// Leaves maps item names, or facet elements, to their state.
type Leaves map[string]Leaf

// Tiers maps normal, exceptional and elite to items.
type Tiers map[string]Leaves

// NestedDocument is the D2-Holy-Grail export.
type NestedDocument struct {
	Uniques NestedUniques     `json:"uniques"`
	Sets    map[string]Leaves `json:"sets"`
}

// NestedUniques holds the unique item branches.
type NestedUniques struct {
	Armor   map[string]Tiers `json:"armor"`
	Weapons map[string]Tiers `json:"weapons"`
	Other   NestedOther      `json:"other"`
}

// NestedOther holds jewelry, charms, class items and facets.
type NestedOther struct {
	Jewelry      NestedJewelry     `json:"jewelry"`
	Charms       NestedCharms      `json:"charms"`
	Classes      map[string]Leaves `json:"classes"`
	RainbowFacet NestedFacets      `json:"rainbow facet (jewel)"`
}

// NestedJewelry holds rings and amulets.
type NestedJewelry struct {
	Rings   Leaves `json:"rings"`
	Amulets Leaves `json:"amulets"`
}

// NestedCharms holds every unique charm.
type NestedCharms struct {
	All Leaves `json:"all"`
}

// NestedFacets holds facets by trigger, then by element.
type NestedFacets struct {
	LevelUp Leaves `json:"level up"`
	Die     Leaves `json:"die"`
}

func newNestedDocument() *NestedDocument {
	return &NestedDocument{
		Uniques: NestedUniques{
			Armor:   map[string]Tiers{},
			Weapons: map[string]Tiers{},
			Other: NestedOther{
				Jewelry:      NestedJewelry{Rings: Leaves{}, Amulets: Leaves{}},
				Charms:       NestedCharms{All: Leaves{}},
				Classes:      map[string]Leaves{},
				RainbowFacet: NestedFacets{LevelUp: Leaves{}, Die: Leaves{}},
			},
		},
		Sets: map[string]Leaves{},
	}
}

func (t Tiers) leaves(tier string) Leaves {
	l, ok := t[tier]
	if !ok {
		l = Leaves{}
		t[tier] = l
	}
	return l
}

func branch(m map[string]Tiers, bucket string) Tiers {
	t, ok := m[bucket]
	if !ok {
		t = Tiers{}
		m[bucket] = t
	}
	return t
}

func group(m map[string]Leaves, name string) Leaves {
	l, ok := m[name]
	if !ok {
		l = Leaves{}
		m[name] = l
	}
	return l
}

// NestedAdapter reads and writes the D2-Holy-Grail nested category format.
type NestedAdapter struct {
	logger *zap.Logger
}

// NewNestedAdapter creates the nested adapter.
func NewNestedAdapter(logger *zap.Logger) *NestedAdapter {
	return &NestedAdapter{logger: logger}
}

func (a *NestedAdapter) Format() Format { return FormatNested }

// Build routes every catalog unique and set item into the nested document
// and returns it with the number of found leaves. An armor or weapon item
// whose category matches no table aborts the build with ErrUnknownCategory.
func (a *NestedAdapter) Build(cat *models.Catalog, rec progress.Record) (*NestedDocument, int, error) {
	doc := newNestedDocument()
	found := 0

	for _, key := range cat.UniqueKeys() {
		item := cat.Uniques[key]
		route, err := ClassifyUnique(cat, item)
		if err != nil {
			return nil, 0, err
		}

		leaf := Leaf{WasFound: rec.Has(key)}
		switch route.Kind {
		case RouteSkip:
			continue
		case RouteArmor:
			branch(doc.Uniques.Armor, route.Bucket).leaves(route.Tier)[route.Key] = leaf
		case RouteWeapon:
			branch(doc.Uniques.Weapons, route.Bucket).leaves(route.Tier)[route.Key] = leaf
		case RouteRing:
			doc.Uniques.Other.Jewelry.Rings[route.Key] = leaf
		case RouteAmulet:
			doc.Uniques.Other.Jewelry.Amulets[route.Key] = leaf
		case RouteCharm:
			doc.Uniques.Other.Charms.All[route.Key] = leaf
		case RouteClass:
			group(doc.Uniques.Other.Classes, route.Bucket)[route.Key] = leaf
		case RouteFacet:
			facets := doc.Uniques.Other.RainbowFacet.Die
			if route.Bucket == "level up" {
				facets = doc.Uniques.Other.RainbowFacet.LevelUp
			}
			facets[route.Key] = leaf
		}
		if leaf.WasFound {
			found++
		}
	}

	for _, key := range cat.SetKeys() {
		item := cat.Sets[key]
		leaf := Leaf{WasFound: rec.Has(key)}
		group(doc.Sets, item.Set)[externalName(key)] = leaf
		if leaf.WasFound {
			found++
		}
	}

	return doc, found, nil
}

// Encode builds and marshals the nested document.
func (a *NestedAdapter) Encode(cat *models.Catalog, rec progress.Record) ([]byte, error) {
	doc, found, err := a.Build(cat, rec)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Encoded nested grail document", zap.Int("found", found))
	return json.MarshalIndent(doc, "", "  ")
}

type nestedRef struct {
	path string
	name string
}

// Decode walks every leaf with wasFound true and classifies the resolved
// keys against rec. Leaves naming items outside the catalog are skipped.
func (a *NestedAdapter) Decode(data []byte, cat *models.Catalog, rec progress.Record) (*Decoded, error) {
	if _, err := parseDocument(FormatNested, data); err != nil {
		return nil, err
	}
	var doc NestedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(FormatNested, err)
	}

	var refs []nestedRef
	collect := func(path string, leaves Leaves) {
		for name, leaf := range leaves {
			if leaf.WasFound {
				refs = append(refs, nestedRef{path: path, name: name})
			}
		}
	}

	for bucket, tiers := range doc.Uniques.Armor {
		for tier, leaves := range tiers {
			collect("uniques.armor."+bucket+"."+tier, leaves)
		}
	}
	for bucket, tiers := range doc.Uniques.Weapons {
		for tier, leaves := range tiers {
			collect("uniques.weapons."+bucket+"."+tier, leaves)
		}
	}
	collect("uniques.other.jewelry.rings", doc.Uniques.Other.Jewelry.Rings)
	collect("uniques.other.jewelry.amulets", doc.Uniques.Other.Jewelry.Amulets)
	collect("uniques.other.charms.all", doc.Uniques.Other.Charms.All)
	for class, leaves := range doc.Uniques.Other.Classes {
		collect("uniques.other.classes."+class, leaves)
	}
	for set, leaves := range doc.Sets {
		collect("sets."+set, leaves)
	}

	var candidates []reconcile.Candidate
	var skipped []reconcile.Skip
	resolve := func(key string, err error) {
		if err != nil {
			skipped = skip(a.logger, FormatNested, skipped, err)
			return
		}
		candidates = append(candidates, reconcile.Candidate{ItemKey: key})
	}

	for _, ref := range refs {
		resolve(resolveNested(cat, ref.path+"."+ref.name, ref.name))
	}
	for trigger, leaves := range map[string]Leaves{triggerLevelUp: doc.Uniques.Other.RainbowFacet.LevelUp, triggerDie: doc.Uniques.Other.RainbowFacet.Die} {
		for element, leaf := range leaves {
			if !leaf.WasFound {
				continue
			}
			path := "uniques.other.rainbow facet (jewel)." + strings.ToLower(trigger) + "." + element
			resolve(resolveFacet(cat, path, element, trigger))
		}
	}

	sort.Slice(skipped, func(i, j int) bool { return skipped[i].Ref < skipped[j].Ref })
	return classify(candidates, rec, skipped), nil
}

// resolveNested maps a leaf name to a catalog key.
func resolveNested(cat *models.Catalog, ref, name string) (string, error) {
	key := internalName(name)
	if !cat.Has(key) {
		return "", unresolved(ref, "%q is not in the catalog", name)
	}
	return key, nil
}

func resolveFacet(cat *models.Catalog, ref, element, trigger string) (string, error) {
	el, ok := catalogElement(element)
	if !ok {
		return "", unresolved(ref, "unknown facet element %q", element)
	}
	return resolveNested(cat, ref, facetKey(el, trigger))
}
