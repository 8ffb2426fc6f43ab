package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Affix is an implicit or explicit modifier template of an item,
// e.g. {"template": "One-Hand Damage: {0} to {1}", "values": [3, 6]}.
type Affix struct {
	Template string    `json:"template"`
	Values   []float64 `json:"values,omitempty"`
}

// Item is the capability set shared by every catalog variant.
type Item interface {
	ItemKey() string
	DisplayName() string
	ItemCategory() string
	BaseType() string
	ImplicitAffixes() []Affix
	ExplicitAffixes() []Affix
}

// Props holds the fields common to all catalog variants. Key is taken from
// the map key of the section the item was decoded from.
type Props struct {
	Key       string  `json:"-"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Category  string  `json:"category"`
	Implicits []Affix `json:"implicits,omitempty"`
	Explicits []Affix `json:"explicits,omitempty"`
}

func (p Props) ItemKey() string          { return p.Key }
func (p Props) DisplayName() string      { return p.Name }
func (p Props) ItemCategory() string     { return p.Category }
func (p Props) BaseType() string         { return p.Type }
func (p Props) ImplicitAffixes() []Affix { return p.Implicits }
func (p Props) ExplicitAffixes() []Affix { return p.Explicits }

// UniqueItem is a unique item; Type names its base item.
type UniqueItem struct {
	Props
	Level int `json:"level,omitempty"`
}

// SetItem is a member of an item set.
type SetItem struct {
	Props
	Set   string `json:"set"`
	Level int    `json:"level,omitempty"`
}

// Rune is a socketable rune.
type Rune struct {
	Props
	Number int `json:"number,omitempty"`
}

// Runeword is a rune combination socketed into a base of one of Bases.
type Runeword struct {
	Props
	Runes []string `json:"runes"`
	Bases []string `json:"bases,omitempty"`
}

// BaseItem is the equipment template unique and set items are built on.
type BaseItem struct {
	Props
	Tier string `json:"tier,omitempty"`
}

// Catalog is the read-only reference data. Each section is keyed by Item Key;
// keys are unique across Uniques, Sets and Runes.
type Catalog struct {
	Uniques   map[string]UniqueItem `json:"uniques,omitempty"`
	Sets      map[string]SetItem    `json:"sets,omitempty"`
	Runes     map[string]Rune       `json:"runes,omitempty"`
	Runewords map[string]Runeword   `json:"runewords,omitempty"`
	Bases     map[string]BaseItem   `json:"bases,omitempty"`
}

// UnmarshalJSON decodes the catalog and copies map keys into each item.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	type plain Catalog
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Catalog(p)
	c.assignKeys()
	return nil
}

func (c *Catalog) assignKeys() {
	for k, v := range c.Uniques {
		v.Key = k
		c.Uniques[k] = v
	}
	for k, v := range c.Sets {
		v.Key = k
		c.Sets[k] = v
	}
	for k, v := range c.Runes {
		v.Key = k
		c.Runes[k] = v
	}
	for k, v := range c.Runewords {
		v.Key = k
		c.Runewords[k] = v
	}
	for k, v := range c.Bases {
		v.Key = k
		c.Bases[k] = v
	}
}

// Merge copies every section present in other into c, overwriting sections
// already set. It is used to assemble a catalog from per-type loads.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	if other.Uniques != nil {
		c.Uniques = other.Uniques
	}
	if other.Sets != nil {
		c.Sets = other.Sets
	}
	if other.Runes != nil {
		c.Runes = other.Runes
	}
	if other.Runewords != nil {
		c.Runewords = other.Runewords
	}
	if other.Bases != nil {
		c.Bases = other.Bases
	}
}

// Select returns a catalog holding only the requested sections.
func (c *Catalog) Select(types []Type) *Catalog {
	out := &Catalog{}
	for _, t := range types {
		switch t {
		case TypeUniques:
			out.Uniques = c.Uniques
		case TypeSets:
			out.Sets = c.Sets
		case TypeRunes:
			out.Runes = c.Runes
		case TypeRunewords:
			out.Runewords = c.Runewords
		case TypeBases:
			out.Bases = c.Bases
		}
	}
	return out
}

// UniqueKeys returns the unique item keys in ascending order.
func (c *Catalog) UniqueKeys() []string { return sortedKeys(c.Uniques) }

// SetKeys returns the set item keys in ascending order.
func (c *Catalog) SetKeys() []string { return sortedKeys(c.Sets) }

// RuneKeys returns the rune keys in ascending order.
func (c *Catalog) RuneKeys() []string { return sortedKeys(c.Runes) }

// Has reports whether key names a unique item, set item or rune.
func (c *Catalog) Has(key string) bool {
	if _, ok := c.Uniques[key]; ok {
		return true
	}
	if _, ok := c.Sets[key]; ok {
		return true
	}
	_, ok := c.Runes[key]
	return ok
}

// Lookup returns the trackable item (unique, set or rune) for key.
func (c *Catalog) Lookup(key string) (Item, bool) {
	if u, ok := c.Uniques[key]; ok {
		return u, true
	}
	if s, ok := c.Sets[key]; ok {
		return s, true
	}
	if r, ok := c.Runes[key]; ok {
		return r, true
	}
	return nil, false
}

// Base resolves the base item an item is built on. Bases are matched by key
// first and by display name second.
func (c *Catalog) Base(name string) (BaseItem, bool) {
	if b, ok := c.Bases[name]; ok {
		return b, true
	}
	for _, b := range c.Bases {
		if b.Name == name {
			return b, true
		}
	}
	return BaseItem{}, false
}

// Validate reports keys shared between trackable sections.
func (c *Catalog) Validate() error {
	seen := make(map[string]string)
	check := func(section string, keys []string) error {
		for _, k := range keys {
			if other, dup := seen[k]; dup {
				return fmt.Errorf("item key %q appears in both %s and %s", k, other, section)
			}
			seen[k] = section
		}
		return nil
	}
	if err := check(string(TypeUniques), c.UniqueKeys()); err != nil {
		return err
	}
	if err := check(string(TypeSets), c.SetKeys()); err != nil {
		return err
	}
	return check(string(TypeRunes), c.RuneKeys())
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
