package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownType is returned for catalog section names outside Types.
var ErrUnknownType = errors.New("unknown catalog type")

// Type names one catalog section as used by `GET items?types=`.
type Type string

const (
	TypeUniques   Type = "uniques"
	TypeSets      Type = "sets"
	TypeRunes     Type = "runes"
	TypeRunewords Type = "runewords"
	TypeBases     Type = "bases"
)

// Types lists every catalog section in load order.
var Types = []Type{TypeUniques, TypeSets, TypeRunes, TypeRunewords, TypeBases}

// ParseTypes validates section names. An empty input selects every section.
func ParseTypes(names []string) ([]Type, error) {
	if len(names) == 0 {
		return Types, nil
	}
	out := make([]Type, 0, len(names))
	seen := make(map[Type]struct{}, len(names))
	for _, name := range names {
		t := Type(name)
		switch t {
		case TypeUniques, TypeSets, TypeRunes, TypeRunewords, TypeBases:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}

// ObjectName is the storage key of a section's JSON document.
func (t Type) ObjectName() string {
	return "catalog/" + string(t) + ".json"
}

// DecodeSection decodes a single section document, a JSON object of
// `{key: item}`, into a catalog holding only that section.
func DecodeSection(t Type, data []byte) (*Catalog, error) {
	raw, err := json.Marshal(map[Type]json.RawMessage{t: data})
	if err != nil {
		return nil, fmt.Errorf("invalid %s document: %w", t, err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("invalid %s document: %w", t, err)
	}
	return &c, nil
}
