package formats

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
)

//go:embed reference/tod2.json
var defaultReferenceJSON []byte

// Kinds of numeric references.
const (
	KindUnique = "unique"
	KindSet    = "set"
)

// Reference maps ToD2 item ids to item names per kind.
type Reference struct {
	names map[string]map[int]string
	ids   map[string]map[string]int
}

// LoadReference parses a reference table of the form {"unique": {"0": "The Gnasher"}, "set": {...}}.
func LoadReference(data []byte) (*Reference, error) {
	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid reference table: %w", err)
	}

	ref := &Reference{names: map[string]map[int]string{}, ids: map[string]map[string]int{}}
	for kind, entries := range raw {
		if kind != KindUnique && kind != KindSet {
			return nil, fmt.Errorf("invalid reference table: unknown kind %q", kind)
		}
		ref.names[kind] = make(map[int]string, len(entries))
		ref.ids[kind] = make(map[string]int, len(entries))
		for idStr, name := range entries {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return nil, fmt.Errorf("invalid reference table: %s id %q: %w", kind, idStr, err)
			}
			if prev, dup := ref.ids[kind][name]; dup && prev != id {
				return nil, fmt.Errorf("invalid reference table: %s %q has ids %d and %d", kind, name, prev, id)
			}
			ref.names[kind][id] = name
			ref.ids[kind][name] = id
		}
	}
	return ref, nil
}

var defaultReference = sync.OnceValue(func() *Reference {
	ref, err := LoadReference(defaultReferenceJSON)
	if err != nil {
		panic(err)
	}
	return ref
})

// DefaultReference returns the bundled ToD2 reference table.
func DefaultReference() *Reference {
	return defaultReference()
}

// Name returns the item name for an id of kind.
func (r *Reference) Name(kind string, id int) (string, bool) {
	name, ok := r.names[kind][id]
	return name, ok
}

// ID returns the id of a named item of kind.
func (r *Reference) ID(kind, name string) (int, bool) {
	id, ok := r.ids[kind][name]
	return id, ok
}
