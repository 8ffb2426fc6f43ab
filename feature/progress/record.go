package progress

import (
	"sort"
	"time"
)

// Entry is the progress of one found item. Items without an entry are not found.
type Entry struct {
	ID      string    `json:"id"`
	ItemKey string    `json:"itemKey"`
	FoundAt time.Time `json:"foundAt"`
}

// Record is an immutable snapshot of found items keyed by Item Key.
// Mutations produce a new Record; a Record handed to a reader never changes.
type Record struct {
	entries map[string]Entry
}

// NewRecord builds a record from entries. Later entries win on duplicate keys.
func NewRecord(entries ...Entry) Record {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.ItemKey] = e
	}
	return Record{entries: m}
}

// Len returns the number of found items.
func (r Record) Len() int {
	return len(r.entries)
}

// Has reports whether key is found.
func (r Record) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Get returns the entry for key.
func (r Record) Get(key string) (Entry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Keys returns the found item keys in ascending order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns the entries ordered by item key.
func (r Record) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, k := range r.Keys() {
		out = append(out, r.entries[k])
	}
	return out
}

func (r Record) clone(extra int) map[string]Entry {
	m := make(map[string]Entry, len(r.entries)+extra)
	for k, v := range r.entries {
		m[k] = v
	}
	return m
}

func (r Record) with(entries ...Entry) Record {
	m := r.clone(len(entries))
	for _, e := range entries {
		m[e.ItemKey] = e
	}
	return Record{entries: m}
}

func (r Record) without(key string) Record {
	if !r.Has(key) {
		return r
	}
	m := r.clone(0)
	delete(m, key)
	return Record{entries: m}
}
