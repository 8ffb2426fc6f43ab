package stats

import (
	"fmt"
	"sort"
	"strings"

	"grail-tracker/feature/catalog/models"
	"grail-tracker/feature/progress"
)

// Filter is the set of top-level buckets being shown. An empty filter shows everything.
type Filter map[models.Bucket]struct{}

// NewFilter builds a filter from buckets.
func NewFilter(buckets ...models.Bucket) Filter {
	f := make(Filter, len(buckets))
	for _, b := range buckets {
		f[b] = struct{}{}
	}
	return f
}

// ParseFilter reads a comma separated bucket list such as "weapons,armor".
func ParseFilter(s string) (Filter, error) {
	f := Filter{}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		b, err := models.ParseBucket(part)
		if err != nil {
			return nil, fmt.Errorf("invalid filter: %w", err)
		}
		f[b] = struct{}{}
	}
	return f, nil
}

// Hides reports whether items of bucket b are filtered out.
func (f Filter) Hides(b models.Bucket) bool {
	if len(f) == 0 {
		return false
	}
	_, shown := f[b]
	return !shown
}

// BaseGroup is every item of one kind built on a base, split by found state.
// Hide is set instead of dropping the group so counts stay stable when the
// filter changes.
type BaseGroup struct {
	Base          string        `json:"base"`
	Bucket        models.Bucket `json:"bucket"`
	FoundItems    []string      `json:"foundItems"`
	NotFoundItems []string      `json:"notFoundItems"`
	Hide          bool          `json:"hide"`
}

type groupItem struct {
	key      string
	base     string
	category string
}

func groupByBase(items []groupItem, rec progress.Record, filter Filter) []BaseGroup {
	sort.Slice(items, func(i, j int) bool { return items[i].key < items[j].key })

	index := make(map[string]int)
	var groups []BaseGroup
	for _, it := range items {
		i, ok := index[it.base]
		if !ok {
			bucket := models.BucketOf(it.category)
			groups = append(groups, BaseGroup{
				Base:          it.base,
				Bucket:        bucket,
				FoundItems:    []string{},
				NotFoundItems: []string{},
				Hide:          filter.Hides(bucket),
			})
			i = len(groups) - 1
			index[it.base] = i
		}
		if rec.Has(it.key) {
			groups[i].FoundItems = append(groups[i].FoundItems, it.key)
		} else {
			groups[i].NotFoundItems = append(groups[i].NotFoundItems, it.key)
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Base < groups[j].Base })
	return groups
}

// RemainingUniqueBases groups unique items by base type.
func RemainingUniqueBases(cat *models.Catalog, rec progress.Record, filter Filter) []BaseGroup {
	items := make([]groupItem, 0, len(cat.Uniques))
	for key, u := range cat.Uniques {
		items = append(items, groupItem{key: key, base: u.Type, category: u.Category})
	}
	return groupByBase(items, rec, filter)
}

// RemainingSetBases groups set items by base type.
func RemainingSetBases(cat *models.Catalog, rec progress.Record, filter Filter) []BaseGroup {
	items := make([]groupItem, 0, len(cat.Sets))
	for key, s := range cat.Sets {
		items = append(items, groupItem{key: key, base: s.Type, category: s.Category})
	}
	return groupByBase(items, rec, filter)
}

// Remaining keeps the groups with at least one item not yet found.
func Remaining(groups []BaseGroup) []BaseGroup {
	out := make([]BaseGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.NotFoundItems) > 0 {
			out = append(out, g)
		}
	}
	return out
}
