// Package stats derives completion views from the catalog and a progress record.
//
// BuildTableRows reports five fixed buckets: unique weapons, unique armor,
// unique other, set items and runes. The percentage is truncated, so 3 of 7
// reads 42. An empty bucket has no percentage at all.
//
// RemainingUniqueBases and RemainingSetBases group items by base type. A
// Filter marks groups outside the selected buckets as hidden rather than
// removing them.
package stats
