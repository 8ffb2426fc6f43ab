// Package models defines the catalog data model: unique items, set items,
// runes, runewords and base items, each keyed by a stable Item Key.
//
// The catalog is read-only reference data. Every adapter and the aggregator
// classify items through BucketOf, which maps a category string such as
// "Elite Unique Axes" to one of the weapons, armor or other buckets.
package models
