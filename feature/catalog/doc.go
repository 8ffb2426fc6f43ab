// Package catalog serves and loads the read-only item catalog.
//
// # Sources
//
// A Source loads catalog sections by type. Two implementations exist:
//
//   - Service reads `catalog/<type>.json` objects from MinIO and keeps each
//     section in memory for a configurable TTL. Concurrent misses for the
//     same section share a single storage read.
//   - Fetcher calls `GET /items?types=...` on a running server.
//
// # HTTP
//
// The Feature mounts:
//
//	GET /items?types=uniques&types=sets   -> {"items": {"uniques": {...}, "sets": {...}}}
//	GET /items/check                      -> {"missing": ["catalog/runes.json"]}
//
// Omitting types returns every section.
package catalog
