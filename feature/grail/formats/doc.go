// Package formats converts grail progress to and from external documents.
//
// # Formats
//
// The set of formats is closed and resolved once with ParseFormat:
//
//   - backup: a JSON array of {itemKey, found, foundAt}. Lossless.
//   - tod2: {"grail": [[seq, "unique"|"set", itemId], ...]} using a bundled
//     reference table from ToD2 item ids to names.
//   - d2-holy-grail: a nested object of uniques by armor or weapon type and
//     tier, jewelry, charms, class items and rainbow facets, plus sets by set
//     name. Each leaf is {"wasFound": bool}.
//
// # Decoding
//
// Decoding never mutates progress. Every document is validated against an
// embedded JSON Schema first; failures are *MalformedError values carrying
// format specific guidance. Each resolved Item Key is then classified
// against the current record into Found and NotFound. References that do
// not resolve are logged and reported in Skipped without aborting the import.
//
// # Facets
//
// The catalog tracks each rainbow facet element twice, once per trigger
// ("Rainbow Facet (Cold Die)", "Rainbow Facet (Cold Level Up)"). ToD2 has a
// single id per element: encoding emits one triple if either variant is
// found, and decoding fans that triple out to both variants.
package formats
