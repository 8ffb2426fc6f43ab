package formats

import (
	"encoding/json"
	"fmt"

	"grail-tracker/core/reconcile"
	"grail-tracker/core/utils"
	"grail-tracker/feature/catalog/models"
	"grail-tracker/feature/progress"

	"go.uber.org/zap"
)

// NumericDocument is the ToD2 export: one [seq, kind, itemId] triple per found item.
type NumericDocument struct {
	Grail [][3]any `json:"grail"`
}

// NumericAdapter reads and writes the ToD2 numeric id format. The format
// has one entry per facet element, so both trigger variants collapse on
// encode and fan out again on decode.
type NumericAdapter struct {
	ref    *Reference
	logger *zap.Logger
}

// NewNumericAdapter creates the adapter over a reference table.
func NewNumericAdapter(ref *Reference, logger *zap.Logger) *NumericAdapter {
	return &NumericAdapter{ref: ref, logger: logger}
}

func (a *NumericAdapter) Format() Format { return FormatToD2 }

// Encode emits a triple per found unique and set item in catalog order,
// numbering them from 1. Items absent from the reference table are logged
// and left out.
func (a *NumericAdapter) Encode(cat *models.Catalog, rec progress.Record) ([]byte, error) {
	doc := NumericDocument{Grail: [][3]any{}}
	emitted := make(map[string]struct{})
	seq := 0

	emit := func(kind, key string) {
		if !rec.Has(key) {
			return
		}
		name := externalName(key)
		if element, _, ok := parseFacet(key); ok {
			name = facetFamily(element)
		}
		dedupe := kind + ":" + name
		if _, done := emitted[dedupe]; done {
			return
		}
		id, ok := a.ref.ID(kind, name)
		if !ok {
			a.logger.Warn("No ToD2 id for found item", zap.String("item_key", key), zap.String("kind", kind))
			return
		}
		emitted[dedupe] = struct{}{}
		seq++
		doc.Grail = append(doc.Grail, [3]any{seq, kind, id})
	}

	for _, key := range cat.UniqueKeys() {
		emit(KindUnique, key)
	}
	for _, key := range cat.SetKeys() {
		emit(KindSet, key)
	}
	return json.Marshal(doc)
}

// Decode resolves every triple to catalog keys and classifies them against rec.
func (a *NumericAdapter) Decode(data []byte, cat *models.Catalog, rec progress.Record) (*Decoded, error) {
	raw, err := parseDocument(FormatToD2, data)
	if err != nil {
		return nil, err
	}
	obj, _ := raw.(map[string]any)
	triples, _ := obj["grail"].([]any)

	var candidates []reconcile.Candidate
	var skipped []reconcile.Skip
	for _, t := range triples {
		triple, _ := t.([]any)
		kind := utils.ToString(triple[1])
		id, ok := utils.AsInt(triple[2])
		if !ok {
			return nil, malformed(FormatToD2, fmt.Errorf("item id %v is not an integer", triple[2]))
		}

		keys, err := a.resolve(cat, kind, id)
		if err != nil {
			skipped = skip(a.logger, FormatToD2, skipped, err)
			continue
		}
		for _, key := range keys {
			candidates = append(candidates, reconcile.Candidate{ItemKey: key})
		}
	}
	return classify(candidates, rec, skipped), nil
}

// resolve maps a triple to catalog keys. A facet family expands to every
// variant of its element present in the catalog.
func (a *NumericAdapter) resolve(cat *models.Catalog, kind string, id int) ([]string, error) {
	ref := fmt.Sprintf("%s:%d", kind, id)
	name, ok := a.ref.Name(kind, id)
	if !ok {
		return nil, unresolved(ref, "unknown %s id", kind)
	}

	key := internalName(name)
	if cat.Has(key) {
		return []string{key}, nil
	}
	if variants := facetVariants(cat, key); len(variants) > 0 {
		return variants, nil
	}
	return nil, unresolved(ref, "%q is not in the catalog", name)
}
