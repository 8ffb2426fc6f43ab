package formats

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var guidance = map[Format]string{
	FormatBackup: `Expected a JSON array of {"itemKey", "found", "foundAt"} records as written by the backup export.`,
	FormatToD2:   `Expected a ToD2 export of the form {"grail": [[id, "unique" | "set", itemId], ...]}.`,
	FormatNested: `Expected a D2-Holy-Grail export with top level "uniques" and "sets" objects.`,
}

var loadSchemas = sync.OnceValues(func() (map[Format]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	schemas := make(map[Format]*jsonschema.Schema, len(Formats))
	for _, f := range Formats {
		data, err := schemaFS.ReadFile("schemas/" + string(f) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read %s schema: %w", f, err)
		}
		url := "https://grail-tracker/schemas/" + string(f) + ".json"
		if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add %s schema: %w", f, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", f, err)
		}
		schemas[f] = schema
	}
	return schemas, nil
})

func malformed(f Format, err error) error {
	return &MalformedError{Format: f, Guidance: guidance[f], Err: err}
}

// parseDocument decodes data and validates it against the schema of f. The
// generic value is returned for adapters that walk it directly.
func parseDocument(f Format, data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, malformed(f, err)
	}

	schemas, err := loadSchemas()
	if err != nil {
		return nil, err
	}
	if err := schemas[f].Validate(doc); err != nil {
		return nil, malformed(f, err)
	}
	return doc, nil
}
