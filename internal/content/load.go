package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://catalog.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the compiled catalog schema, compiling it on first use.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(CatalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Parse validates raw catalog JSON against the schema, decodes it, and runs
// structural checks. Content is static input, so any failure is an error
// rather than a fallback.
func Parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// LoadFile reads and parses an external catalog file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}
