package inspect

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// Validator checks POST bodies against a JSON Schema. It is purely
// diagnostic: the verdict ends up in the dump, never in the response.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles the schema at the given path.
func NewValidator(path string) (*Validator, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve schema path: %w", err)
	}

	loader := gojsonschema.NewReferenceLoader("file://" + abs)

	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", path, err)
	}

	return &Validator{schema: schema}, nil
}

// Validate applies the schema to the body and returns a report for
// the dump.
func (v *Validator) Validate(body []byte) *SchemaReport {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &SchemaReport{Err: err}
	}

	if result.Valid() {
		return &SchemaReport{Valid: true}
	}

	report := &SchemaReport{}
	for _, desc := range result.Errors() {
		report.Problems = append(report.Problems, desc.String())
	}

	return report
}
