// Package schemas provides lenient JSON Schema validation for resume
// documents. Violations become display warnings on the dashboard; they never
// block or alter scoring.
package schemas

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/xeipuuv/gojsonschema"

	"github.com/tmorita/ats-analytics/internal/types"
)

//go:embed resume_document.schema.json
var resumeDocumentSchema []byte

// Validator checks resume documents against the embedded schema.
type Validator struct {
	schema *gojsonschema.Schema
}

// New compiles the embedded resume document schema.
func New() (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeDocumentSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile resume document schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Warnings returns a human-readable warning per schema violation, sorted for
// stable output. A nil document or a validation failure yields no warnings;
// malformed content is never treated as an error.
func (v *Validator) Warnings(doc types.ResumeDocument) []string {
	if v == nil || v.schema == nil || doc == nil {
		return nil
	}

	result, err := v.schema.Validate(gojsonschema.NewGoLoader(map[string]any(doc)))
	if err != nil {
		return nil
	}

	var warnings []string
	for _, desc := range result.Errors() {
		warnings = append(warnings, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	sort.Strings(warnings)
	return warnings
}
