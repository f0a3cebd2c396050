// Package validator applies a compiled schema to parsed configuration
// documents and collects structural violations.
package validator

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mocklab/configlint/internal/document"
)

// Violation is a single structural mismatch between a document and the
// schema. Field locates the offending node from the document root.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	if v.Field == "" || v.Field == "(root)" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// DocumentResult ties violations to the 1-based index of the document
// that produced them.
type DocumentResult struct {
	Index      int
	Violations []Violation
}

// Valid reports whether the document produced no violations.
func (r DocumentResult) Valid() bool {
	return len(r.Violations) == 0
}

// ValidateDocument applies the schema to one document and returns every
// violation found; it does not stop at the first. Empty documents are
// trivially valid. The error return covers engine failures, not
// document invalidity.
func ValidateDocument(schema *gojsonschema.Schema, doc document.Document) ([]Violation, error) {
	if doc.Empty {
		return nil, nil
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc.JSON))
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var violations []Violation
	for _, re := range result.Errors() {
		violations = append(violations, Violation{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return violations, nil
}

// ValidateFile validates every document in a file independently: a
// failure in one document never prevents validation of the next. Empty
// documents are skipped; the remaining results keep their original
// document indices.
func ValidateFile(schema *gojsonschema.Schema, docs []document.Document) ([]DocumentResult, error) {
	var results []DocumentResult
	for _, doc := range docs {
		if doc.Empty {
			continue
		}
		violations, err := ValidateDocument(schema, doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc.Index, err)
		}
		results = append(results, DocumentResult{Index: doc.Index, Violations: violations})
	}
	return results, nil
}
