// Package lint performs semantic checks that go beyond the structural
// schema. The schema can only assert that a jsonPath matcher field is a
// string; this package compiles the expressions to catch ones the
// matching engine would reject at runtime.
package lint

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/oliveagle/jsonpath"

	"github.com/mocklab/configlint/internal/document"
	"github.com/mocklab/configlint/internal/validator"
)

// CheckExpressions compiles every jsonPath expression found in the
// document and reports the ones that do not parse. Results are sorted
// by field path for deterministic output.
func CheckExpressions(doc document.Document) ([]validator.Violation, error) {
	if doc.Empty {
		return nil, nil
	}

	var value interface{}
	if err := json.Unmarshal(doc.JSON, &value); err != nil {
		return nil, fmt.Errorf("document %d: %w", doc.Index, err)
	}

	var violations []validator.Violation
	walk(value, "", &violations)
	sort.Slice(violations, func(i, j int) bool {
		return violations[i].Field < violations[j].Field
	})
	return violations, nil
}

func walk(v interface{}, path string, out *[]validator.Violation) {
	switch val := v.(type) {
	case map[string]interface{}:
		for key, child := range val {
			childPath := joinPath(path, key)
			if key == "jsonPath" {
				if expr, ok := child.(string); ok {
					checkExpression(expr, childPath, out)
					continue
				}
			}
			walk(child, childPath, out)
		}
	case []interface{}:
		for i, child := range val {
			walk(child, joinPath(path, fmt.Sprintf("%d", i)), out)
		}
	}
}

func checkExpression(expr, path string, out *[]validator.Violation) {
	if _, err := jsonpath.Compile(expr); err != nil {
		*out = append(*out, validator.Violation{
			Field:   path,
			Message: fmt.Sprintf("invalid JSONPath expression %q: %v", expr, err),
		})
	}
}

func joinPath(base, elem string) string {
	if base == "" {
		return elem
	}
	return base + "." + elem
}
