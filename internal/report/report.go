// Package report drives a validation run: it discovers configuration
// files, validates each one against the compiled schema, prints
// per-file results and accumulates the summary.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mocklab/configlint/internal/document"
	"github.com/mocklab/configlint/internal/lint"
	"github.com/mocklab/configlint/internal/scanner"
	"github.com/mocklab/configlint/internal/validator"
)

// Summary is the outcome of one validation run. Invalid files are a
// normal, reportable outcome, not a process error.
type Summary struct {
	Valid int
	Total int
}

// Runner wires file discovery, document loading and schema validation
// together for one directory scan. Files are processed sequentially in
// sorted path order; a failure in one file never stops the scan.
type Runner struct {
	Schema *gojsonschema.Schema
	Out    io.Writer

	// CheckExpressions enables the jsonPath expression lint on top of
	// the structural schema checks.
	CheckExpressions bool
}

// Run validates every configuration file under dir. It fails only when
// the directory is missing or contains no configuration files;
// per-file parse and validation failures are printed and counted.
func (r *Runner) Run(dir string) (Summary, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Summary{}, fmt.Errorf("config directory %s not found: %w", dir, err)
	}
	if !info.IsDir() {
		return Summary{}, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := scanner.New(dir).ConfigFiles()
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		return Summary{}, fmt.Errorf("no config files found in %s", dir)
	}

	fmt.Fprintf(r.Out, "Validating %d config files...\n", len(files))

	var summary Summary
	for _, rel := range files {
		summary.Total++
		if r.checkFile(dir, rel) {
			summary.Valid++
		}
	}
	return summary, nil
}

// checkFile validates one file and prints its result line. Returns
// whether the file is valid.
func (r *Runner) checkFile(dir, rel string) bool {
	docs, err := document.LoadFile(filepath.Join(dir, rel))
	if err != nil {
		fmt.Fprintf(r.Out, "✗ %s - error reading/parsing file:\n\t%v\n", rel, err)
		return false
	}

	results, err := validator.ValidateFile(r.Schema, docs)
	if err != nil {
		fmt.Fprintf(r.Out, "✗ %s - validation error:\n\t%v\n", rel, err)
		return false
	}

	if r.CheckExpressions {
		if err := r.lintExpressions(docs, results); err != nil {
			fmt.Fprintf(r.Out, "✗ %s - validation error:\n\t%v\n", rel, err)
			return false
		}
	}

	return r.printFile(rel, results)
}

// lintExpressions merges expression violations into the per-document
// results.
func (r *Runner) lintExpressions(docs []document.Document, results []validator.DocumentResult) error {
	byIndex := make(map[int]int, len(results))
	for i, res := range results {
		byIndex[res.Index] = i
	}
	for _, doc := range docs {
		violations, err := lint.CheckExpressions(doc)
		if err != nil {
			return err
		}
		if i, ok := byIndex[doc.Index]; ok {
			results[i].Violations = append(results[i].Violations, violations...)
		}
	}
	return nil
}

func (r *Runner) printFile(rel string, results []validator.DocumentResult) bool {
	valid := true
	for _, res := range results {
		if !res.Valid() {
			valid = false
		}
	}
	if valid {
		fmt.Fprintf(r.Out, "✓ %s - valid\n", rel)
		return true
	}

	fmt.Fprintf(r.Out, "✗ %s - invalid:\n", rel)
	if len(results) == 1 {
		for _, v := range results[0].Violations {
			fmt.Fprintf(r.Out, "\t- %s\n", v)
		}
		return false
	}

	// Multi-document file: report each document independently so a
	// clean document next to a failing one is still visible as clean.
	for _, res := range results {
		if res.Valid() {
			fmt.Fprintf(r.Out, "\tdocument %d: ok\n", res.Index)
			continue
		}
		for _, v := range res.Violations {
			fmt.Fprintf(r.Out, "\tdocument %d: %s\n", res.Index, v)
		}
	}
	return false
}
