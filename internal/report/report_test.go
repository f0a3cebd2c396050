package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/mocklab/configlint/internal/schemastore"
	"github.com/mocklab/configlint/internal/testutil/golden"
)

func compileSchema(t *testing.T) *gojsonschema.Schema {
	t.Helper()
	store, err := schemastore.LoadEmbedded(schemastore.VersionCurrent)
	require.NoError(t, err)
	schema, err := store.Compile()
	require.NoError(t, err)
	return schema
}

const validConfig = `plugin: rest
resources:
  - method: GET
    path: /users
    response:
      statusCode: 200
      content: '[]'
`

const invalidConfig = `plugin: rest
resources:
  - method: GET
    path: /users
`

func TestRunAllValid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "orders-config.yaml", validConfig)
	writeFile(t, dir, "api/users-config.yml", validConfig)

	var out bytes.Buffer
	runner := &Runner{Schema: compileSchema(t), Out: &out}

	summary, err := runner.Run(dir)
	require.NoError(t, err)
	assert.Equal(t, Summary{Valid: 2, Total: 2}, summary)

	golden.Assert(t, "run_all_valid", out.String())
}

func TestRunMixedResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good-config.yaml", validConfig)
	writeFile(t, dir, "bad-config.yaml", invalidConfig)
	writeFile(t, dir, "broken-config.yaml", "plugin: [rest\n")

	var out bytes.Buffer
	runner := &Runner{Schema: compileSchema(t), Out: &out}

	summary, err := runner.Run(dir)
	require.NoError(t, err)
	assert.Equal(t, Summary{Valid: 1, Total: 3}, summary)

	assert.Contains(t, out.String(), "✓ good-config.yaml - valid")
	assert.Contains(t, out.String(), "✗ bad-config.yaml - invalid:")
	assert.Contains(t, out.String(), "response is required")
	assert.Contains(t, out.String(), "✗ broken-config.yaml - error reading/parsing file:")
}

func TestRunMultiDocumentFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mixed-config.yaml", validConfig+"---\n"+invalidConfig)

	var out bytes.Buffer
	runner := &Runner{Schema: compileSchema(t), Out: &out}

	summary, err := runner.Run(dir)
	require.NoError(t, err)
	assert.Equal(t, Summary{Valid: 0, Total: 1}, summary)

	// The clean document is reported alongside the failing one.
	assert.Contains(t, out.String(), "document 1: ok")
	assert.Contains(t, out.String(), "document 2: resources.0: response is required")
}

func TestRunEmptyDocumentsAreValid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty-config.yaml", "\n# placeholder only\n")

	var out bytes.Buffer
	runner := &Runner{Schema: compileSchema(t), Out: &out}

	summary, err := runner.Run(dir)
	require.NoError(t, err)
	assert.Equal(t, Summary{Valid: 1, Total: 1}, summary)
	assert.Contains(t, out.String(), "✓ empty-config.yaml - valid")
}

func TestRunExpressionLint(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "paths-config.yaml", `plugin: rest
resources:
  - path: /orders
    requestBody:
      jsonPath: broken path
    response:
      statusCode: 200
`)

	var out bytes.Buffer
	runner := &Runner{Schema: compileSchema(t), Out: &out}
	summary, err := runner.Run(dir)
	require.NoError(t, err)
	assert.Equal(t, Summary{Valid: 1, Total: 1}, summary)

	out.Reset()
	runner = &Runner{Schema: compileSchema(t), Out: &out, CheckExpressions: true}
	summary, err = runner.Run(dir)
	require.NoError(t, err)
	assert.Equal(t, Summary{Valid: 0, Total: 1}, summary)
	assert.Contains(t, out.String(), "invalid JSONPath expression")
}

func TestRunNoConfigFiles(t *testing.T) {
	var out bytes.Buffer
	runner := &Runner{Schema: compileSchema(t), Out: &out}

	_, err := runner.Run(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no config files found")
}

func TestRunMissingDirectory(t *testing.T) {
	var out bytes.Buffer
	runner := &Runner{Schema: compileSchema(t), Out: &out}

	_, err := runner.Run(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func writeFile(t *testing.T, dir, path, content string) {
	t.Helper()
	fullPath := filepath.Join(dir, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o750))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o600))
}
