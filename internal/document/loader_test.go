package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleDocument(t *testing.T) {
	docs, err := Parse("test-config.yaml", []byte("plugin: rest\nbasePath: /api\n"))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, 1, docs[0].Index)
	assert.False(t, docs[0].Empty)
	assert.JSONEq(t, `{"plugin": "rest", "basePath": "/api"}`, string(docs[0].JSON))
}

func TestParseMultipleDocuments(t *testing.T) {
	content := `plugin: rest
---
plugin: soap
wsdlFile: service.wsdl
`
	docs, err := Parse("test-config.yaml", []byte(content))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, 1, docs[0].Index)
	assert.Equal(t, 2, docs[1].Index)
	assert.JSONEq(t, `{"plugin": "rest"}`, string(docs[0].JSON))
	assert.JSONEq(t, `{"plugin": "soap", "wsdlFile": "service.wsdl"}`, string(docs[1].JSON))
}

func TestParseNullDocumentKeepsPosition(t *testing.T) {
	content := `plugin: rest
---
null
---
plugin: soap
`
	docs, err := Parse("test-config.yaml", []byte(content))
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.False(t, docs[0].Empty)
	assert.True(t, docs[1].Empty)
	assert.Nil(t, docs[1].JSON)
	assert.False(t, docs[2].Empty)
	assert.Equal(t, 3, docs[2].Index)
}

func TestParseTrailingSeparator(t *testing.T) {
	docs, err := Parse("test-config.yaml", []byte("plugin: rest\n---\n"))
	require.NoError(t, err)
	require.NotEmpty(t, docs)

	assert.False(t, docs[0].Empty)
	for _, doc := range docs[1:] {
		assert.True(t, doc.Empty)
	}
}

func TestParseWhitespaceOnlyFile(t *testing.T) {
	docs, err := Parse("test-config.yaml", []byte("\n\n# nothing here\n"))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestParseMalformedFile(t *testing.T) {
	_, err := Parse("bad-config.yaml", []byte("plugin: [rest, soap\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "bad-config.yaml", perr.Path)
	assert.Contains(t, err.Error(), "bad-config.yaml")
}

func TestParseJSONContent(t *testing.T) {
	docs, err := Parse("test-config.json", []byte(`{"plugin": "rest", "resources": []}`))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.JSONEq(t, `{"plugin": "rest", "resources": []}`, string(docs[0].JSON))
}

func TestParseSubstitutesEnv(t *testing.T) {
	t.Setenv("MOCK_BASE_PATH", "/v2")

	docs, err := Parse("test-config.yaml", []byte("basePath: ${env.MOCK_BASE_PATH}\nplugin: ${env.MOCK_PLUGIN:-rest}\n"))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.JSONEq(t, `{"basePath": "/v2", "plugin": "rest"}`, string(docs[0].JSON))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plugin: rest\n"), 0o600))

	docs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent-config.yaml"))
	require.Error(t, err)
}
