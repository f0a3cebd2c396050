// Package document parses configuration files into a stream of
// JSON-compatible documents ready for schema validation.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

// Document is one parsed unit of a configuration file. Index is the
// 1-based position of the document within the file. Empty documents
// (whitespace-only segments, e.g. after a trailing separator) keep
// their position but carry no content and are skipped by validation.
type Document struct {
	Index int
	Empty bool
	JSON  []byte
}

// ParseError reports a configuration file whose content is not
// well-formed YAML. It carries the file path and the underlying
// syntax error.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadFile reads and parses a configuration file. A file with no
// document markers yields exactly one document; a whitespace-only file
// yields none.
func LoadFile(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse splits data into YAML documents and bridges each non-empty one
// to JSON. Environment variable placeholders are substituted before
// parsing.
func Parse(path string, data []byte) ([]Document, error) {
	data = []byte(SubstituteEnv(string(data)))

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []Document
	for index := 1; ; index++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}

		if isEmptyNode(&node) {
			docs = append(docs, Document{Index: index, Empty: true})
			continue
		}

		raw, err := yaml.Marshal(&node)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		j, err := sigsyaml.YAMLToJSON(raw)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		docs = append(docs, Document{Index: index, JSON: j})
	}
	return docs, nil
}

// isEmptyNode reports whether a decoded document carries no content.
func isEmptyNode(n *yaml.Node) bool {
	if n.Kind == 0 {
		return true
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return true
		}
		n = n.Content[0]
	}
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
