// Package schemastore loads JSON schema documents and resolves the
// relative references between them.
//
// Schema authors write portable relative filenames in $ref fields
// (e.g. "shared-definitions.json#/definitions/matcherMap"). The store
// keeps every loaded document keyed by that relative reference string,
// and the resolver adapts the store to the addressing scheme the
// validation engine expects.
package schemastore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xeipuuv/gojsonschema"
	"sigs.k8s.io/yaml"
)

// Store is an immutable registry of parsed schema documents. It is
// populated once at startup and only read afterwards, so it is safe to
// share between concurrent validations.
type Store struct {
	baseKey string
	docs    map[string]interface{}
}

// Load reads the base schema and zero or more auxiliary schema
// documents from disk. Each document is keyed by its base filename,
// which must match the reference string used in $ref fields exactly.
// Schema files may be written in JSON or YAML.
func Load(basePath string, auxPaths ...string) (*Store, error) {
	s := &Store{
		baseKey: filepath.Base(basePath),
		docs:    make(map[string]interface{}),
	}

	if err := s.add(s.baseKey, basePath); err != nil {
		return nil, err
	}
	for _, path := range auxPaths {
		if err := s.add(filepath.Base(path), path); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) add(key, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return s.addBytes(key, data)
}

func (s *Store) addBytes(key string, data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse schema document %s: %w", key, err)
	}
	s.docs[key] = normalize(doc)
	return nil
}

// BaseKey returns the reference string of the base schema document.
func (s *Store) BaseKey() string {
	return s.baseKey
}

// Keys returns the reference strings of all loaded documents, sorted.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns a copy of the schema document registered under the
// given reference string. The engine rewrites $ref fields in documents
// it is handed, so callers never receive the stored original.
func (s *Store) Lookup(key string) (interface{}, bool) {
	doc, ok := s.docs[key]
	if !ok {
		return nil, false
	}
	return normalize(doc), true
}

// Compile builds the executable schema from the base document, with
// external references resolved against this store. An external
// reference that does not match a store key fails compilation with a
// "not found" diagnostic.
func (s *Store) Compile() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(newStoreLoader(s, s.baseKey))
}

// Dump renders the document registered under key as indented JSON.
func (s *Store) Dump(key string) ([]byte, error) {
	doc, ok := s.docs[key]
	if !ok {
		return nil, fmt.Errorf("schema document %q not found in store", key)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// normalize round-trips a value through encoding/json so numbers become
// json.Number and maps become map[string]interface{}, matching what the
// validation engine produces from its own loaders. It also serves as a
// deep copy.
func normalize(v interface{}) interface{} {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out interface{}
	if err := dec.Decode(&out); err != nil {
		return v
	}
	return out
}
