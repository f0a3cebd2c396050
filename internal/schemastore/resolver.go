package schemastore

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonreference"
	"github.com/xeipuuv/gojsonschema"
)

// storeLoader adapts the store to gojsonschema's JSONLoader interface.
//
// The engine requires canonical (fully qualified) references before it
// will fetch a document, while schema authors write bare relative
// filenames. Addressing store entries under file:/// bridges the two:
// relative $ref targets inherit the base document's synthetic URI and
// arrive back at the factory as file:///<key>, where the loader strips
// the leading separator and looks the key up in the store.
type storeLoader struct {
	store  *Store
	source string
}

func newStoreLoader(store *Store, key string) *storeLoader {
	return &storeLoader{
		store:  store,
		source: "file:///" + strings.TrimPrefix(key, "/"),
	}
}

func (l *storeLoader) JsonSource() interface{} {
	return l.source
}

func (l *storeLoader) JsonReference() (gojsonreference.JsonReference, error) {
	return gojsonreference.NewJsonReference(l.source)
}

func (l *storeLoader) LoaderFactory() gojsonschema.JSONLoaderFactory {
	return &storeLoaderFactory{store: l.store}
}

func (l *storeLoader) LoadJSON() (interface{}, error) {
	ref, err := gojsonreference.NewJsonReference(l.source)
	if err != nil {
		return nil, err
	}

	u := ref.GetUrl()
	switch u.Scheme {
	case "", "file":
		// Bare relative paths and store-addressed references.
	default:
		return nil, fmt.Errorf("remote schema reference %q is not supported", l.source)
	}

	key := strings.TrimPrefix(u.Path, "/")
	doc, ok := l.store.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("schema reference %q not found in store", key)
	}
	return doc, nil
}

// storeLoaderFactory creates loaders for references the engine
// encounters while compiling the base schema.
type storeLoaderFactory struct {
	store *Store
}

func (f *storeLoaderFactory) New(source string) gojsonschema.JSONLoader {
	return &storeLoader{store: f.store, source: source}
}
