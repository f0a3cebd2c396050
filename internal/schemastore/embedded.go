package schemastore

import (
	"embed"
	"fmt"
)

//go:embed assets/*.json
var assetsFS embed.FS

// Version selects one of the schema variants bundled with the binary.
// The current and legacy formats are independent, versioned assets;
// there is no migration mapping between them.
type Version string

const (
	VersionCurrent Version = "current"
	VersionLegacy  Version = "legacy"
)

const sharedDefinitionsKey = "shared-definitions.json"

var embeddedBaseKeys = map[Version]string{
	VersionCurrent: "mock-config-schema.json",
	VersionLegacy:  "mock-config-schema-legacy.json",
}

// ParseVersion validates a version name given on the command line.
func ParseVersion(name string) (Version, error) {
	switch Version(name) {
	case VersionCurrent, VersionLegacy:
		return Version(name), nil
	default:
		return "", fmt.Errorf("unknown schema version %q (expected %q or %q)", name, VersionCurrent, VersionLegacy)
	}
}

// LoadEmbedded builds a store from the schema assets compiled into the
// binary. The current schema references the shared definitions
// document, so both are registered; the legacy schema stands alone.
func LoadEmbedded(v Version) (*Store, error) {
	baseKey, ok := embeddedBaseKeys[v]
	if !ok {
		return nil, fmt.Errorf("unknown schema version %q", v)
	}

	s := &Store{
		baseKey: baseKey,
		docs:    make(map[string]interface{}),
	}

	keys := []string{baseKey}
	if v == VersionCurrent {
		keys = append(keys, sharedDefinitionsKey)
	}
	for _, key := range keys {
		data, err := assetsFS.ReadFile("assets/" + key)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded schema %s: %w", key, err)
		}
		if err := s.addBytes(key, data); err != nil {
			return nil, err
		}
	}
	return s, nil
}
