package document

import (
	"os"
	"regexp"
)

var envPattern = regexp.MustCompile(`\$\{env\.([A-Z0-9_]+)(:-([^}]+))?\}`)

// SubstituteEnv replaces ${env.VAR} and ${env.VAR:-default} placeholders
// with values from the process environment. A placeholder without a
// default whose variable is unset is replaced with the empty string.
func SubstituteEnv(content string) string {
	return envPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		name := groups[1]
		fallback := groups[3]
		if value, exists := os.LookupEnv(name); exists {
			return value
		}
		return fallback
	})
}
