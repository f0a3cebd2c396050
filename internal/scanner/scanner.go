// Package scanner discovers configuration files beneath a root
// directory.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// Scanner walks a directory tree and returns the files matching the
// configuration naming convention.
type Scanner struct {
	root string
}

// New creates a new Scanner for the given root directory.
func New(root string) *Scanner {
	return &Scanner{root: root}
}

// Files returns the paths of all files under the root matching the
// filter options, relative to the root and sorted for deterministic
// output.
func (s *Scanner) Files(opts FilterOptions) ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && shouldExcludeDir(d.Name(), opts.ExcludeDirs) {
				return filepath.SkipDir
			}
			return nil
		}
		if shouldIncludeSuffix(d.Name(), opts.IncludeSuffixes) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.root, err)
	}

	sort.Strings(files)
	return files, nil
}

// ConfigFiles returns all configuration files under the root, applying
// the default excludes.
func (s *Scanner) ConfigFiles() ([]string, error) {
	return s.Files(FilterOptions{
		ExcludeDirs:     DefaultExcludeDirs(),
		IncludeSuffixes: ConfigSuffixes(),
	})
}
