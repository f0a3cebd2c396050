package scanner

import "strings"

// FilterOptions defines criteria for including or excluding files.
type FilterOptions struct {
	// ExcludeDirs is a list of directory names to exclude. Matching is
	// by directory name: "vendor" excludes "vendor/foo" and
	// "pkg/vendor/bar", but not "vendor_stuff/foo".
	ExcludeDirs []string

	// IncludeSuffixes is a list of filename suffixes to include
	// (e.g. "-config.yaml"). If empty, all files are included.
	IncludeSuffixes []string
}

// ConfigSuffixes returns the filename suffixes that mark a file as a
// mock configuration file, distinguishing it from unrelated files in
// the same tree.
func ConfigSuffixes() []string {
	return []string{
		"-config.yaml",
		"-config.yml",
		"-config.json",
	}
}

// DefaultExcludeDirs returns the standard list of directories to skip
// while scanning.
func DefaultExcludeDirs() []string {
	return []string{
		".git",
		"node_modules",
		"vendor",
		"dist",
		"build",
		"out",
		"target",
		".idea",
	}
}

func shouldExcludeDir(name string, excludes []string) bool {
	for _, exclude := range excludes {
		if name == exclude {
			return true
		}
	}
	return false
}

// shouldIncludeSuffix returns true if suffixes is empty OR the filename
// matches one suffix.
func shouldIncludeSuffix(name string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
