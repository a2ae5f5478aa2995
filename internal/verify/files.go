package verify

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats counts the files seen while expanding path patterns
type ScanStats struct {
	FilesDiscovered int // unique glob matches
	FilesScanned    int
	FilesSkipped    int // non-stylesheet, minified, node_modules or gitignored
}

// stylesheetExtensions are the syntaxes the scanner understands
var stylesheetExtensions = map[string]bool{
	".css":  true,
	".scss": true,
	".less": true,
}

// fileFilter decides which discovered files are checked
type fileFilter struct {
	gitignore *ignore.GitIgnore
}

// loadFileFilter compiles the .gitignore at path. A missing or unreadable
// file yields a filter without gitignore rules.
func loadFileFilter(path string) fileFilter {
	if path == "" {
		return fileFilter{}
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return fileFilter{}
	}
	return fileFilter{gitignore: gi}
}

// shouldSkip reports whether path is excluded from checking. Only
// stylesheet extensions pass, and gitignore rules apply to relative paths.
func (f fileFilter) shouldSkip(path string) bool {
	if !stylesheetExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}

	slashed := filepath.ToSlash(path)
	if strings.HasSuffix(slashed, ".min.css") || strings.Contains("/"+slashed, "/node_modules/") {
		return true
	}

	if !filepath.IsAbs(path) && f.gitignore != nil && f.gitignore.MatchesPath(path) {
		return true
	}

	return false
}

// expandGlobPatterns expands globs to stylesheet paths and tracks statistics
func expandGlobPatterns(patterns []string, filter fileFilter) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if filter.shouldSkip(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}
