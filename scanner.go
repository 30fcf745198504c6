package selgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks recipe file discovery statistics
type ScanStats struct {
	FilesDiscovered int // total files matched by glob patterns
	FilesScanned    int // files kept after filtering
	FilesSkipped    int // files dropped by filtering
}

// gitignore caching
var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// no .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isToolConfig reports whether path is a selgen config file rather than a
// recipe file. Broad include patterns like "**/*.yaml" would otherwise pick
// up .selgen.yaml itself.
func isToolConfig(path string) bool {
	base := filepath.Base(path)
	return base == ".selgen.yaml" || strings.HasSuffix(base, ".selgen.yaml")
}

// shouldSkipFile determines if a discovered file should be excluded.
//
// Two-layer filtering:
//  1. Name check (fast): skip selgen config files
//  2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isToolConfig(path) {
		return true
	}

	// Only apply gitignore to relative paths (paths within the project).
	// Absolute paths (like /tmp/...) should not be affected by project gitignore.
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ExpandRecipeGlobs expands the include patterns under sourceDir to actual
// recipe file paths, deduplicated, with discovery statistics.
func ExpandRecipeGlobs(sourceDir string, includes []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range includes {
		fullPattern := pattern
		if sourceDir != "" {
			fullPattern = filepath.Join(sourceDir, pattern)
		}

		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
