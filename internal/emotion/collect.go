package emotion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// CollectSources expands configured comment sources into CSV file paths.
// A source naming a file contributes that file directly; a source naming a
// directory is walked and matched against its include patterns. Matches
// within a directory are sorted, sources keep their configured order, and
// duplicates are dropped, so collection is deterministic.
func CollectSources(sources []SourceConfig) ([]string, error) {
	files := make([]string, 0, len(sources))
	seen := make(map[string]bool)

	for _, source := range sources {
		info, err := os.Stat(source.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("comment source %s: %w", source.Path, ErrNotFound)
			}
			return nil, fmt.Errorf("stat comment source %s: %w", source.Path, err)
		}

		if !info.IsDir() {
			addFile(&files, seen, source.Path)
			continue
		}

		matches, err := collectDir(source)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			addFile(&files, seen, match)
		}
	}
	return files, nil
}

func collectDir(source SourceConfig) ([]string, error) {
	patterns := validPatterns(source.Include)
	if len(patterns) == 0 {
		return nil, nil
	}

	matches := make([]string, 0)
	err := filepath.Walk(source.Path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(source.Path, path)
		if err != nil {
			return nil
		}
		if matchesAny(patterns, filepath.ToSlash(rel)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk comment source %s: %w", source.Path, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// validPatterns returns patterns that are syntactically valid.
func validPatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if doublestar.ValidatePattern(pattern) {
			valid = append(valid, pattern)
		}
	}
	return valid
}

// matchesAny returns true if rel matches any of the patterns.
func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func addFile(files *[]string, seen map[string]bool, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if !seen[abs] {
		seen[abs] = true
		*files = append(*files, path)
	}
}

// UserFilter drops comments whose username matches any configured glob
// pattern. The zero value keeps everything.
type UserFilter struct {
	globs []glob.Glob
}

// NewUserFilter compiles exclusion patterns into a filter.
func NewUserFilter(patterns []string) (*UserFilter, error) {
	filter := &UserFilter{}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("exclude_users pattern %q: %w", pattern, err)
		}
		filter.globs = append(filter.globs, g)
	}
	return filter, nil
}

// Excluded returns true if the username matches an exclusion pattern.
func (f *UserFilter) Excluded(username string) bool {
	for _, g := range f.globs {
		if g.Match(username) {
			return true
		}
	}
	return false
}

// Apply returns the comments not excluded by the filter, preserving order.
func (f *UserFilter) Apply(comments []Comment) []Comment {
	if len(f.globs) == 0 {
		return comments
	}
	kept := make([]Comment, 0, len(comments))
	for _, comment := range comments {
		if f.Excluded(comment.Username) {
			continue
		}
		kept = append(kept, comment)
	}
	return kept
}
