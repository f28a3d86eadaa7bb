package ignores

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Matcher tests repository-relative paths against an ordered list of glob
// patterns. Matching is case-sensitive and uses '/' as the separator
// independent of the host OS.
type Matcher struct {
	patterns []string
}

func NewMatcher(patterns []string) (*Matcher, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid ignore glob: %v", pattern)
		}
	}

	return &Matcher{patterns: patterns}, nil
}

func (m *Matcher) Patterns() []string {
	return m.patterns
}

// Ignored returns true iff at least one pattern matches the path.
func (m *Matcher) Ignored(path string) bool {
	return lo.SomeBy(m.patterns, func(pattern string) bool {
		matched, err := doublestar.Match(pattern, path)
		return err == nil && matched
	})
}

// AllIgnored returns true iff every path is ignored. An empty changeset is
// vacuously all-ignored: think `git commit --allow-empty -m "Trigger CI"`.
func (m *Matcher) AllIgnored(paths []string) bool {
	_, found := m.FirstNotIgnored(paths)
	return !found
}

// FirstNotIgnored returns the first path not covered by any pattern, if one
// exists.
func (m *Matcher) FirstNotIgnored(paths []string) (string, bool) {
	for _, path := range paths {
		if !m.Ignored(path) {
			return path, true
		}
	}
	return "", false
}
