package fileinfo

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Matcher tests entry names against a search query.
// Queries with glob metacharacters are doublestar patterns (e.g. *.go,
// *.{js,ts}); anything else is a substring search. Both ignore case.
// A Matcher is not safe for concurrent use.
type Matcher struct {
	query string
	glob  bool
	fold  cases.Caser
}

// NewMatcher prepares query for repeated matching.
func NewMatcher(query string) *Matcher {
	m := &Matcher{fold: cases.Fold()}
	m.query = m.normalize(strings.TrimSpace(query))
	m.glob = strings.ContainsAny(m.query, "*?[{") && doublestar.ValidatePattern(m.query)
	return m
}

func (m *Matcher) normalize(s string) string {
	return m.fold.String(norm.NFC.String(s))
}

// Match reports whether name satisfies the query. An empty query matches everything.
func (m *Matcher) Match(name string) bool {
	if m.query == "" {
		return true
	}
	n := m.normalize(name)
	if m.glob {
		ok, err := doublestar.Match(m.query, n)
		return err == nil && ok
	}
	return strings.Contains(n, m.query)
}

// FilterEntries keeps the entries whose names match query, preserving order.
func FilterEntries(entries []DirectoryEntry, query string) []DirectoryEntry {
	if strings.TrimSpace(query) == "" {
		return entries
	}
	m := NewMatcher(query)
	out := make([]DirectoryEntry, 0, len(entries))
	for _, e := range entries {
		if m.Match(e.Name) {
			out = append(out, e)
		}
	}
	return out
}
