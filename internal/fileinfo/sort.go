package fileinfo

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of a listing
type SortKey int

const (
	SortNameAsc SortKey = iota
	SortNameDesc
	SortDateNewestFirst
	SortDateOldestFirst
	SortSizeSmallestFirst
	SortSizeLargestFirst
)

var sortKeyNames = [...]string{
	SortNameAsc:           "nameAsc",
	SortNameDesc:          "nameDesc",
	SortDateNewestFirst:   "dateNewestFirst",
	SortDateOldestFirst:   "dateOldestFirst",
	SortSizeSmallestFirst: "sizeSmallestFirst",
	SortSizeLargestFirst:  "sizeLargestFirst",
}

var sortKeyLabels = [...]string{
	SortNameAsc:           "Name (A to Z)",
	SortNameDesc:          "Name (Z to A)",
	SortDateNewestFirst:   "Date (Newest First)",
	SortDateOldestFirst:   "Date (Oldest First)",
	SortSizeSmallestFirst: "Size (Smallest First)",
	SortSizeLargestFirst:  "Size (Largest First)",
}

// SortKeys returns every sort key in menu order.
func SortKeys() []SortKey {
	return []SortKey{
		SortNameAsc, SortNameDesc,
		SortDateNewestFirst, SortDateOldestFirst,
		SortSizeSmallestFirst, SortSizeLargestFirst,
	}
}

// Valid reports whether k is one of the defined keys.
func (k SortKey) Valid() bool {
	return k >= SortNameAsc && k <= SortSizeLargestFirst
}

// String returns the config name of the key.
func (k SortKey) String() string {
	if !k.Valid() {
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
	return sortKeyNames[k]
}

// Label returns the menu text of the key.
func (k SortKey) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return sortKeyLabels[k]
}

// ParseSortKey maps a config name (case-insensitive) to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys() {
		if strings.EqualFold(s, sortKeyNames[k]) {
			return k, nil
		}
	}
	return SortNameAsc, fmt.Errorf("unknown sort key %q", s)
}

// SortKeyFromLabel maps a menu label back to its key.
func SortKeyFromLabel(label string) (SortKey, bool) {
	for _, k := range SortKeys() {
		if sortKeyLabels[k] == label {
			return k, true
		}
	}
	return SortNameAsc, false
}

var systemLocale = sync.OnceValue(func() language.Tag {
	name, err := locale.GetLocale()
	if err != nil || name == "" {
		return language.Und
	}
	// POSIX forms such as en_US.UTF-8 or de_DE@euro
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
})

// SystemLocale returns the user's locale, or language.Und if it cannot be determined.
func SystemLocale() language.Tag {
	return systemLocale()
}

// Sorter orders entries by a SortKey.
// A Sorter holds a collator and is not safe for concurrent use.
type Sorter struct {
	key  SortKey
	coll *collate.Collator
}

// NewSorter creates a Sorter. An undetermined tag selects the system locale.
func NewSorter(key SortKey, tag language.Tag) *Sorter {
	if tag == language.Und {
		tag = SystemLocale()
	}
	return &Sorter{
		key:  key,
		coll: collate.New(tag, collate.IgnoreCase, collate.Numeric),
	}
}

// compareNames is locale-aware and case-insensitive, with byte order and
// then the id breaking ties so the order is total.
func (s *Sorter) compareNames(a, b DirectoryEntry) int {
	if c := s.coll.CompareString(a.Name, b.Name); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// Compare returns a negative number when a sorts before b.
func (s *Sorter) Compare(a, b DirectoryEntry) int {
	var c int
	switch s.key {
	case SortNameDesc:
		return -s.compareNames(a, b)
	case SortDateNewestFirst:
		c = b.ModifiedAt.Compare(a.ModifiedAt)
	case SortDateOldestFirst:
		c = a.ModifiedAt.Compare(b.ModifiedAt)
	case SortSizeSmallestFirst:
		c = cmp.Compare(a.SizeBytes, b.SizeBytes)
	case SortSizeLargestFirst:
		c = cmp.Compare(b.SizeBytes, a.SizeBytes)
	}
	if c != 0 {
		return c
	}
	return s.compareNames(a, b)
}

// Sort orders entries in place.
func (s *Sorter) Sort(entries []DirectoryEntry) {
	slices.SortFunc(entries, s.Compare)
}

// SortEntries orders entries in place using a fresh Sorter.
func SortEntries(entries []DirectoryEntry, key SortKey, tag language.Tag) {
	NewSorter(key, tag).Sort(entries)
}
