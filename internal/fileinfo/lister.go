package fileinfo

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	apperrors "explorer/internal/errors"
)

// ListOptions controls filtering and ordering of a listing
type ListOptions struct {
	ShowHidden bool
	SortKey    SortKey
	// Locale drives name collation; language.Und means the system locale.
	Locale language.Tag
}

// Lister enumerates the immediate children of one directory.
// It keeps no state between calls; concurrent List calls are safe.
type Lister struct {
	fs         VFS
	debugPrint func(format string, args ...interface{})
}

// NewLister creates a Lister over fs. A nil fs means the local filesystem.
func NewLister(fs VFS, debugPrint func(format string, args ...interface{})) *Lister {
	if fs == nil {
		fs = LocalFS{}
	}
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	return &Lister{fs: fs, debugPrint: debugPrint}
}

// List reads path and returns its children filtered and sorted per opts.
// Only a failure to enumerate path itself is returned as an error; children
// whose metadata cannot be read are skipped.
func (l *Lister) List(path string, opts ListOptions) ([]DirectoryEntry, error) {
	dir := path
	if !filepath.IsAbs(dir) {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
	}

	key := opts.SortKey
	if !key.Valid() {
		l.debugPrint("List: invalid sort key %d, using %s", int(key), SortNameAsc)
		key = SortNameAsc
	}

	dirEntries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, apperrors.NewFileSystemError("list_directory", dir, "cannot read directory", err)
	}

	entries := make([]DirectoryEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry, ok := l.resolveEntry(dir, de)
		if !ok {
			continue
		}
		if entry.IsHidden && !opts.ShowHidden {
			continue
		}
		entries = append(entries, entry)
	}

	NewSorter(key, opts.Locale).Sort(entries)
	l.debugPrint("List: %s -> %d entries (of %d)", dir, len(entries), len(dirEntries))
	return entries, nil
}

// resolveEntry reads metadata for one child. Symlinks report their target's
// metadata when the target exists.
func (l *Lister) resolveEntry(dir string, de os.DirEntry) (DirectoryEntry, bool) {
	name := de.Name()
	fullPath := l.fs.Join(dir, name)

	info, err := de.Info()
	if err != nil {
		l.debugPrint("List: skipping %s: %v", fullPath, err)
		return DirectoryEntry{}, false
	}

	isSymlink := info.Mode()&os.ModeSymlink != 0
	if isSymlink {
		if target, err := l.fs.Stat(fullPath); err == nil {
			info = target
		}
	}

	size := info.Size()
	if info.IsDir() || size < 0 {
		size = 0
	}
	modified := info.ModTime()
	if modified.IsZero() {
		modified = EpochSentinel
	}

	return DirectoryEntry{
		ID:         fullPath,
		Name:       name,
		IsDir:      info.IsDir(),
		IsSymlink:  isSymlink,
		ModifiedAt: modified,
		SizeBytes:  size,
		IsHidden:   isHidden(fullPath, name, info),
	}, true
}

func isHidden(path, name string, info os.FileInfo) bool {
	return strings.HasPrefix(name, ".") || IsPlatformHidden(path, info)
}

// List lists path on the local filesystem.
func List(path string, opts ListOptions) ([]DirectoryEntry, error) {
	return NewLister(LocalFS{}, nil).List(path, opts)
}
