package fileinfo

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"explorer/internal/constants"
)

// EpochSentinel is used as the modification time when none is available.
var EpochSentinel = time.Unix(0, 0).UTC()

// DirectoryEntry is one immediate child of a listed directory
type DirectoryEntry struct {
	ID         string // absolute path, unique within one listing
	Name       string
	IsDir      bool
	IsSymlink  bool
	ModifiedAt time.Time
	SizeBytes  int64 // 0 for directories
	IsHidden   bool
}

// Ext returns the lowercased extension without the leading dot.
func (e DirectoryEntry) Ext() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name), "."))
}

// FormatFileSize formats file size in human-readable format
func FormatFileSize(size int64) string {
	const unit = constants.FileSizeUnit
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), constants.FileSizeUnits[exp])
}

// FormatEntrySize returns the size column text; directories have no size.
func FormatEntrySize(e DirectoryEntry) string {
	if e.IsDir {
		return constants.EmptySizePlaceholder
	}
	return FormatFileSize(e.SizeBytes)
}

// Describe returns a short human-readable type for the preview header.
func Describe(e DirectoryEntry) string {
	if e.IsDir {
		return "Folder"
	}
	switch ext := e.Ext(); ext {
	case "jpg", "jpeg":
		return "JPEG Image"
	case "png":
		return "PNG Image"
	case "pdf":
		return "PDF Document"
	case "txt":
		return "Text File"
	case "":
		return "File"
	default:
		return strings.ToUpper(ext) + " File"
	}
}
