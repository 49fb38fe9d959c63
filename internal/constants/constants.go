package constants

import "time"

// Application constants
const (
	ApplicationName  = "explorer"
	ApplicationTitle = "Explorer"
)

// UI constants
const (
	// Window dimensions
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 650

	// Split between file list and preview pane
	DefaultPreviewSplitOffset = 0.6

	// Image preview area
	PreviewImageMinWidth  = 200
	PreviewImageMinHeight = 200
)

// Directory watcher constants
const (
	WatcherDebounce = 250 * time.Millisecond
)

// Preview constants
const (
	// DefaultTextPreviewLimit is the number of characters (runes) shown
	// before a text preview is marked truncated.
	DefaultTextPreviewLimit = 20000

	// DefaultThumbnailSize bounds the longer edge of image thumbnails in pixels.
	DefaultThumbnailSize = 512
)

// File size constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// Theme constants
const (
	DefaultFontSize  = 14
	DarkThemeDefault = true
)

// Job manager constants
const (
	JobHistoryMax = 100
)

// Configuration constants
const (
	ConfigFileName          = "config.json"
	DefaultSortKey          = "nameAsc"
	DefaultShowHiddenFiles  = false
	DefaultHistoryMax       = 50
	TimestampDisplayLayout  = "2006-01-02 15:04"
	EmptySizePlaceholder    = "--"
	NoSelectionPreviewLabel = "Select a file to preview"
)
