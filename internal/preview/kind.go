package preview

import (
	"path/filepath"
	"strings"
)

// Kind is the previewable category of a file
type Kind int

const (
	KindUnsupported Kind = iota
	KindImage
	KindText
	KindPDF
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindText:
		return "text"
	case KindPDF:
		return "pdf"
	default:
		return "unsupported"
	}
}

var imageExtensions = []string{
	"jpg", "jpeg", "png", "gif", "tiff", "tif", "bmp", "webp", "heic",
}

var textExtensions = []string{
	// documents
	"txt", "md", "markdown", "rst", "log", "csv", "tsv",
	// source code
	"go", "swift", "java", "kt", "py", "rb", "rs", "js", "mjs", "ts", "tsx", "jsx",
	"c", "h", "cc", "cpp", "hpp", "cs", "m", "php", "pl", "lua", "sql",
	"sh", "bash", "zsh", "fish", "ps1", "bat",
	// markup and config
	"html", "htm", "css", "scss", "json", "xml", "svg", "yaml", "yml", "toml",
	"ini", "cfg", "conf", "config", "properties", "env", "gitignore", "mod", "sum",
}

var kindByExtension = func() map[string]Kind {
	m := make(map[string]Kind, len(imageExtensions)+len(textExtensions)+1)
	for _, ext := range imageExtensions {
		m[ext] = KindImage
	}
	for _, ext := range textExtensions {
		m[ext] = KindText
	}
	m["pdf"] = KindPDF
	return m
}()

// Extension returns the lowercased extension of path without the dot.
func Extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Classify maps a path to its preview kind by extension alone.
func Classify(path string) Kind {
	ext := Extension(path)
	if ext == "" {
		return KindUnsupported
	}
	return kindByExtension[ext]
}
