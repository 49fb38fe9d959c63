package fileinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JoinPath joins a directory and a child name.
func JoinPath(base, name string) string {
	return filepath.Join(base, name)
}

// ParentPath returns the parent directory of p.
// At the filesystem root there is no parent: p is returned with ok=false.
func ParentPath(p string) (parent string, ok bool) {
	clean := filepath.Clean(p)
	parent = filepath.Dir(clean)
	if parent == clean {
		return clean, false
	}
	return parent, true
}

// BaseName returns the last path segment analogous to filepath.Base.
func BaseName(p string) string {
	return filepath.Base(p)
}

// ExpandPath turns user input from the path entry into an absolute path.
// Leading "~" expands to the home directory.
func ExpandPath(input string) (string, error) {
	p := strings.TrimSpace(input)
	if p == "" {
		return "", fmt.Errorf("empty path")
	}

	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		p = filepath.Join(home, p[1:])
	}

	if !filepath.IsAbs(p) {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("converting to absolute path: %w", err)
		}
		p = abs
	}
	return filepath.Clean(p), nil
}
