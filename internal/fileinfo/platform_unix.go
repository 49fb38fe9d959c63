//go:build !windows && !darwin

package fileinfo

import "os"

// IsPlatformHidden reports OS-level hidden flags beyond the dotfile rule.
// Other Unix systems only use the dotfile convention.
func IsPlatformHidden(path string, info os.FileInfo) bool {
	return false
}
