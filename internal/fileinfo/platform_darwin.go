//go:build darwin

package fileinfo

import (
	"os"
	"syscall"
)

// UF_HIDDEN from sys/stat.h
const ufHidden = 0x00008000

// IsPlatformHidden checks the BSD UF_HIDDEN flag that Finder honours.
func IsPlatformHidden(path string, info os.FileInfo) bool {
	if info == nil {
		return false
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return false
	}
	return st.Flags&ufHidden != 0
}
