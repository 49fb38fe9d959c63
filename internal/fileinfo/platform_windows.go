//go:build windows

package fileinfo

import (
	"os"
	"syscall"
)

// Windows file attributes constants
const (
	FILE_ATTRIBUTE_HIDDEN = 0x02
)

// IsPlatformHidden checks if a file has the Windows hidden attribute
func IsPlatformHidden(path string, info os.FileInfo) bool {
	if info != nil {
		if data, ok := info.Sys().(*syscall.Win32FileAttributeData); ok && data != nil {
			return data.FileAttributes&FILE_ATTRIBUTE_HIDDEN != 0
		}
	}

	// Fall back to querying the attributes by path
	pathPtr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(pathPtr)
	if err != nil {
		return false
	}
	return (attrs & FILE_ATTRIBUTE_HIDDEN) != 0
}
