//go:build windows

package fileinfo

import (
	"fmt"
	"syscall"
	"unsafe"

	apperrors "explorer/internal/errors"
)

var (
	shell32        = syscall.NewLazyDLL("shell32.dll")
	procShellExecW = shell32.NewProc("ShellExecuteW")
)

// OpenWithDefaultApp opens the given path with the OS-associated application
// using ShellExecuteW with the "open" verb.
func OpenWithDefaultApp(p string) error {
	lpOperation, _ := syscall.UTF16PtrFromString("open")
	lpFile, err := syscall.UTF16PtrFromString(p)
	if err != nil {
		return apperrors.NewFileSystemError("open", p, "invalid path", err)
	}

	// SW_SHOWNORMAL = 1
	ret, _, callErr := procShellExecW.Call(
		0,
		uintptr(unsafe.Pointer(lpOperation)),
		uintptr(unsafe.Pointer(lpFile)),
		0,
		0,
		1,
	)
	if ret <= 32 {
		return apperrors.NewFileSystemError("open", p, "cannot open with the default application",
			fmt.Errorf("ShellExecuteW failed, code=%d: %w", ret, callErr))
	}
	return nil
}
