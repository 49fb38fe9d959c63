//go:build !windows

package fileinfo

import (
	"errors"
	"os/exec"
	"runtime"

	apperrors "explorer/internal/errors"
)

// OpenWithDefaultApp opens the given path with the system default application.
// On macOS this is open(1); elsewhere xdg-open with basic fallbacks.
func OpenWithDefaultApp(p string) error {
	candidates := [][]string{
		{"xdg-open", p},
		{"gio", "open", p},
		{"gnome-open", p},
		{"kde-open", p},
	}
	if runtime.GOOS == "darwin" {
		candidates = [][]string{{"open", p}}
	}
	var lastErr error
	for _, args := range candidates {
		// Ensure the binary exists before trying
		if path, lookErr := exec.LookPath(args[0]); lookErr == nil {
			cmd := exec.Command(path, args[1:]...)
			if err := cmd.Start(); err != nil {
				lastErr = err
				continue
			}
			// Reap the opener in the background
			go cmd.Wait()
			return nil
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no opener found (xdg-open, gio, gnome-open, kde-open)")
	}
	return apperrors.NewFileSystemError("open", p, "cannot open with the default application", lastErr)
}
