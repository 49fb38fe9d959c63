package fileinfo

import (
	"os"
	"strconv"
	"strings"

	apperrors "explorer/internal/errors"
)

// CreateFolder creates name inside parent without creating intermediate
// directories and returns the new folder's path.
func CreateFolder(parent, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", apperrors.NewFileSystemError("create_folder", parent, "invalid folder name "+strconv.Quote(name), nil)
	}

	target := JoinPath(parent, name)
	if err := os.Mkdir(target, 0755); err != nil {
		return "", apperrors.NewFileSystemError("create_folder", target, "cannot create folder", err)
	}
	return target, nil
}
