package fileinfo

import (
	"io"
	"os"
	"path/filepath"
)

// VFS defines the minimal read-only operations the lister and preview need.
type VFS interface {
	ReadDir(path string) ([]os.DirEntry, error)
	Stat(path string) (os.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
	Join(elem ...string) string
}

// LocalFS implements VFS using the host OS.
type LocalFS struct{}

func (LocalFS) ReadDir(path string) ([]os.DirEntry, error) { return os.ReadDir(path) }
func (LocalFS) Stat(path string) (os.FileInfo, error)      { return os.Stat(path) }
func (LocalFS) Open(path string) (io.ReadCloser, error)    { return os.Open(path) }
func (LocalFS) Join(elem ...string) string                 { return filepath.Join(elem...) }
