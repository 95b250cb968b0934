package types

import (
	"io/fs"
	"os"
)

// OSFileSystem implements FS against the real filesystem.
type OSFileSystem struct{}

// NewOSFileSystem returns an FS backed by the os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error)  { return os.Stat(name) }
func (OSFileSystem) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }
func (OSFileSystem) ReadFile(name string) ([]byte, error)   { return os.ReadFile(name) }
func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}
func (OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}
func (OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}
func (OSFileSystem) Rename(oldpath, newpath string) error { return os.Rename(oldpath, newpath) }
func (OSFileSystem) Remove(name string) error             { return os.Remove(name) }
