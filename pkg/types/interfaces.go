package types

import "io/fs"

// FS abstracts the filesystem operations renamr performs. Production code
// uses OSFileSystem; tests use the in-memory implementation in pkg/testutil.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Rename moves a file within the same directory tree. This is the only
	// mutating operation the direct executor performs.
	Rename(oldpath, newpath string) error

	// Other operations
	Remove(name string) error

	// Lstat may fall back to Stat in test implementations.
	Lstat(name string) (fs.FileInfo, error)
}
