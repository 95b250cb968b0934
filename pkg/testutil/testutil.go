// Package testutil provides test helpers shared across renamr's packages,
// most importantly an in-memory types.FS implementation.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/renamr/pkg/types"
)

// compile-time check that MemoryFS satisfies the filesystem interface
var _ types.FS = (*MemoryFS)(nil)

// SetupDir populates fs with the given dir and files (name -> content).
func SetupDir(t *testing.T, fs *MemoryFS, dir string, files map[string]string) {
	t.Helper()

	if err := fs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create dir %s: %v", dir, err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", path, err)
		}
	}
}

// Names extracts the base names of the entries in dir, for assertions.
func Names(t *testing.T, fs *MemoryFS, dir string) []string {
	t.Helper()

	entries, err := fs.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
