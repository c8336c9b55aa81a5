// Package testutil builds throwaway repository fixtures for scanner and
// engine tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to a file, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll(%s) error: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s) error: %v", path, err)
	}
}

// MkDir creates a directory and its parents.
func MkDir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("MkdirAll(%s) error: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Repo creates a temporary repository populated from a map of relative
// path to content. A path ending in "/" creates an empty directory.
// Cleanup is automatic.
func Repo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	PopulateRepo(t, root, files)
	return root
}

// PopulateRepo adds files to an existing fixture repository.
func PopulateRepo(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if len(name) > 0 && name[len(name)-1] == '/' {
			MkDir(t, path)
			continue
		}
		WriteFile(t, path, content)
	}
}
