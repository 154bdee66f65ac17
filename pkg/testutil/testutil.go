package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/arthur-debert/sysknife/pkg/paths"
)

// FileTree maps relative paths to file contents. A nested FileTree value
// creates a directory.
type FileTree map[string]interface{}

// Isolate points the log file and the user config directory at fresh
// temporary directories.
func Isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv(paths.EnvConfigDir, t.TempDir())
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateFileTree writes tree below root and returns root.
func CreateFileTree(t *testing.T, root string, tree FileTree) string {
	t.Helper()

	for name, value := range tree {
		switch v := value.(type) {
		case string:
			CreateFile(t, root, name, v)
		case FileTree:
			dir := filepath.Join(root, name)
			if err := os.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", dir, err)
			}
			CreateFileTree(t, dir, v)
		default:
			t.Fatalf("unsupported FileTree value for %s: %T", name, value)
		}
	}
	return root
}

// CreateSymlink creates a symbolic link pointing to target.
// It fails the test if the symlink cannot be created.
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink %s -> %s: %v", link, target, err)
	}
}

// SymlinkExists checks if a path is a symbolic link.
func SymlinkExists(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// ReadSymlink reads the target of a symbolic link.
// It fails the test if the link cannot be read.
func ReadSymlink(t *testing.T, path string) string {
	t.Helper()
	target, err := os.Readlink(path)
	if err != nil {
		t.Fatalf("Failed to read symlink %s: %v", path, err)
	}
	return target
}

// RealPath resolves every symlink in path, e.g. macOS's /var -> /private/var.
func RealPath(t *testing.T, path string) string {
	t.Helper()
	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("Failed to resolve %s: %v", path, err)
	}
	return real
}

// EntryNames lists the names directly inside dir, sorted.
func EntryNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Backdate sets a file's modification time to the given number of days ago.
func Backdate(t *testing.T, path string, days int) {
	t.Helper()
	when := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	if err := os.Chtimes(path, when, when); err != nil {
		t.Fatalf("Failed to backdate %s: %v", path, err)
	}
}
