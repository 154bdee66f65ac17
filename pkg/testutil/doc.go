// Package testutil provides helpers for tests that need real files and
// symlinks on disk.
//
// Symlink behaviour cannot be exercised on afero's MemMapFs, so link tests
// build their trees under t.TempDir() with these helpers.
package testutil
