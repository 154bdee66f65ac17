package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for link and word list operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Lstat does not follow a final symlink. Filesystems without symlink
	// support fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	Remove(name string) error

	// RealPath returns the absolute path of name with symlinks resolved.
	RealPath(name string) (string, error)

	// Writable reports whether the current user may create entries in name.
	Writable(name string) bool
}

// CandidateFinder produces the ordered list of files a link run picks from.
type CandidateFinder interface {
	FindCandidates(ctx context.Context, dirs []string, filters SearchFilters) ([]string, error)
}
