package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileTree(t *testing.T) {
	root := CreateFileTree(t, t.TempDir(), FileTree{
		"a.txt": "alpha",
		"sub": FileTree{
			"b.txt": "bravo",
			"deeper": FileTree{
				"c.txt": "",
			},
		},
	})

	assert.Equal(t, []string{"a.txt", "sub"}, EntryNames(t, root))
	assert.Equal(t, []string{"b.txt", "deeper"}, EntryNames(t, filepath.Join(root, "sub")))

	data, err := os.ReadFile(filepath.Join(root, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "bravo", string(data))
}

func TestSymlinkHelpers(t *testing.T) {
	dir := t.TempDir()
	file := CreateFile(t, dir, "file", "x")
	link := filepath.Join(dir, "link")

	assert.False(t, SymlinkExists(t, link))
	CreateSymlink(t, file, link)
	assert.True(t, SymlinkExists(t, link))
	assert.False(t, SymlinkExists(t, file))
	assert.Equal(t, file, ReadSymlink(t, link))
	assert.Equal(t, RealPath(t, file), RealPath(t, link))
}

func TestBackdate(t *testing.T) {
	file := CreateFile(t, t.TempDir(), "old", "")
	Backdate(t, file, 10)

	info, err := os.Stat(file)
	require.NoError(t, err)
	age := time.Since(info.ModTime())
	assert.InDelta(t, float64(10*24*time.Hour), float64(age), float64(time.Minute))
}

func TestIsolate(t *testing.T) {
	Isolate(t)
	assert.NotEmpty(t, os.Getenv("XDG_STATE_HOME"))
	assert.NotEmpty(t, os.Getenv("SYSKNIFE_CONFIG_DIR"))
}
