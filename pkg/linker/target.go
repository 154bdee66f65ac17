package linker

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/types"
)

// ValidateTarget checks that dir exists, is a directory and is writable,
// and returns its real path.
func ValidateTarget(fsys types.FS, dir string) (string, error) {
	if dir == "" {
		return "", errors.New(errors.ErrUsage, "require a target directory [-d]")
	}

	info, err := fsys.Stat(dir)
	if err != nil || !info.IsDir() || !fsys.Writable(dir) {
		invalid := errors.Newf(errors.ErrTargetInvalid,
			"%s does not exist or is not a writable directory", dir)
		invalid.Wrapped = err
		return "", invalid.WithDetail("path", dir)
	}

	real, err := fsys.RealPath(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTargetInvalid, "cannot resolve %s", dir)
	}
	return real, nil
}

// RemoveLinks deletes every symlink directly inside dir and returns the
// removed paths. Regular files and directories are left alone and nothing
// below dir is visited.
func RemoveLinks(fsys types.FS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSymlinkRemove, "cannot list %s", dir)
	}

	var removed []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := fsys.Lstat(path)
		if err != nil {
			return removed, errors.Wrapf(err, errors.ErrSymlinkRemove, "cannot inspect %s", path)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			continue
		}

		if err := fsys.Remove(path); err != nil {
			return removed, errors.Wrapf(err, errors.ErrSymlinkRemove, "cannot remove %s", path)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
