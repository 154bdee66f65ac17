package linker

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/types"
)

// Status is the outcome of one link attempt.
type Status string

const (
	StatusLinked  Status = "linked"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result records what happened to one selected candidate.
type Result struct {
	Source      string
	Destination string
	Status      Status
	// Err explains a skipped or failed link
	Err error
}

// CreateLink makes targetDir/filename a symlink to source.
//
// An existing entry at the destination, dangling links included, is never
// replaced: the result is StatusSkipped. Any other failure gives
// StatusFailed. CreateLink never panics or aborts a batch; callers inspect
// the Result.
func CreateLink(fsys types.FS, source, targetDir, filename string) Result {
	res := Result{Source: source, Destination: filepath.Join(targetDir, filename)}

	if filename == "" || filename == "." || filename == ".." || strings.ContainsRune(filename, filepath.Separator) {
		res.Status = StatusFailed
		res.Err = errors.Newf(errors.ErrInvalidInput, "invalid link name %q", filename)
		return res
	}

	if _, err := fsys.Lstat(res.Destination); err == nil {
		res.Status = StatusSkipped
		res.Err = errors.Newf(errors.ErrSymlinkExists, "%s exists", res.Destination)
		return res
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot inspect %s", res.Destination)
		return res
	}

	if err := fsys.Symlink(source, res.Destination); err != nil {
		// lost a race with another writer
		if stderrors.Is(err, fs.ErrExist) || stderrors.Is(err, os.ErrExist) {
			res.Status = StatusSkipped
			res.Err = errors.Newf(errors.ErrSymlinkExists, "%s exists", res.Destination)
			return res
		}
		res.Status = StatusFailed
		res.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", res.Destination)
		return res
	}

	res.Status = StatusLinked
	return res
}
