package discovery

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/logging"
	"github.com/arthur-debert/sysknife/pkg/types"
)

// DefaultFindBinary is looked up on PATH.
const DefaultFindBinary = "find"

// FindCommand discovers candidates by running find(1) and reading one path
// per line from its stdout.
type FindCommand struct {
	Binary  string
	Timeout time.Duration
}

func NewFindCommand(binary string, timeout time.Duration) *FindCommand {
	if binary == "" {
		binary = DefaultFindBinary
	}
	return &FindCommand{Binary: binary, Timeout: timeout}
}

// Args builds the find(1) argument list. Arguments are passed to the
// process directly, so patterns need no shell quoting. Filters are not
// validated here; FindCandidates does that.
func Args(dirs []string, filters types.SearchFilters) []string {
	args := append([]string{}, dirs...)
	args = append(args, "-type", "f")

	if len(filters.Extensions) > 0 {
		args = append(args, "-a", "(")
		for i, ext := range filters.Extensions {
			if i > 0 {
				args = append(args, "-o")
			}
			args = append(args, "-name", "*."+strings.TrimPrefix(ext, "."))
		}
		args = append(args, ")")
	}

	if filters.OlderThanDays != nil {
		args = append(args, "-a", "-mtime", "+"+strconv.Itoa(*filters.OlderThanDays))
	}
	if filters.NewerThanDays != nil {
		args = append(args, "-a", "-mtime", "-"+strconv.Itoa(*filters.NewerThanDays))
	}
	if filters.NamePattern != "" {
		args = append(args, "-a", "-name", filters.NamePattern)
	}
	return args
}

func (f *FindCommand) CommandLine(dirs []string, filters types.SearchFilters) string {
	return strings.Join(append([]string{f.Binary}, Args(dirs, filters)...), " ")
}

func (f *FindCommand) FindCandidates(ctx context.Context, dirs []string, filters types.SearchFilters) ([]string, error) {
	if len(dirs) == 0 {
		return nil, errors.New(errors.ErrUsage, "require at least one directory")
	}
	if err := filters.Validate(); err != nil {
		return nil, err
	}

	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	args := Args(dirs, filters)
	logging.LogCommand(f.Binary, args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		status := -1
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			status = exitErr.ExitCode()
		}
		return nil, errors.Wrapf(err, errors.ErrSearchFailed,
			"%s exited %d.\nstderr: %s", f.Binary, status, strings.TrimSpace(stderr.String())).
			WithDetail("args", args)
	}

	return splitLines(stdout.String()), nil
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
