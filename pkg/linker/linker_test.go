package linker

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/filesystem"
	"github.com/arthur-debert/sysknife/pkg/naming"
	"github.com/arthur-debert/sysknife/pkg/output"
	"github.com/arthur-debert/sysknife/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFinder struct {
	paths   []string
	err     error
	calls   int
	filters types.SearchFilters
}

func (f *fakeFinder) FindCandidates(_ context.Context, _ []string, filters types.SearchFilters) ([]string, error) {
	f.calls++
	f.filters = filters
	return f.paths, f.err
}

func (f *fakeFinder) CommandLine(dirs []string, _ types.SearchFilters) string {
	return fmt.Sprintf("fake %v", dirs)
}

type harness struct {
	src    string
	target string
	out    bytes.Buffer
	errOut bytes.Buffer
	finder *fakeFinder
	linker *Linker
}

func newHarness(t *testing.T, files ...string) *harness {
	t.Helper()
	h := &harness{src: t.TempDir(), target: t.TempDir()}

	var paths []string
	for _, name := range files {
		p := filepath.Join(h.src, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(name), 0644))
		paths = append(paths, p)
	}

	h.finder = &fakeFinder{paths: paths}
	printer := output.NewPlainPrinter(&h.out, &h.errOut)
	h.linker = New(filesystem.NewOS(), h.finder, printer).
		WithSource(rand.New(rand.NewPCG(1, 2)))
	return h
}

func (h *harness) opts(number int) Options {
	return Options{Dirs: []string{h.src}, Target: h.target, Number: number, Scheme: naming.Copy}
}

func linksIn(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if e.Type()&os.ModeSymlink != 0 {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestRunLinksRequestedNumber(t *testing.T) {
	h := newHarness(t, "a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg")

	report, err := h.linker.Run(context.Background(), h.opts(3))
	require.NoError(t, err)

	assert.Equal(t, 5, report.Candidates)
	assert.Equal(t, 3, report.Count(StatusLinked))
	assert.Len(t, linksIn(t, h.target), 3)
	assert.Empty(t, h.errOut.String())
}

func TestRunOverAskingLinksEverythingAndWarns(t *testing.T) {
	h := newHarness(t, "a.jpg", "b.jpg")

	report, err := h.linker.Run(context.Background(), h.opts(10))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Count(StatusLinked))
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpg"}, linksIn(t, h.target))
	assert.Contains(t, h.errOut.String(), "WARNING: asked to link more files than we have")
}

func TestRunNoCandidatesIsNotAnError(t *testing.T) {
	h := newHarness(t)
	opts := h.opts(4)
	opts.Verbose = true

	report, err := h.linker.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Zero(t, report.Candidates)
	assert.Empty(t, report.Results)
	assert.Contains(t, h.out.String(), "no files matched")
}

func TestRunVerboseOutput(t *testing.T) {
	h := newHarness(t, "a.txt", "b.txt")
	opts := h.opts(1)
	opts.Verbose = true

	_, err := h.linker.Run(context.Background(), opts)
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "Creating links in ")
	assert.Contains(t, out, "running 'fake [")
	assert.Contains(t, out, "Linking 1 of 2 candidate files")
}

func TestRunVerboseLinesAreNotLoggedToo(t *testing.T) {
	var logged bytes.Buffer
	origLogger, origLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})
	log.Logger = zerolog.New(&logged)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	h := newHarness(t, "a.txt")
	opts := h.opts(1)
	opts.Verbose = true

	_, err := h.linker.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), "Creating links in ")
	assert.NotContains(t, logged.String(), "Creating links in")
	assert.NotContains(t, logged.String(), "candidate files")
	assert.Contains(t, logged.String(), "Link run finished")
}

func TestRunDebugPrintsLinks(t *testing.T) {
	h := newHarness(t, "only.txt")
	opts := h.opts(1)
	opts.Debug = true

	_, err := h.linker.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), " -> ")
	assert.Contains(t, h.out.String(), "only.txt")
}

func TestRunSequenceNaming(t *testing.T) {
	h := newHarness(t, "a.jpg", "b.png", "c.gif")
	opts := h.opts(3)
	opts.Scheme = naming.Sequence

	_, err := h.linker.Run(context.Background(), opts)
	require.NoError(t, err)

	names := linksIn(t, h.target)
	require.Len(t, names, 3)
	prefixes := map[string]bool{}
	for _, n := range names {
		prefixes[n[:4]] = true
	}
	assert.Equal(t, map[string]bool{"0001": true, "0002": true, "0003": true}, prefixes)
}

func TestRunExpandNamingUsesRealPath(t *testing.T) {
	h := newHarness(t, "dir/file.txt")
	opts := h.opts(1)
	opts.Scheme = naming.Expand

	report, err := h.linker.Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)

	real, err := filepath.EvalSymlinks(filepath.Join(h.src, "dir", "file.txt"))
	require.NoError(t, err)
	want, _ := naming.Name(real, naming.Expand, naming.FirstSequence)
	assert.Equal(t, []string{want}, linksIn(t, h.target))
}

func TestRunCollisionsAreSkippedAndBatchContinues(t *testing.T) {
	h := newHarness(t, "one/same.txt", "two/same.txt", "other.txt")
	existing := filepath.Join(h.target, "other.txt")
	require.NoError(t, os.WriteFile(existing, []byte("mine"), 0644))

	report, err := h.linker.Run(context.Background(), h.opts(3))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count(StatusLinked))
	assert.Equal(t, 2, report.Count(StatusSkipped))
	assert.Contains(t, h.errOut.String(), "WARNING: ")

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "mine", string(data))
}

func TestRunUnresolvableCandidateFailsOnlyThatLink(t *testing.T) {
	h := newHarness(t, "good.txt")
	h.finder.paths = append(h.finder.paths, filepath.Join(h.src, "vanished.txt"))

	report, err := h.linker.Run(context.Background(), h.opts(2))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(StatusLinked))
	assert.Equal(t, 1, report.Count(StatusFailed))
	assert.Contains(t, h.errOut.String(), "ERROR: ")
}

func TestRunRemoveExisting(t *testing.T) {
	h := newHarness(t, "new.txt")
	old := filepath.Join(h.target, "old-link")
	require.NoError(t, os.Symlink("/nowhere", old))
	keep := filepath.Join(h.target, "keep.txt")
	require.NoError(t, os.WriteFile(keep, nil, 0644))

	opts := h.opts(1)
	opts.RemoveExisting = true

	report, err := h.linker.Run(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, report.Removed, 1)
	assert.Equal(t, []string{"new.txt"}, linksIn(t, h.target))
	_, err = os.Stat(keep)
	assert.NoError(t, err)
}

func TestRunSearchFailureAborts(t *testing.T) {
	h := newHarness(t, "a.txt")
	h.finder.err = errors.New(errors.ErrSearchFailed, "find exited 1")

	_, err := h.linker.Run(context.Background(), h.opts(1))
	assert.True(t, errors.IsErrorCode(err, errors.ErrSearchFailed))
	assert.Empty(t, linksIn(t, h.target))
}

func TestRunUsageErrorsHaveNoSideEffects(t *testing.T) {
	h := newHarness(t, "a.txt")
	stale := filepath.Join(h.target, "stale")
	require.NoError(t, os.Symlink("/nowhere", stale))

	t.Run("no dirs", func(t *testing.T) {
		opts := h.opts(1)
		opts.Dirs = nil
		opts.RemoveExisting = true
		_, err := h.linker.Run(context.Background(), opts)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
	})

	t.Run("bad target", func(t *testing.T) {
		opts := h.opts(1)
		opts.Target = filepath.Join(h.target, "missing")
		_, err := h.linker.Run(context.Background(), opts)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTargetInvalid))
	})

	t.Run("negative number", func(t *testing.T) {
		opts := h.opts(-1)
		_, err := h.linker.Run(context.Background(), opts)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
	})

	t.Run("negative age", func(t *testing.T) {
		opts := h.opts(1)
		opts.RemoveExisting = true
		opts.Filters.OlderThanDays = types.Days(-2)
		_, err := h.linker.Run(context.Background(), opts)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))
	})

	assert.Zero(t, h.finder.calls)
	_, err := os.Lstat(stale)
	assert.NoError(t, err)
}

func TestRunPassesFilters(t *testing.T) {
	h := newHarness(t, "a.txt")
	opts := h.opts(1)
	opts.Filters = types.SearchFilters{Extensions: []string{"txt"}, OlderThanDays: types.Days(0), NamePattern: "*a*"}

	_, err := h.linker.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, opts.Filters, h.finder.filters)
}
