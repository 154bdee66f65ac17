// Package linker fills a directory with symlinks to a random sample of
// files found by a types.CandidateFinder.
package linker

import (
	"context"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/logging"
	"github.com/arthur-debert/sysknife/pkg/naming"
	"github.com/arthur-debert/sysknife/pkg/output"
	"github.com/arthur-debert/sysknife/pkg/sample"
	"github.com/arthur-debert/sysknife/pkg/types"
	"github.com/rs/zerolog"
)

// Options describes one link run.
type Options struct {
	Dirs           []string
	Target         string
	Number         int
	Scheme         naming.Scheme
	Filters        types.SearchFilters
	RemoveExisting bool

	// Verbose prints progress lines, Debug prints every link made
	Verbose bool
	Debug   bool
}

// Report summarises a run.
type Report struct {
	Target     string
	Removed    []string
	Candidates int
	Requested  int
	Results    []Result
}

// Count returns how many results have status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// commandDescriber is implemented by finders that can show the command
// they run.
type commandDescriber interface {
	CommandLine(dirs []string, filters types.SearchFilters) string
}

type Linker struct {
	fs      types.FS
	finder  types.CandidateFinder
	source  sample.Source
	printer *output.Printer
	logger  zerolog.Logger
}

func New(fsys types.FS, finder types.CandidateFinder, printer *output.Printer) *Linker {
	return &Linker{
		fs:      fsys,
		finder:  finder,
		source:  sample.Default,
		printer: printer,
		logger:  logging.GetLogger("linker"),
	}
}

// WithSource replaces the random source, for reproducible runs.
func (l *Linker) WithSource(src sample.Source) *Linker {
	l.source = src
	return l
}

// Run validates the target, optionally clears old links, finds candidates,
// picks a random subset and links it.
//
// Usage and search failures abort the run. Per-link problems are recorded
// in the report and the remaining links are still attempted.
func (l *Linker) Run(ctx context.Context, opts Options) (*Report, error) {
	done := logging.LogOperationStart(l.logger, "link")
	defer done()

	if len(opts.Dirs) == 0 {
		return nil, errors.New(errors.ErrUsage, "require at least one directory")
	}
	if opts.Number < 0 {
		return nil, errors.Newf(errors.ErrUsage, "number of files must be non-negative, got %d", opts.Number)
	}
	if err := opts.Filters.Validate(); err != nil {
		return nil, err
	}

	target, err := ValidateTarget(l.fs, opts.Target)
	if err != nil {
		return nil, err
	}

	report := &Report{Target: target, Requested: opts.Number}
	l.verbose(opts, "Creating links in %s", target)

	if opts.RemoveExisting {
		l.verbose(opts, "Removing existing links")
		removed, err := RemoveLinks(l.fs, target)
		report.Removed = removed
		if err != nil {
			return report, err
		}
		l.logger.Info().Int("removed", len(removed)).Str("target", target).Msg("Removed existing links")
	}

	if d, ok := l.finder.(commandDescriber); ok {
		l.verbose(opts, "running '%s'", d.CommandLine(opts.Dirs, opts.Filters))
	}

	candidates, err := l.finder.FindCandidates(ctx, opts.Dirs, opts.Filters)
	if err != nil {
		return report, err
	}
	report.Candidates = len(candidates)

	if len(candidates) == 0 {
		l.verbose(opts, "no files matched")
		return report, nil
	}

	l.verbose(opts, "Linking %d of %d candidate files", opts.Number, len(candidates))
	if opts.Number > len(candidates) {
		l.printer.Warnf("asked to link more files than we have")
	}

	picks, err := sample.UniqueIndices(l.source, len(candidates), opts.Number)
	if err != nil {
		return report, err
	}

	namer := naming.NewNamer(opts.Scheme)
	for _, i := range picks {
		res := l.linkOne(candidates[i], target, namer, opts)
		report.Results = append(report.Results, res)
	}

	l.logger.Info().
		Int("linked", report.Count(StatusLinked)).
		Int("skipped", report.Count(StatusSkipped)).
		Int("failed", report.Count(StatusFailed)).
		Msg("Link run finished")

	return report, nil
}

func (l *Linker) linkOne(candidate, target string, namer *naming.Namer, opts Options) Result {
	source, err := l.fs.RealPath(candidate)
	if err != nil {
		res := Result{
			Source: candidate,
			Status: StatusFailed,
			Err:    errors.Wrapf(err, errors.ErrNotFound, "cannot resolve %s", candidate),
		}
		l.printer.Errorf("%v", res.Err)
		return res
	}

	res := CreateLink(l.fs, source, target, namer.Next(source))

	switch res.Status {
	case StatusLinked:
		if opts.Debug {
			l.printer.Link(res.Source, res.Destination)
		}
		l.logger.Debug().Str("source", res.Source).Str("destination", res.Destination).Msg("Link created")
	case StatusSkipped:
		l.printer.Warnf("%s exists", res.Destination)
	case StatusFailed:
		l.printer.Errorf("%v", res.Err)
		l.logger.Error().Err(res.Err).Str("source", res.Source).Msg("Link failed")
	}
	return res
}

// verbose prints progress with -v and otherwise leaves it to the debug log.
func (l *Linker) verbose(opts Options, format string, args ...interface{}) {
	if opts.Verbose {
		l.printer.Printf(format, args...)
		return
	}
	l.logger.Debug().Msgf(format, args...)
}
