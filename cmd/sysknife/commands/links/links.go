package links

import (
	"strings"

	"github.com/arthur-debert/sysknife/internal/cli"
	"github.com/arthur-debert/sysknife/pkg/discovery"
	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/linker"
	"github.com/arthur-debert/sysknife/pkg/logging"
	"github.com/arthur-debert/sysknife/pkg/naming"
	"github.com/arthur-debert/sysknife/pkg/types"
	"github.com/spf13/cobra"
)

type flags struct {
	number   int
	dir      string
	exts     []string
	older    int
	newer    int
	pattern  string
	remove   bool
	expand   bool
	sequence bool
	obscure  bool
	debug    bool
	finder   string
}

// NewCommand creates the links command
func NewCommand(state *cli.State) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:     "links [flags] DIR...",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, state, &f, args)
		},
	}

	cmd.Flags().IntVarP(&f.number, "number", "n", 0, MsgFlagNumber)
	cmd.Flags().StringVarP(&f.dir, "dir", "d", "", MsgFlagDir)
	cmd.Flags().StringSliceVarP(&f.exts, "ext", "e", nil, MsgFlagExt)
	cmd.Flags().IntVarP(&f.older, "older", "O", 0, MsgFlagOlder)
	cmd.Flags().IntVarP(&f.newer, "newer", "N", 0, MsgFlagNewer)
	cmd.Flags().StringVarP(&f.pattern, "regex", "r", "", MsgFlagRegex)
	cmd.Flags().BoolVarP(&f.remove, "remove", "R", false, MsgFlagRemove)
	cmd.Flags().BoolVarP(&f.expand, "expand", "x", false, MsgFlagExpand)
	cmd.Flags().BoolVarP(&f.sequence, "sequence", "s", false, MsgFlagSequence)
	cmd.Flags().BoolVarP(&f.obscure, "obscure", "X", false, MsgFlagObscure)
	cmd.Flags().BoolVarP(&f.debug, "debug", "D", false, MsgFlagDebug)
	cmd.Flags().StringVar(&f.finder, "finder", "", MsgFlagFinder)

	_ = cmd.RegisterFlagCompletionFunc("finder", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{discovery.FinderFind, discovery.FinderWalk}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagDirname("dir")

	return cmd
}

func run(cmd *cobra.Command, state *cli.State, f *flags, args []string) error {
	logger := logging.GetLogger("cmd.links")

	// Usage checks come first, in this order, before anything touches disk.
	if len(args) == 0 {
		return errors.New(errors.ErrUsage, MsgErrNoDirs)
	}
	scheme, schemeSet, err := schemeFromFlags(f)
	if err != nil {
		return err
	}
	filters := types.SearchFilters{
		Extensions:  normalizeExtensions(f.exts),
		NamePattern: f.pattern,
	}
	if cmd.Flags().Changed("older") {
		filters.OlderThanDays = types.Days(f.older)
	}
	if cmd.Flags().Changed("newer") {
		filters.NewerThanDays = types.Days(f.newer)
	}
	if err := filters.Validate(); err != nil {
		return err
	}

	cfg, err := state.Config()
	if err != nil {
		return err
	}

	if !schemeSet {
		if scheme, err = naming.ParseScheme(cfg.Links.Naming); err != nil {
			return err
		}
	}

	number := cfg.Links.Number
	if cmd.Flags().Changed("number") {
		number = f.number
	}

	finderName := cfg.Links.Finder
	if cmd.Flags().Changed("finder") {
		finderName = f.finder
	}
	finder, err := discovery.New(finderName, cfg.Links.FindBinary, cfg.Links.SearchTimeout)
	if err != nil {
		return err
	}

	opts := linker.Options{
		Dirs:           args,
		Target:         f.dir,
		Number:         number,
		Scheme:         scheme,
		Filters:        filters,
		RemoveExisting: f.remove,
		Verbose:        state.Verbosity > 0,
		Debug:          f.debug,
	}

	logger.Debug().
		Strs("dirs", opts.Dirs).
		Str("target", opts.Target).
		Int("number", opts.Number).
		Str("scheme", string(opts.Scheme)).
		Str("finder", finderName).
		Msg("Starting link run")

	ctx, stop := cli.SignalContext(cmd)
	defer stop()

	printer := state.Printer(cmd)
	report, err := linker.New(state.FS, finder, printer).Run(ctx, opts)
	if err != nil {
		return err
	}

	if opts.Verbose && len(report.Results) > 0 {
		printer.Successf(MsgSummary,
			report.Count(linker.StatusLinked),
			report.Count(linker.StatusSkipped),
			report.Count(linker.StatusFailed))
	}
	return nil
}

// schemeFromFlags reports the scheme picked on the command line, if any.
func schemeFromFlags(f *flags) (naming.Scheme, bool, error) {
	picked := make([]naming.Scheme, 0, 3)
	if f.expand {
		picked = append(picked, naming.Expand)
	}
	if f.sequence {
		picked = append(picked, naming.Sequence)
	}
	if f.obscure {
		picked = append(picked, naming.Obscure)
	}

	switch len(picked) {
	case 0:
		return naming.Copy, false, nil
	case 1:
		return picked[0], true, nil
	default:
		return "", false, errors.New(errors.ErrFlagConflict, MsgErrSchemeConflict)
	}
}

// normalizeExtensions accepts "mp3", ".mp3" and blanks left by "a,,b".
func normalizeExtensions(exts []string) []string {
	var out []string
	for _, e := range exts {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
