package flood

import (
	"strconv"

	"github.com/arthur-debert/sysknife/internal/cli"
	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/flood"
	"github.com/arthur-debert/sysknife/pkg/logging"
	"github.com/arthur-debert/sysknife/pkg/paths"
	"github.com/arthur-debert/sysknife/pkg/sample"
	"github.com/spf13/cobra"
)

// NewSink builds the message sink; tests replace it.
var NewSink = func(network, address string) flood.Sink {
	return &flood.SyslogSink{Network: network, Address: address}
}

// NewCommand creates the flood command
func NewCommand(state *cli.State) *cobra.Command {
	var words, network, addr string

	cmd := &cobra.Command{
		Use:     "flood RATE DURATION",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := parseCount("RATE", args[0])
			if err != nil {
				return err
			}
			duration, err := parseCount("DURATION", args[1])
			if err != nil {
				return err
			}

			cfg, err := state.Config()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("words") {
				words = cfg.Flood.WordsFile
			}
			if !cmd.Flags().Changed("network") {
				network = cfg.Flood.Network
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Flood.Address
			}

			list, err := flood.LoadWords(state.FS, paths.ExpandHome(words))
			if err != nil {
				return err
			}

			logger := logging.GetLogger("cmd.flood")
			logger.Debug().
				Int("rate", rate).
				Int("duration", duration).
				Int("words", len(list)).
				Str("network", network).
				Str("address", addr).
				Msg("Starting flood")

			ctx, stop := cli.SignalContext(cmd)
			defer stop()

			gen := flood.NewGenerator(list, sample.Default)
			f := flood.New(NewSink(network, addr), gen, state.Printer(cmd)).
				WithSleepAdjust(cfg.Flood.SleepAdjust)
			_, err = f.Run(ctx, rate, duration)
			return err
		},
	}

	cmd.Flags().StringVar(&words, "words", "", MsgFlagWords)
	cmd.Flags().StringVar(&network, "network", "", MsgFlagNetwork)
	cmd.Flags().StringVar(&addr, "addr", "", MsgFlagAddr)
	_ = cmd.MarkFlagFilename("words")

	return cmd
}

func parseCount(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, errors.Newf(errors.ErrUsage, MsgErrArg, name, arg)
	}
	return n, nil
}
