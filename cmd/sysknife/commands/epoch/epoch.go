package epoch

import (
	"time"

	"github.com/arthur-debert/sysknife/internal/cli"
	"github.com/arthur-debert/sysknife/pkg/epoch"
	"github.com/spf13/cobra"
)

// NewCommand creates the epoch command
func NewCommand(state *cli.State) *cobra.Command {
	var (
		local  bool
		layout string
	)

	cmd := &cobra.Command{
		Use:     "epoch TIMESTAMP...",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := state.Config()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("local") {
				local = cfg.Epoch.Local
			}
			if !cmd.Flags().Changed("layout") {
				layout = cfg.Epoch.Layout
			}

			loc := time.UTC
			if local {
				loc = time.Local
			}
			return epoch.NewConverter(layout, loc).Print(state.Printer(cmd), args)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, MsgFlagLocal)
	cmd.Flags().StringVar(&layout, "layout", "", MsgFlagLayout)

	return cmd
}
