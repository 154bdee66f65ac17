// Package sysknife assembles the sysknife command tree.
package sysknife

import (
	"github.com/arthur-debert/sysknife/cmd/sysknife/commands/completion"
	configcmd "github.com/arthur-debert/sysknife/cmd/sysknife/commands/config"
	"github.com/arthur-debert/sysknife/cmd/sysknife/commands/epoch"
	"github.com/arthur-debert/sysknife/cmd/sysknife/commands/flood"
	"github.com/arthur-debert/sysknife/cmd/sysknife/commands/links"
	versioncmd "github.com/arthur-debert/sysknife/cmd/sysknife/commands/version"
	"github.com/arthur-debert/sysknife/internal/cli"
	"github.com/arthur-debert/sysknife/internal/version"
	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(cli.NewState())
}

func newRootCmd(state *cli.State) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "sysknife",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(state.Verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but still fail
			_ = cmd.Help()
			return errors.New(errors.ErrUsage, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&state.Verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringArrayVar(&state.Settings, "set", nil, MsgFlagSet)
	rootCmd.PersistentFlags().BoolVar(&state.NoColor, "no-color", false, MsgFlagNoColor)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(links.NewCommand(state))
	rootCmd.AddCommand(flood.NewCommand(state))
	rootCmd.AddCommand(epoch.NewCommand(state))
	rootCmd.AddCommand(configcmd.NewCommand(state))
	rootCmd.AddCommand(versioncmd.NewCommand())
	rootCmd.AddCommand(completion.NewCommand())

	return rootCmd
}
