// Package cli holds what the sysknife subcommands share: global flags, the
// merged configuration and the output printer.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/sysknife/pkg/config"
	"github.com/arthur-debert/sysknife/pkg/filesystem"
	"github.com/arthur-debert/sysknife/pkg/output"
	"github.com/arthur-debert/sysknife/pkg/types"
	"github.com/spf13/cobra"
)

// State is created once per root command and handed to every subcommand.
type State struct {
	// Verbosity is the -v count
	Verbosity int
	// Settings are --set key=value config overrides
	Settings []string
	// NoColor disables styling even on a terminal
	NoColor bool
	FS      types.FS

	config *config.Config
}

func NewState() *State {
	return &State{FS: filesystem.NewOS()}
}

// Config loads the configuration on first use.
func (s *State) Config() (*config.Config, error) {
	if s.config != nil {
		return s.config, nil
	}
	overrides, err := config.ParseOverrides(s.Settings)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		return nil, err
	}
	s.config = cfg
	return cfg, nil
}

// SetConfig bypasses loading; used by tests.
func (s *State) SetConfig(cfg *config.Config) {
	s.config = cfg
}

// Printer writes to the command's configured streams.
func (s *State) Printer(cmd *cobra.Command) *output.Printer {
	if s.NoColor {
		return output.NewPlainPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// SignalContext derives a context from the command's that is cancelled on
// SIGINT or SIGTERM.
func SignalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
