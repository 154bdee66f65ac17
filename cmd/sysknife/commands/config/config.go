package config

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/sysknife/internal/cli"
	"github.com/arthur-debert/sysknife/pkg/config"
	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/logging"
	"github.com/arthur-debert/sysknife/pkg/paths"
	"github.com/arthur-debert/sysknife/pkg/types"
	"github.com/spf13/cobra"
)

// NewCommand creates the config command
func NewCommand(state *cli.State) *cobra.Command {
	var defaults, initFile bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case initFile:
				path := paths.ConfigFilePath()
				if err := WriteDefaults(state.FS, path); err != nil {
					return err
				}
				state.Printer(cmd).Successf(MsgInitDone, path)
				return nil
			case defaults:
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			cfg, err := state.Config()
			if err != nil {
				return err
			}
			out, err := cfg.Dump()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	cmd.Flags().BoolVar(&initFile, "init", false, MsgFlagInit)
	cmd.MarkFlagsMutuallyExclusive("defaults", "init")

	return cmd
}

// WriteDefaults saves the commented defaults at path, creating parent
// directories. An existing file is left alone.
func WriteDefaults(fsys types.FS, path string) error {
	if _, err := fsys.Lstat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, MsgErrInitExists, path).
			WithDetail("path", path)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrPermission, "cannot create %s", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, []byte(config.DefaultContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrPermission, "cannot write %s", path)
	}

	logger := logging.GetLogger("cmd.config")
	logger.Info().Str("path", path).Msg("Wrote default config")
	return nil
}
