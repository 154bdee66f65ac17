package version

import (
	"fmt"

	"github.com/arthur-debert/sysknife/internal/version"
	"github.com/spf13/cobra"
)

const (
	MsgShort = "Print version information"
	MsgLong  = "Print detailed version information including commit hash and build date"
)

// NewCommand creates the version command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "sysknife version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "Built:  %s\n", version.Date)
		},
	}
}
