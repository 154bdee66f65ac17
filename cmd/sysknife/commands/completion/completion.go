package completion

import (
	"github.com/spf13/cobra"
)

const (
	MsgShort = "Generate shell completion script"
	MsgLong  = `To load completions:

Bash:
  $ source <(sysknife completion bash)

Zsh:
  $ sysknife completion zsh > "${fpath[1]}/_sysknife"

Fish:
  $ sysknife completion fish | source

PowerShell:
  PS> sysknife completion powershell | Out-String | Invoke-Expression`
)

// NewCommand creates the completion command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgShort,
		Long:                  MsgLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
