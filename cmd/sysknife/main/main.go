package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sysknife/cmd/sysknife"
	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/output"
	"github.com/arthur-debert/sysknife/pkg/output/styles"
)

func main() {
	rootCmd := sysknife.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if output.SupportsColor(os.Stderr) {
			msg = styles.GetStyle("Error").Render(msg)
		}
		fmt.Fprintln(os.Stderr, msg)

		if errors.IsErrorCode(err, errors.ErrUsage) || errors.IsErrorCode(err, errors.ErrFlagConflict) {
			fmt.Fprintln(os.Stderr, "Run 'sysknife --help' for usage.")
		}
		os.Exit(errors.ExitCode(err))
	}
}
