package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/sysknife/cmd/sysknife"
	"github.com/arthur-debert/sysknife/internal/version"
)

// Writes sysknife.1 and one page per subcommand into the directory given as
// the only argument, or prints the top-level page to stdout without one.
func main() {
	rootCmd := sysknife.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SYSKNIFE",
		Section: "1",
		Source:  "sysknife " + version.Version,
		Manual:  "sysknife manual",
	}

	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
