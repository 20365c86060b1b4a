// Package commands implements the waitlist CLI: joining the waitlist through a
// running relay and checking the upstream configuration.
package commands

import (
	"io"
	"os"

	"github.com/akeren/waitlist-relay/config"
	"github.com/akeren/waitlist-relay/internal/log"
	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "waitlist",
		Short:        "Join the waitlist and inspect the relay's upstream",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitializeEnvFile(cliLogger(cmd, verbose))
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics as JSON to stderr")

	root.AddCommand(joinCmd(&verbose), checkCmd(&verbose))
	return root
}

// cliLogger keeps stdout for the user; diagnostics only appear with --verbose.
func cliLogger(cmd *cobra.Command, verbose bool) *log.Logger {
	if !verbose {
		return log.NewDiscardLogger()
	}
	return log.NewLogger(cmd.ErrOrStderr(), nil)
}
