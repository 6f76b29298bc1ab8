package app

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRoot builds the root command. There are no flags and no subcommands:
// running the binary starts the interactive loop and exits 0 once the
// screen stack empties.
func NewRoot() *cobra.Command {
	return &cobra.Command{
		Use:           "jira-cli",
		Short:         "Terminal tracker for epics and stories",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := New(afero.NewOsFs(), os.Stdin, cmd.OutOrStdout())
			return a.Run(cmd.Context())
		},
	}
}
