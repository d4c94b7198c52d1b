package commands

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the project structure",
		Long: heredoc.Doc(`
			Check that every directory, package and module of the configured layout
			exists. The check stops at the first invalid entry and exits with
			2 for a directory, 3 for a package and 4 for a module.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Check(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
