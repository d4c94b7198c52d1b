package commands

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "List the declared dependencies",
		Long: heredoc.Doc(`
			Read the dependency manifest, one "name:version" entry per line.
			A missing version, or -1, means the latest release.
		`),
		Example: heredoc.Doc(`
			$ cat dependencies.txt
			requests:-1
			flask:==2.3.0
			$ scaffold deps
			requests (latest)
			flask==2.3.0
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Dependencies(cmd.Context(), cmd.OutOrStdout())
			return err
		},
	}
}
