package commands

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func (c *CLI) newResourceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resource <name>",
		Short: "Print the path of a project resource",
		Long: heredoc.Doc(`
			Print the absolute path of a named resource. Names are case-insensitive:
			"root", "log", "info log" and "error log".
		`),
		Example: heredoc.Doc(`
			$ scaffold resource "error log"
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Resource(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
