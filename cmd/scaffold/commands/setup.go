package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Print the project banner, check the structure and list dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Setup(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
