package commands

import (
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.trai.ch/scaffold/internal/core/domain"
)

const defaultLogTag = "cli"

func (c *CLI) newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <message>...",
		Short: "Append a message to the project logs",
		Example: heredoc.Doc(`
			$ scaffold log deployment started
			$ scaffold log --error --critical "database unreachable"
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isErr, _ := cmd.Flags().GetBool("error")
			critical, _ := cmd.Flags().GetBool("critical")
			tag, _ := cmd.Flags().GetString("tag")

			opts := []domain.LogOption{domain.WithTag(tag)}
			if isErr {
				opts = append(opts, domain.AsError())
			}
			if critical {
				opts = append(opts, domain.AsCritical())
			}

			return c.app.Log(cmd.Context(), strings.Join(args, " "), opts...)
		},
	}

	cmd.Flags().BoolP("error", "e", false, "Write to the error log")
	cmd.Flags().BoolP("critical", "c", false, "Also print the line when not verbose")
	cmd.Flags().StringP("tag", "t", defaultLogTag, "Tag written in front of the message")

	return cmd
}

func (c *CLI) newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Manage the project logs",
		Args:  cobra.NoArgs,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete and recreate both log files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ClearLogs(cmd.Context())
		},
	}

	followCmd := &cobra.Command{
		Use:   "follow",
		Short: "Print lines as they are appended to a log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			errorLog, _ := cmd.Flags().GetBool("error")
			return c.app.FollowLogs(cmd.Context(), cmd.OutOrStdout(), errorLog)
		},
	}
	followCmd.Flags().BoolP("error", "e", false, "Follow the error log instead of the info log")

	cmd.AddCommand(clearCmd, followCmd)
	return cmd
}
