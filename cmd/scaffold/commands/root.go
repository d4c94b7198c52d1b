// Package commands implements the CLI commands for scaffold.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.trai.ch/scaffold/internal/build"
	"go.trai.ch/scaffold/internal/core/domain"
)

// CLI represents the command line interface for scaffold.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, w io.Writer) error
	Dependencies(ctx context.Context, w io.Writer) ([]domain.Dependency, error)
	Setup(ctx context.Context, w io.Writer) error
	Log(ctx context.Context, message string, opts ...domain.LogOption) error
	ClearLogs(ctx context.Context) error
	Resource(ctx context.Context, name string) (string, error)
	FollowLogs(ctx context.Context, w io.Writer, errorLog bool) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Bootstrap and check a project",
		Long: heredoc.Doc(`
			scaffold checks a project against its expected layout, reads its
			dependency manifest and keeps its info and error logs.

			Configuration is read from scaffold.yaml, searched from the current
			directory upwards. Without one, the current directory is the project root.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newSetupCmd())
	rootCmd.AddCommand(c.newLogCmd())
	rootCmd.AddCommand(c.newLogsCmd())
	rootCmd.AddCommand(c.newResourceCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
