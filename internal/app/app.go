// Package app implements the application layer for scaffold.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/scaffold/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	validator    ports.StructureValidator
	manifest     ports.ManifestParser
	consoles     ports.ConsoleFactory
	follower     ports.LogFollower
	logger       ports.Logger
	cwd          string
}

// New creates a new App instance working in the current directory.
func New(
	loader ports.ConfigLoader,
	validator ports.StructureValidator,
	manifest ports.ManifestParser,
	consoles ports.ConsoleFactory,
	follower ports.LogFollower,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		validator:    validator,
		manifest:     manifest,
		consoles:     consoles,
		follower:     follower,
		logger:       logger,
		cwd:          ".",
	}
}

// WithWorkingDir sets the directory configuration discovery starts from.
func (a *App) WithWorkingDir(dir string) *App {
	a.cwd = dir
	return a
}

// jsonSwitch is implemented by loggers that can emit JSON.
type jsonSwitch interface {
	SetJSON(enable bool)
}

func (a *App) loadConfig() (*domain.Config, error) {
	cfg, err := a.configLoader.Load(a.cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if s, ok := a.logger.(jsonSwitch); ok {
		s.SetJSON(cfg.JSONLogs)
	}
	return cfg, nil
}

func (a *App) openConsole(ctx context.Context, cfg *domain.Config) (ports.Console, error) {
	return a.consoles.Open(ctx, cfg.Definitions.LogConfig(cfg.Verbose))
}

// Check validates the project structure and writes one line per checked entry to w.
func (a *App) Check(ctx context.Context, w io.Writer) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	// Booting the console creates the log directory, so it must not run before validation.
	checkErr := a.validate(cfg, w)
	console, err := a.openConsole(ctx, cfg)
	if err != nil {
		return errors.Join(checkErr, err)
	}

	return a.report(console, checkErr, w)
}

func (a *App) validate(cfg *domain.Config, w io.Writer) error {
	report, err := a.validator.Validate(cfg.Definitions.Root, cfg.Layout)
	if report != nil {
		for _, e := range report.Entries {
			_, _ = fmt.Fprintf(w, "%s %s: %s\n", style.Status(e.OK), e.Kind, e.Path)
		}
	}
	return err
}

// report logs the outcome of validate through console.
func (a *App) report(console ports.Console, checkErr error, w io.Writer) error {
	if checkErr != nil {
		console.Log(checkErr.Error(), domain.AsError(), domain.WithTag("check"))
		return checkErr
	}

	console.Log("project structure OK", domain.WithTag("check"))
	_, _ = fmt.Fprintln(w, "project...OK")
	return nil
}

// Dependencies parses the dependency manifest and writes one requirement per line to w.
func (a *App) Dependencies(_ context.Context, w io.Writer) ([]domain.Dependency, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	deps, err := a.manifest.Parse(cfg.Manifest)
	if err != nil {
		return nil, err
	}

	for _, d := range deps {
		_, _ = fmt.Fprintln(w, describe(d))
	}
	return deps, nil
}

func describe(d domain.Dependency) string {
	if d.Latest() {
		return d.Name + " (latest)"
	}
	return d.Requirement()
}

// Setup prints the project banner, checks the structure and lists the dependencies
// that would be installed.
func (a *App) Setup(ctx context.Context, w io.Writer) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	printBanner(w, cfg.Project)

	_, _ = fmt.Fprintln(w, "checking project structure...")
	checkErr := a.validate(cfg, w)

	console, err := a.openConsole(ctx, cfg)
	if err != nil {
		return errors.Join(checkErr, err)
	}
	console.Log("setup started for "+cfg.Project.Title, domain.WithTag("setup"))

	if err := a.report(console, checkErr, w); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, "\nsetting up dependencies...")
	deps, err := a.manifest.Parse(cfg.Manifest)
	if err != nil {
		console.Log(err.Error(), domain.AsError(), domain.WithTag("setup"))
		return err
	}
	for _, d := range deps {
		_, _ = fmt.Fprintf(w, "%s %s\n", style.Muted.Render(style.Dot), d.Requirement())
	}
	console.Log(fmt.Sprintf("%d dependencies declared", len(deps)), domain.WithTag("setup"))

	_, _ = fmt.Fprintln(w, "\nquick setup finished")
	return nil
}

func printBanner(w io.Writer, p domain.Project) {
	_, _ = fmt.Fprintln(w, style.Title.Render(p.Title))
	if p.Description != "" {
		_, _ = fmt.Fprintln(w, p.Description)
	}
	if p.Author != "" {
		_, _ = fmt.Fprintf(w, "Author: %s\n", p.Author)
	}
	if p.Email != "" {
		_, _ = fmt.Fprintf(w, "Email: %s\n", p.Email)
	}
	_, _ = fmt.Fprintf(w, "Version: %s\n", p.Version)
	if p.URL != "" {
		_, _ = fmt.Fprintf(w, "URL: %s\n", p.URL)
	}
	_, _ = fmt.Fprintln(w)
}

// Log writes message to the project logs.
func (a *App) Log(ctx context.Context, message string, opts ...domain.LogOption) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	console, err := a.openConsole(ctx, cfg)
	if err != nil {
		return err
	}

	console.Log(message, opts...)
	return nil
}

// ClearLogs empties both project logs.
func (a *App) ClearLogs(ctx context.Context) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	console, err := a.openConsole(ctx, cfg)
	if err != nil {
		return err
	}

	console.ClearLogs()
	a.logger.Info("logs cleared")
	return nil
}

// Resource returns the path of a named project resource.
func (a *App) Resource(_ context.Context, name string) (string, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Definitions.Resource(name)
}

// FollowLogs streams new lines of the info log, or the error log, to w until ctx is done.
func (a *App) FollowLogs(ctx context.Context, w io.Writer, errorLog bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if _, err := a.openConsole(ctx, cfg); err != nil {
		return err
	}

	path := cfg.Definitions.InfoLog
	if errorLog {
		path = cfg.Definitions.ErrorLog
	}

	a.logger.Info("following " + path)
	if err := a.follower.Follow(ctx, path, w); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
