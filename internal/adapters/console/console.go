// Package console implements a logging facade writing to an info log and an error log.
package console

import (
	"errors"
	"io"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/scaffold/internal/adapters/logger" //nolint:depguard // diagnostics reuse the CLI logger
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

// Console implements ports.Console. Log lines go to files and, when verbose or
// critical, to the process streams. Problems with the files themselves are
// reported on the diagnostic loggers and never returned.
type Console struct {
	mu     sync.Mutex
	cfg    domain.LogConfig
	clock  clockwork.Clock
	fs     ports.FileSystem
	stdout io.Writer
	stderr io.Writer
	out    ports.Logger
	errOut ports.Logger
	state  domain.ConsoleState
}

// New creates a Console and ensures both log files exist.
func New(cfg domain.LogConfig, clock clockwork.Clock, stdout, stderr io.Writer, fsys ports.FileSystem) *Console {
	c := &Console{
		cfg:    cfg,
		clock:  clock,
		fs:     fsys,
		stdout: stdout,
		stderr: stderr,
		out:    logger.NewWithOutput(stdout),
		errOut: logger.NewWithOutput(stderr),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialize()

	return c
}

// State returns the lifecycle state of the console.
func (c *Console) State() domain.ConsoleState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Log appends message to the info log, or to the error log with domain.AsError.
// The line is tagged with the calling file and function unless domain.WithTag is given.
func (c *Console) Log(message string, opts ...domain.LogOption) {
	o := domain.NewLogOptions(opts...)

	tags := []string{o.Tag}
	callerOK := true
	if o.Tag == "" {
		caller, ok := callerTagFunc(1)
		callerOK = ok
		tags = []string{caller.File, caller.Function}
	}

	line := domain.FormatLogLine(c.clock.Now(), message, tags...)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !callerOK {
		c.warn("could not get log caller details")
	}

	path, echo := c.cfg.InfoLogPath, c.stdout
	if o.Error {
		path, echo = c.cfg.ErrorLogPath, c.stderr
	}

	if c.cfg.Verbose || o.Critical {
		_, _ = io.WriteString(echo, line)
	}

	if err := c.appendLine(path, line); err != nil {
		c.warn("could not log data: " + err.Error())
	}
}

// ClearLogs deletes both log files and initializes the console again.
// If a file cannot be deleted the failure is reported and the console is left as is.
func (c *Console) ClearLogs() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, path := range []string{c.cfg.InfoLogPath, c.cfg.ErrorLogPath} {
		if err := c.fs.Remove(path); err != nil {
			c.critical(zerr.With(zerr.Wrap(err, "failed to clear log"), "path", path))
			return
		}
	}

	c.info("logs cleared. rebooting console...")
	c.initialize()
}

// initialize creates any missing log file. Callers hold mu.
func (c *Console) initialize() {
	c.state = domain.ConsoleBooting
	c.info("booting logger...")

	ok := true
	for _, f := range []struct {
		name string
		path string
	}{
		{name: "info", path: c.cfg.InfoLogPath},
		{name: "error", path: c.cfg.ErrorLogPath},
	} {
		if _, err := c.fs.Stat(f.path); err == nil {
			continue
		}

		c.info("creating " + f.name + " log...")
		if err := c.fs.Touch(f.path); err != nil {
			ok = false
			c.critical(zerr.With(zerr.Wrap(err, "failed to create "+f.name+" log"), "path", f.path))
			continue
		}
		c.info(f.name + " log created")
	}

	if ok {
		c.info("successfully booted")
	} else {
		c.info("failed to boot")
	}
	c.state = domain.ConsoleReady
}

func (c *Console) appendLine(path, line string) (err error) {
	w, err := c.fs.OpenAppend(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()

	_, err = io.WriteString(w, line)
	return err
}

func (c *Console) info(msg string) {
	if c.cfg.Verbose {
		c.out.Info(msg)
	}
}

func (c *Console) warn(msg string) {
	if c.cfg.Verbose {
		c.errOut.Warn(msg)
	}
}

func (c *Console) critical(err error) {
	c.errOut.Error(err)
}
