package ports

import (
	"context"

	"go.trai.ch/scaffold/internal/core/domain"
)

// Console is a logging facade backed by an info log and an error log.
// None of its methods fail: problems are reported on its own diagnostic channel.
//
//go:generate mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
type Console interface {
	// Log appends message to the info log, or the error log when domain.AsError is given.
	Log(message string, opts ...domain.LogOption)

	// ClearLogs deletes both log files and creates them again.
	ClearLogs()

	// State returns the lifecycle state of the console.
	State() domain.ConsoleState
}

// ConsoleFactory opens consoles for a log configuration.
type ConsoleFactory interface {
	Open(ctx context.Context, cfg domain.LogConfig) (Console, error)
}
