package domain

import (
	"strings"
	"time"
)

// TimestampLayout is the layout of the timestamp written at the start of every log line.
const TimestampLayout = "02/01/2006 15:04:05"

// ModuleTag is the function tag used for lines logged from package initialization code.
const ModuleTag = "module"

// ConsoleState is the lifecycle state of a console.
type ConsoleState int

const (
	// ConsoleUninitialized is the state before the log files have been checked.
	ConsoleUninitialized ConsoleState = iota
	// ConsoleBooting is the state while the log files are being created.
	ConsoleBooting
	// ConsoleReady is the state once initialization has finished, successfully or not.
	ConsoleReady
)

func (s ConsoleState) String() string {
	switch s {
	case ConsoleUninitialized:
		return "uninitialized"
	case ConsoleBooting:
		return "booting"
	case ConsoleReady:
		return "ready"
	default:
		return "unknown"
	}
}

// LogConfig holds the paths and verbosity of a console.
type LogConfig struct {
	InfoLogPath  string
	ErrorLogPath string
	Verbose      bool
}

// LogOptions controls where a single log line is written.
type LogOptions struct {
	// Error routes the line to the error log and the standard error stream.
	Error bool
	// Critical echoes the line to the process streams even when the console is not verbose.
	Critical bool
	// Tag replaces the caller-derived tag when set.
	Tag string
}

// LogOption configures LogOptions.
type LogOption func(*LogOptions)

// AsError routes the line to the error log.
func AsError() LogOption {
	return func(o *LogOptions) {
		o.Error = true
	}
}

// AsCritical always echoes the line to the process streams.
func AsCritical() LogOption {
	return func(o *LogOptions) {
		o.Critical = true
	}
}

// WithTag sets an explicit tag instead of the caller location.
func WithTag(tag string) LogOption {
	return func(o *LogOptions) {
		o.Tag = tag
	}
}

// NewLogOptions applies opts to a zero LogOptions.
func NewLogOptions(opts ...LogOption) LogOptions {
	var o LogOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CallerTag identifies where a log line came from.
type CallerTag struct {
	File     string
	Function string
}

// FormatLogLine renders a log line: "[timestamp] [tags...] message\n".
// Empty tags are skipped.
func FormatLogLine(ts time.Time, message string, tags ...string) string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(ts.UTC().Format(TimestampLayout))
	b.WriteString("] ")
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		b.WriteString("[")
		b.WriteString(tag)
		b.WriteString("] ")
	}
	b.WriteString(message)
	b.WriteString("\n")
	return b.String()
}
