package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "scaffold.yaml"

	// ManifestFileName is the default name of the dependency manifest.
	ManifestFileName = "dependencies.txt"

	// LogDirName is the default name of the log directory.
	LogDirName = "logs"

	// InfoLogFile is the default name of the info log.
	InfoLogFile = "info.log"

	// ErrorLogFile is the default name of the error log.
	ErrorLogFile = "errors.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Resource names understood by Definitions.Resource.
const (
	ResourceRoot     = "root"
	ResourceLog      = "log"
	ResourceErrorLog = "error log"
	ResourceInfoLog  = "info log"
)

// Definitions holds the absolute resource paths of a project.
type Definitions struct {
	Root     string
	LogDir   string
	InfoLog  string
	ErrorLog string
}

// NewDefinitions returns the default definitions for a project rooted at root.
func NewDefinitions(root string) Definitions {
	logDir := filepath.Join(root, LogDirName)
	return Definitions{
		Root:     root,
		LogDir:   logDir,
		InfoLog:  filepath.Join(logDir, InfoLogFile),
		ErrorLog: filepath.Join(logDir, ErrorLogFile),
	}
}

// Resource returns the path registered under name. Lookup is case-insensitive.
func (d Definitions) Resource(name string) (string, error) {
	if name == "" {
		return "", ErrMissingResourceName
	}

	switch strings.ToLower(name) {
	case ResourceRoot:
		return d.Root, nil
	case ResourceLog:
		return d.LogDir, nil
	case ResourceErrorLog:
		return d.ErrorLog, nil
	case ResourceInfoLog:
		return d.InfoLog, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrResourceNotFound, "resource "+name+" not found"), "resource", name)
	}
}

// LogConfig returns the console configuration for these definitions.
func (d Definitions) LogConfig(verbose bool) LogConfig {
	return LogConfig{
		InfoLogPath:  d.InfoLog,
		ErrorLogPath: d.ErrorLog,
		Verbose:      verbose,
	}
}
