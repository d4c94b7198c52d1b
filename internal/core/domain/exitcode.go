package domain

import "errors"

// Exit codes of the scaffold binary.
const (
	ExitOK               = 0
	ExitManifestNotFound = 1
	ExitInvalidDirectory = 2
	ExitInvalidPackage   = 3
	ExitInvalidModule    = 4
	ExitFailure          = 1
)

var exitCodes = []struct {
	err  error
	code int
}{
	{ErrManifestNotFound, ExitManifestNotFound},
	{ErrInvalidDirectory, ExitInvalidDirectory},
	{ErrInvalidPackage, ExitInvalidPackage},
	{ErrInvalidModule, ExitInvalidModule},
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, c := range exitCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ExitFailure
}
