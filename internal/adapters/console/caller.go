package console

import (
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/scaffold/internal/core/domain"
)

var callerTagFunc = callerTag

// callerTag describes the function skip frames above its own caller.
func callerTag(skip int) (domain.CallerTag, bool) {
	pc, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return domain.CallerTag{}, false
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return domain.CallerTag{}, false
	}

	return domain.CallerTag{
		File:     filepath.Base(file),
		Function: functionName(fn.Name()),
	}, true
}

// functionName strips the import path and package from a runtime function name.
// Package initialization code, including package-level variable initializers,
// is reported as domain.ModuleTag.
func functionName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	if full == "init" || strings.HasPrefix(full, "init.") {
		return domain.ModuleTag
	}
	return full
}
