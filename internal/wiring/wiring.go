// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scaffold/internal/adapters/config"
	_ "go.trai.ch/scaffold/internal/adapters/console"
	_ "go.trai.ch/scaffold/internal/adapters/fs"
	_ "go.trai.ch/scaffold/internal/adapters/logger"
	_ "go.trai.ch/scaffold/internal/adapters/manifest"
	_ "go.trai.ch/scaffold/internal/adapters/registry"
	_ "go.trai.ch/scaffold/internal/adapters/validator"
	_ "go.trai.ch/scaffold/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/scaffold/internal/app"
	_ "go.trai.ch/scaffold/internal/engine/inject"
)
