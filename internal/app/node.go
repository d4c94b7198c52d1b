package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/console"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/validator" //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/scaffold/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			validator.NodeID,
			manifest.NodeID,
			console.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	v, err := graft.Dep[ports.StructureValidator](ctx)
	if err != nil {
		return nil, err
	}
	parser, err := graft.Dep[ports.ManifestParser](ctx)
	if err != nil {
		return nil, err
	}
	consoles, err := graft.Dep[ports.ConsoleFactory](ctx)
	if err != nil {
		return nil, err
	}
	follower, err := graft.Dep[ports.LogFollower](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, v, parser, consoles, follower, log), nil
}
