package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/fs"
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the configuration loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys), nil
		},
	})
}
