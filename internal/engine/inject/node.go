package inject

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/registry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the injector Graft node.
const NodeID graft.ID = "engine.injector"

func init() {
	graft.Register(graft.Node[*Injector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID},
		Run: func(ctx context.Context) (*Injector, error) {
			resolver, err := graft.Dep[ports.CapabilityResolver](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver), nil
		},
	})
}
