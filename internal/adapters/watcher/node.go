package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the log follower Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.LogFollower]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LogFollower, error) {
			return NewFollower(), nil
		},
	})
}
