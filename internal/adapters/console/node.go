package console

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/scaffold/internal/engine/inject"
)

// NodeID is the unique identifier for the console factory Graft node.
const NodeID graft.ID = "adapter.console"

func init() {
	graft.Register(graft.Node[ports.ConsoleFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{inject.NodeID},
		Run: func(ctx context.Context) (ports.ConsoleFactory, error) {
			injector, err := graft.Dep[*inject.Injector](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(injector), nil
		},
	})
}
