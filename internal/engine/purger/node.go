package purger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/adapters/dotnet"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/purge/internal/adapters/linear"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/purge/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/purge/internal/core/ports"
)

// NodeID is the unique identifier for the purger Graft node.
const NodeID graft.ID = "engine.purger"

func init() {
	graft.Register(graft.Node[*Purger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			dotnet.NodeID,
			linear.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Purger, error) {
			tool, err := graft.Dep[ports.BuildTool](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(tool, reporter, tracer), nil
		},
	})
}
