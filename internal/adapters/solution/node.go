package solution

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/core/ports"
)

// NodeID is the unique identifier for the solution reader Graft node.
const NodeID graft.ID = "adapter.solution_reader"

func init() {
	graft.Register(graft.Node[ports.SolutionReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SolutionReader, error) {
			return NewReader(), nil
		},
	})
}
