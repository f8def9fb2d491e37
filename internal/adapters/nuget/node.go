package nuget

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/core/ports"
)

// NodeID is the unique identifier for the version checker Graft node.
const NodeID graft.ID = "adapter.version_checker"

func init() {
	graft.Register(graft.Node[ports.VersionChecker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionChecker, error) {
			return NewChecker(), nil
		},
	})
}
