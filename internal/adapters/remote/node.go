package remote

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lade-build/lade/internal/core/ports"
)

// NodeID is the unique identifier for the remote probe factory Graft node.
const NodeID graft.ID = "adapter.remote"

func init() {
	graft.Register(graft.Node[ports.ProbeFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProbeFactory, error) {
			return NewFactory(), nil
		},
	})
}
