package merge

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lade-build/lade/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/lade-build/lade/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/lade-build/lade/internal/core/ports"
)

// NodeID is the unique identifier for the merge engine Graft node.
const NodeID graft.ID = "engine.merge"

func init() {
	graft.Register(graft.Node[*Merger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Merger, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewMerger(log, tracer), nil
		},
	})
}
