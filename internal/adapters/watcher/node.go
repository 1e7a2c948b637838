package watcher

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lade-build/lade/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"github.com/lade-build/lade/internal/core/ports"
)

// NodeID is the unique identifier for the staging watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.StagingWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.StagingWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log)
		},
	})
}
