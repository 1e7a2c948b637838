package compiler

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lade-build/lade/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"github.com/lade-build/lade/internal/core/ports"
)

// NodeID is the unique identifier for the compiler factory Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.CompilerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.CompilerFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(NewLoader(log)), nil
		},
	})
}
