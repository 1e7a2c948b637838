package catalog

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lade-build/lade/internal/core/ports"
)

// NodeID is the unique identifier for the catalog store Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.CatalogStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CatalogStore, error) {
			return NewStore(), nil
		},
	})
}
