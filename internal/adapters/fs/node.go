package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lade-build/lade/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the file hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// StagerNodeID is the unique identifier for the stager Graft node.
	StagerNodeID graft.ID = "adapter.fs.stager"
)

func init() {
	// Hasher node (concrete implementation needed by Stager)
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Stager]{
		ID:        StagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.Stager, error) {
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewStager(hasher), nil
		},
	})
}
