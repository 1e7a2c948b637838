package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/lade-build/lade/internal/adapters/catalog"   //nolint:depguard // Wired in app layer
	"github.com/lade-build/lade/internal/adapters/compiler"  //nolint:depguard // Wired in app layer
	"github.com/lade-build/lade/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/lade-build/lade/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/lade-build/lade/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/lade-build/lade/internal/adapters/remote"    //nolint:depguard // Wired in app layer
	"github.com/lade-build/lade/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/lade-build/lade/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/lade-build/lade/internal/core/ports"
	"github.com/lade-build/lade/internal/engine/merge"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			compiler.NodeID,
			merge.NodeID,
			catalog.NodeID,
			fs.StagerNodeID,
			remote.NodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	compilers, err := graft.Dep[ports.CompilerFactory](ctx)
	if err != nil {
		return nil, err
	}

	merger, err := graft.Dep[*merge.Merger](ctx)
	if err != nil {
		return nil, err
	}

	catalogStore, err := graft.Dep[ports.CatalogStore](ctx)
	if err != nil {
		return nil, err
	}

	stager, err := graft.Dep[ports.Stager](ctx)
	if err != nil {
		return nil, err
	}

	probes, err := graft.Dep[ports.ProbeFactory](ctx)
	if err != nil {
		return nil, err
	}

	stagingWatcher, err := graft.Dep[ports.StagingWatcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, compilers, merger, catalogStore, stager, probes, stagingWatcher, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
