// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/lade-build/lade/internal/adapters/catalog"
	_ "github.com/lade-build/lade/internal/adapters/compiler"
	_ "github.com/lade-build/lade/internal/adapters/config"
	_ "github.com/lade-build/lade/internal/adapters/fs"
	_ "github.com/lade-build/lade/internal/adapters/logger"
	_ "github.com/lade-build/lade/internal/adapters/remote"
	_ "github.com/lade-build/lade/internal/adapters/telemetry"
	_ "github.com/lade-build/lade/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/lade-build/lade/internal/app"
	_ "github.com/lade-build/lade/internal/engine/merge"
)
