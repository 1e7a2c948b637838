// Package app implements the application layer for lade.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/lade-build/lade/internal/adapters/watcher"
	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
	"github.com/lade-build/lade/internal/engine/merge"
	"github.com/lade-build/lade/internal/engine/reconcile"
)

// App represents the main application logic. Each operation is a thin
// orchestration over the ports and engines: load the project, run the
// pipeline step, report the outcome.
type App struct {
	configLoader ports.ConfigLoader
	compilers    ports.CompilerFactory
	merger       *merge.Merger
	catalog      ports.CatalogStore
	stager       ports.Stager
	probes       ports.ProbeFactory
	watcher      ports.StagingWatcher
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	compilers ports.CompilerFactory,
	merger *merge.Merger,
	catalog ports.CatalogStore,
	stager ports.Stager,
	probes ports.ProbeFactory,
	stagingWatcher ports.StagingWatcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		compilers:    compilers,
		merger:       merger,
		catalog:      catalog,
		stager:       stager,
		probes:       probes,
		watcher:      stagingWatcher,
		logger:       log,
		tracer:       tracer,
	}
}

// MergeOptions configuration for the Merge method.
type MergeOptions struct {
	// ConfigPath is the project configuration file to load. Empty means
	// the default lade.yaml lookup.
	ConfigPath string
}

// Merge folds the compiler output manifests into the catalog and stages
// the built bundle files for upload. Per-bundle and per-file failures
// are collected and returned joined; everything that could be merged
// and staged still is.
func (a *App) Merge(ctx context.Context, opts MergeOptions) error {
	project, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	compiler := a.compilers.NewCompiler(project.OutputDir)
	manifests, err := compiler.BuildMany(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, "failed to read compiler output")
	}

	result, mergeErr := a.merger.Merge(ctx, manifests)

	catalog, err := a.catalog.Replace(project.CatalogPath, result.Bundles)
	if err != nil {
		return errors.Join(mergeErr, zerr.Wrap(err, "failed to update catalog"))
	}

	staged, stageErr := a.stager.Stage(project.OutputDir, project.StagingDir, result.Bundles)

	a.logger.Info(fmt.Sprintf("catalog %s now tracks %d bundles (%d updated), %d files staged",
		project.CatalogPath, len(catalog), len(result.Bundles), len(staged)))

	return errors.Join(mergeErr, stageErr)
}

// ReconcileOptions configuration for the Reconcile method.
type ReconcileOptions struct {
	// ConfigPath is the project configuration file to load. Empty means
	// the default lade.yaml lookup.
	ConfigPath string

	// Watch keeps the process running and re-reconciles after every
	// coalesced change window in the staging directory.
	Watch bool
}

// Reconcile determines which staged bundles still need to be uploaded
// to the remote store. A non-empty upload set is a normal outcome; the
// returned error is non-nil only for unresolved probes or hard
// failures.
func (a *App) Reconcile(ctx context.Context, opts ReconcileOptions) error {
	project, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	probe, err := a.probes.NewProbe(project.Remote)
	if err != nil {
		return zerr.Wrap(err, "failed to open remote store probe")
	}

	engine := reconcile.NewEngine(probe, a.logger, a.tracer, reconcile.Config{
		Concurrency: project.Remote.Concurrency,
		MaxRetries:  project.Remote.MaxRetries,
		RetryDelay:  project.Remote.RetryDelay,
	})

	if opts.Watch {
		return a.watchAndReconcile(ctx, engine, project.StagingDir)
	}
	return a.reconcileOnce(ctx, engine, project.StagingDir)
}

// reconcileOnce runs a single blocking reconciliation pass.
func (a *App) reconcileOnce(ctx context.Context, engine *reconcile.Engine, stagingDir string) error {
	report := engine.Reconcile(ctx, a.listStaged(stagingDir))
	a.logger.Info(report.Summary())

	var errs error
	if report.Err != nil {
		errs = errors.Join(errs, report.Err)
	}
	for _, unresolved := range report.Unresolved {
		errs = errors.Join(errs, unresolved)
	}
	return errs
}

// watchAndReconcile keeps reconciling until the context is cancelled.
// Staging directory events are debounced; changes landing while a pass
// is running coalesce into a single follow-up pass.
func (a *App) watchAndReconcile(ctx context.Context, engine *reconcile.Engine, stagingDir string) error {
	// fsnotify needs the directory to exist before it can be watched.
	if err := os.MkdirAll(stagingDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create staging directory")
	}

	g, ctx := errgroup.WithContext(ctx)

	// The buffered trigger keeps passes sequential.
	trigger := make(chan struct{}, 1)
	kick := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		if ctx.Err() != nil {
			return
		}
		a.logger.Info(fmt.Sprintf("staging changed (%d files), scheduling reconciliation", len(paths)))
		kick()
	})

	if err := a.watcher.Start(ctx, stagingDir); err != nil {
		return zerr.Wrap(err, "failed to watch staging directory")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info(fmt.Sprintf("watching %s for staged bundle changes", stagingDir))

	// Event routine: feeds changes into the debouncer until the
	// watcher shuts down.
	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	// Pass routine: one reconciliation at a time. Unresolved probes
	// are reported in the summary and the watch keeps running.
	g.Go(func() error {
		kick() // initial pass before the first change
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-trigger:
			}

			report := engine.Reconcile(ctx, a.listStaged(stagingDir))
			a.logger.Info(report.Summary())
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// listStaged reads the staging directory, logging files that do not
// carry a canonical bundle file name instead of failing the pass.
func (a *App) listStaged(stagingDir string) []domain.StagedBundle {
	staged, badFiles := a.stager.List(stagingDir)
	for _, err := range badFiles {
		a.logger.Warn(fmt.Sprintf("skipping staged file: %v", err))
	}
	return staged
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// ConfigPath is the project configuration file to load. Empty means
	// the default lade.yaml lookup.
	ConfigPath string
}

// Clean removes the staged bundle files and the persisted catalog.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	project, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error

	// Helper to remove a path and log the action
	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(project.StagingDir, "staging directory")
	remove(project.CatalogPath, "bundle catalog")

	return errs
}
