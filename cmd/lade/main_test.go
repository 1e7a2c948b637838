package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/lade-build/lade/internal/adapters/telemetry"
	"github.com/lade-build/lade/internal/app"
	"github.com/lade-build/lade/internal/core/domain"
	"github.com/lade-build/lade/internal/core/ports"
	"github.com/lade-build/lade/internal/core/ports/mocks"
	"github.com/lade-build/lade/internal/engine/merge"
	"go.uber.org/mock/gomock"
)

// mainMocks bundles the port mocks behind the test components.
type mainMocks struct {
	loader    *mocks.MockConfigLoader
	compilers *mocks.MockCompilerFactory
	catalog   *mocks.MockCatalogStore
	stager    *mocks.MockStager
	probes    *mocks.MockProbeFactory
	watcher   *mocks.MockStagingWatcher
	logger    *mocks.MockLogger
}

func newTestComponents(ctrl *gomock.Controller) (*app.Components, mainMocks) {
	m := mainMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		compilers: mocks.NewMockCompilerFactory(ctrl),
		catalog:   mocks.NewMockCatalogStore(ctrl),
		stager:    mocks.NewMockStager(ctrl),
		probes:    mocks.NewMockProbeFactory(ctrl),
		watcher:   mocks.NewMockStagingWatcher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	tracer := telemetry.NewNoOpTracer()
	application := app.New(
		m.loader,
		m.compilers,
		merge.NewMerger(m.logger, tracer),
		m.catalog,
		m.stager,
		m.probes,
		m.watcher,
		m.logger,
		tracer,
	)
	return &app.Components{App: application, Logger: m.logger}, m
}

func mustHash(t *testing.T, s string) domain.Hash {
	t.Helper()
	hash, err := domain.ParseHash(s)
	if err != nil {
		t.Fatalf("parse hash %q: %v", s, err)
	}
	return hash
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 1. Create real app over mocked ports
	components, _ := newTestComponents(ctrl)

	// 2. Define Provider
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	// 3. Capture Stderr
	stderr := new(bytes.Buffer)

	// 4. Run with "version" command
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, m := newTestComponents(ctrl)
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	// Mock Load failing to simulate execution failure
	m.loader.EXPECT().Load("").Return(nil, errors.New("load failed"))

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"clean"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_UnresolvedProbesExitQuietly verifies that unresolved probes exit
// with code 1 without a second error report. The strict logger mock carries
// no Error expectation, so any Error call fails the test.
func TestRun_UnresolvedProbesExitQuietly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, m := newTestComponents(ctrl)
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	// A short retry delay keeps the real retry loop fast.
	project := &domain.Project{
		Name:        "cool-game",
		OutputDir:   "Build/Bundles",
		StagingDir:  "Build/Staging",
		CatalogPath: "Build/bundles.json",
		Remote: domain.RemoteSettings{
			URL:         "https://cdn.example.com/bundles",
			Concurrency: 1,
			MaxRetries:  1,
			RetryDelay:  time.Millisecond,
		},
	}
	m.loader.EXPECT().Load("").Return(project, nil)

	staged := []domain.StagedBundle{
		{Name: "audio", Platform: domain.PlatformAndroid, Hash: mustHash(t, "8899aabbccddeeff")},
	}
	m.stager.EXPECT().List(project.StagingDir).Return(staged, nil)

	probe := mocks.NewMockExistenceProbe(ctrl)
	m.probes.EXPECT().NewProbe(project.Remote).Return(probe, nil)
	probe.EXPECT().Probe(gomock.Any(), staged[0].FileName()).
		Return(ports.ProbeIndeterminate, errors.New("connection refused")).
		Times(2)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"reconcile"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, m := newTestComponents(ctrl)
	// Allow logging of the error when context is canceled
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	// We need a loader that blocks until the context is done.
	blockCh := make(chan struct{})
	m.loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.Project, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"merge"}, io.Discard, func(context.Context) (*app.Components, func(), error) {
			return components, func() {}, nil
		})
	}()

	// Wait a bit to ensure run() reaches Load()
	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
