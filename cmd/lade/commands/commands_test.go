package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lade-build/lade/cmd/lade/commands"
	"github.com/lade-build/lade/internal/app"
	"github.com/lade-build/lade/internal/build"
)

type mockApp struct {
	mergeFunc     func(ctx context.Context, opts app.MergeOptions) error
	reconcileFunc func(ctx context.Context, opts app.ReconcileOptions) error
	cleanFunc     func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Merge(ctx context.Context, opts app.MergeOptions) error {
	if m.mergeFunc != nil {
		return m.mergeFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Reconcile(ctx context.Context, opts app.ReconcileOptions) error {
	if m.reconcileFunc != nil {
		return m.reconcileFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

// fakeLogger records the JSON mode switch the CLI applies.
type fakeLogger struct {
	json bool
}

func (l *fakeLogger) Info(_ string)       {}
func (l *fakeLogger) Warn(_ string)       {}
func (l *fakeLogger) Error(_ error)       {}
func (l *fakeLogger) SetJSON(enable bool) { l.json = enable }

func TestCommands_Merge(t *testing.T) {
	t.Run("wires config path", func(t *testing.T) {
		var capturedOpts app.MergeOptions
		called := false

		mock := &mockApp{
			mergeFunc: func(_ context.Context, opts app.MergeOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"merge", "-c", "configs/lade.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "configs/lade.yaml", capturedOpts.ConfigPath)
	})

	t.Run("returns error on merge failure", func(t *testing.T) {
		mock := &mockApp{
			mergeFunc: func(_ context.Context, _ app.MergeOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"merge"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Reconcile(t *testing.T) {
	t.Run("wires watch flag", func(t *testing.T) {
		var capturedOpts app.ReconcileOptions
		called := false

		mock := &mockApp{
			reconcileFunc: func(_ context.Context, opts app.ReconcileOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"reconcile", "--watch"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, capturedOpts.Watch)
	})

	t.Run("watch defaults to off", func(t *testing.T) {
		var capturedOpts app.ReconcileOptions

		mock := &mockApp{
			reconcileFunc: func(_ context.Context, opts app.ReconcileOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock, &fakeLogger{})
		cli.SetArgs([]string{"reconcile"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, capturedOpts.Watch)
	})
}

func TestCommands_Clean(t *testing.T) {
	var capturedOpts app.CleanOptions
	called := false

	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			capturedOpts = opts
			called = true
			return nil
		},
	}

	cli := commands.New(mock, &fakeLogger{})
	cli.SetArgs([]string{"clean", "--config", "other.yaml"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "other.yaml", capturedOpts.ConfigPath)
}

func TestCommands_JSONFlag(t *testing.T) {
	t.Run("switches the logger to JSON", func(t *testing.T) {
		log := &fakeLogger{}
		cli := commands.New(&mockApp{}, log)
		cli.SetArgs([]string{"--json", "clean"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, log.json)
	})

	t.Run("pretty output stays the default", func(t *testing.T) {
		log := &fakeLogger{}
		cli := commands.New(&mockApp{}, log)
		cli.SetArgs([]string{"clean"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, log.json)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock, &fakeLogger{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
