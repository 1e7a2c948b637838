package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lade-build/lade/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received []string

		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			callCount++
			received = paths
		})

		// A burst of events, including duplicates, inside one window.
		d.Add("staging/audio_Android_8899aabbccddeeff.bundle")
		d.Add("staging/characters_WindowsPlayer_0011223344556677.bundle")
		d.Add("staging/audio_Android_8899aabbccddeeff.bundle")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Len(t, received, 2)
		assert.Contains(t, received, "staging/audio_Android_8899aabbccddeeff.bundle")
		assert.Contains(t, received, "staging/characters_WindowsPlayer_0011223344556677.bundle")
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var callCount int

		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		d.Add("staging/a.bundle")
		time.Sleep(30 * time.Millisecond)

		// Still inside the first window, so this restarts it.
		d.Add("staging/b.bundle")
		time.Sleep(30 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count := callCount
		mu.Unlock()
		assert.Equal(t, 0, count, "callback fired before the restarted window expired")

		time.Sleep(30 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count = callCount
		mu.Unlock()
		require.Equal(t, 1, count)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received []string

		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			callCount++
			received = paths
		})

		d.Add("staging/audio_Android_8899aabbccddeeff.bundle")
		d.Flush()

		// Flush is synchronous.
		require.Equal(t, 1, callCount)
		require.Len(t, received, 1)

		// The original timer must not deliver the same batch again.
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
		callCount++
	})

	d.Flush()
	assert.Equal(t, 0, callCount)
}

func TestDebouncer_ReusableAfterFlush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received []string

		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			callCount++
			received = paths
		})

		d.Add("staging/a.bundle")
		d.Flush()
		require.Equal(t, 1, callCount)

		d.Add("staging/b.bundle")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 2, callCount)
		assert.Equal(t, []string{"staging/b.bundle"}, received)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("staging/a.bundle")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Flush()
	})
}
