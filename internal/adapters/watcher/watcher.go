// Package watcher implements staging directory watching for the
// reconcile watch mode.
package watcher

import (
	"context"
	"fmt"
	"iter"

	"github.com/fsnotify/fsnotify"

	"github.com/lade-build/lade/internal/core/ports"
)

var _ ports.StagingWatcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements staging directory watching using fsnotify. The
// staging layout is flat, so only the root itself is watched.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	events    chan ports.WatchEvent
}

// NewWatcher creates a new staging directory watcher.
func NewWatcher(logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given staging directory. The directory must
// exist before the watch starts.
func (w *Watcher) Start(ctx context.Context, root string) error {
	if err := w.fsWatcher.Add(root); err != nil {
		return err
	}
	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events. The iterator ends
// when the watcher stops or its context is canceled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// processEvents converts raw fsnotify events into WatchEvents until the
// context is canceled or the watcher closes.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("staging watch error: %v", err))
		}
	}
}

// convertEvent maps an fsnotify event onto a WatchEvent. Chmod-only
// events are dropped.
func convertEvent(event fsnotify.Event) *ports.WatchEvent {
	switch {
	case event.Op.Has(fsnotify.Write):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpWrite}
	case event.Op.Has(fsnotify.Create):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpCreate}
	case event.Op.Has(fsnotify.Remove):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpRemove}
	case event.Op.Has(fsnotify.Rename):
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpRename}
	default:
		return nil
	}
}
