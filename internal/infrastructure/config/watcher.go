package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/whkd/internal/logging"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reports changes to one file. It watches the parent directory so
// editors that save by rename are still seen.
type Watcher struct {
	path      string
	debounce  time.Duration
	fsWatcher *fsnotify.Watcher

	mu        sync.Mutex
	callbacks []func()
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:      abs,
		debounce:  defaultDebounce,
		fsWatcher: fsWatcher,
	}, nil
}

// OnChange registers a callback run after the file settles.
func (w *Watcher) OnChange(callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run delivers change notifications until ctx is done, then closes the watcher.
// Bursts of events within the debounce window produce one notification.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	defer func() {
		if err := w.fsWatcher.Close(); err != nil {
			log.Debug().Err(err).Msg("failed to close fsnotify watcher")
		}
	}()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("fsnotify whkdrc change detected")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.notify()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("fsnotify watcher error")
		}
	}
}

// notify copies the callbacks and calls them without holding the lock.
func (w *Watcher) notify() {
	w.mu.Lock()
	callbacks := make([]func(), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}
