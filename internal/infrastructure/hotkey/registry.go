// Package hotkey implements port.HotkeyRegistry on top of an OS Backend.
package hotkey

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
)

const eventBuffer = 16

type entry struct {
	grab       Grab
	mods       entity.Modifier
	key        entity.KeyCode
	registered bool
}

func (e *entry) combo() string {
	return entity.HotkeyID{Modifiers: e.mods, Key: e.key}.Combo()
}

// Registry hands out handles for OS grabs and fans their key presses into a
// single event channel.
type Registry struct {
	backend Backend

	mu      sync.Mutex
	next    port.HotkeyHandle
	entries map[port.HotkeyHandle]*entry
	closed  bool

	events    chan port.HotkeyHandle
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewRegistry creates a registry over backend.
func NewRegistry(backend Backend) *Registry {
	return &Registry{
		backend: backend,
		entries: make(map[port.HotkeyHandle]*entry),
		events:  make(chan port.HotkeyHandle, eventBuffer),
		done:    make(chan struct{}),
	}
}

var _ port.HotkeyRegistry = (*Registry)(nil)

// Create prepares a grab for mods+key. The key is not grabbed until Register.
func (r *Registry) Create(mods entity.Modifier, key entity.KeyCode) (port.HotkeyHandle, error) {
	grab, err := r.backend.Grab(mods, key)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, errors.New("hotkey registry closed")
	}
	r.next++
	h := r.next
	r.entries[h] = &entry{grab: grab, mods: mods, key: key}
	return h, nil
}

// Register grabs the key. Registering a registered handle is a no-op.
func (r *Registry) Register(h port.HotkeyHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return fmt.Errorf("%w: %d", port.ErrUnknownHandle, h)
	}
	if e.registered {
		return nil
	}
	if err := e.grab.Register(); err != nil {
		return fmt.Errorf("%w: %s: %v", port.ErrHotkeyUnavailable, e.combo(), err)
	}
	e.registered = true

	keydown := e.grab.Keydown()
	r.wg.Add(1)
	go r.forward(h, keydown)
	return nil
}

// forward copies key presses of one registration into the event channel until
// the registration ends or the registry closes.
func (r *Registry) forward(h port.HotkeyHandle, keydown <-chan struct{}) {
	defer r.wg.Done()
	for {
		select {
		case _, ok := <-keydown:
			if !ok {
				return
			}
			select {
			case r.events <- h:
			case <-r.done:
				return
			}
		case <-r.done:
			return
		}
	}
}

// Unregister releases the grab but keeps the handle. Unregistering a handle
// that is not registered is a no-op.
func (r *Registry) Unregister(h port.HotkeyHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return fmt.Errorf("%w: %d", port.ErrUnknownHandle, h)
	}
	return r.unregisterLocked(e)
}

func (r *Registry) unregisterLocked(e *entry) error {
	if !e.registered {
		return nil
	}
	e.registered = false
	if err := e.grab.Unregister(); err != nil {
		return fmt.Errorf("unregister %s: %w", e.combo(), err)
	}
	return nil
}

// Release unregisters the handle if needed and forgets it.
func (r *Registry) Release(h port.HotkeyHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h]
	if !ok {
		return fmt.Errorf("%w: %d", port.ErrUnknownHandle, h)
	}
	delete(r.entries, h)
	return r.unregisterLocked(e)
}

// Events returns the channel of fired handles. It is closed by Close.
func (r *Registry) Events() <-chan port.HotkeyHandle {
	return r.events
}

// Registered reports whether h currently holds an OS grab.
func (r *Registry) Registered(h port.HotkeyHandle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[h]
	return ok && e.registered
}

// Close releases every handle and closes the event channel.
func (r *Registry) Close() error {
	var errs []error
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		for h, e := range r.entries {
			if err := r.unregisterLocked(e); err != nil {
				errs = append(errs, err)
			}
			delete(r.entries, h)
		}
		r.mu.Unlock()

		close(r.done)
		r.wg.Wait()
		close(r.events)
	})
	return errors.Join(errs...)
}
