package input

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeCombo struct {
	mods entity.Modifier
	key  entity.KeyCode
}

// fakeRegistry is an in-memory port.HotkeyRegistry that records OS state.
type fakeRegistry struct {
	mu sync.Mutex

	next       port.HotkeyHandle
	combos     map[port.HotkeyHandle]fakeCombo
	registered map[port.HotkeyHandle]bool
	released   map[port.HotkeyHandle]bool

	refuseCreate   map[entity.KeyCode]bool
	refuseRegister map[entity.KeyCode]bool

	creates   int
	registers int
	events    chan port.HotkeyHandle
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		combos:         make(map[port.HotkeyHandle]fakeCombo),
		registered:     make(map[port.HotkeyHandle]bool),
		released:       make(map[port.HotkeyHandle]bool),
		refuseCreate:   make(map[entity.KeyCode]bool),
		refuseRegister: make(map[entity.KeyCode]bool),
		events:         make(chan port.HotkeyHandle, 16),
	}
}

func (f *fakeRegistry) Create(mods entity.Modifier, key entity.KeyCode) (port.HotkeyHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.refuseCreate[key] {
		return 0, port.ErrUnsupportedKey
	}
	f.next++
	f.combos[f.next] = fakeCombo{mods: mods, key: key}
	return f.next, nil
}

func (f *fakeRegistry) Register(h port.HotkeyHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.combos[h]
	if !ok || f.released[h] {
		return port.ErrUnknownHandle
	}
	if f.refuseRegister[c.key] {
		return port.ErrHotkeyUnavailable
	}
	f.registers++
	f.registered[h] = true
	return nil
}

func (f *fakeRegistry) Unregister(h port.HotkeyHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.combos[h]; !ok {
		return port.ErrUnknownHandle
	}
	delete(f.registered, h)
	return nil
}

func (f *fakeRegistry) Release(h port.HotkeyHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.registered, h)
	f.released[h] = true
	return nil
}

func (f *fakeRegistry) Events() <-chan port.HotkeyHandle {
	return f.events
}

// Registered returns the handles the fake OS currently holds, sorted.
func (f *fakeRegistry) Registered() []port.HotkeyHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]port.HotkeyHandle, 0, len(f.registered))
	for h := range f.registered {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

func (f *fakeRegistry) Combo(h port.HotkeyHandle) fakeCombo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.combos[h]
}

// Accepts reports whether the fake OS would grant a registration of h.
func (f *fakeRegistry) Accepts(h port.HotkeyHandle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.combos[h]
	return ok && !f.released[h] && !f.refuseRegister[c.key]
}
