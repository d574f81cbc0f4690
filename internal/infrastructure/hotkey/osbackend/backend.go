//go:build linux || windows || darwin

// Package osbackend grabs global hotkeys through golang.design/x/hotkey.
// On macOS the hotkey event loop must run on the main thread; see
// golang.design/x/hotkey/mainthread.
package osbackend

import (
	"fmt"
	"sync"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	adapter "github.com/bnema/whkd/internal/infrastructure/hotkey"
	"golang.design/x/hotkey"
)

// Backend implements hotkey.Backend for the current platform.
type Backend struct{}

// New creates a Backend.
func New() *Backend {
	return &Backend{}
}

var _ adapter.Backend = (*Backend)(nil)

// Grab maps mods+key to the platform codes.
func (*Backend) Grab(mods entity.Modifier, key entity.KeyCode) (adapter.Grab, error) {
	code, ok := lookupKey(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrUnsupportedKey, key)
	}
	list := mods.List()
	hmods := make([]hotkey.Modifier, 0, len(list))
	for _, m := range list {
		hmods = append(hmods, modifiers[m])
	}
	return &grab{hk: hotkey.New(hmods, code)}, nil
}

// Supports reports whether key has a mapping on this platform.
func Supports(key entity.KeyCode) bool {
	_, ok := lookupKey(key)
	return ok
}

type grab struct {
	hk *hotkey.Hotkey

	mu  sync.Mutex
	out chan struct{}
}

func (g *grab) Register() error {
	if err := g.hk.Register(); err != nil {
		return err
	}
	in := g.hk.Keydown()
	out := make(chan struct{})

	g.mu.Lock()
	g.out = out
	g.mu.Unlock()

	// The library closes its keydown channel on Unregister.
	go func() {
		defer close(out)
		for range in {
			out <- struct{}{}
		}
	}()
	return nil
}

func (g *grab) Unregister() error {
	return g.hk.Unregister()
}

func (g *grab) Keydown() <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.out
}
