package hotkey

import (
	"fmt"
	"sync"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
)

// DryRun is a Backend that accepts grabs without touching the OS. It lets a
// whkdrc be built and checked on a machine that is not running the daemon.
type DryRun struct {
	supports func(entity.KeyCode) bool
}

// NewDryRun creates a DryRun backend. When supports is non-nil, keys it
// rejects fail with port.ErrUnsupportedKey like the OS backend would.
func NewDryRun(supports func(entity.KeyCode) bool) *DryRun {
	return &DryRun{supports: supports}
}

var _ Backend = (*DryRun)(nil)

// Grab returns a grab whose key never fires.
func (b *DryRun) Grab(_ entity.Modifier, key entity.KeyCode) (Grab, error) {
	if b.supports != nil && !b.supports(key) {
		return nil, fmt.Errorf("%w: %s", port.ErrUnsupportedKey, key)
	}
	return &dryGrab{}, nil
}

type dryGrab struct {
	mu      sync.Mutex
	keydown chan struct{}
}

func (g *dryGrab) Register() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.keydown = make(chan struct{})
	return nil
}

func (g *dryGrab) Unregister() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.keydown != nil {
		close(g.keydown)
		g.keydown = nil
	}
	return nil
}

func (g *dryGrab) Keydown() <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.keydown
}
