// Package bootstrap wires the whkd daemon together and runs its event loop.
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/whkd/internal/logging"
)

// StartupTimer tracks how long each startup phase took.
type StartupTimer struct {
	start  time.Time
	last   time.Time
	phases map[string]time.Duration
	order  []string
	mu     sync.Mutex
}

// NewStartupTimer creates a new timer starting from now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{
		start:  now,
		last:   now,
		phases: make(map[string]time.Duration),
	}
}

// Mark records the duration since the last mark (or start) for phase.
func (t *StartupTimer) Mark(phase string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if _, ok := t.phases[phase]; !ok {
		t.order = append(t.order, phase)
	}
	t.phases[phase] = now.Sub(t.last)
	t.last = now
}

// Phases returns the recorded phases in the order they were first marked.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// Log writes the timings at debug level.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", time.Since(t.start))
	for _, phase := range t.order {
		event = event.Dur(phase, t.phases[phase])
	}
	event.Msg("startup timing")
}
