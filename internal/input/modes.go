package input

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/logging"
)

// ErrClosed is returned by Activate after Close.
var ErrClosed = errors.New("mode manager closed")

// RegistrationError reports a hotkey the OS layer refused.
type RegistrationError struct {
	ID  entity.HotkeyID
	Err error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("hotkey %s: %v", e.ID, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// Duplicate records a binding that replaced an earlier one with the same
// identity and process filter.
type Duplicate struct {
	Previous entity.Descriptor
	Current  entity.Descriptor
}

// BuildReport lists the non-fatal problems found while building a ModeManager.
type BuildReport struct {
	Failures   []*RegistrationError
	Duplicates []Duplicate
}

// Options configures Build.
type Options struct {
	// StrictModifiers rejects unknown modifier tokens.
	StrictModifiers bool
	// OnModeChange is called after every transition, outside the lock.
	OnModeChange func(from, to string)
}

// ModeManager owns the mode table, the registration table and the current mode.
//
// The set of registered OS hotkeys always equals the live handles of the
// current mode's hotkeys. Handles are created once in Build and reused across
// transitions.
type ModeManager struct {
	registry port.HotkeyRegistry

	modeOrder []string
	modes     map[string][]entity.HotkeyID
	hotkeys   map[entity.HotkeyID]*entity.Hotkey

	handles  map[entity.HotkeyID]port.HotkeyHandle
	byHandle map[port.HotkeyHandle]entity.HotkeyID
	live     map[port.HotkeyHandle]bool

	current      string
	closed       bool
	onModeChange func(from, to string)

	mu sync.RWMutex
}

// Build normalizes bindings, groups them by mode, creates one OS handle per
// hotkey identity and registers the default mode. A normalization failure
// aborts before any handle is created; handle failures are reported in the
// BuildReport and skipped.
func Build(
	ctx context.Context,
	registry port.HotkeyRegistry,
	bindings []entity.HotkeyBinding,
	opts Options,
) (*ModeManager, BuildReport, error) {
	log := logging.FromContext(ctx)
	var report BuildReport

	descriptors, err := NewNormalizer(opts.StrictModifiers).NormalizeAll(ctx, bindings)
	if err != nil {
		return nil, report, err
	}

	m := &ModeManager{
		registry:     registry,
		modes:        make(map[string][]entity.HotkeyID),
		hotkeys:      make(map[entity.HotkeyID]*entity.Hotkey),
		handles:      make(map[entity.HotkeyID]port.HotkeyHandle),
		byHandle:     make(map[port.HotkeyHandle]entity.HotkeyID),
		live:         make(map[port.HotkeyHandle]bool),
		current:      entity.DefaultMode,
		onModeChange: opts.OnModeChange,
	}

	for _, d := range descriptors {
		id := d.ID()
		hk, ok := m.hotkeys[id]
		if !ok {
			hk = &entity.Hotkey{ID: id}
			m.hotkeys[id] = hk
			if _, seen := m.modes[id.Mode]; !seen {
				m.modeOrder = append(m.modeOrder, id.Mode)
			}
			m.modes[id.Mode] = append(m.modes[id.Mode], id)
		}

		previous := hk.Direct
		if d.ProcessName != "" {
			previous = nil
			for i := range hk.PerProcess {
				if hk.PerProcess[i].ProcessName == d.ProcessName {
					previous = &hk.PerProcess[i]
				}
			}
		}
		if previous != nil {
			dup := Duplicate{Previous: *previous, Current: d}
			report.Duplicates = append(report.Duplicates, dup)
			log.Warn().
				Str("hotkey", id.String()).
				Str("process", d.ProcessName).
				Str("previous", previous.Command).
				Str("current", d.Command).
				Msg("duplicate binding, later one wins")
		}
		hk.Add(d)
	}

	for _, mode := range m.modeOrder {
		for _, id := range m.modes[mode] {
			h, err := registry.Create(id.Modifiers, id.Key)
			if err != nil {
				regErr := &RegistrationError{ID: id, Err: err}
				report.Failures = append(report.Failures, regErr)
				log.Warn().Err(err).Str("hotkey", id.String()).Msg("cannot create hotkey")
				continue
			}
			m.handles[id] = h
			m.byHandle[h] = id
		}
	}

	m.mu.Lock()
	report.Failures = append(report.Failures, m.registerLocked(ctx, entity.DefaultMode)...)
	m.mu.Unlock()

	log.Debug().
		Int("bindings", len(bindings)).
		Int("hotkeys", len(m.hotkeys)).
		Int("modes", len(m.modeOrder)).
		Int("failures", len(report.Failures)).
		Msg("built mode table")

	return m, report, nil
}

// Activate switches to mode. Every live handle of the current mode is
// unregistered, then every handle of the target mode is registered, under one
// write lock. A mode without bindings is valid and leaves nothing registered.
// Refused registrations are logged and left out of the live set; unregister
// failures are returned.
func (m *ModeManager) Activate(ctx context.Context, mode string) error {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}

	from := m.current
	errs := m.unregisterLocked(ctx, from)
	m.current = mode
	m.registerLocked(ctx, mode)
	liveCount := len(m.live)
	cb := m.onModeChange
	m.mu.Unlock()

	log.Debug().
		Str("from", entity.DisplayMode(from)).
		Str("to", entity.DisplayMode(mode)).
		Int("live", liveCount).
		Msg("activated mode")

	if cb != nil && from != mode {
		cb(from, mode)
	}
	return errors.Join(errs...)
}

// registerLocked registers every handle of mode. Must be called with m.mu held.
func (m *ModeManager) registerLocked(ctx context.Context, mode string) []*RegistrationError {
	log := logging.FromContext(ctx)
	var failures []*RegistrationError
	for _, id := range m.modes[mode] {
		h, ok := m.handles[id]
		if !ok {
			continue
		}
		if err := m.registry.Register(h); err != nil {
			failures = append(failures, &RegistrationError{ID: id, Err: err})
			log.Warn().Err(err).Str("hotkey", id.String()).Msg("cannot register hotkey")
			continue
		}
		m.live[h] = true
	}
	return failures
}

// unregisterLocked unregisters every live handle of mode. Must be called with m.mu held.
func (m *ModeManager) unregisterLocked(ctx context.Context, mode string) []error {
	log := logging.FromContext(ctx)
	var errs []error
	for _, id := range m.modes[mode] {
		h, ok := m.handles[id]
		if !ok || !m.live[h] {
			continue
		}
		delete(m.live, h)
		if err := m.registry.Unregister(h); err != nil {
			errs = append(errs, &RegistrationError{ID: id, Err: err})
			log.Error().Err(err).Str("hotkey", id.String()).Msg("cannot unregister hotkey")
		}
	}
	return errs
}

// Lookup resolves a fired handle to its hotkey.
func (m *ModeManager) Lookup(h port.HotkeyHandle) (entity.Hotkey, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byHandle[h]
	if !ok || m.closed {
		return entity.Hotkey{}, false
	}
	return *m.hotkeys[id], true
}

// Mode returns the current mode.
func (m *ModeManager) Mode() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Live returns the handles currently registered with the OS, sorted.
func (m *ModeManager) Live() []port.HotkeyHandle {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]port.HotkeyHandle, 0, len(m.live))
	for h := range m.live {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}

// Handles returns the created handles of mode, sorted.
func (m *ModeManager) Handles(mode string) []port.HotkeyHandle {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []port.HotkeyHandle
	for _, id := range m.modes[mode] {
		if h, ok := m.handles[id]; ok {
			out = append(out, h)
		}
	}
	slices.Sort(out)
	return out
}

// Hotkeys returns the hotkeys of mode in first-binding order.
func (m *ModeManager) Hotkeys(mode string) []entity.Hotkey {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.Hotkey, 0, len(m.modes[mode]))
	for _, id := range m.modes[mode] {
		out = append(out, *m.hotkeys[id])
	}
	return out
}

// Descriptors returns every descriptor of mode.
func (m *ModeManager) Descriptors(mode string) []entity.Descriptor {
	var out []entity.Descriptor
	for _, hk := range m.Hotkeys(mode) {
		out = append(out, hk.Descriptors()...)
	}
	return out
}

// Modes returns every mode with at least one binding, in first-seen order.
func (m *ModeManager) Modes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.modeOrder)
}

// SetOnModeChange sets the callback for mode changes.
// The callback is invoked after the lock is released.
func (m *ModeManager) SetOnModeChange(fn func(from, to string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onModeChange = fn
}

// Close unregisters every live handle and releases all handles. Lookup and
// Activate fail afterwards.
func (m *ModeManager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	errs := m.unregisterLocked(ctx, m.current)
	for id, h := range m.handles {
		if err := m.registry.Release(h); err != nil {
			errs = append(errs, &RegistrationError{ID: id, Err: err})
		}
	}
	clear(m.live)

	logging.FromContext(ctx).Debug().Int("hotkeys", len(m.handles)).Msg("released hotkeys")
	return errors.Join(errs...)
}
