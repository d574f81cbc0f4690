package entity

import (
	"errors"
	"strings"
)

// ErrInvalidDescriptor is returned when a descriptor has no trigger key or no effect.
var ErrInvalidDescriptor = errors.New("invalid hotkey descriptor")

// Modifier is a bit set of the modifier keys held with a trigger key.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

// ModNone is the empty modifier set.
const ModNone Modifier = 0

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModShift, "shift"},
	{ModSuper, "super"},
}

// Has reports whether every bit of o is set in m.
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// List returns the individual modifiers in canonical order.
func (m Modifier) List() []Modifier {
	var out []Modifier
	for _, mn := range modifierNames {
		if m.Has(mn.mod) {
			out = append(out, mn.mod)
		}
	}
	return out
}

func (m Modifier) String() string {
	parts := make([]string, 0, len(modifierNames))
	for _, mn := range modifierNames {
		if m.Has(mn.mod) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}

// KeyCode is a trigger key in W3C UI Events "code" spelling (KeyA, Digit1, F5).
type KeyCode string

// HotkeyID identifies a registrable hotkey. It is comparable and used as a map key.
type HotkeyID struct {
	Mode      string
	Modifiers Modifier
	Key       KeyCode
}

// Combo renders the modifiers and key, e.g. "alt+shift+KeyH".
func (id HotkeyID) Combo() string {
	if id.Modifiers == ModNone {
		return string(id.Key)
	}
	return id.Modifiers.String() + "+" + string(id.Key)
}

func (id HotkeyID) String() string {
	return DisplayMode(id.Mode) + ": " + id.Combo()
}

// Descriptor is a binding in canonical form.
type Descriptor struct {
	HotkeyID
	Command     string
	Action      ModeAction
	ProcessName string
}

// ID returns the identity of the descriptor. Two descriptors with the same ID
// claim the same OS hotkey in the same mode.
func (d Descriptor) ID() HotkeyID {
	return d.HotkeyID
}

// HasCommand reports whether the descriptor forwards a command to the shell.
func (d Descriptor) HasCommand() bool {
	return d.Command != ""
}

// Validate checks that the descriptor has a key and does something.
func (d Descriptor) Validate() error {
	if d.Key == "" {
		return ErrInvalidDescriptor
	}
	if d.Command == "" && !d.Action.Set {
		return ErrInvalidDescriptor
	}
	return nil
}

// Hotkey groups every descriptor that shares one identity.
type Hotkey struct {
	ID HotkeyID
	// Direct is the binding without a process filter, nil if none.
	Direct *Descriptor
	// PerProcess holds the process-filtered bindings in document order.
	PerProcess []Descriptor
}

// Add merges d into the hotkey. It reports whether d replaced an existing
// descriptor with the same process filter.
func (h *Hotkey) Add(d Descriptor) (replaced bool) {
	if d.ProcessName == "" {
		replaced = h.Direct != nil
		dd := d
		h.Direct = &dd
		return replaced
	}
	for i := range h.PerProcess {
		if h.PerProcess[i].ProcessName == d.ProcessName {
			h.PerProcess[i] = d
			return true
		}
	}
	h.PerProcess = append(h.PerProcess, d)
	return false
}

// Descriptors returns the per-process descriptors followed by the direct one.
func (h Hotkey) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(h.PerProcess)+1)
	out = append(out, h.PerProcess...)
	if h.Direct != nil {
		out = append(out, *h.Direct)
	}
	return out
}
