package port

import (
	"errors"

	"github.com/bnema/whkd/internal/domain/entity"
)

// Hotkey registry errors.
var (
	// ErrHotkeyUnavailable means the OS refused the combination, usually because
	// another application already owns it.
	ErrHotkeyUnavailable = errors.New("hotkey unavailable")
	// ErrUnsupportedKey means the platform has no mapping for the key code.
	ErrUnsupportedKey = errors.New("key not supported on this platform")
	// ErrUnknownHandle means the handle was never created or was already released.
	ErrUnknownHandle = errors.New("unknown hotkey handle")
)

// HotkeyHandle is an opaque identifier for one OS hotkey.
type HotkeyHandle uint64

// HotkeyRegistry owns OS level global hotkeys.
//
// Create reserves a handle without grabbing the key. Register and Unregister
// toggle the OS registration and may be called repeatedly. Release frees the
// handle. Events yields the handle of every hotkey that fires while registered,
// in delivery order.
type HotkeyRegistry interface {
	Create(mods entity.Modifier, key entity.KeyCode) (HotkeyHandle, error)
	Register(h HotkeyHandle) error
	Unregister(h HotkeyHandle) error
	Release(h HotkeyHandle) error
	Events() <-chan HotkeyHandle
}
