//go:build darwin

package osbackend

import (
	"github.com/bnema/whkd/internal/domain/entity"
	"golang.design/x/hotkey"
)

var modifiers = map[entity.Modifier]hotkey.Modifier{
	entity.ModCtrl:  hotkey.ModCtrl,
	entity.ModShift: hotkey.ModShift,
	entity.ModAlt:   hotkey.ModOption,
	entity.ModSuper: hotkey.ModCmd,
}

// platformKeys holds Carbon virtual key codes (kVK_*).
var platformKeys = map[entity.KeyCode]hotkey.Key{
	"Insert":    0x72,
	"Home":      0x73,
	"PageUp":    0x74,
	"Backspace": hotkey.KeyDelete,
	"Delete":    0x75,
	"End":       0x77,
	"PageDown":  0x79,
	"CapsLock":  0x39,

	"IntlBackslash": 0x0a,
	"Equal":         0x18,
	"Minus":         0x1b,
	"BracketRight":  0x1e,
	"BracketLeft":   0x21,
	"Quote":         0x27,
	"Semicolon":     0x29,
	"Backslash":     0x2a,
	"Comma":         0x2b,
	"Slash":         0x2c,
	"Period":        0x2f,
	"Backquote":     0x32,

	"NumpadDecimal":  0x41,
	"NumpadMultiply": 0x43,
	"NumpadAdd":      0x45,
	"NumpadDivide":   0x4b,
	"NumpadEnter":    0x4c,
	"NumpadSubtract": 0x4e,
	"NumpadEqual":    0x51,
	"Numpad0":        0x52,
	"Numpad1":        0x53,
	"Numpad2":        0x54,
	"Numpad3":        0x55,
	"Numpad4":        0x56,
	"Numpad5":        0x57,
	"Numpad6":        0x58,
	"Numpad7":        0x59,
	"Numpad8":        0x5b,
	"Numpad9":        0x5c,
}
