//go:build windows

package osbackend

import (
	"github.com/bnema/whkd/internal/domain/entity"
	"golang.design/x/hotkey"
)

var modifiers = map[entity.Modifier]hotkey.Modifier{
	entity.ModCtrl:  hotkey.ModCtrl,
	entity.ModShift: hotkey.ModShift,
	entity.ModAlt:   hotkey.ModAlt,
	entity.ModSuper: hotkey.ModWin,
}

// platformKeys holds Win32 virtual-key codes.
var platformKeys = map[entity.KeyCode]hotkey.Key{
	"PageUp":      0x21,
	"PageDown":    0x22,
	"End":         0x23,
	"Home":        0x24,
	"PrintScreen": 0x2c,
	"Insert":      0x2d,
	"Backspace":   0x08,
	"Delete":      0x2e,
	"Pause":       0x13,
	"CapsLock":    0x14,
	"ContextMenu": 0x5d,
	"NumLock":     0x90,
	"ScrollLock":  0x91,

	"Semicolon":     0xba,
	"Equal":         0xbb,
	"Comma":         0xbc,
	"Minus":         0xbd,
	"Period":        0xbe,
	"Slash":         0xbf,
	"Backquote":     0xc0,
	"BracketLeft":   0xdb,
	"Backslash":     0xdc,
	"BracketRight":  0xdd,
	"Quote":         0xde,
	"IntlBackslash": 0xe2,

	"Numpad0":        0x60,
	"Numpad1":        0x61,
	"Numpad2":        0x62,
	"Numpad3":        0x63,
	"Numpad4":        0x64,
	"Numpad5":        0x65,
	"Numpad6":        0x66,
	"Numpad7":        0x67,
	"Numpad8":        0x68,
	"Numpad9":        0x69,
	"NumpadMultiply": 0x6a,
	"NumpadAdd":      0x6b,
	"NumpadSubtract": 0x6d,
	"NumpadDecimal":  0x6e,
	"NumpadDivide":   0x6f,

	"F21": 0x84,
	"F22": 0x85,
	"F23": 0x86,
	"F24": 0x87,

	"AudioVolumeMute":    0xad,
	"AudioVolumeDown":    0xae,
	"AudioVolumeUp":      0xaf,
	"MediaTrackNext":     0xb0,
	"MediaTrackPrevious": 0xb1,
	"MediaStop":          0xb2,
	"MediaPlayPause":     0xb3,
}
