//go:build linux

package osbackend

import (
	"github.com/bnema/whkd/internal/domain/entity"
	"golang.design/x/hotkey"
)

var modifiers = map[entity.Modifier]hotkey.Modifier{
	entity.ModCtrl:  hotkey.ModCtrl,
	entity.ModShift: hotkey.ModShift,
	entity.ModAlt:   hotkey.Mod1,
	entity.ModSuper: hotkey.Mod4,
}

// platformKeys holds X11 keysyms.
var platformKeys = map[entity.KeyCode]hotkey.Key{
	"Home":        0xff50,
	"PageUp":      0xff55,
	"PageDown":    0xff56,
	"End":         0xff57,
	"Insert":      0xff63,
	"Backspace":   0xff08,
	"Delete":      0xffff,
	"PrintScreen": 0xff61,
	"Pause":       0xff13,
	"ScrollLock":  0xff14,
	"NumLock":     0xff7f,
	"CapsLock":    0xffe5,
	"ContextMenu": 0xff67,

	"Minus":        0x002d,
	"Equal":        0x003d,
	"Comma":        0x002c,
	"Period":       0x002e,
	"Semicolon":    0x003b,
	"Slash":        0x002f,
	"Backquote":    0x0060,
	"BracketLeft":  0x005b,
	"Backslash":    0x005c,
	"BracketRight": 0x005d,
	"Quote":        0x0027,

	"Numpad0":        0xffb0,
	"Numpad1":        0xffb1,
	"Numpad2":        0xffb2,
	"Numpad3":        0xffb3,
	"Numpad4":        0xffb4,
	"Numpad5":        0xffb5,
	"Numpad6":        0xffb6,
	"Numpad7":        0xffb7,
	"Numpad8":        0xffb8,
	"Numpad9":        0xffb9,
	"NumpadMultiply": 0xffaa,
	"NumpadAdd":      0xffab,
	"NumpadSubtract": 0xffad,
	"NumpadDecimal":  0xffae,
	"NumpadDivide":   0xffaf,
	"NumpadEnter":    0xff8d,
	"NumpadEqual":    0xffbd,

	"F21": 0xffd2,
	"F22": 0xffd3,
	"F23": 0xffd4,
	"F24": 0xffd5,
}
