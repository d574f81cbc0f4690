//go:build linux || windows || darwin

package osbackend

import (
	"github.com/bnema/whkd/internal/domain/entity"
	"golang.design/x/hotkey"
)

// commonKeys holds the keys the library names on every platform.
var commonKeys = map[entity.KeyCode]hotkey.Key{
	"KeyA": hotkey.KeyA, "KeyB": hotkey.KeyB, "KeyC": hotkey.KeyC, "KeyD": hotkey.KeyD,
	"KeyE": hotkey.KeyE, "KeyF": hotkey.KeyF, "KeyG": hotkey.KeyG, "KeyH": hotkey.KeyH,
	"KeyI": hotkey.KeyI, "KeyJ": hotkey.KeyJ, "KeyK": hotkey.KeyK, "KeyL": hotkey.KeyL,
	"KeyM": hotkey.KeyM, "KeyN": hotkey.KeyN, "KeyO": hotkey.KeyO, "KeyP": hotkey.KeyP,
	"KeyQ": hotkey.KeyQ, "KeyR": hotkey.KeyR, "KeyS": hotkey.KeyS, "KeyT": hotkey.KeyT,
	"KeyU": hotkey.KeyU, "KeyV": hotkey.KeyV, "KeyW": hotkey.KeyW, "KeyX": hotkey.KeyX,
	"KeyY": hotkey.KeyY, "KeyZ": hotkey.KeyZ,

	"Digit0": hotkey.Key0, "Digit1": hotkey.Key1, "Digit2": hotkey.Key2, "Digit3": hotkey.Key3,
	"Digit4": hotkey.Key4, "Digit5": hotkey.Key5, "Digit6": hotkey.Key6, "Digit7": hotkey.Key7,
	"Digit8": hotkey.Key8, "Digit9": hotkey.Key9,

	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
	"F13": hotkey.KeyF13, "F14": hotkey.KeyF14, "F15": hotkey.KeyF15, "F16": hotkey.KeyF16,
	"F17": hotkey.KeyF17, "F18": hotkey.KeyF18, "F19": hotkey.KeyF19, "F20": hotkey.KeyF20,

	"Space":      hotkey.KeySpace,
	"Enter":      hotkey.KeyReturn,
	"Escape":     hotkey.KeyEscape,
	"Tab":        hotkey.KeyTab,
	"ArrowLeft":  hotkey.KeyLeft,
	"ArrowRight": hotkey.KeyRight,
	"ArrowUp":    hotkey.KeyUp,
	"ArrowDown":  hotkey.KeyDown,
}

func lookupKey(key entity.KeyCode) (hotkey.Key, bool) {
	if k, ok := commonKeys[key]; ok {
		return k, true
	}
	k, ok := platformKeys[key]
	return k, ok
}
