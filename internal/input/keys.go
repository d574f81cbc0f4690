package input

import (
	"strconv"
	"strings"

	"github.com/bnema/whkd/internal/domain/entity"
)

// modifierByName maps whkdrc modifier tokens to modifier bits.
var modifierByName = map[string]entity.Modifier{
	"ctrl":  entity.ModCtrl,
	"alt":   entity.ModAlt,
	"shift": entity.ModShift,
	"super": entity.ModSuper,
}

// keyByName maps lowercase whkdrc key names to key codes.
// Letters and digits are handled in lookupKey.
var keyByName = map[string]entity.KeyCode{
	"escape":       "Escape",
	"esc":          "Escape",
	"return":       "Enter",
	"enter":        "Enter",
	"tab":          "Tab",
	"space":        "Space",
	"backspace":    "Backspace",
	"delete":       "Delete",
	"del":          "Delete",
	"insert":       "Insert",
	"ins":          "Insert",
	"home":         "Home",
	"end":          "End",
	"pageup":       "PageUp",
	"page_up":      "PageUp",
	"pagedown":     "PageDown",
	"page_down":    "PageDown",
	"left":         "ArrowLeft",
	"arrowleft":    "ArrowLeft",
	"right":        "ArrowRight",
	"arrowright":   "ArrowRight",
	"up":           "ArrowUp",
	"arrowup":      "ArrowUp",
	"down":         "ArrowDown",
	"arrowdown":    "ArrowDown",
	"capslock":     "CapsLock",
	"numlock":      "NumLock",
	"scrolllock":   "ScrollLock",
	"printscreen":  "PrintScreen",
	"print":        "PrintScreen",
	"pause":        "Pause",
	"menu":         "ContextMenu",
	"minus":        "Minus",
	"oem_minus":    "Minus",
	"equal":        "Equal",
	"plus":         "Equal",
	"oem_plus":     "Equal",
	"comma":        "Comma",
	"oem_comma":    "Comma",
	"period":       "Period",
	"oem_period":   "Period",
	"semicolon":    "Semicolon",
	"oem_1":        "Semicolon",
	"slash":        "Slash",
	"oem_2":        "Slash",
	"backquote":    "Backquote",
	"grave":        "Backquote",
	"oem_3":        "Backquote",
	"bracketleft":  "BracketLeft",
	"oem_4":        "BracketLeft",
	"backslash":    "Backslash",
	"oem_5":        "Backslash",
	"bracketright": "BracketRight",
	"oem_6":        "BracketRight",
	"quote":        "Quote",
	"oem_7":        "Quote",
}

// w3cCodes is the set of UI Events "code" names accepted verbatim.
var w3cCodes = func() map[entity.KeyCode]bool {
	codes := []string{
		"Escape", "Enter", "Tab", "Space", "Backspace", "Delete", "Insert",
		"Home", "End", "PageUp", "PageDown",
		"ArrowLeft", "ArrowRight", "ArrowUp", "ArrowDown",
		"CapsLock", "NumLock", "ScrollLock", "PrintScreen", "Pause", "ContextMenu",
		"Minus", "Equal", "Comma", "Period", "Semicolon", "Slash", "Backquote",
		"BracketLeft", "BracketRight", "Backslash", "Quote", "IntlBackslash",
		"NumpadAdd", "NumpadSubtract", "NumpadMultiply", "NumpadDivide",
		"NumpadDecimal", "NumpadEnter", "NumpadEqual",
		"MediaPlayPause", "MediaStop", "MediaTrackNext", "MediaTrackPrevious",
		"AudioVolumeMute", "AudioVolumeDown", "AudioVolumeUp",
	}
	set := make(map[entity.KeyCode]bool, len(codes)+26+10+10+24)
	for _, c := range codes {
		set[entity.KeyCode(c)] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		set[entity.KeyCode("Key"+string(c))] = true
	}
	for d := '0'; d <= '9'; d++ {
		set[entity.KeyCode("Digit"+string(d))] = true
		set[entity.KeyCode("Numpad"+string(d))] = true
	}
	for _, f := range functionKeys() {
		set[f] = true
	}
	return set
}()

func functionKeys() []entity.KeyCode {
	keys := make([]entity.KeyCode, 0, 24)
	for i := 1; i <= 24; i++ {
		keys = append(keys, entity.KeyCode("F"+strconv.Itoa(i)))
	}
	return keys
}

// lookupKey resolves a trigger token. Aliases are case-insensitive; W3C code
// names are matched exactly.
func lookupKey(token string) (entity.KeyCode, bool) {
	lower := strings.ToLower(token)

	if len(lower) == 1 {
		c := lower[0]
		switch {
		case c >= 'a' && c <= 'z':
			return entity.KeyCode("Key" + strings.ToUpper(lower)), true
		case c >= '0' && c <= '9':
			return entity.KeyCode("Digit" + lower), true
		}
	}

	if code, ok := keyByName[lower]; ok {
		return code, true
	}

	if len(lower) >= 2 && lower[0] == 'f' {
		for _, f := range functionKeys() {
			if strings.EqualFold(string(f), token) {
				return f, true
			}
		}
	}

	if code := entity.KeyCode(token); w3cCodes[code] {
		return code, true
	}
	return "", false
}

// lookupModifier resolves a modifier token, case-insensitively.
func lookupModifier(token string) (entity.Modifier, bool) {
	m, ok := modifierByName[strings.ToLower(token)]
	return m, ok
}
