package entity

import "strings"

// DefaultMode is the name of the mode that is active at startup. The whkdrc
// keyword "default" always maps to it.
const DefaultMode = ""

// DefaultModeKeyword is how the default mode is spelled in a whkdrc.
const DefaultModeKeyword = "default"

// ModeName maps the whkdrc spelling of a mode to its internal name.
func ModeName(name string) string {
	if name == DefaultModeKeyword {
		return DefaultMode
	}
	return name
}

// DisplayMode returns a printable mode name.
func DisplayMode(mode string) string {
	if mode == DefaultMode {
		return DefaultModeKeyword
	}
	return mode
}

// ModeAction describes what a binding does to the active mode after firing.
// The zero value leaves the mode unchanged.
type ModeAction struct {
	// Set is true when the binding changes mode at all.
	Set bool
	// Target is the mode to switch to; DefaultMode returns to the default mode.
	Target string
}

// NoModeChange leaves the current mode as is.
func NoModeChange() ModeAction {
	return ModeAction{}
}

// SwitchMode activates the named mode. "default" is mapped to the default mode.
func SwitchMode(name string) ModeAction {
	return ModeAction{Set: true, Target: ModeName(name)}
}

// ReturnToDefault activates the default mode.
func ReturnToDefault() ModeAction {
	return ModeAction{Set: true, Target: DefaultMode}
}

func (a ModeAction) String() string {
	if !a.Set {
		return ""
	}
	return DisplayMode(a.Target)
}

// HotkeyBinding is one parsed binding from a whkdrc.
type HotkeyBinding struct {
	// Mode scopes the binding; DefaultMode when unscoped.
	Mode string
	// Keys holds the raw key tokens; the last one is the trigger.
	Keys []string
	// Command is the shell command; empty when the binding only changes mode.
	Command string
	// Action is the optional mode change.
	Action ModeAction
	// ProcessName restricts the binding to a foreground process; empty for all.
	ProcessName string
}

// HasCommand reports whether the binding forwards a command to the shell.
func (b HotkeyBinding) HasCommand() bool {
	return b.Command != ""
}

// Combo returns the key tokens joined the way they are written in a whkdrc.
func (b HotkeyBinding) Combo() string {
	return strings.Join(b.Keys, " + ")
}
