package entity

import (
	"errors"
	"fmt"
)

// ErrUnknownShell is returned when a shell name is not one of the supported flavors.
var ErrUnknownShell = errors.New("unknown shell")

// Shell selects the interactive shell that receives bound commands.
type Shell string

const (
	ShellPwsh       Shell = "pwsh"
	ShellPowershell Shell = "powershell"
	ShellCmd        Shell = "cmd"
	ShellSh         Shell = "sh"
	ShellBash       Shell = "bash"
)

// DefaultShell is used when a whkdrc has no .shell directive.
const DefaultShell = ShellPwsh

// Shells lists every supported shell flavor.
func Shells() []Shell {
	return []Shell{ShellPowershell, ShellPwsh, ShellBash, ShellCmd, ShellSh}
}

// ParseShell converts a shell name to a Shell.
func ParseShell(name string) (Shell, error) {
	for _, s := range Shells() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShell, name)
}

// Binary returns the executable name for the shell.
func (s Shell) Binary() string {
	return string(s)
}

// IsPowerShell reports whether the shell is one of the PowerShell flavors.
func (s Shell) IsPowerShell() bool {
	return s == ShellPwsh || s == ShellPowershell
}

// Whkdrc is the parsed form of a whkdrc configuration file.
type Whkdrc struct {
	Shell       Shell
	AppBindings []AppBinding
	Bindings    []HotkeyBinding
}

// AppBinding is one process-scoped block: a key combination with a command
// per foreground process.
type AppBinding struct {
	Keys     []string
	Bindings []HotkeyBinding
}

// AllBindings returns the process-scoped bindings followed by the direct
// bindings, each group in document order.
func (w *Whkdrc) AllBindings() []HotkeyBinding {
	if w == nil {
		return nil
	}
	all := make([]HotkeyBinding, 0, len(w.Bindings)+len(w.AppBindings))
	for _, app := range w.AppBindings {
		all = append(all, app.Bindings...)
	}
	return append(all, w.Bindings...)
}

// Modes returns the distinct named modes referenced by the document, either as
// a binding scope or as a mode-change target, in first-seen order.
func (w *Whkdrc) Modes() []string {
	seen := make(map[string]bool)
	var modes []string
	add := func(name string) {
		if name == DefaultMode || seen[name] {
			return
		}
		seen[name] = true
		modes = append(modes, name)
	}
	for _, b := range w.AllBindings() {
		add(b.Mode)
		if b.Action.Set {
			add(b.Action.Target)
		}
	}
	return modes
}
