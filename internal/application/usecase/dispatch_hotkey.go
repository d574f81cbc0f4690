package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/logging"
	"github.com/gobwas/glob"
)

// ErrUnknownHotkey is returned for a handle that resolves to no hotkey.
var ErrUnknownHotkey = errors.New("unknown hotkey")

// DispatchResult describes what a fired hotkey did.
type DispatchResult struct {
	Hotkey entity.Hotkey
	// Foreground is the queried process name; empty when no query was needed or it failed.
	Foreground string
	// Ran lists the descriptors that took effect, in execution order.
	Ran []entity.Descriptor
	// ModeChanged is true when a mode action was applied; Mode is then the new mode.
	ModeChanged bool
	Mode        string
}

// DispatchHotkeyUseCase turns a fired hotkey into shell commands and mode changes.
type DispatchHotkeyUseCase struct {
	modes      port.ModeController
	shell      port.ShellSession
	foreground port.ForegroundProcess

	mu      sync.Mutex
	filters map[string]glob.Glob
}

// NewDispatchHotkeyUseCase creates a new DispatchHotkeyUseCase.
// foreground may be nil, in which case process filters never match.
func NewDispatchHotkeyUseCase(
	modes port.ModeController,
	shell port.ShellSession,
	foreground port.ForegroundProcess,
) *DispatchHotkeyUseCase {
	return &DispatchHotkeyUseCase{
		modes:      modes,
		shell:      shell,
		foreground: foreground,
		filters:    make(map[string]glob.Glob),
	}
}

// Execute handles one fired hotkey.
//
// Process-filtered descriptors run when their filter matches the foreground
// process. The unfiltered descriptor runs only when none of them matched.
// Commands are written before any mode change, so they run in the mode that
// was active when the key was pressed. A shell write failure stops the
// dispatch; errors.Is(err, port.ErrShellExited) means the shell is gone.
func (uc *DispatchHotkeyUseCase) Execute(ctx context.Context, h port.HotkeyHandle) (DispatchResult, error) {
	log := logging.FromContext(ctx)

	hotkey, ok := uc.modes.Lookup(h)
	if !ok {
		return DispatchResult{}, fmt.Errorf("%w: handle %d", ErrUnknownHotkey, h)
	}
	result := DispatchResult{Hotkey: hotkey}

	var run []entity.Descriptor
	if len(hotkey.PerProcess) > 0 {
		result.Foreground = uc.foregroundName(ctx)
		if result.Foreground != "" {
			for _, d := range hotkey.PerProcess {
				if uc.matches(d.ProcessName, result.Foreground) {
					run = append(run, d)
				}
			}
		}
	}
	if len(run) == 0 && hotkey.Direct != nil {
		run = append(run, *hotkey.Direct)
	}
	if len(run) == 0 {
		log.Debug().
			Str("hotkey", hotkey.ID.String()).
			Str("foreground", result.Foreground).
			Msg("no binding for foreground process")
		return result, nil
	}

	for _, d := range run {
		if !d.HasCommand() {
			continue
		}
		if err := uc.shell.WriteLine(ctx, d.Command); err != nil {
			return result, fmt.Errorf("write command for %s: %w", d.ID(), err)
		}
		result.Ran = append(result.Ran, d)
		log.Debug().
			Str("hotkey", d.ID().String()).
			Str("process", d.ProcessName).
			Str("command", d.Command).
			Msg("dispatched command")
	}

	for _, d := range run {
		if !d.Action.Set {
			continue
		}
		if !d.HasCommand() {
			result.Ran = append(result.Ran, d)
		}
		if err := uc.modes.Activate(ctx, d.Action.Target); err != nil {
			log.Warn().Err(err).Str("mode", entity.DisplayMode(d.Action.Target)).Msg("mode change incomplete")
		}
		result.ModeChanged = true
		result.Mode = d.Action.Target
	}

	return result, nil
}

// foregroundName queries the foreground process. Failures are logged and
// reported as an empty name, which matches no filter.
func (uc *DispatchHotkeyUseCase) foregroundName(ctx context.Context) string {
	if uc.foreground == nil {
		return ""
	}
	name, err := uc.foreground.Name(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("foreground process query failed")
		return ""
	}
	return name
}

// matches reports whether process satisfies filter. Filters are glob patterns;
// a filter that does not compile is compared literally.
func (uc *DispatchHotkeyUseCase) matches(filter, process string) bool {
	uc.mu.Lock()
	g, ok := uc.filters[filter]
	if !ok {
		compiled, err := glob.Compile(filter)
		if err == nil {
			g = compiled
		}
		uc.filters[filter] = g
	}
	uc.mu.Unlock()

	if g == nil {
		return filter == process
	}
	return g.Match(process)
}
