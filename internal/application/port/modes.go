package port

import (
	"context"

	"github.com/bnema/whkd/internal/domain/entity"
)

// ModeController resolves fired hotkeys and switches the active mode.
type ModeController interface {
	Lookup(h HotkeyHandle) (entity.Hotkey, bool)
	Activate(ctx context.Context, mode string) error
}
