package port

import "context"

// ForegroundProcess reports the process owning the focused window.
type ForegroundProcess interface {
	// Name returns the executable name without directory or extension.
	Name(ctx context.Context) (string, error)
}
