// Package foreground reports the process that owns the focused window.
package foreground

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/logging"
)

// ErrNoForeground is returned when no window has focus.
var ErrNoForeground = errors.New("no foreground window")

// Adapter implements port.ForegroundProcess for the current platform.
type Adapter struct{}

// New creates a foreground process adapter.
func New() *Adapter {
	return &Adapter{}
}

var _ port.ForegroundProcess = (*Adapter)(nil)

// Name returns the executable name of the foreground process.
func (a *Adapter) Name(ctx context.Context) (string, error) {
	name, err := queryName(ctx)
	if err != nil {
		return "", err
	}
	name = processName(name)
	if name == "" {
		return "", ErrNoForeground
	}
	logging.FromContext(ctx).Trace().Str("process", name).Msg("foreground process")
	return name, nil
}

// processName strips the directory and a trailing .exe from an image path.
func processName(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return ""
	}
	base := image[strings.LastIndexAny(image, `/\`)+1:]
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".exe") {
		base = base[:len(base)-len(ext)]
	}
	return base
}
