//go:build !windows && !linux && !darwin

package foreground

import (
	"context"
	"errors"
)

func queryName(context.Context) (string, error) {
	return "", errors.New("foreground process query not supported on this platform")
}
