//go:build darwin

package foreground

import (
	"context"
	"fmt"
	"os/exec"
)

const frontmostScript = `tell application "System Events" to get name of first application process whose frontmost is true`

func queryName(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "osascript", "-e", frontmostScript).Output()
	if err != nil {
		return "", fmt.Errorf("osascript: %w", err)
	}
	return string(out), nil
}
