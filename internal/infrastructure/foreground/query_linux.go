//go:build linux

package foreground

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// queryName asks xdotool for the focused window's pid and resolves its
// executable name from procfs.
func queryName(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "xdotool", "getactivewindow", "getwindowpid").Output()
	if err != nil {
		return "", fmt.Errorf("xdotool: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return "", fmt.Errorf("xdotool returned %q: %w", strings.TrimSpace(string(out)), err)
	}
	return exeName(pid)
}

// exeName returns the base name of the executable behind pid. comm is
// only read when the exe link is not readable, since the kernel truncates it
// to 15 bytes.
func exeName(pid int) (string, error) {
	proc := "/proc/" + strconv.Itoa(pid)
	if target, err := os.Readlink(proc + "/exe"); err == nil {
		return exeBase(target), nil
	}
	data, err := os.ReadFile(proc + "/comm")
	if err != nil {
		return "", fmt.Errorf("read process name of %d: %w", pid, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func exeBase(target string) string {
	return filepath.Base(strings.TrimSuffix(target, " (deleted)"))
}
