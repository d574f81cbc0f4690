//go:build windows

package foreground

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
)

func queryName(context.Context) (string, error) {
	hwnd := windows.GetForegroundWindow()
	if hwnd == 0 {
		return "", ErrNoForeground
	}

	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd, &pid); err != nil {
		return "", fmt.Errorf("get window process id: %w", err)
	}

	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", fmt.Errorf("open process %d: %w", pid, err)
	}
	defer func() { _ = windows.CloseHandle(h) }()

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return "", fmt.Errorf("query image name of %d: %w", pid, err)
	}
	return windows.UTF16ToString(buf[:size]), nil
}
