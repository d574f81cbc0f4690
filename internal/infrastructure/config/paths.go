package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/whkd/internal/application/port"
)

const (
	appName        = "whkd"
	whkdrcName     = "whkdrc"
	settingsName   = "whkd"
	configHomeEnv  = "WHKD_CONFIG_HOME"
	logDirName     = "logs"
	dirPerm        = 0o755
	settingsFormat = "toml"
)

// ErrConfigHomeNotDir is returned when WHKD_CONFIG_HOME does not name a directory.
var ErrConfigHomeNotDir = errors.New(configHomeEnv + " is not a directory")

// XDGDirs holds the XDG Base Directory paths used by whkd.
type XDGDirs struct {
	// ConfigHome is the base config directory, without an application suffix,
	// because the whkdrc lives directly in it.
	ConfigHome string
	StateHome  string
	DataHome   string
}

// GetXDGDirs returns the XDG Base Directory paths for whkd.
// - $XDG_CONFIG_HOME (default: ~/.config)
// - $XDG_STATE_HOME/whkd (default: ~/.local/state/whkd)
// - $XDG_DATA_HOME (default: ~/.local/share)
func GetXDGDirs() (*XDGDirs, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(homeDir, ".config")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(homeDir, ".local", "state")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	return &XDGDirs{
		ConfigHome: configHome,
		StateHome:  filepath.Join(stateHome, appName),
		DataHome:   dataHome,
	}, nil
}

// ResolveWhkdrcPath picks the whkdrc to load: the explicit path if set, then
// $WHKD_CONFIG_HOME/whkdrc, then $XDG_CONFIG_HOME/whkdrc, then ~/.config/whkdrc.
func ResolveWhkdrcPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if home := os.Getenv(configHomeEnv); home != "" {
		info, err := os.Stat(home)
		if err != nil || !info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrConfigHomeNotDir, home)
		}
		return filepath.Join(home, whkdrcName), nil
	}

	dirs, err := GetXDGDirs()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dirs.ConfigHome, whkdrcName), nil
}

// XDGAdapter implements port.XDGPaths.
type XDGAdapter struct{}

var _ port.XDGPaths = (*XDGAdapter)(nil)

// NewXDGAdapter creates an XDGAdapter.
func NewXDGAdapter() *XDGAdapter {
	return &XDGAdapter{}
}

// ConfigDir returns the directory holding whkdrc and whkd.toml.
func (*XDGAdapter) ConfigDir() (string, error) {
	path, err := ResolveWhkdrcPath("")
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// StateDir returns $XDG_STATE_HOME/whkd.
func (*XDGAdapter) StateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// LogDir returns the default directory for the rotating log file.
func (a *XDGAdapter) LogDir() (string, error) {
	state, err := a.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(state, logDirName), nil
}

// ManDir returns $XDG_DATA_HOME/man/man1.
func (*XDGAdapter) ManDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, "man", "man1"), nil
}
