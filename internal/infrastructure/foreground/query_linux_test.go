//go:build linux

package foreground

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessName_Self(t *testing.T) {
	name, err := exeName(os.Getpid())
	require.NoError(t, err)

	exe, err := os.Executable()
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(exe), name)
}

func TestProcessName_MissingProcess(t *testing.T) {
	_, err := exeName(-1)
	assert.Error(t, err)
}

func TestExeBase(t *testing.T) {
	assert.Equal(t, "gnome-terminal-server", exeBase("/usr/libexec/gnome-terminal-server"))
	assert.Equal(t, "firefox", exeBase("/usr/lib/firefox/firefox (deleted)"))
}
