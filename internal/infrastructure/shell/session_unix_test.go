//go:build unix

package shell_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/infrastructure/shell"
	"github.com/bnema/whkd/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func startSh(t *testing.T) port.ShellSession {
	t.Helper()
	session, err := shell.NewStarter().Start(testContext(), entity.ShellSh)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func readEventually(t *testing.T, path string, want string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		return err == nil && strings.TrimSpace(string(data)) == want
	}, 5*time.Second, 20*time.Millisecond)
}

func TestSession_RunsCommandsInOneProcess(t *testing.T) {
	ctx := testContext()
	session := startSh(t)
	out := filepath.Join(t.TempDir(), "out")

	// State carried across lines proves a single long-lived shell.
	require.NoError(t, session.WriteLine(ctx, "GREETING=hello"))
	require.NoError(t, session.WriteLine(ctx, `echo "$GREETING" > `+out))

	readEventually(t, out, "hello")
}

func TestSession_ConcurrentWritesDoNotInterleave(t *testing.T) {
	ctx := testContext()
	session := startSh(t)
	out := filepath.Join(t.TempDir(), "out")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, session.WriteLine(ctx, "echo line >> "+out))
		}()
	}
	wg.Wait()
	require.NoError(t, session.WriteLine(ctx, "echo done > "+out+".done"))
	readEventually(t, out+".done", "done")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("line\n", 20), string(data))
}

func TestSession_ExitedShell(t *testing.T) {
	ctx := testContext()
	session := startSh(t)

	require.NoError(t, session.WriteLine(ctx, "exit 3"))

	assert.Eventually(t, func() bool {
		err := session.WriteLine(ctx, "true")
		return errors.Is(err, port.ErrShellExited)
	}, 5*time.Second, 20*time.Millisecond)
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	ctx := testContext()
	session := startSh(t)

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())
	assert.ErrorIs(t, session.WriteLine(ctx, "true"), port.ErrShellExited)
}

func TestSession_CanceledContext(t *testing.T) {
	session := startSh(t)
	ctx, cancel := context.WithCancel(testContext())
	cancel()
	assert.ErrorIs(t, session.WriteLine(ctx, "true"), context.Canceled)
}

func TestStarter_UnknownShell(t *testing.T) {
	_, err := shell.NewStarter().Start(testContext(), entity.Shell("fish"))
	assert.ErrorIs(t, err, entity.ErrUnknownShell)
}

func TestArgs(t *testing.T) {
	assert.Equal(t, []string{"-Command", "-"}, shell.Args(entity.ShellPwsh))
	assert.Equal(t, []string{"-Command", "-"}, shell.Args(entity.ShellPowershell))
	assert.Equal(t, []string{"-"}, shell.Args(entity.ShellCmd))
	assert.Equal(t, []string{"-s"}, shell.Args(entity.ShellBash))
}
