package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/application/usecase"
	"github.com/bnema/whkd/internal/cli/cmd"
	"github.com/bnema/whkd/internal/domain/build"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/infrastructure/hotkey"
)

const sampleWhkdrc = `.shell sh

# focus
alt + h : echo left
alt + r ; resize

resize > h : echo shrink
resize > escape ; default
`

type recordingShell struct {
	mu     sync.Mutex
	lines  []string
	closed bool
}

func (s *recordingShell) WriteLine(_ context.Context, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	return nil
}

func (s *recordingShell) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// cancelingStarter stops the daemon as soon as its shell is started, so Run
// returns right after the startup summary.
type cancelingStarter struct {
	cancel context.CancelFunc
	shell  *recordingShell
	got    entity.Shell
}

func (s *cancelingStarter) Start(_ context.Context, shell entity.Shell) (port.ShellSession, error) {
	s.got = shell
	s.cancel()
	return s.shell, nil
}

func writeWhkdrc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "whkdrc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testEnv(stderr *bytes.Buffer) cmd.Env {
	return cmd.Env{
		Backend:  hotkey.NewDryRun(nil),
		Starter:  &cancelingStarter{cancel: func() {}, shell: &recordingShell{}},
		Supports: func(entity.KeyCode) bool { return true },
		Stderr:   stderr,
	}
}

func execute(ctx context.Context, t *testing.T, env cmd.Env, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd(env)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestRoot_Version(t *testing.T) {
	cmd.SetBuildInfo(build.Info{Version: "v1.2.3", Commit: "abc1234", BuildDate: "2026-10-01"})
	t.Cleanup(func() { cmd.SetBuildInfo(build.Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"}) })

	var stderr bytes.Buffer
	out, err := execute(context.Background(), t, testEnv(&stderr), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc1234")
}

func TestRoot_RejectsArgs(t *testing.T) {
	var stderr bytes.Buffer
	_, err := execute(context.Background(), t, testEnv(&stderr), "extra")
	assert.Error(t, err)
}

func TestRoot_RunsDaemonUntilCanceled(t *testing.T) {
	path := writeWhkdrc(t, sampleWhkdrc)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stderr bytes.Buffer
	env := testEnv(&stderr)
	starter := &cancelingStarter{cancel: cancel, shell: &recordingShell{}}
	env.Starter = starter

	out, err := execute(ctx, t, env, "--config", path, "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, entity.ShellSh, starter.got)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "MODE")
	assert.Contains(t, out, "resize")
	assert.True(t, starter.shell.closed)
	assert.Contains(t, stderr.String(), "whkd stopped")
}

func TestRoot_QuietSkipsSummary(t *testing.T) {
	path := writeWhkdrc(t, sampleWhkdrc)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stderr bytes.Buffer
	env := testEnv(&stderr)
	env.Starter = &cancelingStarter{cancel: cancel, shell: &recordingShell{}}

	out, err := execute(ctx, t, env, "-c", path, "--quiet")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoot_ConfigErrorIsFatal(t *testing.T) {
	path := writeWhkdrc(t, ".shell sh\n")

	var stderr bytes.Buffer
	_, err := execute(context.Background(), t, testEnv(&stderr), "-c", path)

	var cfgErr *usecase.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, path, cfgErr.Path)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	path := writeWhkdrc(t, sampleWhkdrc)

	var stderr bytes.Buffer
	_, err := execute(context.Background(), t, testEnv(&stderr), "-c", path, "--log-level", "loud")
	assert.Error(t, err)
}

func TestCheck_PrintsBindings(t *testing.T) {
	path := writeWhkdrc(t, sampleWhkdrc)

	var stderr bytes.Buffer
	out, err := execute(context.Background(), t, testEnv(&stderr), "check", "-c", path)
	require.NoError(t, err)

	assert.Contains(t, out, "sh")
	assert.Contains(t, out, "alt+KeyH")
	assert.Contains(t, out, "echo left")
	assert.Contains(t, out, "echo shrink")
	assert.Contains(t, out, "Escape")
	assert.Contains(t, out, "is valid")
}

func TestCheck_UnsupportedKeyFails(t *testing.T) {
	path := writeWhkdrc(t, sampleWhkdrc)

	var stderr bytes.Buffer
	env := testEnv(&stderr)
	env.Supports = func(key entity.KeyCode) bool { return key != "Escape" }

	out, err := execute(context.Background(), t, env, "check", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 hotkey(s)")
	assert.Contains(t, out, "resize: Escape")
	assert.NotContains(t, out, "is valid")
}

func TestCheck_StrictModifiers(t *testing.T) {
	path := writeWhkdrc(t, "hyper + h : echo hi\n")

	var stderr bytes.Buffer
	_, err := execute(context.Background(), t, testEnv(&stderr), "check", "-c", path)
	require.NoError(t, err)

	_, err = execute(context.Background(), t, testEnv(&stderr), "check", "-c", path, "--strict-modifiers")
	assert.Error(t, err)
}
