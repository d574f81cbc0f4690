// Package shell keeps one interactive shell alive and feeds it commands on stdin.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/logging"
)

const closeTimeout = 2 * time.Second

type flavor struct {
	args []string
	init []string
}

var flavors = map[entity.Shell]flavor{
	entity.ShellPwsh:       {args: []string{"-Command", "-"}, init: []string{"$wshell = New-Object -ComObject wscript.shell"}},
	entity.ShellPowershell: {args: []string{"-Command", "-"}, init: []string{"$wshell = New-Object -ComObject wscript.shell"}},
	entity.ShellCmd:        {args: []string{"-"}, init: []string{"prompt $S"}},
	entity.ShellSh:         {args: []string{"-s"}},
	entity.ShellBash:       {args: []string{"-s"}},
}

// Args returns the command line arguments that make shell read commands from stdin.
func Args(shell entity.Shell) []string {
	return flavors[shell].args
}

// Starter implements port.ShellStarter with os/exec.
type Starter struct {
	// Stdout and Stderr receive the shell's output; nil means the daemon's own.
	Stdout io.Writer
	Stderr io.Writer
}

// NewStarter creates a Starter that lets the shell inherit the daemon's output.
func NewStarter() *Starter {
	return &Starter{}
}

var _ port.ShellStarter = (*Starter)(nil)

// Start spawns shell and writes its init lines.
func (s *Starter) Start(ctx context.Context, shell entity.Shell) (port.ShellSession, error) {
	log := logging.FromContext(ctx)

	fl, ok := flavors[shell]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownShell, shell)
	}

	// Not CommandContext: the session outlives the caller's context.
	cmd := exec.Command(shell.Binary(), fl.args...)
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("create %s stdin pipe: %w", shell, err)
	}
	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		return nil, fmt.Errorf("start %s: %w", shell, err)
	}

	session := &Session{
		shell: shell,
		cmd:   cmd,
		stdin: stdin,
		done:  make(chan struct{}),
	}
	go session.wait()

	for _, line := range fl.init {
		if err := session.WriteLine(ctx, line); err != nil {
			_ = session.Close()
			return nil, fmt.Errorf("initialize %s: %w", shell, err)
		}
	}

	log.Info().Str("shell", string(shell)).Int("pid", cmd.Process.Pid).Msg("shell session started")
	return session, nil
}

// Session is a running shell process.
type Session struct {
	shell entity.Shell
	cmd   *exec.Cmd

	mu     sync.Mutex
	stdin  io.WriteCloser
	closed bool

	done    chan struct{}
	waitErr error
}

var _ port.ShellSession = (*Session)(nil)

func (s *Session) wait() {
	s.waitErr = s.cmd.Wait()
	close(s.done)
}

// Shell returns the flavor of the running shell.
func (s *Session) Shell() entity.Shell {
	return s.shell
}

// Done is closed once the shell process has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// WriteLine writes line followed by a newline. Concurrent writes are serialized
// so lines never interleave.
func (s *Session) WriteLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("%w: session closed", port.ErrShellExited)
	}
	select {
	case <-s.done:
		return s.exitedError()
	default:
	}

	if _, err := io.WriteString(s.stdin, line+"\n"); err != nil {
		return fmt.Errorf("%w: %v", port.ErrShellExited, err)
	}
	return nil
}

func (s *Session) exitedError() error {
	if s.waitErr != nil {
		return fmt.Errorf("%w: %v", port.ErrShellExited, s.waitErr)
	}
	return port.ErrShellExited
}

// Close ends the session by closing stdin, and kills the shell if it has not
// exited shortly after.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	err := s.stdin.Close()
	s.mu.Unlock()

	select {
	case <-s.done:
	case <-time.After(closeTimeout):
		if kerr := s.cmd.Process.Kill(); kerr != nil && !errors.Is(kerr, os.ErrProcessDone) {
			err = errors.Join(err, kerr)
		}
		<-s.done
	}
	if errors.Is(err, os.ErrClosed) {
		err = nil
	}
	return err
}
