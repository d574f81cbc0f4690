package port

import (
	"context"
	"errors"

	"github.com/bnema/whkd/internal/domain/entity"
)

// ErrShellExited is returned by ShellSession.WriteLine once the shell process is gone.
var ErrShellExited = errors.New("shell process exited")

// ShellSession is a long-lived shell that executes one command per line written.
type ShellSession interface {
	WriteLine(ctx context.Context, line string) error
	Close() error
}

// ShellStarter starts shell sessions.
type ShellStarter interface {
	Start(ctx context.Context, shell entity.Shell) (ShellSession, error)
}
