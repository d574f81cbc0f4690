// Command whkd is a hotkey daemon that runs shell commands on global hotkeys.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bnema/whkd/internal/cli/cmd"
	"github.com/bnema/whkd/internal/domain/build"
	"github.com/bnema/whkd/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	logCoreDumpLimits(logging.WithContext(ctx, logging.NewFromEnv()))

	code := run(ctx)
	stop()
	os.Exit(code)
}
