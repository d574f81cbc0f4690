// Package cmd provides the whkd command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/bootstrap"
	"github.com/bnema/whkd/internal/cli/styles"
	"github.com/bnema/whkd/internal/domain/build"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/infrastructure/config"
	"github.com/bnema/whkd/internal/infrastructure/foreground"
	"github.com/bnema/whkd/internal/infrastructure/hotkey"
	"github.com/bnema/whkd/internal/infrastructure/hotkey/osbackend"
	"github.com/bnema/whkd/internal/infrastructure/shell"
	"github.com/bnema/whkd/internal/logging"
)

var buildInfo = build.Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// Env holds the OS facing collaborators of the daemon.
type Env struct {
	Backend    hotkey.Backend
	Starter    port.ShellStarter
	Foreground port.ForegroundProcess
	// Supports reports whether the platform can grab a key; used by check.
	Supports func(entity.KeyCode) bool
	// Stderr receives log output.
	Stderr io.Writer
}

// DefaultEnv returns the collaborators for the current platform.
func DefaultEnv() Env {
	return Env{
		Backend:    osbackend.New(),
		Starter:    shell.NewStarter(),
		Foreground: foreground.New(),
		Supports:   osbackend.Supports,
		Stderr:     os.Stderr,
	}
}

type rootOptions struct {
	configPath string
}

// NewRootCmd builds the whkd command.
func NewRootCmd(env Env) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "whkd",
		Short: "A simple hotkey daemon",
		Long: `whkd binds global hotkeys to commands run in a long-lived shell session.

Bindings are read from a whkdrc file: --config, else $WHKD_CONFIG_HOME/whkdrc,
else $XDG_CONFIG_HOME/whkdrc, else ~/.config/whkdrc. Daemon settings are read
from whkd.toml next to the whkdrc and from WHKD_* environment variables.

Bindings can be scoped to modes and to the foreground process:

  alt + h : komorebic focus left
  alt + r ; resize
  resize > h : komorebic resize-axis horizontal decrease
  resize > escape ; default`,
		Version:       buildInfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDaemon(cmd, opts, env)
		},
	}

	cmd.SetVersionTemplate(styles.NewVersionRenderer(styles.NewTheme()).Render(buildInfo) + "\n")

	persistent := cmd.PersistentFlags()
	persistent.StringVarP(&opts.configPath, "config", "c", "", "path to the whkdrc file")
	persistent.String("log-level", "", "log level (trace, debug, info, warn, error)")
	persistent.String("log-format", "", "log format (console, json)")
	persistent.Bool("strict-modifiers", false, "reject unknown modifier names")

	flags := cmd.Flags()
	flags.Bool("watch", false, "reload the whkdrc when it changes")
	flags.BoolP("quiet", "q", false, "do not print the startup summary")

	cmd.AddCommand(newCheckCmd(opts, env))
	cmd.AddCommand(newGenDocsCmd())

	return cmd
}

func settingsFlags(flags *pflag.FlagSet) map[string]*pflag.Flag {
	return map[string]*pflag.Flag{
		"logging.level":    flags.Lookup("log-level"),
		"logging.format":   flags.Lookup("log-format"),
		"watch":            flags.Lookup("watch"),
		"quiet":            flags.Lookup("quiet"),
		"strict_modifiers": flags.Lookup("strict-modifiers"),
	}
}

// loadSettings resolves the whkdrc path and loads the settings next to it,
// with the command's flags bound over the file and the environment.
func loadSettings(cmd *cobra.Command, opts *rootOptions) (string, *config.Manager, error) {
	path, err := config.ResolveWhkdrcPath(opts.configPath)
	if err != nil {
		return "", nil, err
	}

	mgr, err := config.NewManager(filepath.Dir(path))
	if err != nil {
		return "", nil, err
	}
	if err := mgr.BindFlags(settingsFlags(cmd.Flags())); err != nil {
		return "", nil, err
	}
	if err := mgr.Load(); err != nil {
		return "", nil, err
	}
	return path, mgr, nil
}

func runDaemon(cmd *cobra.Command, opts *rootOptions, env Env) error {
	path, mgr, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}
	settings := mgr.Get()

	logger, closeLog, err := newLogger(settings, env.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := logging.WithContext(cmd.Context(), logger)
	log := logging.FromContext(ctx)
	if used := mgr.ConfigFileUsed(); used != "" {
		log.Debug().Str("path", used).Msg("loaded settings")
	}

	registry := hotkey.NewRegistry(env.Backend)
	defer func() {
		if err := registry.Close(); err != nil {
			log.Debug().Err(err).Msg("closing hotkey registry")
		}
	}()

	deps := bootstrap.Deps{
		Source:          config.NewWhkdrcFile(path),
		Registry:        registry,
		Starter:         env.Starter,
		Foreground:      env.Foreground,
		StrictModifiers: settings.StrictModifiers,
	}
	if settings.Watch {
		watcher, err := config.NewWatcher(path)
		if err != nil {
			return err
		}
		deps.Watcher = watcher
	}

	daemon := bootstrap.NewDaemon(deps)
	summary, err := daemon.Start(logging.WithComponent(ctx, "daemon"))
	if err != nil {
		return err
	}
	if !settings.Quiet {
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewSummaryRenderer(styles.NewTheme()).Render(summary))
	}

	return daemon.Run(logging.WithComponent(ctx, "daemon"))
}

// newLogger builds the daemon logger and, when enabled, the rotating log file.
func newLogger(settings *config.Settings, stderr io.Writer) (logger zerolog.Logger, closeFn func(), err error) {
	lvl, err := logging.ParseLevel(settings.Logging.Level)
	if err != nil {
		return logger, nil, err
	}
	cfg := logging.DefaultConfig()
	cfg.Level = lvl
	cfg.Format = settings.Logging.Format
	cfg.Output = stderr

	if !settings.Logging.EnableFileLog {
		return logging.New(cfg), func() {}, nil
	}

	dir := settings.Logging.LogDir
	if dir == "" {
		if dir, err = config.NewXDGAdapter().LogDir(); err != nil {
			return logger, nil, fmt.Errorf("resolve log directory: %w", err)
		}
	}
	rotator, err := logging.NewLogRotator(logging.RotatorOptions{
		Dir:        dir,
		MaxSizeMB:  settings.Logging.MaxSizeMB,
		MaxBackups: settings.Logging.MaxBackups,
		MaxAgeDays: settings.Logging.MaxAgeDays,
		Compress:   settings.Logging.Compress,
	})
	if err != nil {
		return logger, nil, err
	}
	return logging.New(cfg, rotator), func() { _ = rotator.Close() }, nil
}

// Execute runs the whkd command with ctx and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCmd(DefaultEnv())
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "whkd:", err)
		return 1
	}
	return 0
}
