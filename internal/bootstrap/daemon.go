package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/whkd/internal/application/port"
	"github.com/bnema/whkd/internal/application/usecase"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/input"
	"github.com/bnema/whkd/internal/logging"
)

// ErrNotStarted is returned by Run and Reload before Start succeeded.
var ErrNotStarted = errors.New("daemon not started")

// ChangeNotifier reports that the whkdrc changed on disk.
type ChangeNotifier interface {
	OnChange(callback func())
	Run(ctx context.Context) error
}

// Deps holds the collaborators of a Daemon. Foreground and Watcher are optional.
type Deps struct {
	Source     port.WhkdrcSource
	Registry   port.HotkeyRegistry
	Starter    port.ShellStarter
	Foreground port.ForegroundProcess
	Watcher    ChangeNotifier

	StrictModifiers bool
}

// ModeSummary describes one mode of the loaded configuration.
type ModeSummary struct {
	Name    string
	Hotkeys int
	// Handles counts the hotkeys the OS layer accepted.
	Handles int
}

// Summary describes the running configuration.
type Summary struct {
	Path       string
	Shell      entity.Shell
	Modes      []ModeSummary
	Failures   []*input.RegistrationError
	Duplicates []input.Duplicate
}

// Daemon owns the loaded configuration, the shell session and the mode
// manager, and routes fired hotkeys to the dispatcher.
type Daemon struct {
	deps Deps
	load *usecase.LoadWhkdrcUseCase

	// mu serializes event handling and reload.
	mu       sync.Mutex
	doc      *entity.Whkdrc
	modes    *input.ModeManager
	shell    port.ShellSession
	dispatch *usecase.DispatchHotkeyUseCase
	summary  Summary

	reloads chan struct{}
}

// NewDaemon creates a daemon. Nothing is started until Start.
func NewDaemon(deps Deps) *Daemon {
	return &Daemon{
		deps:    deps,
		load:    usecase.NewLoadWhkdrcUseCase(deps.Source),
		reloads: make(chan struct{}, 1),
	}
}

// Start loads the whkdrc, starts the shell and registers the default mode.
// Any failure leaves nothing running.
func (d *Daemon) Start(ctx context.Context) (Summary, error) {
	log := logging.FromContext(ctx)
	timer := NewStartupTimer()

	doc, err := d.load.Execute(ctx)
	if err != nil {
		return Summary{}, err
	}
	timer.Mark("load")

	shell, err := d.deps.Starter.Start(ctx, doc.Shell)
	if err != nil {
		return Summary{}, fmt.Errorf("start shell: %w", err)
	}
	timer.Mark("shell")

	modes, report, err := input.Build(ctx, d.deps.Registry, doc.AllBindings(), d.buildOptions(ctx))
	if err != nil {
		_ = shell.Close()
		return Summary{}, err
	}
	timer.Mark("hotkeys")

	d.mu.Lock()
	d.install(doc, modes, shell, report)
	summary := d.summary
	d.mu.Unlock()

	timer.Log(ctx)
	log.Info().
		Str("shell", string(doc.Shell)).
		Int("modes", len(summary.Modes)).
		Int("failures", len(report.Failures)).
		Msg("whkd started")
	return summary, nil
}

func (d *Daemon) buildOptions(ctx context.Context) input.Options {
	log := logging.FromContext(ctx)
	return input.Options{
		StrictModifiers: d.deps.StrictModifiers,
		OnModeChange: func(from, to string) {
			log.Info().
				Str("from", entity.DisplayMode(from)).
				Str("to", entity.DisplayMode(to)).
				Msg("mode changed")
		},
	}
}

// install swaps in a new configuration. Must be called with d.mu held.
func (d *Daemon) install(doc *entity.Whkdrc, modes *input.ModeManager, shell port.ShellSession, report input.BuildReport) {
	d.doc = doc
	d.modes = modes
	d.shell = shell
	d.dispatch = usecase.NewDispatchHotkeyUseCase(modes, shell, d.deps.Foreground)
	d.summary = summarize(d.deps.Source.Path(), doc, modes, report)
}

func summarize(path string, doc *entity.Whkdrc, modes *input.ModeManager, report input.BuildReport) Summary {
	s := Summary{
		Path:       path,
		Shell:      doc.Shell,
		Failures:   report.Failures,
		Duplicates: report.Duplicates,
	}
	names := []string{entity.DefaultMode}
	for _, name := range modes.Modes() {
		if name != entity.DefaultMode {
			names = append(names, name)
		}
	}
	for _, name := range names {
		s.Modes = append(s.Modes, ModeSummary{
			Name:    name,
			Hotkeys: len(modes.Hotkeys(name)),
			Handles: len(modes.Handles(name)),
		})
	}
	return s
}

// Summary returns the summary of the running configuration.
func (d *Daemon) Summary() Summary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summary
}

// Mode returns the active mode.
func (d *Daemon) Mode() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.modes == nil {
		return entity.DefaultMode
	}
	return d.modes.Mode()
}

// Run handles hotkey events until ctx is done or the shell dies, then releases
// every hotkey and closes the shell.
func (d *Daemon) Run(ctx context.Context) error {
	d.mu.Lock()
	started := d.modes != nil
	d.mu.Unlock()
	if !started {
		return ErrNotStarted
	}
	defer d.shutdown(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return d.loop(gctx)
	})
	if d.deps.Watcher != nil {
		d.deps.Watcher.OnChange(d.RequestReload)
		g.Go(func() error {
			return d.deps.Watcher.Run(gctx)
		})
		g.Go(func() error {
			return d.reloadLoop(gctx)
		})
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (d *Daemon) loop(ctx context.Context) error {
	events := d.deps.Registry.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case h, ok := <-events:
			if !ok {
				return nil
			}
			if err := d.handle(ctx, h); err != nil {
				return err
			}
		}
	}
}

// handle dispatches one event completely, including any mode change, before
// the next event is read.
func (d *Daemon) handle(ctx context.Context, h port.HotkeyHandle) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ctx = logging.WithMode(ctx, d.modes.Mode())
	_, err := d.dispatch.Execute(ctx, h)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, port.ErrShellExited):
		logging.FromContext(ctx).Error().Err(err).Msg("shell session lost")
		return fmt.Errorf("shell session lost: %w", err)
	case errors.Is(err, usecase.ErrUnknownHotkey):
		// A stale event from a configuration that was just replaced.
		logging.FromContext(ctx).Debug().Err(err).Msg("ignoring hotkey event")
		return nil
	default:
		logging.FromContext(ctx).Warn().Err(err).Msg("dispatch failed")
		return nil
	}
}

// RequestReload schedules a reload. Requests made while one is pending are merged.
func (d *Daemon) RequestReload() {
	select {
	case d.reloads <- struct{}{}:
	default:
	}
}

func (d *Daemon) reloadLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.reloads:
			if err := d.Reload(ctx); err != nil {
				logging.FromContext(ctx).Error().Err(err).Msg("reload failed, keeping previous configuration")
			}
		}
	}
}

// Reload re-reads the whkdrc and replaces the running configuration. On any
// failure the previous configuration stays active.
func (d *Daemon) Reload(ctx context.Context) error {
	log := logging.FromContext(ctx)

	doc, err := d.load.Execute(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.modes == nil {
		return ErrNotStarted
	}

	shell := d.shell
	if doc.Shell != d.doc.Shell {
		shell, err = d.deps.Starter.Start(ctx, doc.Shell)
		if err != nil {
			return fmt.Errorf("start shell: %w", err)
		}
	}
	discardShell := func() {
		if shell != d.shell {
			_ = shell.Close()
		}
	}

	// Validate before releasing anything so a bad edit keeps the old keys.
	if _, err := input.NewNormalizer(d.deps.StrictModifiers).NormalizeAll(ctx, doc.AllBindings()); err != nil {
		discardShell()
		return err
	}

	// The old grabs must go first: the new table usually claims the same keys.
	if err := d.modes.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("releasing previous hotkeys")
	}
	modes, report, err := input.Build(ctx, d.deps.Registry, doc.AllBindings(), d.buildOptions(ctx))
	if err != nil {
		discardShell()
		return err
	}

	if shell != d.shell {
		if err := d.shell.Close(); err != nil {
			log.Debug().Err(err).Msg("closing previous shell")
		}
	}
	d.install(doc, modes, shell, report)

	log.Info().
		Str("shell", string(doc.Shell)).
		Int("modes", len(d.summary.Modes)).
		Int("failures", len(report.Failures)).
		Msg("reloaded whkdrc")
	return nil
}

func (d *Daemon) shutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	ctx = context.WithoutCancel(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.modes.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("releasing hotkeys")
	}
	if err := d.shell.Close(); err != nil {
		log.Debug().Err(err).Msg("closing shell")
	}
	log.Info().Msg("whkd stopped")
}
