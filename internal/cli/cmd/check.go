package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/whkd/internal/application/usecase"
	"github.com/bnema/whkd/internal/cli/styles"
	"github.com/bnema/whkd/internal/infrastructure/config"
	"github.com/bnema/whkd/internal/infrastructure/hotkey"
	"github.com/bnema/whkd/internal/input"
	"github.com/bnema/whkd/internal/logging"
)

func newCheckCmd(opts *rootOptions, env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the whkdrc without grabbing any hotkey",
		Long: `Parse the whkdrc, normalize every binding and print the bindings of each mode.

No hotkey is grabbed and no shell is started, so check can run next to a
live daemon. Keys this platform cannot grab are reported as failures.

Examples:
  whkd check
  whkd check -c ./whkdrc --strict-modifiers`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts, env)
		},
	}
}

func runCheck(cmd *cobra.Command, opts *rootOptions, env Env) error {
	path, mgr, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}
	settings := mgr.Get()

	level, err := logging.ParseLevel(settings.Logging.Level)
	if err != nil {
		return err
	}
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = settings.Logging.Format
	cfg.Output = env.Stderr
	ctx := logging.WithContext(cmd.Context(), logging.New(cfg))

	doc, err := usecase.NewLoadWhkdrcUseCase(config.NewWhkdrcFile(path)).Execute(ctx)
	if err != nil {
		return err
	}

	registry := hotkey.NewRegistry(hotkey.NewDryRun(env.Supports))
	defer func() { _ = registry.Close() }()

	modes, report, err := input.Build(ctx, registry, doc.AllBindings(), input.Options{
		StrictModifiers: settings.StrictModifiers,
	})
	if err != nil {
		return err
	}
	defer func() { _ = modes.Close(ctx) }()

	groups := make([]styles.BindingGroup, 0, len(modes.Modes()))
	for _, mode := range modes.Modes() {
		groups = append(groups, styles.BindingGroup{Mode: mode, Descriptors: modes.Descriptors(mode)})
	}

	theme := styles.NewTheme()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n\n", theme.Subtle.Render("Shell"), theme.Badge.Render(string(doc.Shell)))
	fmt.Fprintln(out, styles.NewBindingsRenderer(theme).Render(groups))

	for _, d := range report.Duplicates {
		fmt.Fprintln(out, theme.WarningStyle.Render(fmt.Sprintf("%s duplicate %s, later one wins", styles.IconWarning, d.Current.ID())))
	}
	if len(report.Failures) > 0 {
		for _, f := range report.Failures {
			fmt.Fprintln(out, theme.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconWarning, f)))
		}
		return fmt.Errorf("%d hotkey(s) cannot be registered on this platform", len(report.Failures))
	}

	fmt.Fprintln(out, theme.Highlight.Render(fmt.Sprintf("%s is valid", path)))
	return nil
}
