package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/whkd/internal/bootstrap"
	"github.com/bnema/whkd/internal/cli/styles"
	"github.com/bnema/whkd/internal/domain/build"
	"github.com/bnema/whkd/internal/domain/entity"
	"github.com/bnema/whkd/internal/input"
)

func TestSummaryRenderer_Render(t *testing.T) {
	r := styles.NewSummaryRenderer(styles.NewTheme())

	out := r.Render(bootstrap.Summary{
		Path:  "/home/user/.config/whkdrc",
		Shell: entity.ShellPwsh,
		Modes: []bootstrap.ModeSummary{
			{Name: entity.DefaultMode, Hotkeys: 12, Handles: 12},
			{Name: "resize", Hotkeys: 4, Handles: 3},
		},
		Failures: []*input.RegistrationError{{
			ID:  entity.HotkeyID{Mode: "resize", Modifiers: entity.ModAlt, Key: "F24"},
			Err: errors.New("key not supported on this platform"),
		}},
	})

	assert.Contains(t, out, "/home/user/.config/whkdrc")
	assert.Contains(t, out, "pwsh")
	assert.Contains(t, out, "MODE")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "resize")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "1 hotkey(s) could not be registered")
	assert.Contains(t, out, "resize: alt+F24")
	assert.NotContains(t, out, "duplicate")
}

func TestSummaryRenderer_Duplicates(t *testing.T) {
	r := styles.NewSummaryRenderer(styles.NewTheme())
	id := entity.HotkeyID{Modifiers: entity.ModAlt, Key: "KeyH"}

	out := r.Render(bootstrap.Summary{
		Shell:      entity.ShellSh,
		Modes:      []bootstrap.ModeSummary{{Name: entity.DefaultMode, Hotkeys: 1, Handles: 1}},
		Duplicates: []input.Duplicate{{Previous: entity.Descriptor{HotkeyID: id}, Current: entity.Descriptor{HotkeyID: id}}},
	})
	assert.Contains(t, out, "1 duplicate binding(s)")
	assert.Contains(t, out, "default: alt+KeyH")
}

func TestVersionRenderer_Render(t *testing.T) {
	r := styles.NewVersionRenderer(styles.NewTheme())

	out := r.Render(build.Info{Version: "v0.2.1", Commit: "abc1234", BuildDate: "2026-01-02", GoVersion: "go1.25.3"})
	assert.Contains(t, out, "v0.2.1")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "go1.25.3")
	assert.Contains(t, out, build.RepoURL())
}
