package styles_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/whkd/internal/cli/styles"
	"github.com/bnema/whkd/internal/domain/entity"
)

func TestBindingsRenderer_Render(t *testing.T) {
	r := styles.NewBindingsRenderer(styles.NewTheme())

	out := r.Render([]styles.BindingGroup{
		{
			Mode: entity.DefaultMode,
			Descriptors: []entity.Descriptor{
				{
					HotkeyID:    entity.HotkeyID{Modifiers: entity.ModAlt, Key: "KeyH"},
					Command:     "komorebic focus left",
					ProcessName: "Firefox",
				},
				{
					HotkeyID: entity.HotkeyID{Modifiers: entity.ModAlt, Key: "KeyR"},
					Action:   entity.SwitchMode("resize"),
				},
			},
		},
		{
			Mode: "resize",
			Descriptors: []entity.Descriptor{{
				HotkeyID: entity.HotkeyID{Mode: "resize", Key: "Escape"},
				Command:  strings.Repeat("x", 80),
				Action:   entity.ReturnToDefault(),
			}},
		},
	})

	assert.Contains(t, out, "HOTKEY")
	assert.Contains(t, out, "alt+KeyH")
	assert.Contains(t, out, "Firefox")
	assert.Contains(t, out, "komorebic focus left")
	assert.Contains(t, out, "resize")
	assert.Contains(t, out, "Escape")
	assert.Contains(t, out, strings.Repeat("x", 59)+"…")
	assert.NotContains(t, out, strings.Repeat("x", 60))
	assert.Less(t, strings.Index(out, "default"), strings.Index(out, "Escape"))
}
