package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/whkd/internal/domain/entity"
)

const maxCommandWidth = 60

// BindingGroup is the set of descriptors bound in one mode.
type BindingGroup struct {
	Mode        string
	Descriptors []entity.Descriptor
}

// BindingsRenderer renders the bindings of a whkdrc, one table per mode.
type BindingsRenderer struct {
	theme *Theme
}

// NewBindingsRenderer creates a new bindings renderer with the given theme.
func NewBindingsRenderer(theme *Theme) *BindingsRenderer {
	return &BindingsRenderer{theme: theme}
}

// Render renders every group in order.
func (r *BindingsRenderer) Render(groups []BindingGroup) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		title := r.theme.Title.Render(entity.DisplayMode(g.Mode))
		parts = append(parts, title+"\n"+r.table(g.Descriptors))
	}
	return strings.Join(parts, "\n\n")
}

func (r *BindingsRenderer) table(descriptors []entity.Descriptor) string {
	rows := make([][]string, 0, len(descriptors))
	for _, d := range descriptors {
		process := d.ProcessName
		if process == "" {
			process = "*"
		}
		rows = append(rows, []string{
			d.Combo(),
			process,
			truncate(d.Command, maxCommandWidth),
			d.Action.String(),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("HOTKEY", "PROCESS", "COMMAND", "MODE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.Header
			}
			style := r.theme.Normal.Padding(0, 1)
			switch col {
			case 0:
				style = style.Foreground(r.theme.Accent)
			case 1, 3:
				style = r.theme.Subtle.Padding(0, 1)
			}
			return style
		}).
		Render()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
