package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/whkd/internal/bootstrap"
	"github.com/bnema/whkd/internal/domain/entity"
)

// SummaryRenderer renders the startup summary of the daemon.
type SummaryRenderer struct {
	theme *Theme
}

// NewSummaryRenderer creates a new summary renderer with the given theme.
func NewSummaryRenderer(theme *Theme) *SummaryRenderer {
	return &SummaryRenderer{theme: theme}
}

// Render renders the config path, the shell, a table of modes and any
// registration problems.
func (r *SummaryRenderer) Render(s bootstrap.Summary) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render("Config"), r.theme.Normal.Render(s.Path))
	fmt.Fprintf(&b, "%s %s %s\n", iconStyle.Render(IconTerminal), r.theme.Subtle.Render("Shell "), r.theme.Badge.Render(string(s.Shell)))
	b.WriteString("\n")
	b.WriteString(r.modesTable(s.Modes))

	if len(s.Failures) > 0 {
		b.WriteString("\n\n")
		b.WriteString(r.theme.WarningStyle.Render(fmt.Sprintf("%s %d hotkey(s) could not be registered", IconWarning, len(s.Failures))))
		for _, f := range s.Failures {
			b.WriteString("\n  ")
			b.WriteString(r.theme.Subtle.Render(f.Error()))
		}
	}
	if len(s.Duplicates) > 0 {
		b.WriteString("\n\n")
		b.WriteString(r.theme.WarningStyle.Render(fmt.Sprintf("%s %d duplicate binding(s), later ones win", IconWarning, len(s.Duplicates))))
		for _, d := range s.Duplicates {
			b.WriteString("\n  ")
			b.WriteString(r.theme.Subtle.Render(d.Current.ID().String()))
		}
	}
	return b.String()
}

func (r *SummaryRenderer) modesTable(modes []bootstrap.ModeSummary) string {
	rows := make([][]string, 0, len(modes))
	for _, m := range modes {
		rows = append(rows, []string{
			entity.DisplayMode(m.Name),
			strconv.Itoa(m.Hotkeys),
			strconv.Itoa(m.Handles),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("MODE", "HOTKEYS", "READY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.Header
			}
			style := r.theme.Normal.Padding(0, 1)
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			if col == 2 && row >= 0 && row < len(modes) && modes[row].Handles < modes[row].Hotkeys {
				style = style.Foreground(r.theme.Warning)
			}
			return style
		})
	return t.Render()
}
