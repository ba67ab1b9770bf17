package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/rsa4096/internal/ui"
)

// Style variables for the benchmark dashboard, rebuilt from the active ui
// theme by initTUIStyles.
var (
	panelStyle     lipgloss.Style
	headerStyle    lipgloss.Style
	engineStyle    lipgloss.Style
	durationStyle  lipgloss.Style
	okStyle        lipgloss.Style
	errStyle       lipgloss.Style
	sparklineStyle lipgloss.Style
	footerStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all dashboard styles from the current ui theme.
// Called at package init and again from Run after InitTheme has run.
func initTUIStyles() {
	t := ui.GetCurrentTheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	headerStyle = t.Bold
	engineStyle = t.Primary
	durationStyle = t.Info
	okStyle = t.Success
	errStyle = t.Error
	sparklineStyle = t.Primary
	footerStyle = t.Secondary
}
