package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
)

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")
	successColor = lipgloss.Color("42")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	dirtyStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	itemStyle         = lipgloss.NewStyle().PaddingLeft(1)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(accentColor).Bold(true)
	sourceStyle       = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	statusStyle = lipgloss.NewStyle().Foreground(successColor).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true).MarginTop(1)
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			MarginTop(1)

	missingSwatchStyle = lipgloss.NewStyle().Foreground(errorColor)
)

// Swatch renders a two-cell block filled with value. Unparseable values
// render as "??".
func Swatch(parser *color.Parser, value string) string {
	c, ok := parser.ParseRGBA(value)
	if !ok {
		return missingSwatchStyle.Render("??")
	}
	fg := color.ReadableForeground(c)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg.Hex())).
		Render("  ")
}
