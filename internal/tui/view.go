package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themeforge/internal/editor"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	resolved := m.session.Resolved()
	sections := []string{m.header(resolved)}

	end := min(m.offset+m.visibleRows(), len(m.tokens))
	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		rows = append(rows, m.renderRow(i, resolved))
	}
	sections = append(sections, strings.Join(rows, "\n"))

	if m.editing {
		sections = append(sections, m.input.View())
	}
	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, footerStyle.Render(m.help()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header(resolved theme.Theme) string {
	title := fmt.Sprintf("themeforge • %s • font %s", m.mode, resolved.FontID)
	if m.session.Dirty() {
		title += " " + dirtyStyle.Render("● unsaved")
	}
	return titleStyle.Render(title)
}

func (m Model) renderRow(i int, resolved theme.Theme) string {
	token := m.tokens[i]
	value := resolved.Tokens(m.mode)[token]
	_, source := m.session.Value(m.mode, token)

	marker := "  "
	style := itemStyle
	if i == m.cursor {
		marker = "▸ "
		style = selectedItemStyle
	}

	var swatch string
	switch {
	case token.IsColor():
		swatch = Swatch(m.parser, value)
	case token.IsShadow():
		swatch = fmt.Sprintf("[%s]", theme.ClassifyShadow(value))
	default:
		swatch = "  "
	}

	line := fmt.Sprintf("%s%-26s %s %s", marker, token.String(), swatch, truncate(value, m.valueWidth()))
	if source != editor.SourceDefault {
		line += " " + sourceStyle.Render(source.String())
	}
	return style.Render(line)
}

func (m Model) valueWidth() int {
	w := m.width - 50
	if w < 16 {
		w = 16
	}
	return w
}

func (m Model) help() string {
	if m.editing {
		return helpLine(keys.Confirm, keys.Cancel)
	}
	return helpLine(keys.Up, keys.Down, keys.Mode, keys.Edit, keys.Shadow, keys.Font, keys.Unset, keys.Save, keys.Reset, keys.Quit)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
