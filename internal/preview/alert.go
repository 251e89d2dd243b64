package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the alert's token pair.
type AlertVariant int

const (
	AlertInfo AlertVariant = iota
	AlertDestructive
)

// Alert is a one-block message banner.
type Alert struct {
	title   string
	message string
	variant AlertVariant
	palette Palette
}

// NewAlert creates an informational alert.
func NewAlert(message string, p Palette) *Alert {
	return &Alert{message: message, palette: p}
}

// WithTitle sets a bold first line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// View renders the alert.
func (a *Alert) View() string {
	p := a.palette
	style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder(), false, false, false, true)
	switch a.variant {
	case AlertDestructive:
		style = style.Background(p.Destructive).Foreground(p.DestructiveForeground).BorderForeground(p.DestructiveForeground)
	default:
		style = style.Background(p.Muted).Foreground(p.Foreground).BorderForeground(p.Accent)
	}

	var content []string
	if a.title != "" {
		content = append(content, lipgloss.NewStyle().Bold(true).Render(a.title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}
	return style.Render(strings.Join(content, "\n"))
}
