package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects which token pair a button is painted with.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonDestructive
	ButtonOutline
	ButtonGhost
)

// Button is a single call-to-action.
type Button struct {
	label   string
	variant ButtonVariant
	focus   bool
	palette Palette
}

// NewButton creates a primary button.
func NewButton(label string, p Palette) *Button {
	return &Button{label: label, palette: p}
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithFocus draws the focus ring around the button.
func (b *Button) WithFocus(focus bool) *Button {
	b.focus = focus
	return b
}

// View renders the button.
func (b *Button) View() string {
	return b.style().Render(b.label)
}

func (b *Button) style() lipgloss.Style {
	p := b.palette
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	switch b.variant {
	case ButtonSecondary:
		style = style.Background(p.Secondary).Foreground(p.SecondaryForeground)
	case ButtonDestructive:
		style = style.Background(p.Destructive).Foreground(p.DestructiveForeground)
	case ButtonOutline:
		style = style.Background(p.Background).Foreground(p.Foreground).
			Border(lipgloss.NormalBorder()).BorderForeground(p.Border).Padding(0, 1)
	case ButtonGhost:
		style = style.Foreground(p.Foreground).Bold(false)
	default:
		style = style.Background(p.Primary).Foreground(p.PrimaryForeground)
	}

	if b.focus {
		style = style.Underline(true).BorderForeground(p.Ring)
		if b.variant != ButtonOutline {
			style = style.Border(lipgloss.RoundedBorder()).Padding(0, 1)
		}
	}
	return style
}

// ButtonRow lays buttons out horizontally.
func ButtonRow(gap int, buttons ...*Button) string {
	if len(buttons) == 0 {
		return ""
	}
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 && gap > 0 {
			views = append(views, strings.Repeat(" ", gap))
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
