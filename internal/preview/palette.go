// Package preview renders a small storefront mock styled from resolved theme
// tokens so a theme can be judged in the terminal.
package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

// Palette is the set of terminal colors a preview is drawn with. Values are
// hex strings produced from one mode of a theme.
type Palette struct {
	Mode theme.Mode

	Background            lipgloss.Color
	Foreground            lipgloss.Color
	Card                  lipgloss.Color
	CardForeground        lipgloss.Color
	Primary               lipgloss.Color
	PrimaryForeground     lipgloss.Color
	Secondary             lipgloss.Color
	SecondaryForeground   lipgloss.Color
	Muted                 lipgloss.Color
	MutedForeground       lipgloss.Color
	Accent                lipgloss.Color
	AccentForeground      lipgloss.Color
	Destructive           lipgloss.Color
	DestructiveForeground lipgloss.Color
	Border                lipgloss.Color
	Ring                  lipgloss.Color
}

// NewPalette reads the color tokens of mode from t. Missing or unparseable
// values fall back to the built-in defaults, then to black.
func NewPalette(t theme.Theme, mode theme.Mode, parser *color.Parser) Palette {
	set := t.Tokens(mode)
	pick := func(token theme.Token) lipgloss.Color {
		if c, ok := parser.ParseRGBA(set[token]); ok {
			return lipgloss.Color(c.Hex())
		}
		if c, ok := parser.ParseRGBA(theme.DefaultValue(mode, token)); ok {
			return lipgloss.Color(c.Hex())
		}
		return lipgloss.Color(color.Black.Hex())
	}

	return Palette{
		Mode:                  mode,
		Background:            pick(theme.Background),
		Foreground:            pick(theme.Foreground),
		Card:                  pick(theme.Card),
		CardForeground:        pick(theme.CardForeground),
		Primary:               pick(theme.Primary),
		PrimaryForeground:     pick(theme.PrimaryForeground),
		Secondary:             pick(theme.Secondary),
		SecondaryForeground:   pick(theme.SecondaryForeground),
		Muted:                 pick(theme.Muted),
		MutedForeground:       pick(theme.MutedForeground),
		Accent:                pick(theme.Accent),
		AccentForeground:      pick(theme.AccentForeground),
		Destructive:           pick(theme.Destructive),
		DestructiveForeground: pick(theme.DestructiveForeground),
		Border:                pick(theme.Border),
		Ring:                  pick(theme.Ring),
	}
}

func (p Palette) surface() lipgloss.Style {
	return lipgloss.NewStyle().Background(p.Background).Foreground(p.Foreground)
}
