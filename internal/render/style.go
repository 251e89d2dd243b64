package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
)

// StyleResolver applies the candidate as the foreground of a throwaway style
// and reads back the color the renderer computes for it.
type StyleResolver struct {
	renderer *lipgloss.Renderer
}

// NewStyleResolver returns a StyleResolver bound to a private true-color renderer.
func NewStyleResolver() *StyleResolver {
	return &StyleResolver{renderer: newTrueColorRenderer()}
}

// Resolve implements color.Resolver.
func (s *StyleResolver) Resolve(text string) (color.RGBA, bool) {
	candidate := strings.TrimSpace(text)
	if !renderable(candidate) {
		return color.RGBA{}, false
	}

	style := s.renderer.NewStyle().Foreground(lipgloss.Color(candidate))
	fg, ok := style.GetForeground().(lipgloss.Color)
	if !ok {
		return color.RGBA{}, false
	}

	computed := s.renderer.ColorProfile().Color(string(fg))
	if computed == nil {
		return color.RGBA{}, false
	}
	return fromTermenv(computed), true
}
