// Package render adapts terminal rendering surfaces into color resolvers used
// as fallback tiers when literal color parsing fails.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
)

// Tier names accepted by NewResolver.
const (
	TierNone   = "none"
	TierStyle  = "style"
	TierRaster = "raster"
	TierAll    = "all"
)

// Tiers lists the accepted tier names in escalating order.
func Tiers() []string {
	return []string{TierNone, TierStyle, TierRaster, TierAll}
}

// NewResolver builds the resolver chain for a tier name.
func NewResolver(tier string) (color.Resolver, error) {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "", TierNone:
		return color.NopResolver{}, nil
	case TierStyle:
		return NewStyleResolver(), nil
	case TierRaster:
		return NewRasterResolver(), nil
	case TierAll:
		return color.Chain(NewStyleResolver(), NewRasterResolver()), nil
	default:
		return nil, fmt.Errorf("unknown resolver tier %q", tier)
	}
}

// newTrueColorRenderer returns a renderer that always emits 24-bit sequences,
// independent of the terminal the process runs in.
func newTrueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

// renderable reports whether the renderer can interpret text. termenv indexes
// its palette table directly, so ANSI indices outside 0-255 must never reach it.
func renderable(text string) bool {
	if text == "" {
		return false
	}
	if strings.HasPrefix(text, "#") {
		_, err := colorful.Hex(text)
		return err == nil
	}
	return ansiIndex(text) >= 0
}

// ansiIndex returns the palette index encoded in text, or -1.
func ansiIndex(text string) int {
	for _, r := range text {
		if r < '0' || r > '9' {
			return -1
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil || n > 255 {
		return -1
	}
	return n
}

func fromTermenv(c termenv.Color) color.RGBA {
	r, g, b := termenv.ConvertToRGB(c).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 1}
}
