// Package color parses free-form color text into a canonical RGBA model and
// provides the mixing and contrast helpers used to derive theme tokens.
//
// Every exported function in this package is total: text that cannot be
// understood degrades to Black instead of returning an error, because colors
// arrive from live editing and must never break the caller.
package color

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is the canonical decomposition of a color value.
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A float64
}

// Normalized is the storage-friendly form of a color: an opaque hex code plus
// the alpha channel kept separately.
type Normalized struct {
	Hex   string
	Alpha float64
}

var (
	// Black is the failure sentinel returned when nothing could be recovered.
	Black = RGBA{A: 1}
	// White is opaque white.
	White = RGBA{R: 255, G: 255, B: 255, A: 1}
	// Transparent is fully transparent black.
	Transparent = RGBA{}
)

// FallbackText is the canonical text of the failure sentinel.
const FallbackText = "#000000"

// Clamp returns the color with alpha forced into [0,1]. NaN alpha becomes opaque.
func (c RGBA) Clamp() RGBA {
	switch {
	case math.IsNaN(c.A):
		c.A = 1
	case c.A < 0:
		c.A = 0
	case c.A > 1:
		c.A = 1
	}
	return c
}

// Opaque reports whether the color has full alpha.
func (c RGBA) Opaque() bool {
	return c.Clamp().A >= 1
}

// Hex returns the #rrggbb form, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS returns the functional rgb()/rgba() form.
func (c RGBA) CSS() string {
	c = c.Clamp()
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
}

// String returns the canonical text: hex when opaque, rgba() otherwise.
func (c RGBA) String() string {
	if c.Opaque() {
		return c.Hex()
	}
	return c.CSS()
}

// Normalized splits the color into hex and alpha.
func (c RGBA) Normalized() Normalized {
	c = c.Clamp()
	return Normalized{Hex: c.Hex(), Alpha: c.A}
}

func (c RGBA) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(col colorful.Color, alpha float64) RGBA {
	r, g, b := col.Clamped().RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}.Clamp()
}

func formatAlpha(a float64) string {
	rounded := math.Round(a*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
