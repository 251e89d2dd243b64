package color

import "math"

// lightThreshold is the CIE Lab lightness at or above which a color counts as
// a light surface.
const lightThreshold = 0.6

// adjustStep is the fraction mixed toward black or white per adjustment round.
const adjustStep = 0.2

// darkSurfaceLightness is the Lab lightness EnsureDark brings light colors
// down to, so the result reads as a dark surface rather than a mid gray.
const darkSurfaceLightness = 0.25

// maxAdjustRounds bounds EnsureDark/EnsureReadableOnDark; mixing 20% per round
// reaches either extreme long before this.
const maxAdjustRounds = 32

var (
	// DarkText is the near-black foreground used on light surfaces.
	DarkText = RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 1}
	// LightText is the near-white foreground used on dark surfaces.
	LightText = RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 1}
)

// Mix linearly interpolates from base (ratio 0) to other (ratio 1).
func Mix(base, other RGBA, ratio float64) RGBA {
	base, other = base.Clamp(), other.Clamp()
	t := 0.0
	if !math.IsNaN(ratio) {
		t = clampUnit(ratio)
	}

	switch t {
	case 0:
		return base
	case 1:
		return other
	}

	blended := base.colorful().BlendRgb(other.colorful(), t)
	alpha := base.A + t*(other.A-base.A)
	return fromColorful(blended, alpha)
}

// Lightness returns the CIE Lab L component in [0,1].
func Lightness(c RGBA) float64 {
	l, _, _ := c.Clamp().colorful().Lab()
	return l
}

// IsLight reports whether c should be treated as a light surface.
func IsLight(c RGBA) bool {
	return Lightness(c) >= lightThreshold
}

// ReadableForeground picks DarkText or LightText for text drawn on background.
func ReadableForeground(background RGBA) RGBA {
	if IsLight(background) {
		return DarkText
	}
	return LightText
}

// EnsureDark darkens a light c until its lightness is at most
// darkSurfaceLightness. Colors that are not light are returned unchanged,
// which makes the operation idempotent.
func EnsureDark(c RGBA) RGBA {
	c = c.Clamp()
	if !IsLight(c) {
		return c
	}
	for i := 0; i < maxAdjustRounds && Lightness(c) > darkSurfaceLightness; i++ {
		c = withAlpha(Mix(c, Black, adjustStep), c.A)
	}
	if Lightness(c) > darkSurfaceLightness {
		return withAlpha(Black, c.A)
	}
	return c
}

// EnsureReadableOnDark lightens c until it is light enough to read against a
// dark background. Light colors are returned unchanged.
func EnsureReadableOnDark(c RGBA) RGBA {
	c = c.Clamp()
	for i := 0; i < maxAdjustRounds && !IsLight(c); i++ {
		c = withAlpha(Mix(c, White, adjustStep), c.A)
	}
	if !IsLight(c) {
		return withAlpha(White, c.A)
	}
	return c
}

func withAlpha(c RGBA, alpha float64) RGBA {
	c.A = alpha
	return c
}
