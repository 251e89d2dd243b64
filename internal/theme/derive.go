package theme

import "github.com/alexisbeaulieu97/themeforge/internal/color"

// Palette is the small set of seed colors a theme is derived from.
type Palette struct {
	Background string `json:"background" yaml:"background"`
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Accent     string `json:"accent" yaml:"accent"`
}

// Seed colors used when a palette field cannot be parsed.
const (
	FallbackBackground = "#ffffff"
	FallbackPrimary    = "#111111"
	FallbackSecondary  = "#666666"
	FallbackAccent     = "#888888"
)

// DestructiveColor is the fixed destructive hue of derived themes.
const DestructiveColor = "#dc2626"

// Mix ratios toward the foreground for surfaces derived from the background.
const (
	cardMix       = 0.04
	popoverMix    = 0.06
	mutedMix      = 0.08
	borderMix     = 0.16
	inputMix      = 0.10
	sidebarMix    = 0.06
	mutedTextMix  = 0.35
	ringMix       = 0.20
	chartBlendMix = 0.50
)

type seeds struct {
	background, primary, secondary, accent color.RGBA
}

func parseSeeds(p Palette, parser *color.Parser) seeds {
	return seeds{
		background: seedOr(parser, p.Background, FallbackBackground),
		primary:    seedOr(parser, p.Primary, FallbackPrimary),
		secondary:  seedOr(parser, p.Secondary, FallbackSecondary),
		accent:     seedOr(parser, p.Accent, FallbackAccent),
	}
}

func seedOr(parser *color.Parser, text, fallback string) color.RGBA {
	if c, ok := parser.ParseRGBA(text); ok {
		return c
	}
	return color.Literal(fallback)
}

// DeriveTokens computes every color token from the palette. Invalid palette
// fields fall back to fixed seeds. A nil parser only understands literal syntax.
func DeriveTokens(p Palette, parser *color.Parser) TokenSet {
	s := parseSeeds(p, parser)

	fg := color.ReadableForeground(s.background)
	card := color.Mix(s.background, fg, cardMix)
	popover := color.Mix(s.background, fg, popoverMix)
	muted := color.Mix(s.background, fg, mutedMix)
	border := color.Mix(s.background, fg, borderMix)
	input := color.Mix(s.background, fg, inputMix)
	sidebar := color.Mix(s.background, fg, sidebarMix)
	mutedFg := color.Mix(fg, s.background, mutedTextMix)
	ring := color.Mix(s.primary, s.background, ringMix)
	destructive := color.Literal(DestructiveColor)

	primaryFg := color.ReadableForeground(s.primary)
	accentFg := color.ReadableForeground(s.accent)

	out := map[Token]color.RGBA{
		Background:               s.background,
		Foreground:               fg,
		Card:                     card,
		CardForeground:           color.ReadableForeground(card),
		Popover:                  popover,
		PopoverForeground:        color.ReadableForeground(popover),
		Primary:                  s.primary,
		PrimaryForeground:        primaryFg,
		Secondary:                s.secondary,
		SecondaryForeground:      color.ReadableForeground(s.secondary),
		Muted:                    muted,
		MutedForeground:          mutedFg,
		Accent:                   s.accent,
		AccentForeground:         accentFg,
		Destructive:              destructive,
		DestructiveForeground:    color.ReadableForeground(destructive),
		Border:                   border,
		Input:                    input,
		Ring:                     ring,
		Chart1:                   s.primary,
		Chart2:                   s.secondary,
		Chart3:                   s.accent,
		Chart4:                   color.Mix(s.primary, s.accent, chartBlendMix),
		Chart5:                   color.Mix(s.secondary, s.accent, chartBlendMix),
		Sidebar:                  sidebar,
		SidebarForeground:        fg,
		SidebarPrimary:           s.primary,
		SidebarPrimaryForeground: primaryFg,
		SidebarAccent:            s.accent,
		SidebarAccentForeground:  accentFg,
		SidebarBorder:            border,
		SidebarRing:              ring,
	}

	set := make(TokenSet, len(out))
	for t, c := range out {
		set[t] = c.String()
	}
	return set
}

// DarkPalette adapts a light palette for the dark mode: the background is
// darkened and the remaining seeds are lightened until readable on it.
func DarkPalette(light Palette, parser *color.Parser) Palette {
	s := parseSeeds(light, parser)
	return Palette{
		Background: color.EnsureDark(s.background).String(),
		Primary:    color.EnsureReadableOnDark(s.primary).String(),
		Secondary:  color.EnsureReadableOnDark(s.secondary).String(),
		Accent:     color.EnsureReadableOnDark(s.accent).String(),
	}
}

// BuildThemeFromPalette derives the light tokens from p and the dark tokens
// from DarkPalette(p). The result carries color tokens only; merge it over
// the default theme for a complete theme.
func BuildThemeFromPalette(p Palette, parser *color.Parser) Theme {
	return Theme{
		Light: DeriveTokens(p, parser),
		Dark:  DeriveTokens(DarkPalette(p, parser), parser),
	}
}
