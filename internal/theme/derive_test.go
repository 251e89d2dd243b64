package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
)

var neutralPalette = Palette{
	Background: "#ffffff",
	Primary:    "#111111",
	Secondary:  "#666666",
	Accent:     "#888888",
}

func colorTokens() []Token {
	var out []Token
	for _, token := range Tokens() {
		if token.IsColor() {
			out = append(out, token)
		}
	}
	return out
}

func TestDeriveTokensNeutralPalette(t *testing.T) {
	t.Parallel()

	set := DeriveTokens(neutralPalette, nil)

	expected := map[Token]string{
		Background:            "#ffffff",
		Foreground:            "#0a0a0a",
		Card:                  "#f5f5f5",
		CardForeground:        "#0a0a0a",
		Popover:               "#f0f0f0",
		Muted:                 "#ebebeb",
		MutedForeground:       "#606060",
		Border:                "#d8d8d8",
		Input:                 "#e7e7e7",
		Ring:                  "#414141",
		Primary:               "#111111",
		PrimaryForeground:     "#fafafa",
		Destructive:           DestructiveColor,
		DestructiveForeground: "#fafafa",
		Chart1:                "#111111",
		Chart2:                "#666666",
		Chart3:                "#888888",
		Chart5:                "#777777",
		Sidebar:               "#f0f0f0",
		SidebarForeground:     "#0a0a0a",
		SidebarPrimary:        "#111111",
		SidebarBorder:         "#d8d8d8",
		SidebarRing:           "#414141",
	}
	for token, value := range expected {
		require.Equal(t, value, set[token], token.String())
	}
}

func TestDeriveTokensCoversEveryColorToken(t *testing.T) {
	t.Parallel()

	set := DeriveTokens(Palette{Background: "#1e293b", Primary: "#f97316", Secondary: "teal", Accent: "hsl(280 60% 60%)"}, nil)
	require.Len(t, set, len(colorTokens()))
	for _, token := range colorTokens() {
		value, ok := set[token]
		require.True(t, ok, token.String())
		require.Equal(t, value, color.ToSafeColor(value), "%s must be canonical", token)
	}
}

func TestDeriveTokensFallsBackPerField(t *testing.T) {
	t.Parallel()

	set := DeriveTokens(Palette{Background: "nonsense", Primary: "#ff0000", Secondary: "", Accent: "rgb(1 2"}, nil)
	require.Equal(t, FallbackBackground, set[Background])
	require.Equal(t, "#ff0000", set[Primary])
	require.Equal(t, FallbackSecondary, set[Secondary])
	require.Equal(t, FallbackAccent, set[Accent])
}

func TestDeriveTokensForegroundsAreReadable(t *testing.T) {
	t.Parallel()

	pairs := map[Token]Token{
		Background:  Foreground,
		Card:        CardForeground,
		Popover:     PopoverForeground,
		Primary:     PrimaryForeground,
		Secondary:   SecondaryForeground,
		Accent:      AccentForeground,
		Destructive: DestructiveForeground,
	}
	for _, palette := range []Palette{neutralPalette, {Background: "#0f172a", Primary: "#fde047", Secondary: "#334155", Accent: "#22d3ee"}} {
		set := DeriveTokens(palette, nil)
		for surface, text := range pairs {
			bg := color.Literal(set[surface])
			require.Equal(t, color.ReadableForeground(bg).String(), set[text], "%s on %s", text, surface)
		}
	}
}

func TestDarkPalette(t *testing.T) {
	t.Parallel()

	dark := DarkPalette(neutralPalette, nil)
	require.False(t, color.IsLight(color.Literal(dark.Background)))
	require.True(t, color.IsLight(color.Literal(dark.Primary)))
	require.True(t, color.IsLight(color.Literal(dark.Secondary)))
	require.True(t, color.IsLight(color.Literal(dark.Accent)))

	require.Equal(t, dark, DarkPalette(dark, nil), "dark palette is a fixed point")
}

func TestBuildThemeFromPalette(t *testing.T) {
	t.Parallel()

	th := BuildThemeFromPalette(neutralPalette, nil)
	require.Equal(t, "#ffffff", th.Light[Background])
	require.False(t, color.IsLight(color.Literal(th.Dark[Background])))
	require.Equal(t, DeriveTokens(DarkPalette(neutralPalette, nil), nil), th.Dark)

	merged := Merge(Default(), th, Theme{})
	require.Empty(t, merged.Light.Missing())
	require.Empty(t, merged.Dark.Missing())
	require.Equal(t, "#ffffff", merged.Light[Background])
}

func TestDeriveTokensUsesParserResolver(t *testing.T) {
	t.Parallel()

	brand := color.ResolverFunc(func(text string) (color.RGBA, bool) {
		if text == "brand-blue" {
			return color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 1}, true
		}
		return color.RGBA{}, false
	})
	parser := color.NewParser(color.WithResolver(brand))

	set := DeriveTokens(Palette{Background: "#ffffff", Primary: "brand-blue"}, parser)
	require.Equal(t, "#2563eb", set[Primary])
	require.Equal(t, FallbackSecondary, set[Secondary])
}
