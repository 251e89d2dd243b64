package color

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themeforge/internal/logger"
)

func fixedResolver(c RGBA) Resolver {
	return ResolverFunc(func(string) (RGBA, bool) { return c, true })
}

func TestParserUsesResolverOnlyAfterLiteralFails(t *testing.T) {
	t.Parallel()

	calls := 0
	resolver := ResolverFunc(func(text string) (RGBA, bool) {
		calls++
		require.Equal(t, "color-mix(in srgb, red, blue)", text)
		return RGBA{R: 128, B: 128, A: 1}, true
	})
	p := NewParser(WithResolver(resolver))

	got, ok := p.ParseRGBA("#ff0000")
	require.True(t, ok)
	require.Equal(t, RGBA{R: 255, A: 1}, got)
	require.Zero(t, calls)

	got, ok = p.ParseRGBA("  color-mix(in srgb, red, blue) ")
	require.True(t, ok)
	require.Equal(t, RGBA{R: 128, B: 128, A: 1}, got)
	require.Equal(t, 1, calls)
	require.Equal(t, "#800080", p.ToSafeColor("color-mix(in srgb, red, blue)"))
}

func TestParserSkipsResolverForBlankInput(t *testing.T) {
	t.Parallel()

	p := NewParser(WithResolver(ResolverFunc(func(string) (RGBA, bool) {
		t.Fatal("resolver should not be consulted for blank input")
		return RGBA{}, false
	})))

	got, ok := p.ParseRGBA("   ")
	require.False(t, ok)
	require.Equal(t, Black, got)
}

func TestParserClampsResolverOutput(t *testing.T) {
	t.Parallel()

	p := NewParser(WithResolver(fixedResolver(RGBA{R: 1, A: 3})))
	got, ok := p.ParseRGBA("mystery")
	require.True(t, ok)
	require.Equal(t, 1.0, got.A)
}

func TestParserRecoversFromPanickingResolver(t *testing.T) {
	t.Parallel()

	p := NewParser(WithResolver(ResolverFunc(func(string) (RGBA, bool) {
		panic("surface unavailable")
	})))

	got, ok := p.ParseRGBA("mystery")
	require.False(t, ok)
	require.Equal(t, Black, got)
}

func TestParserLogsFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	p := NewParser(WithResolver(NopResolver{}), WithLogger(log))
	require.Equal(t, FallbackText, p.ToSafeColor("definitely-not-a-color"))
	require.Contains(t, buf.String(), "definitely-not-a-color")
}

func TestNilParserIsHeadless(t *testing.T) {
	t.Parallel()

	var p *Parser
	got, ok := p.ParseRGBA("#abcdef")
	require.True(t, ok)
	require.Equal(t, "#abcdef", got.String())

	_, ok = p.ParseRGBA("mystery")
	require.False(t, ok)
}

func TestChain(t *testing.T) {
	t.Parallel()

	panicking := ResolverFunc(func(string) (RGBA, bool) { panic("boom") })
	want := RGBA{G: 200, A: 1}

	chain := Chain(nil, NopResolver{}, panicking, fixedResolver(want), fixedResolver(White))
	got, ok := chain.Resolve("anything")
	require.True(t, ok)
	require.Equal(t, want, got)

	_, ok = Chain().Resolve("anything")
	require.False(t, ok)

	_, ok = Chain(NopResolver{}, panicking).Resolve("anything")
	require.False(t, ok)
}
