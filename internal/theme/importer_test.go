package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseThemeFromJSONErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "empty", input: "", expected: ErrEmptyInput},
		{name: "whitespace", input: "  \n\t", expected: ErrEmptyInput},
		{name: "broken json", input: "{not json", expected: ErrInvalidSyntax},
		{name: "trailing garbage", input: `{"light":{}} x`, expected: ErrInvalidSyntax},
		{name: "array root", input: `[1, 2]`, expected: ErrInvalidSyntax},
		{name: "string root", input: `"primary"`, expected: ErrInvalidSyntax},
		{name: "null root", input: `null`, expected: ErrInvalidSyntax},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseThemeFromJSON(tt.input)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.expected), "got %v", err)

			var importErr *ImportError
			require.ErrorAs(t, err, &importErr)
		})
	}
}

func TestParseThemeFromJSONSyntaxOffset(t *testing.T) {
	t.Parallel()

	_, err := ParseThemeFromJSON(`{"light": {"primary": }}`)
	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	require.Positive(t, importErr.Offset)
	require.Contains(t, err.Error(), "offset")
}

func TestParseThemeFromJSONShaped(t *testing.T) {
	t.Parallel()

	input := `{
		"light": {"primary": "#ff0000", "bogus": "x", "radius": 4, "accent": null},
		"dark": {"background": "#000000"},
		"branding": {"logoUrl": "https://cdn.example/logo.svg", "logoAlt": "", "logoWidth": 120, "logoHeight": "48.5", "extra": true},
		"fontId": "comic-sans",
		"unknown": {"a": 1}
	}`

	th, report, err := Import(input)
	require.NoError(t, err)

	require.Equal(t, TokenSet{Primary: "#ff0000"}, th.Light)
	require.Equal(t, TokenSet{Background: "#000000"}, th.Dark)
	require.Equal(t, "https://cdn.example/logo.svg", *th.Branding.LogoURL)
	require.Nil(t, th.Branding.LogoAlt)
	require.Equal(t, 120.0, *th.Branding.LogoWidth)
	require.Equal(t, 48.5, *th.Branding.LogoHeight)
	require.Empty(t, th.FontID)

	require.Equal(t, []string{
		"branding.extra",
		"branding.logoAlt",
		"fontId",
		"light.accent",
		"light.bogus",
		"light.radius",
		"unknown",
	}, report.Dropped)
}

func TestParseThemeFromJSONFlatObjectIsLight(t *testing.T) {
	t.Parallel()

	th, err := ParseThemeFromJSON(`{"primary": "#123456", "Primary": "#000000", "fontId": "lora"}`)
	require.NoError(t, err)
	require.Equal(t, TokenSet{Primary: "#123456"}, th.Light)
	require.NotNil(t, th.Dark)
	require.Empty(t, th.Dark)
	require.Equal(t, FontLora, th.FontID)
}

func TestParseThemeFromJSONMisspeltModesImportNothing(t *testing.T) {
	t.Parallel()

	th, report, err := Import(`{"Light": {"primary": "#123456"}}`)
	require.NoError(t, err)
	require.Empty(t, th.Light)
	require.Empty(t, th.Dark)
	require.Equal(t, []string{"Light"}, report.Dropped)
}

func TestParseThemeFromJSONModesAlwaysNonNil(t *testing.T) {
	t.Parallel()

	th, err := ParseThemeFromJSON(`{"dark": "oops"}`)
	require.NoError(t, err)
	require.NotNil(t, th.Light)
	require.NotNil(t, th.Dark)
	require.Empty(t, th.Dark)

	th, err = ParseThemeFromJSON(`{}`)
	require.NoError(t, err)
	require.NotNil(t, th.Light)
	require.NotNil(t, th.Dark)
	require.True(t, th.IsEmpty())
}

func TestParseThemeFromJSONBrandingNumbers(t *testing.T) {
	t.Parallel()

	th, err := ParseThemeFromJSON(`{"branding": {"logoWidth": "wide", "logoHeight": "1e999"}}`)
	require.NoError(t, err)
	require.Nil(t, th.Branding.LogoWidth)
	require.Nil(t, th.Branding.LogoHeight)

	th, err = ParseThemeFromJSON(`{"branding": "none"}`)
	require.NoError(t, err)
	require.True(t, th.Branding.IsZero())
}

func TestParseThemeFromJSONDuplicateKeysLastWins(t *testing.T) {
	t.Parallel()

	th, err := ParseThemeFromJSON(`{"light": {"primary": "#111111", "primary": "#222222"}}`)
	require.NoError(t, err)
	require.Equal(t, "#222222", th.Light[Primary])
}

func TestImportedFragmentMerges(t *testing.T) {
	t.Parallel()

	fragment, err := ParseThemeFromJSON(`{"light": {"primary": "#ff0000"}, "fontId": "geist"}`)
	require.NoError(t, err)

	merged := Merge(Default(), Theme{}, fragment)
	require.Equal(t, "#ff0000", merged.Light[Primary])
	require.Equal(t, FontGeist, merged.FontID)
	require.Empty(t, merged.Light.Missing())
}

func TestImportDropsValuesThatEscapeDeclarations(t *testing.T) {
	t.Parallel()

	th, report, err := Import(`{"light": {"radius": "0; } body { display: none } :root { --x: 1", "spacing": "0.5rem"}, "dark": {"fontSans": "\"Inter"}}`)
	require.NoError(t, err)
	require.Equal(t, TokenSet{Spacing: "0.5rem"}, th.Light)
	require.Empty(t, th.Dark)
	require.Equal(t, []string{"dark.fontSans", "light.radius"}, report.Dropped)

	css := CSS(Merge(Default(), Theme{}, th), nil)
	require.NotContains(t, css, "display: none")
	require.Equal(t, 2, strings.Count(css, "{"))
	require.Equal(t, 2, strings.Count(css, "}"))
}
