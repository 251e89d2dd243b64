package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
	forgeerrors "github.com/alexisbeaulieu97/themeforge/pkg/errors"
)

func TestLoadPalette(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "palette.yaml", `background: "#ffffff"
primary: "#111111"
secondary: teal
accent: hsl(280 60% 60%)
`)

	palette, err := LoadPalette(path)
	require.NoError(t, err)
	require.Equal(t, theme.Palette{
		Background: "#ffffff",
		Primary:    "#111111",
		Secondary:  "teal",
		Accent:     "hsl(280 60% 60%)",
	}, palette)
}

func TestParsePaletteAcceptsJSON(t *testing.T) {
	t.Parallel()

	palette, err := ParsePalette("palette.json", []byte(`{"background": "#000", "accent": "red"}`))
	require.NoError(t, err)
	require.Equal(t, "#000", palette.Background)
	require.Equal(t, "red", palette.Accent)
	require.Empty(t, palette.Primary)
}

func TestParsePaletteEmpty(t *testing.T) {
	t.Parallel()

	palette, err := ParsePalette("empty.yaml", nil)
	require.NoError(t, err)
	require.Equal(t, theme.Palette{}, palette)
}

func TestParsePaletteErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		line int
	}{
		{name: "unknown field", body: "background: \"#fff\"\ncolour: red\n", line: 2},
		{name: "broken yaml", body: "background: [unterminated\nprimary: x\n"},
		{name: "not a mapping", body: "- red\n- blue\n", line: 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParsePalette("palette.yaml", []byte(tc.body))
			var parseErr *forgeerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, "palette.yaml", parseErr.Path)
			if tc.line > 0 {
				require.Equal(t, tc.line, parseErr.Line)
			} else {
				require.Positive(t, parseErr.Line)
			}
		})
	}
}

func TestLoadPaletteMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadPalette(filepath.Join(t.TempDir(), "nope.yaml"))
	var parseErr *forgeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}
