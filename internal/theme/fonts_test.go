package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFontCatalogue(t *testing.T) {
	t.Parallel()

	seen := map[FontID]bool{}
	for _, f := range Fonts() {
		require.False(t, seen[f.ID], "duplicate font %s", f.ID)
		seen[f.ID] = true
		require.True(t, f.ID.Supported())
		require.NotEmpty(t, f.Label)
	}

	require.True(t, DefaultFontID.Supported())
	require.False(t, FontID("").Supported())
	require.False(t, FontID("comic-sans").Supported())
}

func TestFontToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id    FontID
		token Token
		stack string
	}{
		{id: FontInter, token: FontSans, stack: `"Inter", ui-sans-serif, system-ui, sans-serif`},
		{id: FontPlayfairDisplay, token: FontSerif, stack: `"Playfair Display", ui-serif, Georgia, serif`},
		{id: FontJetBrainsMono, token: FontMono, stack: `"JetBrains Mono", ui-monospace, SFMono-Regular, Menlo, monospace`},
	}
	for _, tt := range tests {
		token, stack, ok := FontToken(tt.id)
		require.True(t, ok)
		require.Equal(t, tt.token, token)
		require.Equal(t, tt.stack, stack)
	}

	_, _, ok := FontToken("")
	require.False(t, ok)
}

func TestDefaultFontMatchesDefaultTokens(t *testing.T) {
	t.Parallel()

	_, stack, ok := FontToken(DefaultFontID)
	require.True(t, ok)
	require.Equal(t, stack, Default().Light[FontSans])
}
