package theme

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTokenVocabulary(t *testing.T) {
	t.Parallel()

	tokens := Tokens()
	require.Len(t, tokens, 47)
	require.Equal(t, Background, tokens[0])
	require.Equal(t, TrackingNormal, tokens[len(tokens)-1])

	for _, token := range tokens {
		parsed, ok := ParseToken(token.String())
		require.True(t, ok, token.String())
		require.Equal(t, token, parsed)
	}

	_, ok := ParseToken("Background")
	require.False(t, ok, "token names are case-sensitive")
	_, ok = ParseToken("nonexistentToken")
	require.False(t, ok)
}

func TestTokenClassification(t *testing.T) {
	t.Parallel()

	require.True(t, Background.IsColor())
	require.True(t, SidebarRing.IsColor())
	require.False(t, Shadow2xs.IsColor())
	require.True(t, Shadow.IsShadow())
	require.False(t, Radius.IsShadow())
	require.False(t, Token(-1).Valid())
	require.Equal(t, "Token(99)", Token(99).String())
}

func TestTokenCSSName(t *testing.T) {
	t.Parallel()

	tests := map[Token]string{
		Background:               "--background",
		CardForeground:           "--card-foreground",
		Chart1:                   "--chart-1",
		Shadow2xs:                "--shadow-2xs",
		ShadowXs:                 "--shadow-xs",
		Shadow2xl:                "--shadow-2xl",
		SidebarPrimaryForeground: "--sidebar-primary-foreground",
		TrackingNormal:           "--tracking-normal",
	}
	for token, expected := range tests {
		require.Equal(t, expected, token.CSSName())
	}
}

func TestTokenSetEncoding(t *testing.T) {
	t.Parallel()

	set := TokenSet{Primary: "#000000", Chart1: "#ffffff"}

	data, err := json.Marshal(set)
	require.NoError(t, err)
	require.JSONEq(t, `{"primary":"#000000","chart1":"#ffffff"}`, string(data))

	var decoded TokenSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, set, decoded)

	require.Error(t, json.Unmarshal([]byte(`{"bogus":"x"}`), &decoded))

	out, err := yaml.Marshal(set)
	require.NoError(t, err)
	require.Contains(t, string(out), "primary: '#000000'")
	require.Less(t, strings.Index(string(out), "primary"), strings.Index(string(out), "chart1"),
		"YAML keys follow token order")
}

func TestTokenSetMissing(t *testing.T) {
	t.Parallel()

	require.Empty(t, Default().Light.Missing())
	require.Empty(t, Default().Dark.Missing())

	partial := Default().Light
	delete(partial, Radius)
	delete(partial, Background)
	require.Equal(t, []Token{Background, Radius}, partial.Missing())
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	mode, ok := ParseMode(" Dark ")
	require.True(t, ok)
	require.Equal(t, Dark, mode)

	_, ok = ParseMode("sepia")
	require.False(t, ok)
}

func TestThemeSetUnset(t *testing.T) {
	t.Parallel()

	var fragment Theme
	require.True(t, fragment.IsEmpty())

	fragment.Set(Dark, Primary, "#ff0000")
	require.Equal(t, "#ff0000", fragment.Dark[Primary])
	require.Nil(t, fragment.Light)
	require.False(t, fragment.IsEmpty())

	fragment.Unset(Dark, Primary)
	fragment.Unset(Light, Primary)
	require.True(t, fragment.IsEmpty())
}
