package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSSBlocks(t *testing.T) {
	t.Parallel()

	th := Theme{
		Light: TokenSet{Radius: "0.5rem", Background: "white", CardForeground: "rgb(0 0 0 / 50%)"},
		Dark:  TokenSet{Background: "not-a-color", Shadow2xs: "none"},
	}

	css := CSS(th, nil)
	require.Equal(t, ":root {\n"+
		"  --background: #ffffff;\n"+
		"  --card-foreground: rgba(0, 0, 0, 0.5);\n"+
		"  --radius: 0.5rem;\n"+
		"}\n"+
		"\n"+
		".dark {\n"+
		"  --background: #000000;\n"+
		"  --shadow-2xs: none;\n"+
		"}\n", css)
}

func TestCSSAppliesSelectedFont(t *testing.T) {
	t.Parallel()

	th := Resolve(Theme{}, Theme{FontID: FontLora})
	css := CSS(th, nil)

	require.Contains(t, css, `  --font-serif: "Lora", ui-serif, Georgia, serif;`)
	require.Equal(t, 2, strings.Count(css, `"Lora"`))
	require.Equal(t, 2, strings.Count(css, "--chart-5:"))
}

func TestCSSDoesNotMutateTheme(t *testing.T) {
	t.Parallel()

	th := Theme{Light: TokenSet{Primary: "red"}, FontID: FontInter}
	_ = CSS(th, nil)
	require.Equal(t, "red", th.Light[Primary])
}

func TestResolveColors(t *testing.T) {
	t.Parallel()

	th := Theme{
		Light: TokenSet{Primary: "RED", Radius: "RED", Shadow: "0 0 0 red"},
		Dark:  TokenSet{Ring: "hsl(0 0% 100% / 0.5)"},
	}
	resolved := ResolveColors(th, nil)

	require.Equal(t, "#ff0000", resolved.Light[Primary])
	require.Equal(t, "RED", resolved.Light[Radius])
	require.Equal(t, "0 0 0 red", resolved.Light[Shadow])
	require.Equal(t, "rgba(255, 255, 255, 0.5)", resolved.Dark[Ring])
	require.Equal(t, "RED", th.Light[Primary])
}

func TestCSSSkipsValuesThatEscapeDeclarations(t *testing.T) {
	t.Parallel()

	th := Theme{Light: TokenSet{
		Radius:  "0; } body { display: none } :root { --x: 1",
		Spacing: "0.25rem",
	}}

	css := CSS(th, nil)
	require.Equal(t, ":root {\n  --spacing: 0.25rem;\n}\n\n.dark {\n}\n", css)
}

func TestSafeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		safe  bool
	}{
		{"length", "0.625rem", true},
		{"font stack", `"Inter", ui-sans-serif, system-ui, sans-serif`, true},
		{"shadow", "0px 4px 12px -2px hsl(0 0% 0% / 0.14), 0px 2px 4px -2px hsl(0 0% 0% / 0.08)", true},
		{"quoted brace", `"a}b"`, false},
		{"semicolon", "1rem; color: red", false},
		{"closing brace", "1rem }", false},
		{"opening brace", "{", false},
		{"newline", "1rem\n--x: 1", false},
		{"comment", "1rem /* x", false},
		{"markup", "</style>", false},
		{"backslash escape", `\7d`, false},
		{"unbalanced quote", `"Inter`, false},
		{"unbalanced paren", "hsl(0 0% 0%", false},
		{"stray close paren", "0)", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.safe, SafeValue(tt.value))
		})
	}
}
