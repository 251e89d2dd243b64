package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

func TestImportCommand_PrintsFragmentAndDroppedKeys(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.json", `{"primary": "#ff0000", "bogus": "x"}`)

	stdout, stderr, err := executeCommand(t, "", "import", input, "--document", filepath.Join(dir, "theme.json"))
	require.NoError(t, err)
	require.Contains(t, stderr, "Ignored keys: bogus")

	fragment := importOutput(t, stdout)
	require.Equal(t, theme.TokenSet{theme.Primary: "#ff0000"}, fragment.Light)
	require.Empty(t, fragment.Dark)
}

func TestImportCommand_FromStdin(t *testing.T) {
	stdout, _, err := executeCommand(t, `{"dark": {"ring": "#444444"}}`, "import", "-", "--format", "css", "--document", filepath.Join(t.TempDir(), "theme.json"))
	require.NoError(t, err)
	require.Contains(t, stdout, ".dark {\n  --ring: #444444;\n}")
}

func TestImportCommand_WriteMergesIntoDocument(t *testing.T) {
	dir := t.TempDir()
	docPath := writeFile(t, dir, "theme.json", `{"light": {"radius": "1rem", "primary": "#000000"}}`)
	input := writeFile(t, dir, "input.json", `{"light": {"primary": "#ff0000"}, "dark": {"primary": "#00ff00"}, "Dark": {}}`)

	stdout, _, err := executeCommand(t, "", "import", input, "--write", "--document", docPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Imported 1 light and 1 dark tokens")
	require.Contains(t, stdout, "Ignored: Dark")

	stored := readTheme(t, docPath)
	require.Equal(t, theme.TokenSet{theme.Radius: "1rem", theme.Primary: "#ff0000"}, stored.Light)
	require.Equal(t, theme.TokenSet{theme.Primary: "#00ff00"}, stored.Dark)
}

func TestImportCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "theme.json")

	tests := []struct {
		name  string
		input string
	}{
		{"empty input", "   "},
		{"broken json", `{"light": {`},
		{"array root", `["light"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.input, "import", "-", "--document", docPath)
			require.Error(t, err)
			require.Contains(t, err.Error(), "Failed to import")
		})
	}

	_, _, err := executeCommand(t, "", "import", filepath.Join(dir, "missing.json"), "--document", docPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading")

	_, statErr := os.Stat(docPath)
	require.True(t, os.IsNotExist(statErr), "failed imports never create the document")
}
