package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreviewCommand(t *testing.T) {
	docPath := writeFile(t, t.TempDir(), "theme.json", `{"dark": {"primary": "red"}, "fontId": "jetbrains-mono"}`)

	stdout, _, err := executeCommand(t, "", "preview", "--mode", "dark", "--document", docPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Font: JetBrains Mono")
	require.Contains(t, stdout, "DARK")
	require.NotContains(t, stdout, "LIGHT")
	require.Contains(t, stdout, "#ff0000")
	require.Contains(t, stdout, "shadowMd")
	require.Contains(t, stdout, "medium")

	stdout, _, err = executeCommand(t, "", "preview", "--document", docPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "LIGHT")
	require.Contains(t, stdout, "DARK")

	_, _, err = executeCommand(t, "", "preview", "--mode", "sepia", "--document", docPath)
	require.Error(t, err)
}

func TestPreviewCommand_Storefront(t *testing.T) {
	docPath := writeFile(t, t.TempDir(), "theme.json", `{"light": {"primary": "#3b82f6"}}`)

	stdout, _, err := executeCommand(t, "", "preview", "--storefront", "--mode", "light", "--width", "48", "--document", docPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Storefront · LIGHT")
	require.Contains(t, stdout, "Canvas Tote")
	require.Contains(t, stdout, "Add to cart")
	require.NotContains(t, stdout, "shadowMd")
}

func TestEditCommand_RequiresTerminal(t *testing.T) {
	_, _, err := executeCommand(t, "", "edit", "--document", filepath.Join(t.TempDir(), "theme.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a terminal")
}

func TestFontsCommand(t *testing.T) {
	docFlag := filepath.Join(t.TempDir(), "theme.json")

	stdout, _, err := executeCommand(t, "", "fonts", "--document", docFlag)
	require.NoError(t, err)
	require.Contains(t, stdout, "jetbrains-mono")
	require.Contains(t, stdout, `"Inter", ui-sans-serif, system-ui, sans-serif`)

	stdout, _, err = executeCommand(t, "", "fonts", "--category", "serif", "--document", docFlag)
	require.NoError(t, err)
	require.Contains(t, stdout, "merriweather")
	require.NotContains(t, stdout, "inter")
}

func TestTokensCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "tokens", "--document", filepath.Join(t.TempDir(), "theme.json"))
	require.NoError(t, err)
	require.Contains(t, stdout, "--card-foreground")
	require.Contains(t, stdout, "--chart-1")
	require.Contains(t, stdout, "--shadow-2xs")
	require.Contains(t, stdout, "shadow")
}
