package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func readTheme(t *testing.T, path string) theme.Theme {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fragment, _, err := theme.Import(string(data))
	require.NoError(t, err)
	return fragment
}

func importOutput(t *testing.T, out string) theme.Theme {
	t.Helper()
	fragment, _, err := theme.Import(out)
	require.NoError(t, err)
	return fragment
}

const neutralPalette = `background: "#ffffff"
primary: "#111111"
secondary: "#666666"
accent: "#888888"
`
