package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
	forgeerrors "github.com/alexisbeaulieu97/themeforge/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadPalette reads a seed palette from a YAML (or JSON) file. Unknown keys
// are rejected.
func LoadPalette(path string) (theme.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Palette{}, forgeerrors.NewParseError(path, 0, err)
	}
	return ParsePalette(path, data)
}

// ParsePalette decodes palette bytes; path only labels errors.
func ParsePalette(path string, data []byte) (theme.Palette, error) {
	var palette theme.Palette

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&palette); err != nil && !errors.Is(err, io.EOF) {
		return theme.Palette{}, forgeerrors.NewParseError(path, extractLine(err), err)
	}
	return palette, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
