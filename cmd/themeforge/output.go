package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
	"github.com/alexisbeaulieu97/themeforge/internal/config"
	"github.com/alexisbeaulieu97/themeforge/internal/document"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

// writeTheme renders t as a JSON fragment, YAML, or CSS custom properties.
func writeTheme(w io.Writer, t theme.Theme, format string, parser *color.Parser) error {
	switch format {
	case config.FormatJSON:
		out, err := document.Marshal(t)
		if err != nil {
			return err
		}
		if len(out) == 0 || out[len(out)-1] != '\n' {
			out = append(out, '\n')
		}
		_, err = w.Write(out)
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatCSS:
		_, err := io.WriteString(w, theme.CSS(t, parser))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
