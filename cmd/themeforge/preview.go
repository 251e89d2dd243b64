package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/preview"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
	"github.com/alexisbeaulieu97/themeforge/internal/tui"
)

var (
	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginTop(1)
	previewMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

type previewOptions struct {
	mode       string
	storefront bool
	width      int
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the resolved theme as terminal swatches or a storefront mock",
		Args:  cobra.NoArgs,
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			return runPreview(cmd, app, opts)
		}),
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Only show light or dark")
	cmd.Flags().BoolVarP(&opts.storefront, "storefront", "s", false, "Render a storefront mock instead of the token list")
	cmd.Flags().IntVar(&opts.width, "width", 60, "Width of the storefront mock")

	return cmd
}

func runPreview(cmd *cobra.Command, app *appContext, opts *previewOptions) error {
	modes := theme.Modes()
	if opts.mode != "" {
		mode, ok := theme.ParseMode(opts.mode)
		if !ok {
			return newCommandError("preview", fmt.Sprintf("mode %q", opts.mode), errors.New("unknown mode"), "Use light or dark.")
		}
		modes = []theme.Mode{mode}
	}

	def, err := app.defaults()
	if err != nil {
		return err
	}
	_, stored, err := app.openDocument()
	if err != nil {
		return err
	}
	resolved := theme.Merge(def, stored, theme.Theme{})

	var b strings.Builder
	if font, ok := theme.LookupFont(resolved.FontID); ok {
		fmt.Fprintf(&b, "Font: %s %s\n", font.Label, previewMutedStyle.Render(font.Stack()))
	}
	for _, mode := range modes {
		b.WriteString(previewTitleStyle.Render(strings.ToUpper(string(mode))))
		b.WriteString("\n")
		if opts.storefront {
			b.WriteString(preview.Storefront(preview.NewPalette(resolved, mode, app.parser), opts.width))
			b.WriteString("\n")
			continue
		}
		set := resolved.Tokens(mode)
		for _, token := range theme.Tokens() {
			value := set[token]
			switch {
			case token.IsColor():
				fmt.Fprintf(&b, "%s %-26s %s\n", tui.Swatch(app.parser, value), token, app.parser.ToSafeColor(value))
			case token.IsShadow():
				fmt.Fprintf(&b, "   %-26s %s\n", token, previewMutedStyle.Render(string(theme.ClassifyShadow(value))))
			default:
				fmt.Fprintf(&b, "   %-26s %s\n", token, value)
			}
		}
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}
