package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/config"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

type deriveOptions struct {
	palette theme.Palette
	format  string
	full    bool
	write   bool
}

func newDeriveCmd(root *rootFlags) *cobra.Command {
	opts := &deriveOptions{}

	cmd := &cobra.Command{
		Use:   "derive [palette.yaml]",
		Short: "Derive light and dark color tokens from a seed palette",
		Long: `Derive a full set of light and dark color tokens from up to four seed
colors. Seeds come from a YAML palette file, from flags, or both; flags win.
Missing or unparseable seeds fall back to built-in colors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			return runDerive(cmd, args, app, opts)
		}),
	}

	cmd.Flags().StringVar(&opts.palette.Background, "background", "", "Background seed color")
	cmd.Flags().StringVar(&opts.palette.Primary, "primary", "", "Primary seed color")
	cmd.Flags().StringVar(&opts.palette.Secondary, "secondary", "", "Secondary seed color")
	cmd.Flags().StringVar(&opts.palette.Accent, "accent", "", "Accent seed color")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json, yaml or css")
	cmd.Flags().BoolVar(&opts.full, "full", false, "Merge the derived colors over the defaults before printing")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Write the derived colors into the theme document")

	return cmd
}

func runDerive(cmd *cobra.Command, args []string, app *appContext, opts *deriveOptions) error {
	var palette theme.Palette
	if len(args) == 1 {
		loaded, err := config.LoadPalette(args[0])
		if err != nil {
			return newCommandError("derive", fmt.Sprintf("reading palette %q", args[0]), err, "Palette files hold background, primary, secondary and accent keys.")
		}
		palette = loaded
	}
	overrideSeed(&palette.Background, opts.palette.Background)
	overrideSeed(&palette.Primary, opts.palette.Primary)
	overrideSeed(&palette.Secondary, opts.palette.Secondary)
	overrideSeed(&palette.Accent, opts.palette.Accent)

	derived := theme.BuildThemeFromPalette(palette, app.parser)
	app.log.Info("theme derived from palette", map[string]any{
		"background": palette.Background,
		"primary":    palette.Primary,
		"secondary":  palette.Secondary,
		"accent":     palette.Accent,
	})

	if opts.write {
		doc, stored, err := app.openDocument()
		if err != nil {
			return err
		}
		if err := doc.Apply(theme.Merge(theme.Theme{}, stored, derived)); err != nil {
			return newCommandError("derive", "updating theme document", err, "Check that the document is a JSON object.")
		}
		if err := doc.Save(); err != nil {
			return newCommandError("derive", "saving theme document", err, "Check file permissions, then retry.")
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d light and %d dark tokens to %s\n", len(derived.Light), len(derived.Dark), doc.Path())
		return nil
	}

	out := derived
	if opts.full {
		def, err := app.defaults()
		if err != nil {
			return err
		}
		out = theme.Merge(def, derived, theme.Theme{})
	}
	return writeTheme(cmd.OutOrStdout(), out, app.format(opts.format), app.parser)
}

func overrideSeed(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}
