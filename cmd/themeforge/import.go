package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

type importOptions struct {
	format string
	write  bool
}

func newImportCmd(root *rootFlags) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Validate a JSON theme and optionally merge it into the document",
		Long: `Validate user-supplied theme JSON. Recognised tokens, branding fields and
fontId are kept; everything else is reported and ignored. A document without
"light" or "dark" keys is read as light-mode tokens.`,
		Args: cobra.ExactArgs(1),
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			return runImport(cmd, args[0], app, opts)
		}),
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json, yaml or css")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Merge the imported fragment into the theme document")

	return cmd
}

func runImport(cmd *cobra.Command, source string, app *appContext, opts *importOptions) error {
	data, err := readInput(cmd, source)
	if err != nil {
		return newCommandError("import", fmt.Sprintf("reading %q", source), err, "Pass a readable JSON file or - for stdin.")
	}

	fragment, report, err := theme.Import(string(data))
	if err != nil {
		return newCommandError("import", fmt.Sprintf("validating %q", source), err, "Fix the JSON syntax; the root must be an object.")
	}
	app.logDropped(source, report)
	app.log.Info("theme imported", map[string]any{"source": source, "light": len(fragment.Light), "dark": len(fragment.Dark), "dropped": len(report.Dropped)})

	if !opts.write {
		if len(report.Dropped) > 0 {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Ignored keys: %s\n", strings.Join(report.Dropped, ", "))
		}
		return writeTheme(cmd.OutOrStdout(), fragment, app.format(opts.format), app.parser)
	}

	doc, stored, err := app.openDocument()
	if err != nil {
		return err
	}
	if err := doc.Apply(theme.Merge(theme.Theme{}, stored, fragment)); err != nil {
		return newCommandError("import", "updating theme document", err, "Check that the document is a JSON object.")
	}
	if err := doc.Save(); err != nil {
		return newCommandError("import", "saving theme document", err, "Check file permissions, then retry.")
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "✓ Imported %d light and %d dark tokens into %s\n", len(fragment.Light), len(fragment.Dark), doc.Path())
	if len(report.Dropped) > 0 {
		_, _ = fmt.Fprintf(out, "  Ignored: %s\n", strings.Join(report.Dropped, ", "))
	}
	return nil
}
