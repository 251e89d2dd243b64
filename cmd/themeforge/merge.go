package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/document"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

type mergeOptions struct {
	format        string
	resolveColors bool
}

func newMergeCmd(root *rootFlags) *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge [draft.json]",
		Short: "Print the theme document merged over the defaults",
		Long: `Resolve the stored theme document, and an optional draft fragment on top
of it, against the default theme. Every token of both modes is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			return runMerge(cmd, args, app, opts)
		}),
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json, yaml or css")
	cmd.Flags().BoolVar(&opts.resolveColors, "resolve-colors", false, "Rewrite color tokens in canonical form")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string, app *appContext, opts *mergeOptions) error {
	def, err := app.defaults()
	if err != nil {
		return err
	}
	_, stored, err := app.openDocument()
	if err != nil {
		return err
	}

	var draft theme.Theme
	if len(args) == 1 {
		data, err := readInput(cmd, args[0])
		if err != nil {
			return newCommandError("merge", fmt.Sprintf("reading draft %q", args[0]), err, "Pass a readable JSON file or - for stdin.")
		}
		var report theme.ImportReport
		doc, err := document.FromBytes(data, app.log)
		if err == nil {
			draft, report, err = doc.Theme()
		}
		if err != nil {
			return newCommandError("merge", fmt.Sprintf("validating draft %q", args[0]), err, "The draft must be a JSON object of theme tokens.")
		}
		app.logDropped(args[0], report)
	}

	merged := theme.Merge(def, stored, draft)
	if opts.resolveColors {
		merged = theme.ResolveColors(merged, app.parser)
	}
	return writeTheme(cmd.OutOrStdout(), merged, app.format(opts.format), app.parser)
}
