package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
	"github.com/alexisbeaulieu97/themeforge/pkg/diff"
)

type setOptions struct {
	unset  bool
	font   string
	dryRun bool
}

func newSetCmd(root *rootFlags) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set <light|dark> <token> [value]",
		Short: "Set or remove one token in the theme document",
		Long: `Set or remove one token in the theme document. Other keys in the file,
including ones themeforge does not recognise, are left untouched.

Use --font to select the font instead of a token.`,
		Args: cobra.MaximumNArgs(3),
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			return runSet(cmd, args, app, opts)
		}),
	}

	cmd.Flags().BoolVar(&opts.unset, "unset", false, "Remove the token so the default applies")
	cmd.Flags().StringVar(&opts.font, "font", "", "Font identifier to select, or none to clear it")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the change as a diff without saving")

	return cmd
}

func runSet(cmd *cobra.Command, args []string, app *appContext, opts *setOptions) error {
	doc, _, err := app.openDocument()
	if err != nil {
		return err
	}
	before := doc.Bytes()

	var summary string
	if opts.font != "" {
		if len(args) > 0 {
			return newCommandError("set", "parsing arguments", errors.New("--font takes no positional arguments"), "Run 'themeforge set --font <id>' on its own.")
		}
		id := theme.FontID(strings.ToLower(opts.font))
		if id == "none" {
			id = ""
		} else if !id.Supported() {
			return newCommandError("set", fmt.Sprintf("font %q", opts.font), errors.New("unsupported font"), "Run 'themeforge fonts' to see the catalogue.")
		}
		if err := doc.SetFont(id); err != nil {
			return newCommandError("set", "updating theme document", err, "Check that the document is a JSON object.")
		}
		summary = fmt.Sprintf("fontId = %q", id)
	} else {
		mode, token, err := parseTokenArgs(args, opts.unset)
		if err != nil {
			return err
		}
		if opts.unset {
			err = doc.DeleteToken(mode, token)
			summary = fmt.Sprintf("%s.%s removed", mode, token)
		} else {
			value := args[2]
			if token.IsColor() {
				if _, ok := app.parser.ParseRGBA(value); !ok {
					app.log.Warn("value is not a recognised color", map[string]any{"token": token.String(), "value": value})
				}
			}
			err = doc.SetToken(mode, token, value)
			summary = fmt.Sprintf("%s.%s = %s", mode, token, value)
		}
		if err != nil {
			return newCommandError("set", "updating theme document", err, "Check that the document is a JSON object.")
		}
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		patch := diff.Unified(before, doc.Bytes(), doc.Path(), doc.Path())
		if patch == "" {
			_, _ = fmt.Fprintln(out, "No changes.")
			return nil
		}
		added, removed := diff.Changed(before, doc.Bytes())
		_, err := fmt.Fprintf(out, "%s\n%d line(s) added, %d removed\n", strings.TrimRight(patch, "\n"), added, removed)
		return err
	}

	if err := doc.Save(); err != nil {
		return newCommandError("set", "saving theme document", err, "Check file permissions, then retry.")
	}
	_, _ = fmt.Fprintf(out, "✓ %s\n", summary)
	return nil
}

func parseTokenArgs(args []string, unset bool) (theme.Mode, theme.Token, error) {
	want := 3
	if unset {
		want = 2
	}
	if len(args) != want {
		return "", 0, newCommandError("set", "parsing arguments", fmt.Errorf("expected %d arguments, got %d", want, len(args)),
			"Run 'themeforge set <light|dark> <token> <value>' or add --unset without a value.")
	}

	mode, ok := theme.ParseMode(args[0])
	if !ok {
		return "", 0, newCommandError("set", fmt.Sprintf("mode %q", args[0]), errors.New("unknown mode"), "Use light or dark.")
	}
	token, ok := theme.ParseToken(args[1])
	if !ok {
		return "", 0, newCommandError("set", fmt.Sprintf("token %q", args[1]), errors.New("unknown token"), "Run 'themeforge tokens' to see the token names.")
	}
	return mode, token, nil
}
