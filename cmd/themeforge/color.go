package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
)

type colorOptions struct {
	strict bool
}

func newColorCmd(root *rootFlags) *cobra.Command {
	opts := &colorOptions{}

	cmd := &cobra.Command{
		Use:   "color <value>...",
		Short: "Parse color values and print their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			return runColor(cmd, args, app, opts)
		}),
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any value cannot be parsed")

	return cmd
}

func runColor(cmd *cobra.Command, values []string, app *appContext, opts *colorOptions) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "INPUT\tCANONICAL\tHEX\tALPHA\tSURFACE")

	var invalid []string
	for _, value := range values {
		c, ok := app.parser.ParseRGBA(value)
		if !ok {
			invalid = append(invalid, value)
			fmt.Fprintf(writer, "%s\t%s\t-\t-\tinvalid\n", value, color.FallbackText)
			continue
		}
		surface := "dark"
		if color.IsLight(c) {
			surface = "light"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", value, c.String(), c.Hex(), strconv.FormatFloat(c.A, 'f', -1, 64), surface)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if opts.strict && len(invalid) > 0 {
		return newCommandError("parse colors", fmt.Sprintf("%d value(s) not recognised: %q", len(invalid), invalid), errors.New("unparseable color"),
			"Use hex, rgb(), rgba(), hsl(), hsla() or a CSS color name, or enable a --resolver tier.")
	}
	return nil
}
