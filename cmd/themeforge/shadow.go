package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

func newShadowCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shadow",
		Short: "Inspect box-shadow presets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List shadow presets",
		Args:  cobra.NoArgs,
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "PRESET\tVALUE")
			for _, p := range theme.ShadowPresets() {
				fmt.Fprintf(writer, "%s\t%s\n", p.ID, p.Value)
			}
			return writer.Flush()
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "classify <value>",
		Short: "Print the preset a box-shadow value matches, or custom",
		Args:  cobra.MinimumNArgs(1),
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), theme.ClassifyShadow(strings.Join(args, " ")))
			return err
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve <preset>",
		Short: "Print the box-shadow value of a preset",
		Args:  cobra.ExactArgs(1),
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			id, ok := theme.ParseShadowPreset(args[0])
			value, found := theme.ResolveShadow(id)
			if !ok || !found {
				return newCommandError("resolve shadow", fmt.Sprintf("preset %q", args[0]), errors.New("no such preset"),
					"Run 'themeforge shadow list' to see the presets.")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		}),
	})

	return cmd
}
