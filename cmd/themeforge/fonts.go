package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

func newFontsCmd(root *rootFlags) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the supported fonts",
		Args:  cobra.NoArgs,
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tLABEL\tCATEGORY\tSTACK")
			for _, f := range theme.Fonts() {
				if category != "" && string(f.Category) != category {
					continue
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", f.ID, f.Label, f.Category, f.Stack())
			}
			return writer.Flush()
		}),
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list sans-serif, serif or monospace fonts")

	return cmd
}
