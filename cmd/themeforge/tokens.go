package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

func newTokensCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens",
		Short: "List the token vocabulary with CSS names and defaults",
		Args:  cobra.NoArgs,
		RunE: root.run(func(cmd *cobra.Command, args []string, app *appContext) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "TOKEN\tCSS\tKIND\tLIGHT\tDARK")
			for _, token := range theme.Tokens() {
				kind := "value"
				switch {
				case token.IsColor():
					kind = "color"
				case token.IsShadow():
					kind = "shadow"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", token, token.CSSName(), kind,
					theme.DefaultValue(theme.Light, token), theme.DefaultValue(theme.Dark, token))
			}
			return writer.Flush()
		}),
	}
}
