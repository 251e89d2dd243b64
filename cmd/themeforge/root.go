package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	resolver   string
	document   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "themeforge",
		Short:         "themeforge derives, validates and edits storefront theme tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Settings file (default ./themeforge.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.resolver, "resolver", "", "Color resolver tier: none, style, raster or all")
	cmd.PersistentFlags().StringVarP(&flags.document, "document", "d", "", "Theme document to read and write")

	cmd.AddCommand(newDeriveCmd(flags))
	cmd.AddCommand(newMergeCmd(flags))
	cmd.AddCommand(newImportCmd(flags))
	cmd.AddCommand(newColorCmd(flags))
	cmd.AddCommand(newShadowCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newFontsCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
