package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themeforge/internal/editor"
	"github.com/alexisbeaulieu97/themeforge/internal/logger"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
	"github.com/alexisbeaulieu97/themeforge/internal/tui"
)

func newEditCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the theme document interactively",
		Args:  cobra.NoArgs,
		RunE:  root.run(runEdit),
	}
}

func runEdit(cmd *cobra.Command, _ []string, app *appContext) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("edit", "starting the editor", errors.New("stdin and stdout must be a terminal"),
			"Use 'themeforge set' or 'themeforge import' in scripts.")
	}

	def, err := app.defaults()
	if err != nil {
		return err
	}
	doc, stored, err := app.openDocument()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal while the editor runs.
	session := editor.NewSession(def, stored, logger.Nop())
	save := func(fragment theme.Theme) error {
		if err := doc.Apply(fragment); err != nil {
			return err
		}
		return doc.Save()
	}

	program := tea.NewProgram(tui.NewModel(session, app.parser, save),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}

	if session.Dirty() {
		app.log.Warn("editor closed with unsaved changes", map[string]any{"session": session.ID})
	}
	return nil
}
