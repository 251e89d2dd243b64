// Package tui is the interactive token editor. It edits an editor.Session
// and hands committed fragments to a SaveFunc.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
	"github.com/alexisbeaulieu97/themeforge/internal/editor"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

// SaveFunc persists the stored fragment with the draft folded in.
type SaveFunc func(fragment theme.Theme) error

type savedMsg struct{}

type saveErrorMsg struct {
	err error
}

// Model is the Bubbletea state of the editor.
type Model struct {
	session *editor.Session
	parser  *color.Parser
	save    SaveFunc

	tokens []theme.Token
	mode   theme.Mode
	cursor int
	offset int

	input   textinput.Model
	editing bool
	saving  bool

	status string
	failed bool

	width    int
	height   int
	quitting bool
}

// NewModel builds an editor over session. A nil save disables ctrl+s.
func NewModel(session *editor.Session, parser *color.Parser, save SaveFunc) Model {
	input := textinput.New()
	input.Prompt = "value> "
	input.CharLimit = 512

	return Model{
		session: session,
		parser:  parser,
		save:    save,
		tokens:  theme.Tokens(),
		mode:    theme.Light,
		input:   input,
		width:   80,
		height:  24,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the mode being edited.
func (m Model) Mode() theme.Mode {
	return m.mode
}

// Selected returns the token under the cursor.
func (m Model) Selected() theme.Token {
	return m.tokens[m.cursor]
}

// Editing reports whether the value input is open.
func (m Model) Editing() bool {
	return m.editing
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

func (m *Model) moveCursor(delta int) {
	n := len(m.tokens)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// visibleRows leaves room for the header, the input line and the footer.
func (m Model) visibleRows() int {
	rows := m.height - 9
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.failed = failed
}

func saveCmd(save SaveFunc, fragment theme.Theme) tea.Cmd {
	return func() tea.Msg {
		if err := save(fragment); err != nil {
			return saveErrorMsg{err: err}
		}
		return savedMsg{}
	}
}
