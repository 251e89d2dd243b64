package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil

	case savedMsg:
		m.saving = false
		m.session.Commit()
		m.setStatus("saved", false)
		return m, nil

	case saveErrorMsg:
		m.saving = false
		m.setStatus(fmt.Sprintf("save failed: %v", msg.err), true)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleInputKeys(msg)
		}
		return m.handleListKeys(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.saving {
		return m, nil
	}

	token := m.Selected()
	switch {
	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, keys.Mode):
		if m.mode == theme.Light {
			m.mode = theme.Dark
		} else {
			m.mode = theme.Light
		}

	case key.Matches(msg, keys.Edit):
		value, _ := m.session.Value(m.mode, token)
		m.input.SetValue(value)
		m.input.CursorEnd()
		m.editing = true
		return m, m.input.Focus()

	case key.Matches(msg, keys.Shadow):
		if !token.IsShadow() {
			m.setStatus(fmt.Sprintf("%s is not a shadow token", token), true)
			return m, nil
		}
		preset, err := m.session.CycleShadow(m.mode, token)
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("%s → %s", token, preset), false)

	case key.Matches(msg, keys.Font):
		next := nextFont(m.session.Resolved().FontID)
		if err := m.session.SetFont(next); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("font → %s", next), false)

	case key.Matches(msg, keys.Unset):
		m.session.Unset(m.mode, token)
		m.setStatus(fmt.Sprintf("%s reverted", token), false)

	case key.Matches(msg, keys.Reset):
		m.session.Reset()
		m.setStatus("draft discarded", false)

	case key.Matches(msg, keys.Save):
		if m.save == nil {
			m.setStatus("no document to save to", true)
			return m, nil
		}
		if !m.session.Dirty() {
			m.setStatus("nothing to save", false)
			return m, nil
		}
		m.saving = true
		m.setStatus("saving…", false)
		return m, saveCmd(m.save, m.session.Pending())
	}

	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Cancel):
		m.closeInput()
		return m, nil

	case key.Matches(msg, keys.Confirm):
		token := m.Selected()
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			m.session.Unset(m.mode, token)
			m.setStatus(fmt.Sprintf("%s reverted", token), false)
		} else {
			m.session.Set(m.mode, token, value)
			m.setStatus(fmt.Sprintf("%s = %s", token, value), false)
		}
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

// nextFont cycles through the catalogue in order, starting over after the
// last entry or from an unknown id.
func nextFont(current theme.FontID) theme.FontID {
	fonts := theme.Fonts()
	for i, f := range fonts {
		if f.ID == current {
			return fonts[(i+1)%len(fonts)].ID
		}
	}
	return fonts[0].ID
}
