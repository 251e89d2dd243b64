package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Mode   key.Binding
	Edit   key.Binding
	Shadow key.Binding
	Font   key.Binding
	Unset  key.Binding
	Save   key.Binding
	Reset  key.Binding
	Quit   key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Mode:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "light/dark")),
	Edit:   key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
	Shadow: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shadow preset")),
	Font:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "font")),
	Unset:  key.NewBinding(key.WithKeys("u", "delete"), key.WithHelp("u", "unset")),
	Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "discard draft")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
	Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
