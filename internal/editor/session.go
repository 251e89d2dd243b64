// Package editor holds the draft/save loop of an interactive theme editor.
package editor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/themeforge/internal/logger"
	"github.com/alexisbeaulieu97/themeforge/internal/theme"
)

// Source tells which layer a resolved value came from.
type Source int

const (
	SourceDefault Source = iota
	SourceStored
	SourceDraft
)

func (s Source) String() string {
	switch s {
	case SourceDraft:
		return "draft"
	case SourceStored:
		return "stored"
	default:
		return "default"
	}
}

// Session is one editing pass over a stored theme fragment. Edits accumulate
// in a draft that is merged over the stored fragment and the defaults on
// every read.
type Session struct {
	ID string

	defaults theme.Theme
	stored   theme.Theme
	draft    theme.Theme
	log      *logger.Logger
}

// NewSession starts a session with an empty draft.
func NewSession(defaults, stored theme.Theme, log *logger.Logger) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:       id,
		defaults: defaults.Clone(),
		stored:   stored.Clone(),
		log:      log.With(map[string]any{"session": id}),
	}
	s.log.Debug("editor session started", map[string]any{"stored_tokens": len(stored.Light) + len(stored.Dark)})
	return s
}

// Set overrides token in mode with value in the draft.
func (s *Session) Set(mode theme.Mode, token theme.Token, value string) {
	s.draft.Set(mode, token, value)
	s.log.Debug("draft token set", map[string]any{"mode": string(mode), "token": token.String(), "value": value})
}

// Unset drops the draft override, so the stored or default value shows again.
func (s *Session) Unset(mode theme.Mode, token theme.Token) {
	s.draft.Unset(mode, token)
}

// ApplyShadowPreset sets a shadow token to the value of a preset.
func (s *Session) ApplyShadowPreset(mode theme.Mode, token theme.Token, preset theme.ShadowPreset) error {
	if !token.IsShadow() {
		return fmt.Errorf("token %s is not a shadow token", token)
	}
	value, ok := theme.ResolveShadow(preset)
	if !ok {
		return fmt.Errorf("unknown shadow preset %q", preset)
	}
	s.Set(mode, token, value)
	return nil
}

// CycleShadow advances a shadow token to the next preset and returns it.
func (s *Session) CycleShadow(mode theme.Mode, token theme.Token) (theme.ShadowPreset, error) {
	current, _ := s.Value(mode, token)
	next := theme.NextShadowPreset(theme.ClassifyShadow(current))
	return next, s.ApplyShadowPreset(mode, token, next)
}

// SetFont selects a font in the draft. The empty FontID clears the override.
func (s *Session) SetFont(id theme.FontID) error {
	if id != "" && !id.Supported() {
		return fmt.Errorf("unsupported font %q", id)
	}
	s.draft.FontID = id
	return nil
}

// Import merges a JSON fragment into the draft. Imported keys win over
// existing draft edits.
func (s *Session) Import(text string) (theme.ImportReport, error) {
	fragment, report, err := theme.Import(text)
	if err != nil {
		return report, err
	}
	s.draft = theme.Merge(s.draft, fragment, theme.Theme{})
	s.log.Info("theme imported into draft", map[string]any{
		"light":   len(fragment.Light),
		"dark":    len(fragment.Dark),
		"dropped": len(report.Dropped),
	})
	return report, nil
}

// Reset discards the draft.
func (s *Session) Reset() {
	s.draft = theme.Theme{}
	s.log.Debug("draft reset")
}

// Dirty reports whether the draft overrides anything.
func (s *Session) Dirty() bool {
	return !s.draft.IsEmpty()
}

// Resolved merges the draft and the stored fragment over the defaults.
func (s *Session) Resolved() theme.Theme {
	return theme.Merge(s.defaults, s.stored, s.draft)
}

// Value returns the effective text of token and the layer it came from.
func (s *Session) Value(mode theme.Mode, token theme.Token) (string, Source) {
	if v, ok := s.draft.Tokens(mode)[token]; ok {
		return v, SourceDraft
	}
	if v, ok := s.stored.Tokens(mode)[token]; ok {
		return v, SourceStored
	}
	return s.defaults.Tokens(mode)[token], SourceDefault
}

// Draft returns a copy of the pending edits.
func (s *Session) Draft() theme.Theme {
	return s.draft.Clone()
}

// Stored returns a copy of the stored fragment.
func (s *Session) Stored() theme.Theme {
	return s.stored.Clone()
}

// Pending returns the stored fragment with the draft folded in, without
// committing it.
func (s *Session) Pending() theme.Theme {
	return theme.Merge(theme.Theme{}, s.stored, s.draft)
}

// Commit folds the draft into the stored fragment, clears the draft and
// returns the new fragment to persist.
func (s *Session) Commit() theme.Theme {
	s.stored = s.Pending()
	s.draft = theme.Theme{}
	s.log.Info("draft committed", map[string]any{"light": len(s.stored.Light), "dark": len(s.stored.Dark)})
	return s.stored.Clone()
}
