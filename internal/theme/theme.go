// Package theme models storefront design tokens: the closed token vocabulary,
// the default theme, layered merging of partial overrides, palette derivation,
// shadow presets and the JSON import boundary.
package theme

import (
	"maps"
	"strings"
)

// Mode selects one of the two presentation modes.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes returns both modes in display order.
func Modes() []Mode {
	return []Mode{Light, Dark}
}

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// TokenSet maps tokens to their raw text values. A partial set is a valid
// override fragment; a complete set has every token.
type TokenSet map[Token]string

// Clone returns an independent copy. The clone of nil is an empty set.
func (s TokenSet) Clone() TokenSet {
	out := make(TokenSet, len(s))
	maps.Copy(out, s)
	return out
}

// Missing lists the tokens absent from s in canonical order.
func (s TokenSet) Missing() []Token {
	var missing []Token
	for _, t := range Tokens() {
		if _, ok := s[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

// Branding holds optional storefront identity settings. Nil means undefined.
type Branding struct {
	LogoURL    *string  `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
	LogoAlt    *string  `json:"logoAlt,omitempty" yaml:"logoAlt,omitempty"`
	LogoWidth  *float64 `json:"logoWidth,omitempty" yaml:"logoWidth,omitempty"`
	LogoHeight *float64 `json:"logoHeight,omitempty" yaml:"logoHeight,omitempty"`
}

// IsZero reports whether no branding field is defined.
func (b Branding) IsZero() bool {
	return b.LogoURL == nil && b.LogoAlt == nil && b.LogoWidth == nil && b.LogoHeight == nil
}

// Clone copies the pointed-to values so the result shares no memory with b.
func (b Branding) Clone() Branding {
	return Branding{
		LogoURL:    clonePtr(b.LogoURL),
		LogoAlt:    clonePtr(b.LogoAlt),
		LogoWidth:  clonePtr(b.LogoWidth),
		LogoHeight: clonePtr(b.LogoHeight),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Theme is a full or partial theme. Fragments leave tokens, branding fields
// and FontID unset; merged themes are complete.
type Theme struct {
	Light    TokenSet `json:"light" yaml:"light"`
	Dark     TokenSet `json:"dark" yaml:"dark"`
	Branding Branding `json:"branding" yaml:"branding"`
	FontID   FontID   `json:"fontId,omitempty" yaml:"fontId,omitempty"`
}

// Tokens returns the set for mode.
func (t Theme) Tokens(mode Mode) TokenSet {
	if mode == Dark {
		return t.Dark
	}
	return t.Light
}

// Set stores value for token in mode, allocating the set when needed.
func (t *Theme) Set(mode Mode, token Token, value string) {
	set := t.Tokens(mode)
	if set == nil {
		set = TokenSet{}
		t.setTokens(mode, set)
	}
	set[token] = value
}

// Unset removes token from mode.
func (t *Theme) Unset(mode Mode, token Token) {
	delete(t.Tokens(mode), token)
}

func (t *Theme) setTokens(mode Mode, set TokenSet) {
	if mode == Dark {
		t.Dark = set
		return
	}
	t.Light = set
}

// Clone returns a deep copy.
func (t Theme) Clone() Theme {
	return Theme{
		Light:    t.Light.Clone(),
		Dark:     t.Dark.Clone(),
		Branding: t.Branding.Clone(),
		FontID:   t.FontID,
	}
}

// IsEmpty reports whether the fragment overrides nothing.
func (t Theme) IsEmpty() bool {
	return len(t.Light) == 0 && len(t.Dark) == 0 && t.Branding.IsZero() && t.FontID == ""
}
