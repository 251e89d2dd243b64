package theme

import (
	"fmt"
	"strings"
)

// Token identifies one design token. The vocabulary is closed; strings from
// outside the process are mapped onto it with ParseToken.
type Token int

// Token vocabulary in canonical order.
const (
	Background Token = iota
	Foreground
	Card
	CardForeground
	Popover
	PopoverForeground
	Primary
	PrimaryForeground
	Secondary
	SecondaryForeground
	Muted
	MutedForeground
	Accent
	AccentForeground
	Destructive
	DestructiveForeground
	Border
	Input
	Ring
	Chart1
	Chart2
	Chart3
	Chart4
	Chart5
	Sidebar
	SidebarForeground
	SidebarPrimary
	SidebarPrimaryForeground
	SidebarAccent
	SidebarAccentForeground
	SidebarBorder
	SidebarRing
	Shadow2xs
	ShadowXs
	ShadowSm
	Shadow
	ShadowMd
	ShadowLg
	ShadowXl
	Shadow2xl
	FontSans
	FontSerif
	FontMono
	LetterSpacing
	Spacing
	Radius
	TrackingNormal

	tokenCount
)

var tokenNames = [tokenCount]string{
	"background", "foreground", "card", "cardForeground", "popover", "popoverForeground",
	"primary", "primaryForeground", "secondary", "secondaryForeground",
	"muted", "mutedForeground", "accent", "accentForeground",
	"destructive", "destructiveForeground", "border", "input", "ring",
	"chart1", "chart2", "chart3", "chart4", "chart5",
	"sidebar", "sidebarForeground", "sidebarPrimary", "sidebarPrimaryForeground",
	"sidebarAccent", "sidebarAccentForeground", "sidebarBorder", "sidebarRing",
	"shadow2xs", "shadowXs", "shadowSm", "shadow", "shadowMd", "shadowLg", "shadowXl", "shadow2xl",
	"fontSans", "fontSerif", "fontMono", "letterSpacing", "spacing", "radius", "trackingNormal",
}

var tokensByName = func() map[string]Token {
	m := make(map[string]Token, tokenCount)
	for i, name := range tokenNames {
		m[name] = Token(i)
	}
	return m
}()

// Tokens returns the full vocabulary in canonical order.
func Tokens() []Token {
	out := make([]Token, tokenCount)
	for i := range out {
		out[i] = Token(i)
	}
	return out
}

// ParseToken maps an exact, case-sensitive token name onto the vocabulary.
func ParseToken(name string) (Token, bool) {
	t, ok := tokensByName[name]
	return t, ok
}

// Valid reports whether t is part of the vocabulary.
func (t Token) Valid() bool {
	return t >= 0 && t < tokenCount
}

func (t Token) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Token(%d)", int(t))
	}
	return tokenNames[t]
}

// IsColor reports whether the token holds a color value.
func (t Token) IsColor() bool {
	return t.Valid() && t < Shadow2xs
}

// IsShadow reports whether the token holds a box-shadow value.
func (t Token) IsShadow() bool {
	return t >= Shadow2xs && t <= Shadow2xl
}

// CSSName returns the custom-property name, e.g. "--card-foreground".
func (t Token) CSSName() string {
	name := t.String()
	var b strings.Builder
	b.WriteString("--")
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9' && i > 0 && !isDigit(name[i-1]):
			b.WriteByte('-')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// MarshalText encodes the token by name so TokenSet serializes as a JSON object.
func (t Token) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid token %d", int(t))
	}
	return []byte(tokenNames[t]), nil
}

// UnmarshalText decodes a token name.
func (t *Token) UnmarshalText(text []byte) error {
	parsed, ok := ParseToken(string(text))
	if !ok {
		return fmt.Errorf("unknown token %q", string(text))
	}
	*t = parsed
	return nil
}
