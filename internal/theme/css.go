package theme

import (
	"strings"

	"github.com/alexisbeaulieu97/themeforge/internal/color"
)

// ResolveColors returns a copy of t with every color token rewritten to
// canonical text. Other tokens are copied verbatim.
func ResolveColors(t Theme, parser *color.Parser) Theme {
	out := t.Clone()
	for _, set := range []TokenSet{out.Light, out.Dark} {
		for token, value := range set {
			if token.IsColor() {
				set[token] = parser.ToSafeColor(value)
			}
		}
	}
	return out
}

// CSS renders t as custom properties: light tokens under :root and dark tokens
// under .dark, both in canonical token order. A selected font replaces the
// family token of its category.
func CSS(t Theme, parser *color.Parser) string {
	resolved := ResolveColors(t, parser)
	if token, stack, ok := FontToken(t.FontID); ok {
		for _, set := range []TokenSet{resolved.Light, resolved.Dark} {
			if _, present := set[token]; present {
				set[token] = stack
			}
		}
	}

	var b strings.Builder
	writeBlock(&b, ":root", resolved.Light)
	b.WriteString("\n")
	writeBlock(&b, ".dark", resolved.Dark)
	return b.String()
}

func writeBlock(b *strings.Builder, selector string, set TokenSet) {
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, token := range Tokens() {
		value, ok := set[token]
		if !ok || !SafeValue(value) {
			continue
		}
		b.WriteString("  ")
		b.WriteString(token.CSSName())
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}

// SafeValue reports whether value can be written as a declaration value
// without ending the declaration or the enclosing block. Quotes and
// parentheses must balance.
func SafeValue(value string) bool {
	if strings.ContainsAny(value, ";{}<\\\n\r\f") || strings.Contains(value, "/*") {
		return false
	}

	depth := 0
	var quote rune
	for _, r := range value {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return quote == 0 && depth == 0
}
