package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrEmptyInput is returned for blank import text.
	ErrEmptyInput = errors.New("theme JSON is empty")
	// ErrInvalidSyntax is returned when the text is not a JSON object.
	ErrInvalidSyntax = errors.New("theme JSON is not a valid object")
)

// ImportError wraps an import failure with the location it was detected at.
type ImportError struct {
	Err    error
	Offset int64
	Detail string
}

func (e *ImportError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" (offset %d)", e.Offset)
	}
	return msg
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// ImportReport lists the input paths that were ignored while importing.
type ImportReport struct {
	Dropped []string
}

// ParseThemeFromJSON validates user-supplied JSON into a theme fragment.
// Unknown keys, non-string token values, invalid branding values and
// unsupported fonts are dropped silently; only blank or structurally invalid
// input is an error. Light and Dark are always non-nil.
func ParseThemeFromJSON(text string) (Theme, error) {
	t, _, err := Import(text)
	return t, err
}

// Import is ParseThemeFromJSON that also reports what was dropped.
//
// An object with a "light" or "dark" key is read as a shaped theme. Any
// other object is read as a flat light-mode token set, so a shaped theme
// whose mode keys are misspelt imports as an empty light fragment.
func Import(text string) (Theme, ImportReport, error) {
	var report ImportReport

	if strings.TrimSpace(text) == "" {
		return Theme{}, report, &ImportError{Err: ErrEmptyInput}
	}
	if !gjson.Valid(text) {
		return Theme{}, report, syntaxError(text)
	}

	root := gjson.Parse(text)
	if !root.IsObject() {
		return Theme{}, report, &ImportError{Err: ErrInvalidSyntax, Detail: "top-level value must be an object"}
	}

	fields := lastByKey(root)
	out := Theme{Light: TokenSet{}, Dark: TokenSet{}}

	light, hasLight := fields["light"]
	dark, hasDark := fields["dark"]
	if hasLight || hasDark {
		readTokens(light, "light", out.Light, &report)
		readTokens(dark, "dark", out.Dark, &report)
		for key := range fields {
			if !isThemeKey(key) {
				report.drop(key)
			}
		}
	} else {
		for key, value := range fields {
			if isThemeKey(key) {
				continue
			}
			if !readToken(key, value, out.Light) {
				report.drop(key)
			}
		}
	}

	if branding, ok := fields["branding"]; ok {
		out.Branding = readBranding(branding, &report)
	}

	if id, ok := fields["fontId"]; ok {
		font := FontID(id.Str)
		if id.Type == gjson.String && font.Supported() {
			out.FontID = font
		} else {
			report.drop("fontId")
		}
	}

	slices.Sort(report.Dropped)
	return out, report, nil
}

func isThemeKey(key string) bool {
	switch key {
	case "light", "dark", "branding", "fontId":
		return true
	}
	return false
}

// lastByKey indexes an object's members. Duplicate keys resolve to the last
// occurrence, as JSON decoders conventionally do.
func lastByKey(obj gjson.Result) map[string]gjson.Result {
	fields := map[string]gjson.Result{}
	obj.ForEach(func(key, value gjson.Result) bool {
		fields[key.Str] = value
		return true
	})
	return fields
}

func readTokens(mode gjson.Result, prefix string, dst TokenSet, report *ImportReport) {
	if !mode.Exists() {
		return
	}
	if !mode.IsObject() {
		report.drop(prefix)
		return
	}
	for key, value := range lastByKey(mode) {
		if !readToken(key, value, dst) {
			report.drop(prefix + "." + key)
		}
	}
}

func readToken(key string, value gjson.Result, dst TokenSet) bool {
	token, ok := ParseToken(key)
	if !ok || value.Type != gjson.String || !SafeValue(value.Str) {
		return false
	}
	dst[token] = value.Str
	return true
}

func readBranding(obj gjson.Result, report *ImportReport) Branding {
	var b Branding
	if !obj.IsObject() {
		report.drop("branding")
		return b
	}

	for key, value := range lastByKey(obj) {
		path := "branding." + key
		switch key {
		case "logoUrl":
			b.LogoURL = brandingString(value)
		case "logoAlt":
			b.LogoAlt = brandingString(value)
		case "logoWidth":
			b.LogoWidth = brandingNumber(value)
		case "logoHeight":
			b.LogoHeight = brandingNumber(value)
		default:
			report.drop(path)
			continue
		}
		if !brandingKept(b, key) {
			report.drop(path)
		}
	}
	return b
}

func brandingKept(b Branding, key string) bool {
	switch key {
	case "logoUrl":
		return b.LogoURL != nil
	case "logoAlt":
		return b.LogoAlt != nil
	case "logoWidth":
		return b.LogoWidth != nil
	default:
		return b.LogoHeight != nil
	}
}

func brandingString(v gjson.Result) *string {
	if v.Type != gjson.String || strings.TrimSpace(v.Str) == "" {
		return nil
	}
	s := v.Str
	return &s
}

func brandingNumber(v gjson.Result) *float64 {
	var n float64
	switch v.Type {
	case gjson.Number:
		n = v.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

func (r *ImportReport) drop(path string) {
	r.Dropped = append(r.Dropped, path)
}

// syntaxError locates the first syntax error for the message. gjson only
// reports validity, so the offset comes from the standard decoder.
func syntaxError(text string) error {
	var raw json.RawMessage
	err := json.Unmarshal([]byte(text), &raw)

	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		return &ImportError{Err: ErrInvalidSyntax, Offset: syntax.Offset, Detail: syntax.Error()}
	}
	return &ImportError{Err: ErrInvalidSyntax}
}
