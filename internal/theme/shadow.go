package theme

import "strings"

// ShadowPreset names a canned box-shadow value.
type ShadowPreset string

const (
	ShadowNone   ShadowPreset = "none"
	ShadowLight  ShadowPreset = "light"
	ShadowMedium ShadowPreset = "medium"
	ShadowHigh   ShadowPreset = "high"
	// ShadowCustom classifies any value that matches no preset.
	ShadowCustom ShadowPreset = "custom"
)

// ShadowDefinition pairs a preset with its CSS value.
type ShadowDefinition struct {
	ID    ShadowPreset `json:"id" yaml:"id"`
	Value string       `json:"value" yaml:"value"`
}

var shadowPresets = []ShadowDefinition{
	{ID: ShadowNone, Value: "none"},
	{ID: ShadowLight, Value: "0px 2px 6px -2px hsl(0 0% 0% / 0.10)"},
	{ID: ShadowMedium, Value: "0px 4px 12px -2px hsl(0 0% 0% / 0.14), 0px 2px 4px -2px hsl(0 0% 0% / 0.08)"},
	{ID: ShadowHigh, Value: "0px 12px 32px -4px hsl(0 0% 0% / 0.22), 0px 4px 8px -4px hsl(0 0% 0% / 0.12)"},
}

// ShadowPresets returns the preset table in order.
func ShadowPresets() []ShadowDefinition {
	return append([]ShadowDefinition(nil), shadowPresets...)
}

// ParseShadowPreset maps an identifier onto a preset, including ShadowCustom.
func ParseShadowPreset(s string) (ShadowPreset, bool) {
	id := ShadowPreset(strings.ToLower(strings.TrimSpace(s)))
	if id == ShadowCustom {
		return id, true
	}
	_, ok := ResolveShadow(id)
	return id, ok
}

// ClassifyShadow returns the preset whose value equals text after collapsing
// whitespace, or ShadowCustom.
func ClassifyShadow(text string) ShadowPreset {
	normalized := collapseWhitespace(text)
	for _, p := range shadowPresets {
		if collapseWhitespace(p.Value) == normalized {
			return p.ID
		}
	}
	return ShadowCustom
}

// ResolveShadow returns the CSS value for a preset. ShadowCustom has no value.
func ResolveShadow(id ShadowPreset) (string, bool) {
	for _, p := range shadowPresets {
		if p.ID == id {
			return p.Value, true
		}
	}
	return "", false
}

// NextShadowPreset cycles none → light → medium → high → none. Custom values
// restart the cycle at none.
func NextShadowPreset(current ShadowPreset) ShadowPreset {
	for i, p := range shadowPresets {
		if p.ID == current {
			return shadowPresets[(i+1)%len(shadowPresets)].ID
		}
	}
	return shadowPresets[0].ID
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
