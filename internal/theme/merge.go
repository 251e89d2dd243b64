package theme

import (
	"maps"

	"dario.cat/mergo"
)

// Merge layers stored and draft fragments over def. For each mode the result
// is def, then stored, then draft, key by key. Branding fields and FontID use
// the same precedence. No input is modified and the result shares no memory
// with the inputs.
func Merge(def, stored, draft Theme) Theme {
	return Theme{
		Light:    mergeTokens(def.Light, stored.Light, draft.Light),
		Dark:     mergeTokens(def.Dark, stored.Dark, draft.Dark),
		Branding: mergeBranding(def.Branding, stored.Branding, draft.Branding),
		FontID:   firstFont(draft.FontID, stored.FontID, def.FontID),
	}
}

// Resolve merges stored and draft over the default theme.
func Resolve(stored, draft Theme) Theme {
	return Merge(Default(), stored, draft)
}

func mergeTokens(layers ...TokenSet) TokenSet {
	out := TokenSet{}
	for _, layer := range layers {
		maps.Copy(out, layer)
	}
	return out
}

func mergeBranding(layers ...Branding) Branding {
	var out Branding
	for _, layer := range layers {
		// Merge must stay total. overlayBranding only fails on mismatched
		// types, which the tests pin for every Branding field.
		_ = overlayBranding(&out, layer)
	}
	return out
}

// overlayBranding copies the defined fields of layer over dst.
// WithoutDereference replaces pointers instead of writing through them.
func overlayBranding(dst *Branding, layer Branding) error {
	return mergo.Merge(dst, layer.Clone(), mergo.WithOverride, mergo.WithoutDereference)
}

func firstFont(ids ...FontID) FontID {
	for _, id := range ids {
		if id != "" {
			return id
		}
	}
	return ""
}
