package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShadowRoundTrip(t *testing.T) {
	t.Parallel()

	for _, preset := range ShadowPresets() {
		value, ok := ResolveShadow(preset.ID)
		require.True(t, ok)
		require.Equal(t, preset.ID, ClassifyShadow(value))
	}
}

func TestClassifyShadow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected ShadowPreset
	}{
		{name: "none", input: "none", expected: ShadowNone},
		{name: "padded none", input: "  none \n", expected: ShadowNone},
		{name: "mangled light", input: "  0px   2px 6px\t-2px hsl(0 0% 0% /  0.10) ", expected: ShadowLight},
		{name: "mangled medium", input: "0px 4px 12px -2px hsl(0 0% 0% / 0.14),\n  0px 2px 4px -2px hsl(0 0% 0% / 0.08)", expected: ShadowMedium},
		{name: "different alpha", input: "0px 2px 6px -2px hsl(0 0% 0% / 0.11)", expected: ShadowCustom},
		{name: "empty", input: "", expected: ShadowCustom},
		{name: "case differs", input: "NONE", expected: ShadowCustom},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, ClassifyShadow(tt.input))
		})
	}
}

func TestResolveShadowCustom(t *testing.T) {
	t.Parallel()

	_, ok := ResolveShadow(ShadowCustom)
	require.False(t, ok)
	_, ok = ResolveShadow("glow")
	require.False(t, ok)
}

func TestParseShadowPreset(t *testing.T) {
	t.Parallel()

	id, ok := ParseShadowPreset(" High ")
	require.True(t, ok)
	require.Equal(t, ShadowHigh, id)

	id, ok = ParseShadowPreset("custom")
	require.True(t, ok)
	require.Equal(t, ShadowCustom, id)

	_, ok = ParseShadowPreset("glow")
	require.False(t, ok)
}

func TestNextShadowPreset(t *testing.T) {
	t.Parallel()

	require.Equal(t, ShadowLight, NextShadowPreset(ShadowNone))
	require.Equal(t, ShadowNone, NextShadowPreset(ShadowHigh))
	require.Equal(t, ShadowNone, NextShadowPreset(ShadowCustom))
}

func TestShadowPresetsReturnsCopy(t *testing.T) {
	t.Parallel()

	presets := ShadowPresets()
	presets[0].Value = "mutated"
	value, _ := ResolveShadow(ShadowNone)
	require.Equal(t, "none", value)
}
