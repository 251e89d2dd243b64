package theme

import "maps"

var sharedTokens = TokenSet{
	Shadow2xs:      "0px 1px 2px 0px hsl(0 0% 0% / 0.05)",
	ShadowXs:       "0px 1px 3px 0px hsl(0 0% 0% / 0.08)",
	ShadowSm:       "0px 2px 6px -2px hsl(0 0% 0% / 0.10)",
	Shadow:         "0px 2px 6px -2px hsl(0 0% 0% / 0.10)",
	ShadowMd:       "0px 4px 12px -2px hsl(0 0% 0% / 0.14), 0px 2px 4px -2px hsl(0 0% 0% / 0.08)",
	ShadowLg:       "0px 4px 12px -2px hsl(0 0% 0% / 0.14), 0px 2px 4px -2px hsl(0 0% 0% / 0.08)",
	ShadowXl:       "0px 12px 32px -4px hsl(0 0% 0% / 0.22), 0px 4px 8px -4px hsl(0 0% 0% / 0.12)",
	Shadow2xl:      "0px 12px 32px -4px hsl(0 0% 0% / 0.22), 0px 4px 8px -4px hsl(0 0% 0% / 0.12)",
	FontSans:       `"Inter", ` + fallbackSansStack,
	FontSerif:      fallbackSerifStack,
	FontMono:       fallbackMonospaceStack,
	LetterSpacing:  "0em",
	Spacing:        "0.25rem",
	Radius:         "0.625rem",
	TrackingNormal: "0em",
}

var defaultLight = withShared(TokenSet{
	Background:               "#ffffff",
	Foreground:               "#0a0a0a",
	Card:                     "#ffffff",
	CardForeground:           "#0a0a0a",
	Popover:                  "#ffffff",
	PopoverForeground:        "#0a0a0a",
	Primary:                  "#171717",
	PrimaryForeground:        "#fafafa",
	Secondary:                "#f5f5f5",
	SecondaryForeground:      "#171717",
	Muted:                    "#f5f5f5",
	MutedForeground:          "#737373",
	Accent:                   "#f5f5f5",
	AccentForeground:         "#171717",
	Destructive:              "#dc2626",
	DestructiveForeground:    "#fafafa",
	Border:                   "#e5e5e5",
	Input:                    "#e5e5e5",
	Ring:                     "#a3a3a3",
	Chart1:                   "#e76e50",
	Chart2:                   "#2a9d90",
	Chart3:                   "#274754",
	Chart4:                   "#e8c468",
	Chart5:                   "#f4a462",
	Sidebar:                  "#fafafa",
	SidebarForeground:        "#0a0a0a",
	SidebarPrimary:           "#171717",
	SidebarPrimaryForeground: "#fafafa",
	SidebarAccent:            "#f5f5f5",
	SidebarAccentForeground:  "#171717",
	SidebarBorder:            "#e5e5e5",
	SidebarRing:              "#a3a3a3",
})

var defaultDark = withShared(TokenSet{
	Background:               "#0a0a0a",
	Foreground:               "#fafafa",
	Card:                     "#171717",
	CardForeground:           "#fafafa",
	Popover:                  "#171717",
	PopoverForeground:        "#fafafa",
	Primary:                  "#e5e5e5",
	PrimaryForeground:        "#171717",
	Secondary:                "#262626",
	SecondaryForeground:      "#fafafa",
	Muted:                    "#262626",
	MutedForeground:          "#a3a3a3",
	Accent:                   "#262626",
	AccentForeground:         "#fafafa",
	Destructive:              "#ef4444",
	DestructiveForeground:    "#fafafa",
	Border:                   "#262626",
	Input:                    "#262626",
	Ring:                     "#737373",
	Chart1:                   "#2662d9",
	Chart2:                   "#2eb88a",
	Chart3:                   "#e88c30",
	Chart4:                   "#af57db",
	Chart5:                   "#e23670",
	Sidebar:                  "#171717",
	SidebarForeground:        "#fafafa",
	SidebarPrimary:           "#1d4ed8",
	SidebarPrimaryForeground: "#fafafa",
	SidebarAccent:            "#262626",
	SidebarAccentForeground:  "#fafafa",
	SidebarBorder:            "#262626",
	SidebarRing:              "#737373",
})

func withShared(colors TokenSet) TokenSet {
	set := sharedTokens.Clone()
	maps.Copy(set, colors)
	return set
}

// Default returns the complete default theme. Each call returns a fresh copy,
// so callers may mutate the result freely.
func Default() Theme {
	return Theme{
		Light:  defaultLight.Clone(),
		Dark:   defaultDark.Clone(),
		FontID: DefaultFontID,
	}
}

// DefaultValue returns the default text for token in mode.
func DefaultValue(mode Mode, token Token) string {
	if mode == Dark {
		return defaultDark[token]
	}
	return defaultLight[token]
}
