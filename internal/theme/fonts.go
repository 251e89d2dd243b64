package theme

// FontID names a supported storefront typeface. The empty value means unset.
type FontID string

// FontCategory groups typefaces by the CSS generic family they fall back to.
type FontCategory string

const (
	CategorySans  FontCategory = "sans-serif"
	CategorySerif FontCategory = "serif"
	CategoryMono  FontCategory = "monospace"
)

// Supported font identifiers.
const (
	FontInter            FontID = "inter"
	FontGeist            FontID = "geist"
	FontDMSans           FontID = "dm-sans"
	FontRoboto           FontID = "roboto"
	FontOpenSans         FontID = "open-sans"
	FontLato             FontID = "lato"
	FontPoppins          FontID = "poppins"
	FontMerriweather     FontID = "merriweather"
	FontPlayfairDisplay  FontID = "playfair-display"
	FontLora             FontID = "lora"
	FontSourceSerif      FontID = "source-serif"
	FontJetBrainsMono    FontID = "jetbrains-mono"
	FontIBMPlexMono      FontID = "ibm-plex-mono"
)

// DefaultFontID is the typeface of the default theme.
const DefaultFontID = FontInter

const (
	fallbackSansStack      = "ui-sans-serif, system-ui, sans-serif"
	fallbackSerifStack     = "ui-serif, Georgia, serif"
	fallbackMonospaceStack = "ui-monospace, SFMono-Regular, Menlo, monospace"
)

// Font describes one entry of the catalogue.
type Font struct {
	ID       FontID       `json:"id" yaml:"id"`
	Label    string       `json:"label" yaml:"label"`
	Category FontCategory `json:"category" yaml:"category"`
}

// Stack returns the CSS font-family list for the font.
func (f Font) Stack() string {
	return `"` + f.Label + `", ` + genericStack(f.Category)
}

var fontCatalogue = []Font{
	{ID: FontInter, Label: "Inter", Category: CategorySans},
	{ID: FontGeist, Label: "Geist", Category: CategorySans},
	{ID: FontDMSans, Label: "DM Sans", Category: CategorySans},
	{ID: FontRoboto, Label: "Roboto", Category: CategorySans},
	{ID: FontOpenSans, Label: "Open Sans", Category: CategorySans},
	{ID: FontLato, Label: "Lato", Category: CategorySans},
	{ID: FontPoppins, Label: "Poppins", Category: CategorySans},
	{ID: FontMerriweather, Label: "Merriweather", Category: CategorySerif},
	{ID: FontPlayfairDisplay, Label: "Playfair Display", Category: CategorySerif},
	{ID: FontLora, Label: "Lora", Category: CategorySerif},
	{ID: FontSourceSerif, Label: "Source Serif 4", Category: CategorySerif},
	{ID: FontJetBrainsMono, Label: "JetBrains Mono", Category: CategoryMono},
	{ID: FontIBMPlexMono, Label: "IBM Plex Mono", Category: CategoryMono},
}

// Fonts returns the catalogue in display order.
func Fonts() []Font {
	return append([]Font(nil), fontCatalogue...)
}

// LookupFont finds a catalogue entry by identifier.
func LookupFont(id FontID) (Font, bool) {
	for _, f := range fontCatalogue {
		if f.ID == id {
			return f, true
		}
	}
	return Font{}, false
}

// Supported reports whether id is in the catalogue.
func (id FontID) Supported() bool {
	_, ok := LookupFont(id)
	return ok
}

// FontToken returns the font-family token the font occupies and its stack.
func FontToken(id FontID) (Token, string, bool) {
	font, ok := LookupFont(id)
	if !ok {
		return 0, "", false
	}
	switch font.Category {
	case CategorySerif:
		return FontSerif, font.Stack(), true
	case CategoryMono:
		return FontMono, font.Stack(), true
	default:
		return FontSans, font.Stack(), true
	}
}

func genericStack(c FontCategory) string {
	switch c {
	case CategorySerif:
		return fallbackSerifStack
	case CategoryMono:
		return fallbackMonospaceStack
	default:
		return fallbackSansStack
	}
}
