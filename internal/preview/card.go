package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardData is the content shown on a product card.
type CardData struct {
	Title       string
	Description string
	Price       string
	Badge       string
	Actions     []*Button
}

// Card renders a bordered surface using the card token pair.
type Card struct {
	data    CardData
	palette Palette
	width   int
}

const cardPadding = 1

// NewCard creates a card with no fixed width.
func NewCard(data CardData, p Palette) *Card {
	return &Card{data: data, palette: p}
}

// WithWidth sets the outer width of the card, borders included.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// View renders the card.
func (c *Card) View() string {
	p := c.palette
	base := lipgloss.NewStyle().Background(p.Card).Foreground(p.CardForeground)

	var content []string
	header := base.Bold(true).Render(c.data.Title)
	if c.data.Badge != "" {
		badge := lipgloss.NewStyle().
			Background(p.Accent).
			Foreground(p.AccentForeground).
			Padding(0, 1).
			Render(c.data.Badge)
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, " ", badge)
	}
	content = append(content, header)

	if c.data.Description != "" {
		muted := base.Foreground(p.MutedForeground)
		for _, line := range wrapText(c.data.Description, c.innerWidth()) {
			content = append(content, muted.Render(line))
		}
	}
	if c.data.Price != "" {
		content = append(content, "", base.Bold(true).Render(c.data.Price))
	}
	if len(c.data.Actions) > 0 {
		content = append(content, "", ButtonRow(1, c.data.Actions...))
	}

	style := base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, cardPadding)
	if c.width > 0 {
		// lipgloss widths exclude the border
		style = style.Width(c.width - 2)
	}
	return style.Render(strings.Join(content, "\n"))
}

func (c *Card) innerWidth() int {
	if c.width <= 0 {
		return 0
	}
	return c.width - 2 - cardPadding*2
}

// wrapText splits text into lines no wider than width. Words longer than a
// line are broken across lines. A non-positive width disables wrapping.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if width <= 0 || len(words) == 0 {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	var lines []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range words {
		runes := []rune(word)
		for len(runes) > width {
			flush()
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		switch {
		case len(current) == 0:
			current = append(current, runes...)
		case len(current)+1+len(runes) <= width:
			current = append(current, ' ')
			current = append(current, runes...)
		default:
			flush()
			current = append(current, runes...)
		}
	}
	flush()
	return lines
}
