package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const minStorefrontWidth = 36

// Storefront composes a header bar, a product card and a notice into a page
// painted with the palette. Width is clamped to a usable minimum.
func Storefront(p Palette, width int) string {
	if width < minStorefrontWidth {
		width = minStorefrontWidth
	}

	header := lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(p.PrimaryForeground).
		Bold(true).
		Padding(0, 1).
		Width(width).
		Render("Storefront · " + strings.ToUpper(string(p.Mode)))

	nav := p.surface().Foreground(p.MutedForeground).Padding(0, 1).Render("Home   Shop   About   Cart (2)")

	card := NewCard(CardData{
		Title:       "Canvas Tote",
		Badge:       "New",
		Description: "Heavyweight cotton bag with an inner pocket and reinforced straps.",
		Price:       "$24.00",
		Actions: []*Button{
			NewButton("Add to cart", p).WithFocus(true),
			NewButton("Wishlist", p).WithVariant(ButtonSecondary),
		},
	}, p).WithWidth(width)

	buttons := ButtonRow(1,
		NewButton("Outline", p).WithVariant(ButtonOutline),
		NewButton("Ghost", p).WithVariant(ButtonGhost),
		NewButton("Remove", p).WithVariant(ButtonDestructive),
	)

	notices := lipgloss.JoinVertical(lipgloss.Left,
		NewAlert("Free shipping on orders over $50.", p).WithTitle("Heads up").View(),
		"",
		NewAlert("Only 2 left in stock.", p).WithVariant(AlertDestructive).View(),
	)

	page := lipgloss.JoinVertical(lipgloss.Left, header, nav, "", card.View(), "", buttons, "", notices)
	return p.surface().Render(page)
}
