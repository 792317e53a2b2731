package formatter

import (
	"strings"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette, taken from Gruvbox dark.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

type categoryLook struct {
	glyph string
	style lipgloss.Style
}

var categoryLooks = map[domain.Category]categoryLook{
	domain.CategorySight:     {"✦", StyleBlue},
	domain.CategoryFood:      {"♨", StyleYellow},
	domain.CategoryHotel:     {"⌂", StylePurple},
	domain.CategoryTransport: {"➜", StyleAqua},
	domain.CategoryCoffee:    {"◍", StyleHeader},
}

var otherLook = categoryLook{"•", StyleDim}

func lookFor(c domain.Category) categoryLook {
	if l, ok := categoryLooks[c]; ok {
		return l
	}
	return otherLook
}

// CategoryStyle returns the color used for a stop category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	return lookFor(c).style
}

// CategoryGlyph returns a single-cell marker for a stop category.
func CategoryGlyph(c domain.Category) string {
	return lookFor(c).glyph
}

// CategoryBadge renders the glyph and category name in the category color.
func CategoryBadge(c domain.Category) string {
	return CategoryStyle(c).Render(CategoryGlyph(c) + " " + string(c))
}

// Header renders text upper-cased over a dim rule of the same width.
func Header(text string) string {
	title := strings.ToUpper(text)
	rule := strings.Repeat("─", lipgloss.Width(title))
	return StyleHeader.Render(title) + "\n" + StyleDim.Render(rule)
}

func Dim(text string) string  { return StyleDim.Render(text) }
func Bold(text string) string { return StyleBold.Render(text) }
