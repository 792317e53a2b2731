package cli

import (
	"github.com/alexanderramin/waypoint/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// waypointHuhTheme styles the editor forms: the focused field in the
// accent color, every blurred element dimmed.
func waypointHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	focus := &t.Focused
	focus.Title = fg(formatter.ColorHeader).Bold(true)
	focus.Description = fg(formatter.ColorDim)
	focus.SelectSelector = fg(formatter.ColorHeader)
	focus.SelectedOption = fg(formatter.ColorGreen)
	focus.UnselectedOption = fg(formatter.ColorFg)
	focus.TextInput.Cursor = fg(formatter.ColorHeader)
	focus.TextInput.Prompt = fg(formatter.ColorHeader)
	focus.TextInput.Text = fg(formatter.ColorFg)
	focus.TextInput.Placeholder = fg(formatter.ColorDim)
	focus.ErrorIndicator = fg(formatter.ColorRed)
	focus.ErrorMessage = fg(formatter.ColorRed)
	focus.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	focus.BlurredButton = fg(formatter.ColorDim).Padding(0, 1)

	dim := fg(formatter.ColorDim)
	blur := &t.Blurred
	for _, s := range []*lipgloss.Style{
		&blur.Title,
		&blur.SelectSelector,
		&blur.SelectedOption,
		&blur.UnselectedOption,
		&blur.TextInput.Prompt,
		&blur.TextInput.Text,
	} {
		*s = dim
	}
	return t
}
