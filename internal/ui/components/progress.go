package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fraudlens/internal/ui/theme"
)

// ProgressBar displays a horizontal meter for a fraction in [0,1].
type ProgressBar struct {
	Label    string
	Fraction float64
	Caption  string
	Width    int
	Color    color.Color
}

// NewProgressBar creates a new progress bar filled in the given color.
func NewProgressBar(label string, fraction float64, caption string, width int, fill color.Color) ProgressBar {
	return ProgressBar{
		Label:    label,
		Fraction: fraction,
		Caption:  caption,
		Width:    width,
		Color:    fill,
	}
}

// Filled returns the number of filled cells for a bar of barWidth cells.
func (p ProgressBar) Filled(barWidth int) int {
	filled := int(float64(barWidth)*p.Fraction + 0.5)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Label.Render(p.Label) + "  "
	}

	caption := ""
	if p.Caption != "" {
		caption = "  " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Caption)
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(caption)
	if barWidth < 4 {
		barWidth = 4
	}

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}

	filled := p.Filled(barWidth)
	result += lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled))
	result += lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))

	return result + caption
}
