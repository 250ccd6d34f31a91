package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/ui/theme"
)

// Meter is a one-line bar showing used out of total.
type Meter struct {
	Width int
	Fill  color.Color
}

// NewMeter returns a meter of the given cell width in the secondary color.
func NewMeter(width int) Meter {
	return Meter{Width: max(width, 4), Fill: theme.Secondary}
}

// Cells returns how many of the meter's cells are filled.
func (m Meter) Cells(used, total int) int {
	if total <= 0 || used <= 0 {
		return 0
	}
	return min(used*m.Width/total, m.Width)
}

// View renders the bar.
func (m Meter) View(used, total int) string {
	n := m.Cells(used, total)
	return lipgloss.NewStyle().Background(m.Fill).Render(strings.Repeat(" ", n)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", m.Width-n))
}
