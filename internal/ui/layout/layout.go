// Package layout draws the frame around every screen: a header naming the
// screen and the signed-in profile, the screen body and a footer of key
// hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/ui/theme"
)

// Below this the answer grid cannot fit a row of six questions.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one footer entry.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize request.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small\n\nNeed %d x %d, have %d x %d",
			MinWidth, MinHeight, width, height))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// spread places center in the middle of width and right flush right,
// keeping at least one space between neighbours.
func spread(left, center, right string, width int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	gap1 := max((width-cw)/2-lw, 1)
	gap2 := max(width-lw-gap1-cw-rw, 1)
	return left + strings.Repeat(" ", gap1) + center + strings.Repeat(" ", gap2) + right
}

// RenderHeader renders the title bar. who is the signed-in profile's name
// and may be empty.
func RenderHeader(title, who string, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Math Coach")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := ""
	if who != "" {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render("● "+who) + " "
	}
	return bar(width).Render(spread(brand, center, right, max(width-4, 0)))
}

// RenderFooter renders hints as "key description" pairs.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, body and footer, sizing the body to whatever
// height the bars leave.
func RenderFrame(header, body, footer string, width, height int) string {
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(h).Render(body),
		footer,
	)
}
