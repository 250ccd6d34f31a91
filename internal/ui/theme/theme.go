package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/grading"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F97316") // Orange
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Focused marks the answer field that receives keystrokes.
	Focused = lipgloss.NewStyle().
		Foreground(Text).
		Background(Primary).
		Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	// Timer styles for the attempt clock.
	TimerNormal  = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	TimerWarning = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	Overtime     = lipgloss.NewStyle().Foreground(BgDark).Background(Warning).Bold(true).Padding(0, 1)
)

// TierColor returns the display colour for a grade tier.
func TierColor(t grading.Tier) lipgloss.Style {
	switch t {
	case grading.TierMaster:
		return lipgloss.NewStyle().Foreground(Accent).Bold(true)
	case grading.TierGood:
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case grading.TierPass:
		return lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(Error).Bold(true)
}
