package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/ui/theme"
)

// Choice is a single-select row of options moved with left/right.
type Choice struct {
	Label    string
	Options  []string
	Selected int
}

// NewChoice creates a choice with the given option selected.
func NewChoice(label string, options []string, selected int) Choice {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Choice{Label: label, Options: options, Selected: selected}
}

// Update moves the selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}
	return c, nil
}

// Value returns the selected option text.
func (c Choice) Value() string {
	if len(c.Options) == 0 {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the row. focused highlights the current option.
func (c Choice) View(focused bool) string {
	var b strings.Builder
	if c.Label != "" {
		label := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			label = theme.Selected
		}
		b.WriteString(label.Render(c.Label) + "  ")
	}
	for i, opt := range c.Options {
		if i > 0 {
			b.WriteString(" ")
		}
		switch {
		case i == c.Selected && focused:
			b.WriteString(theme.Focused.Render(" " + opt + " "))
		case i == c.Selected:
			b.WriteString(theme.Selected.Render("[" + opt + "]"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(" " + opt + " "))
		}
	}
	return b.String()
}
