package taskform

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/ui/theme"
)

// previewRows is how many preview lines are shown at once.
const previewRows = 4

func (f *FormScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	heading := "New task"
	if len(f.students) == 0 {
		heading = "New task for yourself"
	}
	b.WriteString(theme.Title.Width(width).Render(heading))
	b.WriteString("\n\n")

	var rows []string
	for i, fl := range f.fields {
		rows = append(rows, f.renderField(fl, i == f.focus))
	}
	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))

	b.WriteString("\n")
	switch {
	case f.saving:
		b.WriteString(screens.Centered(theme.Hint.Render("Creating..."), width))
	case f.errMsg != "":
		b.WriteString(screens.Centered(theme.ErrorText.Render(f.errMsg), width))
	}
	return b.String()
}

func (f *FormScreen) renderField(fl field, focused bool) string {
	label := fmt.Sprintf("%-11s", fieldNames[fl])
	if focused {
		label = theme.Selected.Render("▸ " + label)
	} else {
		label = theme.Hint.Render("  " + label)
	}

	var value string
	switch fl {
	case fieldTitle:
		value = f.title.View()
	case fieldFacts:
		value = f.renderGrid(focused)
	case fieldCount:
		value = f.count.View(focused)
		if f.count.Value() == customOption {
			value += "  " + f.customCount.View()
		}
	case fieldTime:
		value = f.timeLimit.View(focused)
	case fieldThresholds:
		value = f.renderThresholds(focused)
	case fieldLayout:
		value = f.layoutChoice.View(focused)
	case fieldAssignees:
		value = f.renderAssignees(focused)
	case fieldPreview:
		value = f.renderPreview()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", value) + "\n"
}

// renderGrid draws the fact grid with row and column headers.
func (f *FormScreen) renderGrid(focused bool) string {
	g := f.facts.Grid()
	var b strings.Builder
	b.WriteString("   ")
	for c := g.Min; c <= g.Max; c++ {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%3d", c)))
	}
	b.WriteString("\n")
	for r := g.Min; r <= g.Max; r++ {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%3d", r)))
		for c := g.Min; c <= g.Max; c++ {
			cell := "  ·"
			style := theme.Hint
			if f.facts.Has(r, c) {
				cell = "  ■"
				style = theme.Correct
			}
			if focused && r-g.Min == f.cursorRow && c-g.Min == f.cursorCol {
				style = theme.Focused
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d facts selected", f.facts.Len(), g.Cells())))
	return b.String()
}

func (f *FormScreen) renderThresholds(focused bool) string {
	names := [3]string{"Pass", "Good", "Master"}
	parts := make([]string, 3)
	for i, n := range names {
		v := f.thresholds[i]
		if v == "" {
			v = "_"
		}
		cell := fmt.Sprintf("%s %3s", n, v)
		if focused && i == f.thresholdSub {
			parts[i] = theme.Focused.Render(cell)
		} else {
			parts[i] = theme.Body.Render(cell)
		}
	}
	out := strings.Join(parts, "  ")
	if f.thresholdsSet {
		out += "  " + theme.Hint.Render("(D resets)")
	} else {
		out += "  " + theme.Hint.Render(fmt.Sprintf("of %d", f.questionCount()))
	}
	return out
}

func (f *FormScreen) renderAssignees(focused bool) string {
	lines := make([]string, len(f.students))
	for i, st := range f.students {
		box := "[ ]"
		if f.assigned[st.ID] {
			box = "[x]"
		}
		line := box + " " + st.Name
		if focused && i == f.assignCursor {
			lines[i] = theme.Selected.Render(line)
		} else {
			lines[i] = theme.Unselected.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// renderPreview shows the generated questions a few rows at a time.
func (f *FormScreen) renderPreview() string {
	if f.previewErr != "" {
		return theme.Hint.Render(f.previewErr)
	}
	if len(f.preview) == 0 {
		return theme.Hint.Render("Select facts to see questions.")
	}
	const perRow = 6
	totalRows := (len(f.preview) + perRow - 1) / perRow
	if f.previewOffset > totalRows-previewRows {
		f.previewOffset = max(0, totalRows-previewRows)
	}

	var lines []string
	for r := f.previewOffset; r < totalRows && r < f.previewOffset+previewRows; r++ {
		var cells []string
		for i := r * perRow; i < (r+1)*perRow && i < len(f.preview); i++ {
			cells = append(cells, fmt.Sprintf("%-9s", f.preview[i].Text()))
		}
		lines = append(lines, theme.Body.Render(strings.Join(cells, " ")))
	}
	lines = append(lines, theme.Hint.Render(fmt.Sprintf("%d questions", len(f.preview))))
	return strings.Join(lines, "\n")
}
