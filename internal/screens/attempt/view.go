package attempt

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	att "github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/ui/components"
	"github.com/abhisek/mathcoach/internal/ui/theme"
)

// maxMissedShown caps the breakdown list on the results view.
const maxMissedShown = 12

func (s *AttemptScreen) View(width, height int) string {
	var body string
	switch s.sess.State() {
	case att.StateModeSelection:
		body = s.renderModeSelection(width)
	case att.StateRunning, att.StateSubmitting:
		body = s.renderRunning(width, height)
	default:
		body = s.renderResults(width)
	}
	if s.confirmQuit {
		return s.renderConfirm(width, height)
	}
	return body
}

func (s *AttemptScreen) renderModeSelection(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(s.task.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(screens.TaskLine(s.task)))
	b.WriteString("\n\n")

	b.WriteString(screens.Centered(s.modeChoice.View(true), width))
	b.WriteString("\n\n")

	desc := "Practise at your own pace. The clock keeps running past the limit."
	if s.modeChoice.Value() == "Test" {
		desc = fmt.Sprintf("You have %s. Answers are submitted when time runs out.",
			att.FormatDuration(s.task.TimeLimit))
	}
	b.WriteString(screens.Centered(theme.Hint.Render(desc), width))
	return b.String()
}

func (s *AttemptScreen) renderRunning(width, height int) string {
	var b strings.Builder

	qs := s.sess.Questions()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s mode", s.sess.Mode()))
	infoRight := theme.Hint.Render(fmt.Sprintf("%d/%d answered  ", s.sess.AnsweredCount(), len(qs))) +
		s.renderClock()

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 2; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	} else {
		infoLine += "  " + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	if limit := s.sess.TimeLimit(); limit > 0 {
		m := components.NewMeter(width - 4)
		if s.sess.WarningZone() || s.sess.Overtime() {
			m.Fill = theme.Warning
		}
		b.WriteString("  " + m.View(s.sess.Elapsed(), limit))
		b.WriteString("\n")
	}
	b.WriteString(screens.Rule(width - 4))
	b.WriteString("\n")

	if s.sess.State() == att.StateSubmitting {
		b.WriteString(screens.Centered(theme.Hint.Render("Saving your answers..."), width))
		b.WriteString("\n")
	} else if err := s.sess.LastError(); err != nil {
		b.WriteString(screens.Centered(theme.ErrorText.Render("Could not save: "+err.Error()+". Press Ctrl+S to try again."), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	avail := height - 6
	if avail < 3 {
		avail = 3
	}
	if s.layout == problemgen.LayoutVertical {
		b.WriteString(s.renderVertical(width, avail))
	} else {
		b.WriteString(s.renderHorizontal(width, avail))
	}
	return b.String()
}

// renderClock shows remaining time in a test and elapsed time in training.
func (s *AttemptScreen) renderClock() string {
	if s.sess.Mode() == att.ModeTest {
		clock := att.FormatClock(s.sess.Remaining())
		if s.sess.WarningZone() {
			return theme.TimerWarning.Render(clock)
		}
		return theme.TimerNormal.Render(clock)
	}
	clock := theme.TimerNormal.Render(att.FormatClock(s.sess.Elapsed()))
	if s.sess.Overtime() {
		clock += " " + theme.Overtime.Render("OVERTIME")
	}
	return clock
}

// answerCell renders one answer box, highlighted when focused.
func (s *AttemptScreen) answerCell(i int, q problemgen.Question) string {
	text := s.sess.Answer(q.ID)
	cell := fmt.Sprintf("%4s", text)
	if i == s.sess.Focus() && s.sess.State() == att.StateRunning {
		return theme.Focused.Render(cell)
	}
	if text == "" {
		return theme.Hint.Render("   _")
	}
	return theme.Body.Render(cell)
}

// renderHorizontal lays questions out as "a × b = __" in columns, row-major,
// scrolled so the focused question stays visible.
func (s *AttemptScreen) renderHorizontal(width, rows int) string {
	qs := s.sess.Questions()
	const cellWidth = 20
	cols := (width - 4) / cellWidth
	if cols < 1 {
		cols = 1
	}
	if cols > 4 {
		cols = 4
	}
	totalRows := (len(qs) + cols - 1) / cols
	first := scrollStart(s.sess.Focus()/cols, totalRows, rows)

	var lines []string
	for r := first; r < totalRows && r < first+rows; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(qs) {
				break
			}
			q := qs[i]
			label := fmt.Sprintf("%2d × %-2d = ", q.Operand1, q.Operand2)
			cell := theme.Body.Render(label) + s.answerCell(i, q)
			cells = append(cells, lipgloss.NewStyle().Width(cellWidth).Render(cell))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return screens.Centered(strings.Join(lines, "\n"), width)
}

// renderVertical stacks each problem in column form, a few per row.
func (s *AttemptScreen) renderVertical(width, rows int) string {
	qs := s.sess.Questions()
	const cellWidth = 10
	const cellHeight = 5
	cols := (width - 4) / cellWidth
	if cols < 1 {
		cols = 1
	}
	if cols > 8 {
		cols = 8
	}
	visible := rows / cellHeight
	if visible < 1 {
		visible = 1
	}
	totalRows := (len(qs) + cols - 1) / cols
	first := scrollStart(s.sess.Focus()/cols, totalRows, visible)

	var blocks []string
	for r := first; r < totalRows && r < first+visible; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(qs) {
				break
			}
			q := qs[i]
			stack := strings.Join([]string{
				theme.Body.Render(fmt.Sprintf("%5d", q.Operand1)),
				theme.Body.Render(fmt.Sprintf("× %3d", q.Operand2)),
				screens.Rule(5),
				" " + s.answerCell(i, q),
			}, "\n")
			cells = append(cells, lipgloss.NewStyle().Width(cellWidth).Render(stack))
		}
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return screens.Centered(strings.Join(blocks, "\n\n"), width)
}

// scrollStart picks the first visible row so that focus is on screen.
func scrollStart(focusRow, totalRows, visible int) int {
	if totalRows <= visible {
		return 0
	}
	first := focusRow - visible/2
	if first < 0 {
		first = 0
	}
	if first > totalRows-visible {
		first = totalRows - visible
	}
	return first
}

func (s *AttemptScreen) renderResults(width int) string {
	out := s.sess.Outcome()
	if out == nil {
		return screens.Centered(theme.Hint.Render("No result."), width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(screens.Centered(theme.TierColor(out.Tier).Render(out.Tier.Label()), width))
	b.WriteString("\n\n")
	b.WriteString(screens.Centered(theme.Body.Render(
		fmt.Sprintf("Score %d/%d (%d%%)", out.Score, out.Total, out.Percent())), width))
	b.WriteString("\n")
	timeLine := "Time " + att.FormatDuration(out.TimeTaken)
	if s.sess.Mode() == att.ModeTrain && out.TimeTaken > s.task.TimeLimit {
		timeLine += "  " + theme.Overtime.Render("OVERTIME")
	}
	b.WriteString(screens.Centered(theme.Body.Render(timeLine), width))
	b.WriteString("\n\n")

	b.WriteString(s.renderMissed(out.Breakdown, width))
	b.WriteString(s.renderNote(width))
	return b.String()
}

func (s *AttemptScreen) renderMissed(lines []grading.Line, width int) string {
	var missed []string
	for _, l := range grading.Missed(lines) {
		given := "blank"
		if l.UserAnswer != nil {
			given = fmt.Sprint(*l.UserAnswer)
		}
		missed = append(missed, fmt.Sprintf("%s %s  %s",
			theme.Body.Render(fmt.Sprintf("%d × %d = %d", l.Operand1, l.Operand2, l.CorrectAnswer)),
			theme.Hint.Render("you wrote"),
			theme.Incorrect.Render(given)))
	}
	if len(missed) == 0 {
		return screens.Centered(theme.Correct.Render("Every answer correct!"), width) + "\n"
	}

	var b strings.Builder
	b.WriteString(screens.Centered(theme.Subtitle.Render("To review"), width))
	b.WriteString("\n")
	extra := 0
	if len(missed) > maxMissedShown {
		extra = len(missed) - maxMissedShown
		missed = missed[:maxMissedShown]
	}
	list := strings.Join(missed, "\n")
	if extra > 0 {
		list += "\n" + theme.Hint.Render(fmt.Sprintf("...and %d more", extra))
	}
	b.WriteString(screens.Centered(list, width))
	b.WriteString("\n")
	return b.String()
}

func (s *AttemptScreen) renderNote(width int) string {
	switch {
	case s.noteLoading:
		return "\n" + screens.Centered(theme.Hint.Render("Writing a coach note..."), width)
	case s.noteErr != "":
		return "\n" + screens.Centered(theme.Hint.Render(s.noteErr), width)
	case s.note == nil:
		return ""
	}

	inner := width - 12
	if inner > 64 {
		inner = 64
	}
	if inner < 20 {
		inner = 20
	}
	text := lipgloss.NewStyle().Width(inner).Render(s.note.Text)
	if len(s.note.Practise) > 0 {
		text += "\n\n" + theme.Hint.Render("Practise: "+strings.Join(s.note.Practise, ", "))
	}
	return "\n" + screens.Centered(theme.Card.Render(text), width)
}

func (s *AttemptScreen) renderConfirm(width, height int) string {
	msg := theme.Body.Render("Leave this attempt?") + "\n\n" +
		theme.Hint.Render("Your answers will not be saved.") + "\n\n" +
		theme.ButtonActive.Render("Y  Leave") + "  " + theme.ButtonInactive.Render("N  Keep going")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.Card.Render(msg))
}
