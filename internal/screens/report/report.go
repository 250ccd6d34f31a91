// Package report shows a student's attempt history per task, with a score
// trend and the task's grade thresholds.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	att "github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/reports"
	"github.com/abhisek/mathcoach/internal/screen"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/ui/layout"
	"github.com/abhisek/mathcoach/internal/ui/theme"
)

// attemptsShown caps the attempt list for the selected task.
const attemptsShown = 8

type reportLoadedMsg struct {
	Report *reports.Report
	Err    error
}

type exportedMsg struct {
	Path string
	Err  error
}

// ReportScreen renders one student's report.
type ReportScreen struct {
	deps    *screens.Deps
	student store.Profile
	coachID string // set when a coach is viewing

	report   *reports.Report
	selected int
	loaded   bool
	errMsg   string
	status   string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates the report for student. A non-empty coachID scopes the
// report to tasks that coach created.
func New(deps *screens.Deps, student store.Profile, coachID string) *ReportScreen {
	return &ReportScreen{deps: deps, student: student, coachID: coachID}
}

func (s *ReportScreen) Init() tea.Cmd {
	deps, studentID, coachID := s.deps, s.student.ID, s.coachID
	return func() tea.Msg {
		ctx, cancel := deps.Context()
		defer cancel()
		var (
			r   *reports.Report
			err error
		)
		if coachID != "" {
			r, err = deps.Reports.BuildForCoach(ctx, coachID, studentID, "")
		} else {
			r, err = deps.Reports.Build(ctx, studentID, "")
		}
		return reportLoadedMsg{Report: r, Err: err}
	}
}

func (s *ReportScreen) Title() string {
	return "Report: " + s.student.Name
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Task"},
		{Key: "E", Description: "Export .xlsx"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.report = msg.Report
		return s, nil

	case exportedMsg:
		if msg.Err != nil {
			s.status = "Export failed: " + msg.Err.Error()
			s.deps.Log.Prd("Report export failed", "student", s.student.ID, "error", msg.Err)
			return s, nil
		}
		s.status = "Saved " + msg.Path
		return s, nil

	case tea.KeyPressMsg:
		if s.report == nil {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.report.Tasks)-1 {
				s.selected++
			}
		case "e":
			return s, s.export()
		}
	}
	return s, nil
}

// ExportPath is where the spreadsheet for this report is written.
func (s *ReportScreen) ExportPath() string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, s.student.Name)
	return filepath.Join(s.deps.ExportDir, fmt.Sprintf("report_%s.xlsx", name))
}

func (s *ReportScreen) export() tea.Cmd {
	r, path := s.report, s.ExportPath()
	return func() tea.Msg {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return exportedMsg{Err: err}
			}
		}
		f, err := os.Create(path)
		if err != nil {
			return exportedMsg{Err: err}
		}
		if err := reports.WriteXLSX(f, r); err != nil {
			f.Close()
			return exportedMsg{Err: err}
		}
		return exportedMsg{Path: path, Err: f.Close()}
	}
}

func (s *ReportScreen) View(width, height int) string {
	if s.errMsg != "" {
		return screens.RenderError(width, height, s.errMsg)
	}
	if !s.loaded || s.report == nil {
		return screens.RenderLoading(width, height)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(s.report.StudentName))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d tasks · %d attempts", len(s.report.Tasks), s.report.AttemptCount())))
	b.WriteString("\n\n")

	if len(s.report.Tasks) == 0 {
		b.WriteString(screens.Centered(theme.Hint.Render("No tasks yet."), width))
		return b.String()
	}

	var rows []string
	for i := range s.report.Tasks {
		rows = append(rows, s.renderTaskRow(&s.report.Tasks[i], i == s.selected))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderDetail(&s.report.Tasks[s.selected])))

	if s.status != "" {
		b.WriteString("\n\n")
		b.WriteString(screens.Centered(theme.Hint.Render(s.status), width))
	}
	return b.String()
}

func (s *ReportScreen) renderTaskRow(t *reports.TaskReport, selected bool) string {
	title := fmt.Sprintf("%-24s", truncate(t.Title, 24))
	if !t.Active {
		title = fmt.Sprintf("%-24s", truncate(t.Title, 14)+" (inactive)")
	}
	best := "  -"
	if b := t.Best(); b >= 0 {
		best = fmt.Sprintf("%3d%%", b)
	}
	spark := reports.Sparkline(t.Trend, 20)

	prefix := "  "
	style := theme.Unselected
	if selected {
		prefix = "▸ "
		style = theme.Selected
	}
	return style.Render(prefix+title) + "  " +
		theme.TimerNormal.Render(fmt.Sprintf("%-20s", spark)) + "  " +
		theme.Body.Render("best "+best)
}

func (s *ReportScreen) renderDetail(t *reports.TaskReport) string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d questions · pass %d%% · good %d%% · master %d%%",
		t.Total, t.PassPct, t.GoodPct, t.MasterPct)))
	b.WriteString("\n")
	if len(t.Attempts) == 0 {
		b.WriteString(theme.Hint.Render("No attempts yet."))
		return theme.Card.Render(b.String())
	}

	start := 0
	if len(t.Attempts) > attemptsShown {
		start = len(t.Attempts) - attemptsShown
	}
	for i := len(t.Attempts) - 1; i >= start; i-- {
		a := t.Attempts[i]
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("%s  %-5s %3d/%-3d %8s  ",
			a.CompletedAt.Local().Format("Jan 02 15:04"),
			a.Mode,
			a.Score, t.Total,
			att.FormatDuration(a.TimeTaken))))
		b.WriteString(theme.TierColor(a.Grade).Render(a.Grade.Label()))
	}
	return theme.Card.Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
