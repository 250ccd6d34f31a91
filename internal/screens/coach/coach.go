// Package coach is the coach's dashboard: each student with their active
// tasks.
package coach

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/router"
	"github.com/abhisek/mathcoach/internal/screen"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/screens/report"
	"github.com/abhisek/mathcoach/internal/screens/taskform"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
	"github.com/abhisek/mathcoach/internal/ui/components"
	"github.com/abhisek/mathcoach/internal/ui/layout"
	"github.com/abhisek/mathcoach/internal/ui/theme"
)

type dashboardLoadedMsg struct {
	Rows []tasks.StudentWithTasks
	Err  error
}

type deactivatedMsg struct {
	Title string
	Err   error
}

// row is what a menu line points at: a student, or one of their tasks.
type row struct {
	student store.Profile
	task    *store.Task
}

// DashboardScreen shows the coach's students and their tasks.
type DashboardScreen struct {
	deps   *screens.Deps
	coach  store.Profile
	data   []tasks.StudentWithTasks
	rows   []row
	menu   components.Menu
	loaded bool
	status string
	errMsg string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.Resumer = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard for coach p.
func New(deps *screens.Deps, p store.Profile) *DashboardScreen {
	return &DashboardScreen{deps: deps, coach: p}
}

func (s *DashboardScreen) Init() tea.Cmd   { return s.load() }
func (s *DashboardScreen) Resume() tea.Cmd { return s.load() }

func (s *DashboardScreen) Title() string {
	return "Coach Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "N", Description: "New task"}}
	if r := s.selected(); r != nil {
		if r.task != nil {
			hints = append(hints, layout.KeyHint{Key: "D", Description: "Deactivate"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Report"})
		}
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Switch profile"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *DashboardScreen) load() tea.Cmd {
	deps, id := s.deps, s.coach.ID
	return func() tea.Msg {
		ctx, cancel := deps.Context()
		defer cancel()
		rows, err := deps.Tasks.CoachDashboard(ctx, id)
		return dashboardLoadedMsg{Rows: rows, Err: err}
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		selected := s.menu.Selected
		s.data = msg.Rows
		s.buildMenu()
		if selected < len(s.menu.Items) {
			s.menu.Selected = selected
		}
		return s, nil

	case deactivatedMsg:
		if msg.Err != nil {
			s.status = "Could not deactivate: " + msg.Err.Error()
			return s, nil
		}
		s.status = fmt.Sprintf("Deactivated %q.", msg.Title)
		return s, s.load()

	case tea.KeyPressMsg:
		if !s.loaded {
			return s, nil
		}
		switch msg.String() {
		case "n":
			return s, s.newTask()
		case "d":
			return s, s.deactivateSelected()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DashboardScreen) buildMenu() {
	s.rows = s.rows[:0]
	var items []components.MenuItem
	for _, d := range s.data {
		st := d.Student
		s.rows = append(s.rows, row{student: st})
		items = append(items, components.MenuItem{
			Label:  st.Name,
			Detail: fmt.Sprintf("%d active", len(d.Tasks)),
			Action: func() tea.Cmd {
				next := report.New(s.deps, st, s.coach.ID)
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			},
		})
		for _, t := range d.Tasks {
			s.rows = append(s.rows, row{student: st, task: t})
			items = append(items, components.MenuItem{
				Label:  "  " + t.Title,
				Detail: screens.TaskLine(t),
			})
		}
	}
	s.menu = components.NewMenu(items)
}

func (s *DashboardScreen) selected() *row {
	if s.menu.Selected >= 0 && s.menu.Selected < len(s.rows) {
		return &s.rows[s.menu.Selected]
	}
	return nil
}

func (s *DashboardScreen) students() []store.Profile {
	out := make([]store.Profile, len(s.data))
	for i, d := range s.data {
		out[i] = d.Student
	}
	return out
}

func (s *DashboardScreen) newTask() tea.Cmd {
	next := taskform.New(s.deps, s.coach, s.students())
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *DashboardScreen) deactivateSelected() tea.Cmd {
	r := s.selected()
	if r == nil || r.task == nil {
		return nil
	}
	t := r.task
	deps, id := s.deps, s.coach.ID
	return func() tea.Msg {
		ctx, cancel := deps.Context()
		defer cancel()
		return deactivatedMsg{Title: t.Title, Err: deps.Tasks.DeactivateTask(ctx, t.ID, id)}
	}
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return screens.RenderError(width, height, s.errMsg)
	}
	if !s.loaded {
		return screens.RenderLoading(width, height)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(s.coach.Name))
	b.WriteString("\n")
	sub := fmt.Sprintf("%d students", len(s.data))
	if len(s.data) == 0 {
		sub = "No students yet."
	}
	b.WriteString(theme.Subtitle.Width(width).Render(sub))
	b.WriteString("\n\n")

	menuWidth := width - 8
	if menuWidth > 72 {
		menuWidth = 72
	}
	menu := lipgloss.NewStyle().Width(menuWidth).Render(s.menu.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(screens.Centered(theme.Hint.Render(s.status), width))
	}
	return b.String()
}
