// Package student is a student's dashboard: their active tasks plus
// shortcuts to create a task and view their report.
package student

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/router"
	"github.com/abhisek/mathcoach/internal/screen"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/screens/attempt"
	"github.com/abhisek/mathcoach/internal/screens/report"
	"github.com/abhisek/mathcoach/internal/screens/taskform"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
	"github.com/abhisek/mathcoach/internal/ui/components"
	"github.com/abhisek/mathcoach/internal/ui/layout"
	"github.com/abhisek/mathcoach/internal/ui/theme"
)

type tasksLoadedMsg struct {
	Tasks []*store.Task
	Err   error
}

type taskOpenedMsg struct {
	Task *store.Task
	Err  error
}

type deactivatedMsg struct {
	Title string
	Err   error
}

// DashboardScreen lists the student's tasks.
type DashboardScreen struct {
	deps    *screens.Deps
	student store.Profile
	tasks   []*store.Task
	menu    components.Menu
	loaded  bool
	status  string
	errMsg  string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.Resumer = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard for p.
func New(deps *screens.Deps, p store.Profile) *DashboardScreen {
	return &DashboardScreen{deps: deps, student: p}
}

func (s *DashboardScreen) Init() tea.Cmd   { return s.load() }
func (s *DashboardScreen) Resume() tea.Cmd { return s.load() }

func (s *DashboardScreen) Title() string {
	return "My Tasks"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
	}
	if t := s.selectedTask(); t != nil && t.CreatorID == s.student.ID {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Remove"})
	}
	return append(hints,
		layout.KeyHint{Key: "Esc", Description: "Switch profile"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *DashboardScreen) load() tea.Cmd {
	deps, id := s.deps, s.student.ID
	return func() tea.Msg {
		ctx, cancel := deps.Context()
		defer cancel()
		list, err := deps.Tasks.StudentTasks(ctx, id)
		return tasksLoadedMsg{Tasks: list, Err: err}
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		selected := s.menu.Selected
		s.tasks = msg.Tasks
		s.menu = components.NewMenu(s.menuItems())
		if selected < len(s.menu.Items) {
			s.menu.Selected = selected
		}
		return s, nil

	case taskOpenedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, tasks.ErrNotFound) {
				s.status = "That task is no longer available."
				return s, s.load()
			}
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.status = ""
		next := attempt.New(s.deps, s.student, msg.Task)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }

	case deactivatedMsg:
		if msg.Err != nil {
			s.status = "Could not remove task: " + msg.Err.Error()
			return s, nil
		}
		s.status = fmt.Sprintf("Removed %q.", msg.Title)
		return s, s.load()

	case tea.KeyPressMsg:
		if !s.loaded {
			return s, nil
		}
		if msg.String() == "d" {
			return s, s.deactivateSelected()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DashboardScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(s.tasks)+2)
	for _, t := range s.tasks {
		detail := screens.TaskLine(t)
		if t.Unassigned() {
			detail += " · my own"
		}
		items = append(items, components.MenuItem{
			Label:  t.Title,
			Detail: detail,
			Action: func() tea.Cmd { return s.open(t.ID) },
		})
	}
	items = append(items,
		components.MenuItem{
			Label: "+ Create my own task",
			Action: func() tea.Cmd {
				next := taskform.New(s.deps, s.student, nil)
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			},
		},
		components.MenuItem{
			Label: "My report",
			Action: func() tea.Cmd {
				next := report.New(s.deps, s.student, "")
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			},
		},
	)
	return items
}

func (s *DashboardScreen) selectedTask() *store.Task {
	if s.menu.Selected >= 0 && s.menu.Selected < len(s.tasks) {
		return s.tasks[s.menu.Selected]
	}
	return nil
}

func (s *DashboardScreen) open(taskID string) tea.Cmd {
	deps, id := s.deps, s.student.ID
	return func() tea.Msg {
		ctx, cancel := deps.Context()
		defer cancel()
		t, err := deps.Tasks.OpenAttempt(ctx, id, taskID)
		return taskOpenedMsg{Task: t, Err: err}
	}
}

func (s *DashboardScreen) deactivateSelected() tea.Cmd {
	t := s.selectedTask()
	if t == nil || t.CreatorID != s.student.ID {
		return nil
	}
	deps, id := s.deps, s.student.ID
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
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("Hi %s!", s.student.Name)))
	b.WriteString("\n")
	sub := "Pick a task to practise."
	if len(s.tasks) == 0 {
		sub = "No tasks yet. Make your own below."
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
