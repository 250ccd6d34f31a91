// Package profiles is the start screen: pick who is using the app.
package profiles

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/router"
	"github.com/abhisek/mathcoach/internal/screen"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/screens/coach"
	"github.com/abhisek/mathcoach/internal/screens/student"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/ui/components"
	"github.com/abhisek/mathcoach/internal/ui/layout"
	"github.com/abhisek/mathcoach/internal/ui/theme"
)

type profilesLoadedMsg struct {
	Profiles []store.Profile
	Err      error
}

// PickerScreen lists profiles, coaches first.
type PickerScreen struct {
	deps     *screens.Deps
	profiles []store.Profile
	menu     components.Menu
	loaded   bool
	errMsg   string

	// autoSelect opens this profile once the list arrives.
	autoSelect string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.Resumer = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates the picker. A non-empty profileID skips straight to that
// profile's dashboard.
func New(deps *screens.Deps, profileID string) *PickerScreen {
	return &PickerScreen{deps: deps, autoSelect: profileID}
}

func (s *PickerScreen) Init() tea.Cmd {
	return s.load(false)
}

func (s *PickerScreen) Resume() tea.Cmd {
	return tea.Batch(
		s.load(false),
		func() tea.Msg { return screens.ProfileSelectedMsg{} },
	)
}

func (s *PickerScreen) Title() string {
	return "Who's practising?"
}

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *PickerScreen) load(seed bool) tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		ctx, cancel := deps.Context()
		defer cancel()
		if seed {
			if _, err := deps.Tasks.Seed(ctx); err != nil {
				return profilesLoadedMsg{Err: err}
			}
		}
		ps, err := deps.Tasks.Profiles(ctx)
		return profilesLoadedMsg{Profiles: ps, Err: err}
	}
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.deps.Log.Prd("Loading profiles failed", "error", msg.Err)
			return s, nil
		}
		s.errMsg = ""
		s.profiles = msg.Profiles
		s.menu = components.NewMenu(s.menuItems())

		if id := s.autoSelect; id != "" {
			s.autoSelect = ""
			for _, p := range s.profiles {
				if p.ID == id {
					return s, s.open(p)
				}
			}
			s.errMsg = fmt.Sprintf("No profile with id %s", id)
		}
		return s, nil

	case tea.KeyPressMsg:
		if !s.loaded {
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PickerScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(s.profiles)+1)
	for _, p := range s.profiles {
		items = append(items, components.MenuItem{
			Label:  p.Name,
			Detail: roleLabel(p.Role),
			Action: func() tea.Cmd { return s.open(p) },
		})
	}
	if len(s.profiles) == 0 {
		items = append(items, components.MenuItem{
			Label:  "Create demo profiles",
			Detail: "Coach, Ella and Nathan",
			Action: func() tea.Cmd { return s.load(true) },
		})
	}
	return items
}

func (s *PickerScreen) open(p store.Profile) tea.Cmd {
	var next screen.Screen
	if p.Role == store.RoleCoach {
		next = coach.New(s.deps, p)
	} else {
		next = student.New(s.deps, p)
	}
	s.deps.Log.Dev("Profile selected", "profile", p.ID, "role", string(p.Role))
	return tea.Batch(
		func() tea.Msg { return screens.ProfileSelectedMsg{Name: p.Name} },
		func() tea.Msg { return router.PushScreenMsg{Screen: next} },
	)
}

func roleLabel(r store.Role) string {
	if r == store.RoleCoach {
		return "coach"
	}
	return "student"
}

func (s *PickerScreen) View(width, height int) string {
	if !s.loaded {
		return screens.RenderLoading(width, height)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Math Coach"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Times tables, one timed task at a time"))
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().Width(40).Render(s.menu.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(screens.Centered(theme.ErrorText.Render(s.errMsg), width))
	}
	return b.String()
}
