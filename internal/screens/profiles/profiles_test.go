package profiles

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/router"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/screens/coach"
	"github.com/abhisek/mathcoach/internal/screens/student"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

func newDeps(t *testing.T) *screens.Deps {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return &screens.Deps{
		Tasks: tasks.FromStore(st, nil),
		Log:   logger.Discard(),
		Grid:  facts.Grid10,
	}
}

// run executes cmd and flattens batches into their messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func pushed(msgs []tea.Msg) any {
	for _, m := range msgs {
		if p, ok := m.(router.PushScreenMsg); ok {
			return p.Screen
		}
	}
	return nil
}

func TestEmptyStoreOffersDemoProfiles(t *testing.T) {
	s := New(newDeps(t), "")
	s.Update(s.Init()())
	require.True(t, s.loaded)
	require.Len(t, s.menu.Items, 1)
	assert.Contains(t, s.View(100, 30), "Create demo profiles")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	for _, m := range run(cmd) {
		s.Update(m)
	}
	require.Empty(t, s.errMsg)
	require.Len(t, s.profiles, 3)
	assert.Equal(t, store.RoleCoach, s.profiles[0].Role)
	assert.Contains(t, s.View(100, 30), "Ella")
}

func TestSelectOpensDashboardByRole(t *testing.T) {
	deps := newDeps(t)
	seeded, err := deps.Tasks.Seed(context.Background())
	require.NoError(t, err)

	s := New(deps, "")
	s.Update(s.Init()())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	msgs := run(cmd)
	assert.IsType(t, &coach.DashboardScreen{}, pushed(msgs))
	assert.Contains(t, msgs, screens.ProfileSelectedMsg{Name: seeded[0].Name})

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.IsType(t, &student.DashboardScreen{}, pushed(run(cmd)))
}

func TestAutoSelect(t *testing.T) {
	deps := newDeps(t)
	seeded, err := deps.Tasks.Seed(context.Background())
	require.NoError(t, err)

	s := New(deps, seeded[2].ID)
	_, cmd := s.Update(s.Init()())
	assert.IsType(t, &student.DashboardScreen{}, pushed(run(cmd)))

	missing := New(deps, "nobody")
	_, cmd = missing.Update(missing.Init()())
	assert.Nil(t, cmd)
	assert.Contains(t, missing.errMsg, "nobody")
}
