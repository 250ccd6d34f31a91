package student

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/router"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/screens/attempt"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
	"github.com/abhisek/mathcoach/internal/ui/layout"
)

type fixture struct {
	deps  *screens.Deps
	coach store.Profile
	ella  store.Profile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := tasks.FromStore(st, nil)
	seeded, err := svc.Seed(context.Background())
	require.NoError(t, err)
	return &fixture{
		deps:  &screens.Deps{Tasks: svc, Log: logger.Discard(), Grid: facts.Grid10},
		coach: seeded[0],
		ella:  seeded[1],
	}
}

func (fx *fixture) addTask(t *testing.T, title, creator string, assignees ...string) {
	t.Helper()
	qs, err := tasks.Generate(problemgen.NewSeeded(3), tasks.GenerateInput{
		Facts: []facts.Fact{{A: 7, B: 8}},
		Count: 3,
	})
	require.NoError(t, err)
	_, err = fx.deps.Tasks.CreateTask(context.Background(), tasks.CreateTaskInput{
		Title:      title,
		CreatorID:  creator,
		Assignees:  assignees,
		TimeLimit:  60,
		Thresholds: grading.DefaultThresholds(3),
		Questions:  qs,
	})
	require.NoError(t, err)
}

func (s *DashboardScreen) selectTitle(t *testing.T, title string) {
	t.Helper()
	for i, task := range s.tasks {
		if task.Title == title {
			s.menu.Selected = i
			return
		}
	}
	t.Fatalf("no task %q", title)
}

func TestDashboardListsTasks(t *testing.T) {
	fx := newFixture(t)
	s := New(fx.deps, fx.ella)
	s.Update(s.Init()())
	assert.Contains(t, s.View(100, 30), "No tasks yet")
	require.Len(t, s.menu.Items, 2)

	fx.addTask(t, "Sevens", fx.coach.ID, fx.ella.ID)
	s.Update(s.Resume()())
	require.Len(t, s.tasks, 1)
	view := s.View(100, 30)
	assert.Contains(t, view, "Hi Ella!")
	assert.Contains(t, view, "Sevens")
	assert.Contains(t, view, "3 questions")
}

func TestEnterStartsAttempt(t *testing.T) {
	fx := newFixture(t)
	fx.addTask(t, "Sevens", fx.coach.ID, fx.ella.ID)
	s := New(fx.deps, fx.ella)
	s.Update(s.Init()())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = s.Update(cmd())
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &attempt.AttemptScreen{}, push.Screen)
}

func TestRemoveOnlyOwnTasks(t *testing.T) {
	fx := newFixture(t)
	fx.addTask(t, "Sevens", fx.coach.ID, fx.ella.ID)
	fx.addTask(t, "Mine", fx.ella.ID)
	s := New(fx.deps, fx.ella)
	s.Update(s.Init()())
	require.Len(t, s.tasks, 2)

	s.selectTitle(t, "Sevens")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	assert.Nil(t, cmd, "coach task must not be removable")

	s.selectTitle(t, "Mine")
	assert.Contains(t, s.KeyHints(), layout.KeyHint{Key: "D", Description: "Remove"})
	_, cmd = s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	require.NotNil(t, cmd)
	_, cmd = s.Update(cmd())
	assert.Equal(t, `Removed "Mine".`, s.status)
	s.Update(cmd())
	require.Len(t, s.tasks, 1)
	assert.Equal(t, "Sevens", s.tasks[0].Title)
}
