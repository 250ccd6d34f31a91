package coach

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
	"github.com/abhisek/mathcoach/internal/screens/report"
	"github.com/abhisek/mathcoach/internal/screens/taskform"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

// newDashboard seeds Coach, Ella and Nathan and gives Ella one task.
func newDashboard(t *testing.T) *DashboardScreen {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := tasks.FromStore(st, nil)
	seeded, err := svc.Seed(ctx)
	require.NoError(t, err)

	qs, err := tasks.Generate(problemgen.NewSeeded(9), tasks.GenerateInput{
		Facts: []facts.Fact{{A: 9, B: 9}},
		Count: 2,
	})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, tasks.CreateTaskInput{
		Title:      "Nines",
		CreatorID:  seeded[0].ID,
		Assignees:  []string{seeded[1].ID},
		TimeLimit:  30,
		Thresholds: grading.DefaultThresholds(2),
		Questions:  qs,
	})
	require.NoError(t, err)

	s := New(&screens.Deps{Tasks: svc, Log: logger.Discard(), Grid: facts.Grid10}, seeded[0])
	s.Update(s.Init()())
	require.Empty(t, s.errMsg)
	return s
}

func pushedScreen(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	return push.Screen
}

func TestDashboardRows(t *testing.T) {
	s := newDashboard(t)

	require.Len(t, s.rows, 3)
	assert.Equal(t, "Ella", s.rows[0].student.Name)
	assert.Equal(t, "Nines", s.rows[1].task.Title)
	assert.Nil(t, s.rows[2].task)

	view := s.View(100, 30)
	assert.Contains(t, view, "2 students")
	assert.Contains(t, view, "1 active")
	assert.Contains(t, view, "Nathan")
}

func TestStudentRowOpensReport(t *testing.T) {
	s := newDashboard(t)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.IsType(t, &report.ReportScreen{}, pushedScreen(t, cmd))

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	assert.IsType(t, &taskform.FormScreen{}, pushedScreen(t, cmd))
}

func TestDeactivateTaskRow(t *testing.T) {
	s := newDashboard(t)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	assert.Nil(t, cmd, "student row cannot be deactivated")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	require.NotNil(t, s.selected().task)
	_, cmd = s.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	require.NotNil(t, cmd)
	_, cmd = s.Update(cmd())
	assert.Equal(t, `Deactivated "Nines".`, s.status)

	s.Update(cmd())
	assert.Len(t, s.rows, 2)
	assert.Contains(t, s.View(100, 30), "0 active")
}
