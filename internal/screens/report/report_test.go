package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	att "github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/reports"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

type fixture struct {
	deps  *screens.Deps
	coach store.Profile
	ella  store.Profile
}

// newFixture seeds profiles and gives Ella one task with a single 3/4
// attempt.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := tasks.FromStore(st, nil)
	seeded, err := svc.Seed(ctx)
	require.NoError(t, err)
	coach, ella := seeded[0], seeded[1]

	qs, err := tasks.Generate(problemgen.NewSeeded(1), tasks.GenerateInput{
		Facts: []facts.Fact{{A: 6, B: 7}},
		Count: 4,
	})
	require.NoError(t, err)
	created, err := svc.CreateTask(ctx, tasks.CreateTaskInput{
		Title:      "Sixes",
		CreatorID:  coach.ID,
		Assignees:  []string{ella.ID},
		TimeLimit:  120,
		Thresholds: grading.DefaultThresholds(4),
		Questions:  qs,
	})
	require.NoError(t, err)

	answers := grading.AnswerMap{}
	for i, q := range qs {
		if i > 0 {
			answers[q.ID] = grading.Int(q.Answer)
		}
	}
	_, err = svc.SubmitAttempt(ctx, att.Submission{
		TaskID:    created[0].ID,
		StudentID: ella.ID,
		Mode:      att.ModeTest,
		StartedAt: time.Now().Add(-time.Minute),
		TimeTaken: 60,
		Answers:   answers,
	})
	require.NoError(t, err)

	deps := &screens.Deps{
		Tasks:     svc,
		Reports:   reports.FromStore(st, nil),
		Log:       logger.Discard(),
		Grid:      facts.Grid10,
		ExportDir: t.TempDir(),
	}
	return &fixture{deps: deps, coach: coach, ella: ella}
}

func load(t *testing.T, s *ReportScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
	require.Empty(t, s.errMsg)
}

func TestStudentReport(t *testing.T) {
	fx := newFixture(t)
	s := New(fx.deps, fx.ella, "")
	load(t, s)

	require.NotNil(t, s.report)
	require.Len(t, s.report.Tasks, 1)
	assert.Equal(t, 75, s.report.Tasks[0].Best())

	view := s.View(100, 40)
	assert.Contains(t, view, "Sixes")
	assert.Contains(t, view, "75%")
	assert.Contains(t, view, "Pass")
	assert.True(t, strings.Contains(view, "3/4"), view)
}

func TestCoachScopedReport(t *testing.T) {
	fx := newFixture(t)
	s := New(fx.deps, fx.ella, fx.coach.ID)
	load(t, s)
	assert.Len(t, s.report.Tasks, 1)

	other := New(fx.deps, fx.ella, "someone-else")
	other.Update(other.Init()())
	assert.NotEmpty(t, other.errMsg)
}

func TestExportWritesSpreadsheet(t *testing.T) {
	fx := newFixture(t)
	s := New(fx.deps, fx.ella, "")
	load(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	require.NotNil(t, cmd)
	s.Update(cmd())

	path := filepath.Join(fx.deps.ExportDir, "report_Ella.xlsx")
	assert.Equal(t, path, s.ExportPath())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, s.status, "Saved")
}
