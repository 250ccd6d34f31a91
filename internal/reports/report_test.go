package reports

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/store"
)

type fixture struct {
	st      *store.Store
	builder *Builder
	coach   *store.Profile
	student *store.Profile
	tasks   []*store.Task
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	coach, err := st.ProfileRepo().Create(ctx, store.NewProfile{Name: "Coach", Role: store.RoleCoach})
	require.NoError(t, err)
	student, err := st.ProfileRepo().Create(ctx, store.NewProfile{Name: "Ella", Role: store.RoleStudent, CoachID: coach.ID})
	require.NoError(t, err)

	qs := problemgen.QuestionSet{
		{ID: "q0", Operand1: 2, Operand2: 2, Answer: 4},
		{ID: "q1", Operand1: 2, Operand2: 3, Answer: 6},
		{ID: "q2", Operand1: 2, Operand2: 4, Answer: 8},
		{ID: "q3", Operand1: 2, Operand2: 5, Answer: 10},
	}
	tasks, err := st.TaskRepo().CreateMany(ctx, []store.NewTask{
		{
			Title: "Twos: [drill]", CreatorID: coach.ID, AssignedToID: student.ID,
			TimeLimit: 60, Thresholds: grading.Thresholds{Pass: 2, Good: 3, Master: 4}, Questions: qs,
		},
		{
			Title: "Practice", CreatorID: student.ID,
			TimeLimit: 60, Thresholds: grading.Thresholds{Pass: 1, Good: 2, Master: 4}, Questions: qs,
		},
	})
	require.NoError(t, err)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, score := range []int{1, 3, 4} {
		_, err := st.AttemptRepo().Save(ctx, store.Attempt{
			TaskID:      tasks[0].ID,
			StudentID:   student.ID,
			Mode:        "test",
			StartedAt:   start.Add(time.Duration(i) * 24 * time.Hour),
			CompletedAt: start.Add(time.Duration(i)*24*time.Hour + time.Minute),
			TimeTaken:   60,
			Score:       score,
			Grade:       grading.TierFor(score, tasks[0].Thresholds),
		}, nil)
		require.NoError(t, err)
	}

	return &fixture{
		st:      st,
		builder: FromStore(st, nil),
		coach:   coach,
		student: student,
		tasks:   tasks,
	}
}

func (f *fixture) taskReport(t *testing.T, r *Report, id string) TaskReport {
	t.Helper()
	for _, tr := range r.Tasks {
		if tr.TaskID == id {
			return tr
		}
	}
	t.Fatalf("task %s not in report", id)
	return TaskReport{}
}

func TestBuild(t *testing.T) {
	f := newFixture(t)
	r, err := f.builder.Build(context.Background(), f.student.ID, "")
	require.NoError(t, err)

	assert.Equal(t, "Ella", r.StudentName)
	require.Len(t, r.Tasks, 2)
	assert.Equal(t, 3, r.AttemptCount())

	drill := f.taskReport(t, r, f.tasks[0].ID)
	assert.Equal(t, 4, drill.Total)
	assert.Equal(t, 50, drill.PassPct)
	assert.Equal(t, 75, drill.GoodPct)
	assert.Equal(t, 100, drill.MasterPct)
	require.Len(t, drill.Trend, 3)
	assert.Equal(t, []int{25, 75, 100}, []int{drill.Trend[0].ScorePct, drill.Trend[1].ScorePct, drill.Trend[2].ScorePct})
	assert.Equal(t, 1, drill.Trend[0].Attempt)
	assert.Equal(t, 100, drill.Best())
	assert.Equal(t, grading.TierMaster, drill.Latest().Grade)

	practice := f.taskReport(t, r, f.tasks[1].ID)
	assert.Empty(t, practice.Trend)
	assert.Equal(t, -1, practice.Best())
	assert.Nil(t, practice.Latest())
}

func TestBuild_SingleTaskAndErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.builder.Build(ctx, f.student.ID, f.tasks[1].ID)
	require.NoError(t, err)
	require.Len(t, r.Tasks, 1)
	assert.Equal(t, "Practice", r.Tasks[0].Title)

	_, err = f.builder.Build(ctx, f.student.ID, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = f.builder.Build(ctx, f.coach.ID, "")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = f.builder.BuildForCoach(ctx, f.coach.ID, f.student.ID, "")
	assert.NoError(t, err)
	_, err = f.builder.BuildForCoach(ctx, "someone-else", f.student.ID, "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWriteXLSX(t *testing.T) {
	f := newFixture(t)
	r, err := f.builder.Build(context.Background(), f.student.ID, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, r))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	sheets := wb.GetSheetList()
	require.Len(t, sheets, 3)
	assert.Equal(t, "Summary", sheets[0])

	summary, err := wb.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Student", "Ella"}, summary[0])
	assert.Equal(t, "Task", summary[2][0])
	require.Len(t, summary, 5)

	var drillSheet string
	for _, s := range sheets[1:] {
		if s != "Summary" && s[:4] == "Twos" {
			drillSheet = s
		}
	}
	require.NotEmpty(t, drillSheet, "expected a sheet for the drill task, got %v", sheets)
	assert.NotContains(t, drillSheet, "[")
	assert.NotContains(t, drillSheet, ":")

	rows, err := wb.GetRows(drillSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "#", rows[0][0])
	assert.Equal(t, "1m 00s", rows[1][3])
	assert.Equal(t, "1 / 4", rows[1][4])
	assert.Equal(t, "Master", rows[3][6])
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{"summary": true}
	long := "A very long task title that will not fit"
	name := sheetName(long, 1, used)
	assert.LessOrEqual(t, len([]rune(name)), maxSheetName)
	assert.Contains(t, name, "(1)")

	assert.Equal(t, "Task (2)", sheetName("  ", 2, used))
	assert.Equal(t, "Task (3)", sheetName("Task", 2, used))
}

func TestSparkline(t *testing.T) {
	pts := []Point{{ScorePct: 0}, {ScorePct: 50}, {ScorePct: 100}}
	assert.Equal(t, "▁▄█", Sparkline(pts, 0))
	assert.Equal(t, "▄█", Sparkline(pts, 2))
	assert.Equal(t, "", Sparkline(nil, 5))
}
