package tasks

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/store"
)

type fixture struct {
	svc    *Service
	st     *store.Store
	coach  store.Profile
	ella   store.Profile
	nathan store.Profile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := FromStore(st, nil)
	seeded, err := svc.Seed(context.Background())
	require.NoError(t, err)
	require.Len(t, seeded, 3)

	return &fixture{svc: svc, st: st, coach: seeded[0], ella: seeded[1], nathan: seeded[2]}
}

func questions() problemgen.QuestionSet {
	return problemgen.QuestionSet{
		{ID: "q0", Operand1: 3, Operand2: 4, Answer: 12},
		{ID: "q1", Operand1: 5, Operand2: 6, Answer: 30},
		{ID: "q2", Operand1: 7, Operand2: 8, Answer: 56},
		{ID: "q3", Operand1: 2, Operand2: 9, Answer: 18},
	}
}

func validInput(creator string, assignees ...string) CreateTaskInput {
	return CreateTaskInput{
		Title:      "  Times tables  ",
		CreatorID:  creator,
		Assignees:  assignees,
		TimeLimit:  120,
		Thresholds: grading.Thresholds{Pass: 2, Good: 3, Master: 4},
		Questions:  questions(),
		Config:     problemgen.TaskConfig{QuestionCount: 4},
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	f := newFixture(t)
	again, err := f.svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, f.coach.ID, again[0].ID)
	assert.Equal(t, f.ella.ID, again[1].ID)
	assert.Equal(t, f.nathan.ID, again[2].ID)

	all, err := f.svc.Profiles(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, store.RoleCoach, all[0].Role)
	assert.Equal(t, f.coach.ID, f.ella.CoachID)
}

func TestCreateTask_OnePerAssignee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTask(ctx, validInput(f.coach.ID, f.ella.ID, f.nathan.ID, f.ella.ID))
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.NotEqual(t, created[0].ID, created[1].ID)
	for _, task := range created {
		assert.Equal(t, "Times tables", task.Title)
		assert.Equal(t, f.coach.ID, task.CreatorID)
		assert.Equal(t, questions(), task.Questions)
		assert.Equal(t, problemgen.LayoutVertical, task.Config.Layout)
		assert.True(t, task.IsActive)
	}
	assert.ElementsMatch(t, []string{f.ella.ID, f.nathan.ID},
		[]string{created[0].AssignedToID, created[1].AssignedToID})
}

func TestCreateTask_SelfOwned(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.CreateTask(context.Background(), validInput(f.ella.ID))
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.True(t, created[0].Unassigned())
	assert.Equal(t, f.ella.ID, created[0].CreatorID)
}

func TestCreateTask_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*CreateTaskInput)
		field  string
	}{
		{"blank title", func(in *CreateTaskInput) { in.Title = "   " }, "title"},
		{"no questions", func(in *CreateTaskInput) { in.Questions = nil }, "questions"},
		{"zero time limit", func(in *CreateTaskInput) { in.TimeLimit = 0 }, "timeLimit"},
		{"thresholds out of order", func(in *CreateTaskInput) {
			in.Thresholds = grading.Thresholds{Pass: 3, Good: 2, Master: 4}
		}, "thresholds"},
		{"master above total", func(in *CreateTaskInput) {
			in.Thresholds = grading.Thresholds{Pass: 1, Good: 2, Master: 5}
		}, "thresholds"},
		{"wrong answer", func(in *CreateTaskInput) { in.Questions[0].Answer = 13 }, "questions"},
		{"fact outside selection", func(in *CreateTaskInput) {
			in.Config.SelectedFacts = []facts.Fact{{A: 3, B: 4}}
		}, "questions"},
		{"bad layout", func(in *CreateTaskInput) { in.Config.Layout = "diagonal" }, "layout"},
		{"bad mode", func(in *CreateTaskInput) { in.Config.Mode = "exam" }, "mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(f.coach.ID, f.ella.ID)
			tt.mutate(&in)
			_, err := f.svc.CreateTask(context.Background(), in)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	list, err := f.svc.StudentTasks(context.Background(), f.ella.ID)
	require.NoError(t, err)
	assert.Empty(t, list, "failed creations must not persist anything")
}

func TestAttemptConfig_TaskMode(t *testing.T) {
	f := newFixture(t)

	in := validInput(f.ella.ID)
	created, err := f.svc.CreateTask(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, attempt.ModeUnselected, AttemptConfig(created[0], f.ella.ID).FixedMode)

	in.Config.Mode = "test"
	created, err = f.svc.CreateTask(context.Background(), in)
	require.NoError(t, err)
	task, err := f.svc.OpenAttempt(context.Background(), f.ella.ID, created[0].ID)
	require.NoError(t, err)
	cfg := AttemptConfig(task, f.ella.ID)
	assert.Equal(t, attempt.ModeTest, cfg.FixedMode)
	assert.Len(t, cfg.Questions, 4)
}

func TestCreateTask_Authorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateTask(ctx, validInput(f.ella.ID, f.nathan.ID))
	var ae *AuthorizationError
	require.ErrorAs(t, err, &ae)

	_, err = f.svc.CreateTask(ctx, validInput("nobody"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.CreateTask(ctx, validInput(f.coach.ID, "ghost"))
	assert.ErrorIs(t, err, ErrNotFound)

	other, err := f.st.ProfileRepo().Create(ctx, store.NewProfile{Name: "Other", Role: store.RoleCoach})
	require.NoError(t, err)
	_, err = f.svc.CreateTask(ctx, validInput(other.ID, f.ella.ID))
	require.ErrorAs(t, err, &ae)
}

func TestOpenAttempt_AccessRule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assigned, err := f.svc.CreateTask(ctx, validInput(f.coach.ID, f.ella.ID))
	require.NoError(t, err)
	own, err := f.svc.CreateTask(ctx, validInput(f.nathan.ID))
	require.NoError(t, err)
	coachOwn, err := f.svc.CreateTask(ctx, validInput(f.coach.ID))
	require.NoError(t, err)

	got, err := f.svc.OpenAttempt(ctx, f.ella.ID, assigned[0].ID)
	require.NoError(t, err)
	assert.Equal(t, assigned[0].ID, got.ID)

	_, err = f.svc.OpenAttempt(ctx, f.nathan.ID, own[0].ID)
	assert.NoError(t, err)

	tests := []struct {
		name    string
		student string
		task    string
	}{
		{"other student's assignment", f.nathan.ID, assigned[0].ID},
		{"other student's own task", f.ella.ID, own[0].ID},
		{"coach is not a student", f.coach.ID, coachOwn[0].ID},
		{"unknown task", f.ella.ID, "missing"},
		{"unknown student", "missing", assigned[0].ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.OpenAttempt(ctx, tt.student, tt.task)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}

	require.NoError(t, f.svc.DeactivateTask(ctx, assigned[0].ID, f.coach.ID))
	_, err = f.svc.OpenAttempt(ctx, f.ella.ID, assigned[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitAttempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTask(ctx, validInput(f.coach.ID, f.ella.ID))
	require.NoError(t, err)
	task := created[0]

	started := time.Now().Add(-time.Minute)
	out, err := f.svc.SubmitAttempt(ctx, attempt.Submission{
		TaskID:    task.ID,
		StudentID: f.ella.ID,
		Mode:      attempt.ModeTest,
		StartedAt: started,
		TimeTaken: 55,
		Answers: grading.AnswerMap{
			"q0": grading.Int(12),
			"q1": grading.Int(31),
			"q2": grading.Int(56),
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AttemptID)
	assert.Equal(t, 2, out.Score)
	assert.Equal(t, 4, out.Total)
	assert.Equal(t, grading.TierPass, out.Tier)
	assert.Equal(t, 55, out.TimeTaken)
	require.Len(t, out.Breakdown, 4)
	assert.Nil(t, out.Breakdown[3].UserAnswer)
	assert.False(t, out.Breakdown[1].IsCorrect)

	history, err := f.st.AttemptRepo().ForStudent(ctx, f.ella.ID, task.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].Score)
	assert.Equal(t, "test", history[0].Mode)

	rows, err := f.st.AttemptRepo().Answers(ctx, out.AttemptID)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for i, r := range rows {
		assert.Equal(t, i, r.QuestionIndex)
		assert.Equal(t, out.Breakdown[i].IsCorrect, r.IsCorrect)
	}
}

func TestSubmitAttempt_RejectsStranger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTask(ctx, validInput(f.coach.ID, f.ella.ID))
	require.NoError(t, err)

	_, err = f.svc.SubmitAttempt(ctx, attempt.Submission{TaskID: created[0].ID, StudentID: f.nathan.ID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivateTask(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateTask(ctx, validInput(f.coach.ID, f.ella.ID))
	require.NoError(t, err)
	id := created[0].ID

	err = f.svc.DeactivateTask(ctx, id, f.ella.ID)
	var ae *AuthorizationError
	require.ErrorAs(t, err, &ae)

	assert.ErrorIs(t, f.svc.DeactivateTask(ctx, "missing", f.coach.ID), ErrNotFound)

	require.NoError(t, f.svc.DeactivateTask(ctx, id, f.coach.ID))

	active, err := f.svc.StudentTasks(ctx, f.ella.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	task, err := f.svc.FindTask(ctx, id)
	require.NoError(t, err)
	assert.False(t, task.IsActive)
}

func TestStudentTasksAndDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateTask(ctx, validInput(f.coach.ID, f.ella.ID, f.nathan.ID))
	require.NoError(t, err)
	_, err = f.svc.CreateTask(ctx, validInput(f.ella.ID))
	require.NoError(t, err)

	ella, err := f.svc.StudentTasks(ctx, f.ella.ID)
	require.NoError(t, err)
	assert.Len(t, ella, 2)

	dash, err := f.svc.CoachDashboard(ctx, f.coach.ID)
	require.NoError(t, err)
	require.Len(t, dash, 2)
	assert.Equal(t, "Ella", dash[0].Student.Name)
	assert.Len(t, dash[0].Tasks, 2)
	assert.Equal(t, "Nathan", dash[1].Student.Name)
	assert.Len(t, dash[1].Tasks, 1)

	_, err = f.svc.CoachDashboard(ctx, f.ella.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerate_WrapsValidation(t *testing.T) {
	_, err := Generate(problemgen.NewSeeded(1), GenerateInput{Count: 5})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "facts", ve.Field)
	assert.True(t, errors.As(err, new(*problemgen.ValidationError)))

	set, err := Generate(problemgen.NewSeeded(1), GenerateInput{Facts: []facts.Fact{{A: 2, B: 3}}, Count: 3})
	require.NoError(t, err)
	assert.Len(t, set, 3)
}
