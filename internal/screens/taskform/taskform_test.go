package taskform

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
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

type fixture struct {
	deps   *screens.Deps
	coach  store.Profile
	ella   store.Profile
	nathan store.Profile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := tasks.FromStore(st, nil)
	seeded, err := svc.Seed(context.Background())
	require.NoError(t, err)

	deps := &screens.Deps{Tasks: svc, Log: logger.Discard(), Grid: facts.Grid10}
	deps.SetGenerator(problemgen.NewSeeded(3))
	return &fixture{deps: deps, coach: seeded[0], ella: seeded[1], nathan: seeded[2]}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var ctrlS = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}

func focusField(t *testing.T, f *FormScreen, want field) {
	t.Helper()
	for range f.fields {
		if f.current() == want {
			return
		}
		f.Update(specialKey(tea.KeyTab))
	}
	t.Fatalf("field %v not in form", want)
}

// save presses Ctrl+S and delivers the create result.
func save(t *testing.T, f *FormScreen) tea.Cmd {
	t.Helper()
	_, cmd := f.Update(ctrlS)
	require.NotNil(t, cmd, "create should return a command: %s", f.errMsg)
	_, next := f.Update(cmd())
	return next
}

func TestCoachCreatesForAllStudents(t *testing.T) {
	fx := newFixture(t)
	f := New(fx.deps, fx.coach, []store.Profile{fx.ella, fx.nathan})
	f.title.SetValue("Sevens")

	focusField(t, f, fieldFacts)
	for range 7 {
		f.Update(specialKey(tea.KeyDown))
	}
	f.Update(keyPress('r'))
	assert.Equal(t, 10, f.facts.Len())
	assert.Contains(t, f.renderGrid(true), "10 of 100 facts selected")
	require.Len(t, f.preview, problemgen.DefaultCount)

	next := save(t, f)
	require.NotNil(t, next)
	_, ok := next().(router.PopScreenMsg)
	assert.True(t, ok, "saving should close the form")

	created, err := fx.deps.Tasks.CreatedTasks(context.Background(), fx.coach.ID)
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, task := range created {
		assert.Equal(t, "Sevens", task.Title)
		assert.Len(t, task.Questions, 60)
		assert.Equal(t, grading.Thresholds{Pass: 45, Good: 54, Master: 60}, task.Thresholds)
		assert.Equal(t, 600, task.TimeLimit)
		assert.Len(t, task.Config.SelectedFacts, 10)
		for _, q := range task.Questions {
			assert.Equal(t, 7, q.Operand1)
		}
	}
	assert.ElementsMatch(t,
		[]string{fx.ella.ID, fx.nathan.ID},
		[]string{created[0].AssignedToID, created[1].AssignedToID})
}

func TestStudentCreatesOwnTask(t *testing.T) {
	fx := newFixture(t)
	f := New(fx.deps, fx.ella, nil)
	assert.NotContains(t, f.fields, fieldAssignees)

	f.title.SetValue("My eights")
	focusField(t, f, fieldFacts)
	f.Update(keyPress('a'))
	focusField(t, f, fieldLayout)
	f.Update(specialKey(tea.KeyRight))

	save(t, f)
	list, err := fx.deps.Tasks.StudentTasks(context.Background(), fx.ella.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Unassigned())
	assert.Equal(t, problemgen.LayoutHorizontal, list[0].Config.Layout)
}

func TestThresholdsFollowCount(t *testing.T) {
	fx := newFixture(t)
	f := New(fx.deps, fx.ella, nil)
	assert.Equal(t, [3]string{"45", "54", "60"}, f.thresholds)

	focusField(t, f, fieldCount)
	f.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 30, f.questionCount())
	assert.Equal(t, [3]string{"23", "27", "30"}, f.thresholds)

	focusField(t, f, fieldThresholds)
	f.Update(specialKey(tea.KeyBackspace))
	f.Update(specialKey(tea.KeyBackspace))
	f.Update(keyPress('2'))
	f.Update(keyPress('0'))
	assert.Equal(t, "20", f.thresholds[0])

	focusField(t, f, fieldCount)
	f.Update(specialKey(tea.KeyRight))
	assert.Equal(t, "20", f.thresholds[0], "hand-edited thresholds stay put")

	focusField(t, f, fieldThresholds)
	f.Update(keyPress('d'))
	assert.Equal(t, [3]string{"45", "54", "60"}, f.thresholds)
}

func TestCustomCount(t *testing.T) {
	fx := newFixture(t)
	f := New(fx.deps, fx.ella, nil)
	focusField(t, f, fieldFacts)
	f.Update(keyPress(' '))

	focusField(t, f, fieldCount)
	f.Update(specialKey(tea.KeyRight))
	f.Update(specialKey(tea.KeyRight))
	require.Equal(t, customOption, f.count.Value())
	f.Update(keyPress('1'))
	f.Update(keyPress('2'))

	assert.Equal(t, 12, f.questionCount())
	assert.Len(t, f.preview, 12)
	assert.Equal(t, "9", f.thresholds[0])
}

func TestCreateNeedsFacts(t *testing.T) {
	fx := newFixture(t)
	f := New(fx.deps, fx.coach, []store.Profile{fx.ella})
	f.title.SetValue("Empty")

	_, cmd := f.Update(ctrlS)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, f.errMsg)
}

func TestCreateNeedsAStudent(t *testing.T) {
	fx := newFixture(t)
	f := New(fx.deps, fx.coach, []store.Profile{fx.ella})
	f.title.SetValue("Nobody")
	focusField(t, f, fieldFacts)
	f.Update(keyPress('a'))
	focusField(t, f, fieldAssignees)
	f.Update(keyPress(' '))

	_, cmd := f.Update(ctrlS)
	assert.Nil(t, cmd)
	assert.Contains(t, f.errMsg, "student")
}

func TestValidationErrorShownOnForm(t *testing.T) {
	fx := newFixture(t)
	f := New(fx.deps, fx.ella, nil)
	focusField(t, f, fieldFacts)
	f.Update(keyPress('a'))

	next := save(t, f)
	assert.Nil(t, next)
	assert.Contains(t, f.errMsg, "Title")
	assert.False(t, f.saving)
}

func TestPreviewReshuffleKeepsQuestions(t *testing.T) {
	fx := newFixture(t)
	f := New(fx.deps, fx.ella, nil)
	focusField(t, f, fieldFacts)
	f.Update(keyPress('a'))
	before := f.preview.Clone()

	focusField(t, f, fieldPreview)
	f.Update(keyPress('s'))

	require.Len(t, f.preview, len(before))
	assert.ElementsMatch(t, before, f.preview)

	f.Update(keyPress('g'))
	assert.Len(t, f.preview, len(before))
	assert.Contains(t, f.View(100, 40), "60 questions")
}
