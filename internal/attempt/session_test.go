package attempt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
)

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func threeQuestions() problemgen.QuestionSet {
	return problemgen.QuestionSet{
		{ID: "q2", Operand1: 3, Operand2: 4, Answer: 12},
		{ID: "q0", Operand1: 6, Operand2: 7, Answer: 42},
		{ID: "q1", Operand1: 9, Operand2: 9, Answer: 81},
	}
}

func newSession(limit int) *Session {
	return New(Config{TaskID: "task-1", StudentID: "stu-1", Questions: threeQuestions(), TimeLimit: limit})
}

// tickN delivers n ticks of the live generation and returns the last effect.
func tickN(s *Session, n int) Effect {
	var eff Effect
	for range n {
		eff = s.Tick(s.Generation())
	}
	return eff
}

func TestInitialState(t *testing.T) {
	s := newSession(10)
	assert.Equal(t, StateModeSelection, s.State())
	assert.Equal(t, ModeUnselected, s.Mode())
	assert.False(t, s.SetAnswer("q0", "42"), "answers are rejected before a mode is chosen")
	assert.Equal(t, EffectNone, s.Submit())
	assert.Equal(t, EffectNone, s.Tick(s.Generation()))
}

func TestSelectModeStartsRunning(t *testing.T) {
	s := newSession(10)
	assert.Equal(t, EffectNone, s.SelectMode(ModeUnselected, t0))

	gen := s.Generation()
	assert.Equal(t, EffectScheduleTick, s.SelectMode(ModeTest, t0))
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, ModeTest, s.Mode())
	assert.Equal(t, t0, s.StartedAt())
	assert.NotEqual(t, gen, s.Generation())

	assert.Equal(t, EffectNone, s.SelectMode(ModeTrain, t0), "mode cannot change once running")
}

func TestFixedMode(t *testing.T) {
	s := New(Config{Questions: threeQuestions(), TimeLimit: 5, FixedMode: ModeTrain})
	assert.Equal(t, EffectNone, s.SelectMode(ModeTest, t0))
	assert.Equal(t, EffectScheduleTick, s.SelectMode(ModeTrain, t0))
}

func TestSetAnswer(t *testing.T) {
	s := newSession(10)
	s.SelectMode(ModeTrain, t0)

	assert.True(t, s.SetAnswer("q0", "42"))
	assert.True(t, s.SetAnswer("q1", "80"))
	assert.False(t, s.SetAnswer("nope", "1"))
	assert.Equal(t, "42", s.Answer("q0"))
	assert.Equal(t, 2, s.AnsweredCount())

	assert.True(t, s.SetAnswer("q1", " "))
	assert.Equal(t, 1, s.AnsweredCount())
}

func TestTestModeAutoSubmitsAtLimit(t *testing.T) {
	s := newSession(5)
	s.SelectMode(ModeTest, t0)
	s.SetAnswer("q0", "42")

	assert.Equal(t, EffectScheduleTick, tickN(s, 4))
	assert.Equal(t, 1, s.Remaining())
	assert.Equal(t, StateRunning, s.State())

	assert.Equal(t, EffectSubmit, s.Tick(s.Generation()))
	assert.Equal(t, StateSubmitting, s.State())

	sub := s.Submission()
	assert.Equal(t, 5, sub.TimeTaken, "auto-submit records the full limit")
	assert.Equal(t, ModeTest, sub.Mode)
	assert.Equal(t, 42, *sub.Answers["q0"])
	assert.Nil(t, sub.Answers["q1"], "unanswered questions are skipped")
	assert.Contains(t, sub.Answers, "q2")
}

func TestTrainModeOvertime(t *testing.T) {
	s := newSession(3)
	s.SelectMode(ModeTrain, t0)

	tickN(s, 2)
	assert.False(t, s.Overtime())

	assert.Equal(t, EffectScheduleTick, s.Tick(s.Generation()))
	assert.True(t, s.Overtime())
	assert.Equal(t, StateRunning, s.State())

	assert.Equal(t, EffectScheduleTick, tickN(s, 7))
	assert.Equal(t, 10, s.Elapsed())
	assert.Equal(t, StateRunning, s.State())
	assert.True(t, s.SetAnswer("q2", "12"), "still answerable in overtime")

	assert.Equal(t, EffectSubmit, s.Submit())
	assert.Equal(t, 10, s.Submission().TimeTaken)
}

func TestDoubleSubmitIsIgnored(t *testing.T) {
	s := newSession(60)
	s.SelectMode(ModeTest, t0)
	tickN(s, 12)

	assert.Equal(t, EffectSubmit, s.Submit())
	assert.Equal(t, EffectNone, s.Submit())
	assert.Equal(t, EffectNone, s.FocusNext())
	assert.Equal(t, 12, s.Submission().TimeTaken)
}

func TestTickAfterSubmitIsStale(t *testing.T) {
	s := newSession(3)
	s.SelectMode(ModeTest, t0)
	gen := s.Generation()
	tickN(s, 2)

	// Manual submit lands first; the tick scheduled before it must not
	// trigger a second submission.
	assert.Equal(t, EffectSubmit, s.Submit())
	assert.Equal(t, EffectNone, s.Tick(gen))
	assert.Equal(t, EffectNone, s.Tick(s.Generation()))
	assert.Equal(t, StateSubmitting, s.State())
	assert.Equal(t, 2, s.Elapsed())
}

func TestSubmitFailedKeepsAnswers(t *testing.T) {
	s := newSession(30)
	s.SelectMode(ModeTest, t0)
	s.SetAnswer("q0", "42")
	tickN(s, 3)
	s.Submit()

	boom := errors.New("db down")
	assert.Equal(t, EffectScheduleTick, s.SubmitFailed(boom))
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, boom, s.LastError())
	assert.Equal(t, "42", s.Answer("q0"))

	assert.Equal(t, EffectSubmit, s.Submit(), "user can retry manually")
	assert.Nil(t, s.LastError())
}

func TestSubmitFailedAfterTimeoutWaitsForManualRetry(t *testing.T) {
	s := newSession(2)
	s.SelectMode(ModeTest, t0)
	assert.Equal(t, EffectSubmit, tickN(s, 2))

	assert.Equal(t, EffectNone, s.SubmitFailed(errors.New("timeout")))
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, EffectNone, s.Tick(s.Generation()-1))

	assert.Equal(t, EffectSubmit, s.Submit())
	assert.Equal(t, 2, s.Submission().TimeTaken)
}

func TestFinishAndRetry(t *testing.T) {
	s := newSession(10)
	s.SelectMode(ModeTrain, t0)
	s.SetAnswer("q0", "42")
	s.Submit()

	out := &Outcome{AttemptID: "a1", Result: grading.Result{Score: 1, Total: 3, Tier: grading.TierFail}}
	s.SubmitSucceeded(out)
	assert.Equal(t, StateFinished, s.State())
	assert.Same(t, out, s.Outcome())

	s.SubmitSucceeded(&Outcome{AttemptID: "a2"})
	assert.Equal(t, "a1", s.Outcome().AttemptID, "late results are ignored")

	assert.Equal(t, EffectNone, s.Retry())
	assert.Equal(t, StateModeSelection, s.State())
	assert.Nil(t, s.Outcome())
	assert.Empty(t, s.Answer("q0"))
	assert.Equal(t, threeQuestions(), s.Questions(), "retry reuses the frozen set")
}

func TestFocusNextSubmitsOnLastQuestion(t *testing.T) {
	s := newSession(10)
	s.SelectMode(ModeTrain, t0)

	assert.Equal(t, EffectNone, s.FocusNext())
	assert.Equal(t, 1, s.Focus())
	assert.Equal(t, EffectNone, s.FocusNext())
	assert.Equal(t, 2, s.Focus())
	assert.Equal(t, EffectSubmit, s.FocusNext())
	assert.Equal(t, StateSubmitting, s.State())
}

func TestFocusForwardStopsAtLastQuestion(t *testing.T) {
	s := newSession(10)
	s.SelectMode(ModeTrain, t0)
	for range 5 {
		s.FocusForward()
	}
	assert.Equal(t, 2, s.Focus())
	assert.Equal(t, StateRunning, s.State())
}

func TestFocusBounds(t *testing.T) {
	s := newSession(10)
	s.SelectMode(ModeTrain, t0)
	s.FocusPrev()
	assert.Equal(t, 0, s.Focus())
	s.SetFocus(2)
	assert.Equal(t, 2, s.Focus())
	s.SetFocus(3)
	assert.Equal(t, 2, s.Focus())
}

func TestAbandonStopsEverything(t *testing.T) {
	s := newSession(10)
	s.SelectMode(ModeTest, t0)
	gen := s.Generation()

	s.Abandon()
	assert.True(t, s.Abandoned())
	assert.Equal(t, EffectNone, s.Tick(gen))
	assert.Equal(t, EffectNone, s.Tick(s.Generation()))
	assert.Equal(t, EffectNone, s.Submit())
}

func TestSubmissionParsesAnswers(t *testing.T) {
	s := newSession(10)
	s.SelectMode(ModeTrain, t0)
	s.SetAnswer("q0", " 42 ")
	s.SetAnswer("q1", "8l")
	s.SetAnswer("q2", "")

	sub := s.Submission()
	require.NotNil(t, sub.Answers["q0"])
	assert.Equal(t, 42, *sub.Answers["q0"])
	assert.Nil(t, sub.Answers["q1"])
	assert.Nil(t, sub.Answers["q2"])
	assert.Equal(t, "task-1", sub.TaskID)
	assert.Equal(t, "stu-1", sub.StudentID)
}

func TestWarningZone(t *testing.T) {
	s := newSession(65)
	s.SelectMode(ModeTest, t0)
	tickN(s, 4)
	assert.False(t, s.WarningZone())
	tickN(s, 1)
	assert.True(t, s.WarningZone())

	train := newSession(65)
	train.SelectMode(ModeTrain, t0)
	tickN(train, 10)
	assert.False(t, train.WarningZone())
}

// fakeDriver mimics the event loop: effects are acted on synchronously and
// submissions are counted.
type fakeDriver struct {
	s         *Session
	persisted int
	submitter Submitter
}

func (d *fakeDriver) apply(eff Effect) {
	if eff != EffectSubmit {
		return
	}
	out, err := d.submitter.SubmitAttempt(context.Background(), d.s.Submission())
	if err != nil {
		d.s.SubmitFailed(err)
		return
	}
	d.persisted++
	d.s.SubmitSucceeded(out)
}

func TestDriverPersistsExactlyOnce(t *testing.T) {
	s := newSession(2)
	d := &fakeDriver{s: s, submitter: SubmitterFunc(func(_ context.Context, sub Submission) (*Outcome, error) {
		return &Outcome{AttemptID: "a", TimeTaken: sub.TimeTaken}, nil
	})}

	d.apply(s.SelectMode(ModeTest, t0))
	gen := s.Generation()
	d.apply(s.Tick(gen))

	// Double click and the expiring tick arrive back to back.
	e1 := s.Submit()
	e2 := s.Submit()
	e3 := s.Tick(gen)
	d.apply(e1)
	d.apply(e2)
	d.apply(e3)

	assert.Equal(t, 1, d.persisted)
	assert.Equal(t, StateFinished, s.State())
	assert.Equal(t, 1, s.Outcome().TimeTaken)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("test")
	require.NoError(t, err)
	assert.Equal(t, ModeTest, m)
	_, err = ParseMode("exam")
	assert.Error(t, err)
	assert.Equal(t, "train", ModeTrain.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "0:00", FormatClock(0))
	assert.Equal(t, "1:05", FormatClock(65))
	assert.Equal(t, "10:00", FormatClock(600))
	assert.Equal(t, "0:00", FormatClock(-3))

	assert.Equal(t, "0m 07s", FormatDuration(7))
	assert.Equal(t, "2m 30s", FormatDuration(150))
}
