package attempt

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	att "github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/router"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/store"
)

// fakeSubmitter grades against the task questions and records each call.
type fakeSubmitter struct {
	qs    problemgen.QuestionSet
	err   error
	calls []att.Submission
}

func (f *fakeSubmitter) SubmitAttempt(_ context.Context, sub att.Submission) (*att.Outcome, error) {
	f.calls = append(f.calls, sub)
	if f.err != nil {
		return nil, f.err
	}
	score := 0
	for _, q := range f.qs {
		if a := sub.Answers[q.ID]; a != nil && *a == q.Answer {
			score++
		}
	}
	return &att.Outcome{
		AttemptID: "attempt-1",
		Result:    grading.Result{Score: score, Total: len(f.qs), Tier: grading.TierPass},
		TimeTaken: sub.TimeTaken,
	}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *AttemptScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func testScreen(limit int) (*AttemptScreen, *fakeSubmitter) {
	task := &store.Task{
		ID:        "task-1",
		Title:     "Sevens",
		CreatorID: "coach-1",
		TimeLimit: limit,
		Questions: problemgen.QuestionSet{
			{ID: "q0", Operand1: 7, Operand2: 8, Answer: 56},
			{ID: "q1", Operand1: 6, Operand2: 7, Answer: 42},
			{ID: "q2", Operand1: 9, Operand2: 9, Answer: 81},
		},
		IsActive: true,
	}
	deps := &screens.Deps{Log: logger.Discard(), Grid: facts.Grid10}
	sub := &fakeSubmitter{qs: task.Questions}
	student := store.Profile{ID: "stu-1", Name: "Ella", Role: store.RoleStudent}
	return NewWithSubmitter(deps, student, task, sub), sub
}

// run executes cmd and feeds its message back into the screen.
func run(t *testing.T, s *AttemptScreen, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	_, next := s.Update(cmd())
	return next
}

func TestSelectModeStartsTimer(t *testing.T) {
	s, _ := testScreen(60)
	if s.InterceptsBack() {
		t.Error("mode selection should let Esc through")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("starting should schedule a tick")
	}
	if s.sess.State() != att.StateRunning {
		t.Fatalf("state = %v, want running", s.sess.State())
	}
	if s.sess.Mode() != att.ModeTrain {
		t.Errorf("mode = %v, want train", s.sess.Mode())
	}
	if !s.InterceptsBack() {
		t.Error("running attempt should intercept Esc")
	}
}

func TestTaskModeStartsWithoutChoice(t *testing.T) {
	s, _ := testScreen(60)
	s.task.Config.Mode = "test"
	s = NewWithSubmitter(s.deps, s.student, s.task, s.submitter)

	if cmd := s.Init(); cmd == nil {
		t.Fatal("fixed mode should start the timer on Init")
	}
	if s.sess.State() != att.StateRunning || s.sess.Mode() != att.ModeTest {
		t.Errorf("state %v mode %v, want running test", s.sess.State(), s.sess.Mode())
	}
}

func TestSelectTestMode(t *testing.T) {
	s, _ := testScreen(60)
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyEnter))
	if s.sess.Mode() != att.ModeTest {
		t.Errorf("mode = %v, want test", s.sess.Mode())
	}
}

func TestStaleTickDropped(t *testing.T) {
	s, _ := testScreen(60)
	s.Update(specialKey(tea.KeyEnter))
	gen := s.sess.Generation()

	s.Update(tickMsg{Generation: gen - 1})
	if s.sess.Elapsed() != 0 {
		t.Errorf("stale tick advanced the clock to %d", s.sess.Elapsed())
	}

	_, cmd := s.Update(tickMsg{Generation: gen})
	if s.sess.Elapsed() != 1 {
		t.Errorf("elapsed = %d, want 1", s.sess.Elapsed())
	}
	if cmd == nil {
		t.Error("live tick should schedule the next one")
	}
}

func TestDigitsAreBounded(t *testing.T) {
	s, _ := testScreen(60)
	s.Update(specialKey(tea.KeyEnter))

	typeText(s, "99")
	if got := s.sess.Answer("q0"); got != "9" {
		t.Errorf("answer = %q, want 9 (99 exceeds the grid)", got)
	}
	typeText(s, "x")
	if got := s.sess.Answer("q0"); got != "9" {
		t.Errorf("non-digit changed answer to %q", got)
	}
	s.Update(specialKey(tea.KeyBackspace))
	typeText(s, "56")
	if got := s.sess.Answer("q0"); got != "56" {
		t.Errorf("answer = %q, want 56", got)
	}
}

func TestEnterOnLastQuestionSubmits(t *testing.T) {
	s, sub := testScreen(60)
	s.Update(specialKey(tea.KeyEnter))

	typeText(s, "56")
	s.Update(specialKey(tea.KeyEnter))
	typeText(s, "40")
	s.Update(specialKey(tea.KeyEnter))
	typeText(s, "81")
	if s.sess.State() != att.StateRunning {
		t.Fatal("should still be running before the last enter")
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if s.sess.State() != att.StateSubmitting {
		t.Fatalf("state = %v, want submitting", s.sess.State())
	}
	run(t, s, cmd)

	if len(sub.calls) != 1 {
		t.Fatalf("submit calls = %d, want 1", len(sub.calls))
	}
	if sub.calls[0].TaskID != "task-1" || sub.calls[0].StudentID != "stu-1" {
		t.Errorf("submission = %+v", sub.calls[0])
	}
	if s.sess.State() != att.StateFinished {
		t.Fatalf("state = %v, want finished", s.sess.State())
	}
	if out := s.sess.Outcome(); out == nil || out.Score != 2 {
		t.Errorf("outcome = %+v, want score 2", out)
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "Score 2/3") {
		t.Errorf("results view missing score:\n%s", view)
	}
}

func TestNavigationKeysNeverSubmit(t *testing.T) {
	for _, code := range []rune{tea.KeyTab, tea.KeyDown, tea.KeyRight} {
		s, sub := testScreen(60)
		s.Update(specialKey(tea.KeyEnter))
		s.Update(specialKey(tea.KeyEnd))
		typeText(s, "8")

		_, cmd := s.Update(specialKey(code))
		if cmd != nil || s.sess.State() != att.StateRunning {
			t.Errorf("key %q: state = %v, want running", specialKey(code).String(), s.sess.State())
		}
		if s.sess.Focus() != 2 || s.sess.Answer("q2") != "8" {
			t.Errorf("key %q: focus %d answer %q", specialKey(code).String(), s.sess.Focus(), s.sess.Answer("q2"))
		}
		if len(sub.calls) != 0 {
			t.Errorf("key %q submitted the attempt", specialKey(code).String())
		}
	}

	s, _ := testScreen(60)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeyDown))
	if s.sess.Focus() != 2 {
		t.Errorf("focus = %d, want 2", s.sess.Focus())
	}
}

func TestSubmitFailureKeepsAnswers(t *testing.T) {
	s, sub := testScreen(60)
	sub.err = errors.New("database is locked")
	s.Update(specialKey(tea.KeyEnter))
	typeText(s, "56")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	next := run(t, s, cmd)

	if s.sess.State() != att.StateRunning {
		t.Fatalf("state = %v, want running", s.sess.State())
	}
	if got := s.sess.Answer("q0"); got != "56" {
		t.Errorf("answer lost after failure: %q", got)
	}
	if s.sess.LastError() == nil {
		t.Error("expected the failure to be kept for display")
	}
	if next == nil {
		t.Error("train timer should resume after a failed submit")
	}
	if !strings.Contains(s.View(100, 30), "Could not save") {
		t.Error("view should show the save failure")
	}

	sub.err = nil
	_, cmd = s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	run(t, s, cmd)
	if s.sess.State() != att.StateFinished {
		t.Errorf("state = %v, want finished after retry", s.sess.State())
	}
}

func TestTestModeAutoSubmitsAtLimit(t *testing.T) {
	s, sub := testScreen(2)
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyEnter))
	typeText(s, "56")

	s.Update(tickMsg{Generation: s.sess.Generation()})
	_, cmd := s.Update(tickMsg{Generation: s.sess.Generation()})
	if s.sess.State() != att.StateSubmitting {
		t.Fatalf("state = %v, want submitting at the limit", s.sess.State())
	}
	run(t, s, cmd)

	if len(sub.calls) != 1 || sub.calls[0].TimeTaken != 2 {
		t.Errorf("submissions = %+v, want one with time 2", sub.calls)
	}
	if sub.calls[0].Mode != att.ModeTest {
		t.Errorf("mode = %v, want test", sub.calls[0].Mode)
	}
}

func TestRetryReturnsToModeSelection(t *testing.T) {
	s, _ := testScreen(60)
	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	run(t, s, cmd)

	s.Update(keyPress('r'))
	if s.sess.State() != att.StateModeSelection {
		t.Fatalf("state = %v, want mode selection", s.sess.State())
	}
	if s.sess.Answer("q0") != "" {
		t.Error("retry should clear answers")
	}
}

func TestOnLeaveAbandons(t *testing.T) {
	s, _ := testScreen(60)
	s.Update(specialKey(tea.KeyEnter))
	gen := s.sess.Generation()

	s.OnLeave()
	if !s.sess.Abandoned() {
		t.Fatal("leaving should abandon the session")
	}
	if _, cmd := s.Update(tickMsg{Generation: gen}); cmd != nil {
		t.Error("no tick should be scheduled after leaving")
	}
}

func TestEscAsksBeforeLeaving(t *testing.T) {
	s, _ := testScreen(60)
	s.Update(specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("esc should ask for confirmation")
	}
	typeText(s, "5")
	if s.sess.Answer("q0") != "" {
		t.Error("typing during confirmation should not edit answers")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit || s.sess.State() != att.StateRunning {
		t.Fatal("n should resume the attempt")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("y should leave")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("y should pop the screen")
	}
}

func TestViewRendersEachState(t *testing.T) {
	for _, l := range []problemgen.Layout{problemgen.LayoutHorizontal, problemgen.LayoutVertical} {
		s, _ := testScreen(90)
		s.layout = l
		if v := s.View(80, 24); !strings.Contains(v, "Sevens") {
			t.Errorf("%s: mode view missing title", l)
		}
		s.Update(specialKey(tea.KeyEnter))
		if v := s.View(80, 24); !strings.Contains(v, "0/3 answered") {
			t.Errorf("%s: running view missing progress:\n%s", l, v)
		}
	}
}
