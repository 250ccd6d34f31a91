// Package attempt is the quiz screen. It drives an attempt.Session from the
// Bubble Tea loop: key presses and one-second ticks become session events,
// and the returned effects become commands.
package attempt

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	att "github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/coachnote"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/router"
	"github.com/abhisek/mathcoach/internal/screen"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
	"github.com/abhisek/mathcoach/internal/ui/components"
	"github.com/abhisek/mathcoach/internal/ui/layout"
)

var modeOptions = []string{"Train", "Test"}

// AttemptScreen implements screen.Screen for one task attempt.
type AttemptScreen struct {
	deps      *screens.Deps
	student   store.Profile
	task      *store.Task
	sess      *att.Session
	submitter att.Submitter
	layout    problemgen.Layout
	bound     int
	now       func() time.Time

	modeChoice  components.Choice
	confirmQuit bool

	note        *coachnote.Note
	noteErr     string
	noteLoading bool
}

var _ screen.Screen = (*AttemptScreen)(nil)
var _ screen.KeyHintProvider = (*AttemptScreen)(nil)
var _ screen.Leaver = (*AttemptScreen)(nil)
var _ screen.BackInterceptor = (*AttemptScreen)(nil)

// New creates the screen for student's attempt at t, submitting through the
// task service.
func New(deps *screens.Deps, student store.Profile, t *store.Task) *AttemptScreen {
	var sub att.Submitter
	if deps.Tasks != nil {
		sub = deps.Tasks
	}
	return NewWithSubmitter(deps, student, t, sub)
}

// NewWithSubmitter is New with an explicit submission collaborator.
func NewWithSubmitter(deps *screens.Deps, student store.Profile, t *store.Task, sub att.Submitter) *AttemptScreen {
	return &AttemptScreen{
		deps:       deps,
		student:    student,
		task:       t,
		sess:       att.New(tasks.AttemptConfig(t, student.ID)),
		submitter:  sub,
		layout:     t.Config.LayoutOrDefault(),
		bound:      deps.AnswerBound(),
		now:        time.Now,
		modeChoice: components.NewChoice("", modeOptions, 0),
	}
}

func (s *AttemptScreen) Init() tea.Cmd {
	return s.autoStart()
}

// autoStart begins immediately when the attempt has a fixed mode.
func (s *AttemptScreen) autoStart() tea.Cmd {
	m := s.sess.FixedMode()
	if m == att.ModeUnselected {
		return nil
	}
	return s.apply(s.sess.SelectMode(m, s.now()))
}

func (s *AttemptScreen) Title() string {
	return s.task.Title
}

// OnLeave abandons the attempt so no tick outlives the screen.
func (s *AttemptScreen) OnLeave() {
	s.sess.Abandon()
}

// InterceptsBack keeps Esc from leaving a running attempt without
// confirmation.
func (s *AttemptScreen) InterceptsBack() bool {
	st := s.sess.State()
	return st == att.StateRunning || st == att.StateSubmitting || s.confirmQuit
}

func (s *AttemptScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.sess.State() {
	case att.StateModeSelection:
		return []layout.KeyHint{
			{Key: "←→", Description: "Mode"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case att.StateRunning:
		return []layout.KeyHint{
			{Key: "0-9", Description: "Answer"},
			{Key: "Enter", Description: "Next"},
			{Key: "↑↓", Description: "Move"},
			{Key: "Ctrl+S", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	case att.StateSubmitting:
		return []layout.KeyHint{{Key: "", Description: "Saving..."}}
	}
	hints := []layout.KeyHint{{Key: "R", Description: "Try again"}}
	if s.deps.Notes.Enabled() && s.note == nil && !s.noteLoading {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Coach note"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *AttemptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s, s.apply(s.sess.Tick(msg.Generation))

	case submittedMsg:
		return s.handleSubmitted(msg)

	case noteMsg:
		out := s.sess.Outcome()
		if out == nil || out.AttemptID != msg.AttemptID {
			return s, nil
		}
		s.noteLoading = false
		if msg.Err != nil {
			s.noteErr = "Coach note unavailable right now."
			s.deps.Log.Test("Coach note failed", "attempt", msg.AttemptID, "error", msg.Err)
			return s, nil
		}
		s.note = msg.Note
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// apply turns a session effect into a command.
func (s *AttemptScreen) apply(eff att.Effect) tea.Cmd {
	switch eff {
	case att.EffectScheduleTick:
		return tickCmd(s.sess.Generation())
	case att.EffectSubmit:
		return s.submitCmd(s.sess.Submission())
	}
	return nil
}

func (s *AttemptScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.deps.Log.Prd("Attempt submission failed",
			"task", s.task.ID,
			"student", s.student.ID,
			"error", msg.Err)
		return s, s.apply(s.sess.SubmitFailed(msg.Err))
	}
	s.sess.SubmitSucceeded(msg.Outcome)
	s.note, s.noteErr = nil, ""
	if s.deps.Notes.Enabled() {
		return s, s.noteCmd()
	}
	return s, nil
}

func (s *AttemptScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.sess.State() {
	case att.StateModeSelection:
		switch key {
		case "enter":
			mode := att.ModeTrain
			if s.modeChoice.Value() == "Test" {
				mode = att.ModeTest
			}
			return s, s.apply(s.sess.SelectMode(mode, s.now()))
		case "tab":
			s.modeChoice.Selected = (s.modeChoice.Selected + 1) % len(modeOptions)
			return s, nil
		}
		s.modeChoice, _ = s.modeChoice.Update(msg)
		return s, nil

	case att.StateRunning:
		return s.handleRunningKey(msg)

	case att.StateSubmitting:
		if key == "esc" {
			s.confirmQuit = true
		}
		return s, nil

	case att.StateFinished:
		switch key {
		case "r", "R":
			s.note, s.noteErr, s.noteLoading = nil, "", false
			s.modeChoice = components.NewChoice("", modeOptions, s.modeChoice.Selected)
			return s, tea.Batch(s.apply(s.sess.Retry()), s.autoStart())
		case "n", "N":
			if s.deps.Notes.Enabled() && s.note == nil && !s.noteLoading {
				return s, s.noteCmd()
			}
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *AttemptScreen) handleRunningKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s, s.apply(s.sess.FocusNext())
	case "tab", "down", "right":
		s.sess.FocusForward()
		return s, nil
	case "shift+tab", "up", "left":
		s.sess.FocusPrev()
		return s, nil
	case "home":
		s.sess.SetFocus(0)
		return s, nil
	case "end":
		s.sess.SetFocus(len(s.sess.Questions()) - 1)
		return s, nil
	case "ctrl+s":
		return s, s.apply(s.sess.Submit())
	}

	q := s.sess.Questions()[s.sess.Focus()]
	if text, ok := components.EditNumber(s.sess.Answer(q.ID), msg, s.bound); ok {
		s.sess.SetAnswer(q.ID, text)
	}
	return s, nil
}

func (s *AttemptScreen) submitCmd(sub att.Submission) tea.Cmd {
	submitter, deps := s.submitter, s.deps
	return func() tea.Msg {
		ctx, cancel := deps.Context()
		defer cancel()
		out, err := submitter.SubmitAttempt(ctx, sub)
		return submittedMsg{Outcome: out, Err: err}
	}
}

func (s *AttemptScreen) noteCmd() tea.Cmd {
	out := s.sess.Outcome()
	if out == nil {
		return nil
	}
	s.noteLoading = true
	in := coachnote.Input{
		StudentName: s.student.Name,
		TaskTitle:   s.task.Title,
		Mode:        s.sess.Mode(),
		TimeLimit:   s.task.TimeLimit,
		Outcome:     *out,
	}
	writer := s.deps.Notes
	return func() tea.Msg {
		// The LLM provider carries its own timeout.
		n, err := writer.Write(context.Background(), in)
		return noteMsg{AttemptID: in.Outcome.AttemptID, Note: n, Err: err}
	}
}

// tickCmd schedules the next second for generation gen.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{Generation: gen}
	})
}
