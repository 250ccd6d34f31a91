package attempt

import (
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
)

// Session is the working state of one attempt. Not safe for concurrent use;
// the driver serializes ticks, edits and submission results.
type Session struct {
	cfg Config

	state     State
	mode      Mode
	startedAt time.Time
	elapsed   int
	overtime  bool

	// answers holds raw input text keyed by question id.
	answers map[string]string
	focus   int

	// generation invalidates outstanding ticks whenever it changes.
	generation int
	abandoned  bool

	outcome *Outcome
	lastErr error
}

// New creates a session in mode selection.
func New(cfg Config) *Session {
	return &Session{
		cfg:     cfg,
		state:   StateModeSelection,
		answers: make(map[string]string),
	}
}

// SelectMode starts the attempt in the given mode. No-op outside mode
// selection or for an unknown mode.
func (s *Session) SelectMode(m Mode, now time.Time) Effect {
	if s.abandoned || s.state != StateModeSelection {
		return EffectNone
	}
	if m != ModeTrain && m != ModeTest {
		return EffectNone
	}
	if s.cfg.FixedMode != ModeUnselected && m != s.cfg.FixedMode {
		return EffectNone
	}
	s.mode = m
	s.startedAt = now
	s.elapsed = 0
	s.overtime = false
	s.answers = make(map[string]string)
	s.focus = 0
	s.lastErr = nil
	s.state = StateRunning
	s.generation++
	return EffectScheduleTick
}

// SetAnswer records raw text for a question. Ignored unless running or when
// the id is unknown.
func (s *Session) SetAnswer(id, text string) bool {
	if s.state != StateRunning || s.cfg.Questions.Index(id) < 0 {
		return false
	}
	s.answers[id] = text
	return true
}

// Tick advances the timer by one second. Ticks from an older generation are
// dropped.
func (s *Session) Tick(generation int) Effect {
	if s.abandoned || s.state != StateRunning || generation != s.generation {
		return EffectNone
	}
	s.elapsed++

	if s.elapsed >= s.cfg.TimeLimit {
		switch s.mode {
		case ModeTest:
			s.elapsed = s.cfg.TimeLimit
			return s.beginSubmit()
		case ModeTrain:
			s.overtime = true
		}
	}
	return EffectScheduleTick
}

// Submit is the manual submit action. Only the first call while running
// takes effect.
func (s *Session) Submit() Effect {
	if s.abandoned || s.state != StateRunning {
		return EffectNone
	}
	return s.beginSubmit()
}

func (s *Session) beginSubmit() Effect {
	s.state = StateSubmitting
	s.generation++
	s.lastErr = nil
	return EffectSubmit
}

// SubmitSucceeded records the outcome and finishes the attempt.
func (s *Session) SubmitSucceeded(o *Outcome) {
	if s.state != StateSubmitting {
		return
	}
	s.outcome = o
	s.state = StateFinished
}

// SubmitFailed returns to running with every answer kept. The timer resumes
// unless a test countdown has already run out, in which case the user
// resubmits manually.
func (s *Session) SubmitFailed(err error) Effect {
	if s.state != StateSubmitting {
		return EffectNone
	}
	s.lastErr = err
	s.state = StateRunning
	s.generation++
	if s.mode == ModeTest && s.elapsed >= s.cfg.TimeLimit {
		return EffectNone
	}
	return EffectScheduleTick
}

// Retry starts a fresh attempt over the same question set.
func (s *Session) Retry() Effect {
	if s.abandoned || s.state != StateFinished {
		return EffectNone
	}
	s.state = StateModeSelection
	s.mode = ModeUnselected
	s.elapsed = 0
	s.overtime = false
	s.answers = make(map[string]string)
	s.focus = 0
	s.outcome = nil
	s.lastErr = nil
	s.generation++
	return EffectNone
}

// Abandon is called when the driver leaves the attempt. Outstanding ticks
// become stale and later events are ignored.
func (s *Session) Abandon() {
	s.abandoned = true
	s.generation++
}

// FocusNext moves input focus forward. Advancing past the last question is a
// manual submit.
func (s *Session) FocusNext() Effect {
	if s.state != StateRunning {
		return EffectNone
	}
	if s.focus >= len(s.cfg.Questions)-1 {
		return s.Submit()
	}
	s.focus++
	return EffectNone
}

// FocusForward moves input focus on, stopping at the last question.
func (s *Session) FocusForward() {
	if s.state == StateRunning && s.focus < len(s.cfg.Questions)-1 {
		s.focus++
	}
}

// FocusPrev moves input focus back, stopping at the first question.
func (s *Session) FocusPrev() {
	if s.state == StateRunning && s.focus > 0 {
		s.focus--
	}
}

// SetFocus jumps to question index i when it is in range.
func (s *Session) SetFocus(i int) {
	if s.state == StateRunning && i >= 0 && i < len(s.cfg.Questions) {
		s.focus = i
	}
}

// Submission builds the payload for the collaborator from the current
// answers. Blank or unparseable input is a skip.
func (s *Session) Submission() Submission {
	answers := make(grading.AnswerMap, len(s.cfg.Questions))
	for _, q := range s.cfg.Questions {
		answers[q.ID] = parseAnswer(s.answers[q.ID])
	}
	return Submission{
		TaskID:    s.cfg.TaskID,
		StudentID: s.cfg.StudentID,
		Mode:      s.mode,
		StartedAt: s.startedAt,
		TimeTaken: s.TimeTaken(),
		Answers:   answers,
	}
}

func parseAnswer(text string) *int {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &n
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Mode returns the chosen mode.
func (s *Session) Mode() Mode { return s.mode }

// FixedMode returns the mode configured by the task, if any.
func (s *Session) FixedMode() Mode { return s.cfg.FixedMode }

// Questions returns the frozen question set.
func (s *Session) Questions() problemgen.QuestionSet { return s.cfg.Questions }

// TimeLimit returns the configured limit in seconds.
func (s *Session) TimeLimit() int { return s.cfg.TimeLimit }

// StartedAt returns when the mode was chosen.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Elapsed returns seconds counted so far.
func (s *Session) Elapsed() int { return s.elapsed }

// Remaining returns the seconds left on a test countdown (never negative).
func (s *Session) Remaining() int {
	if r := s.cfg.TimeLimit - s.elapsed; r > 0 {
		return r
	}
	return 0
}

// TimeTaken is limit−remaining for a test countdown and elapsed for train.
func (s *Session) TimeTaken() int {
	if s.mode == ModeTest {
		return s.cfg.TimeLimit - s.Remaining()
	}
	return s.elapsed
}

// Overtime reports whether a train attempt has passed the limit.
func (s *Session) Overtime() bool { return s.overtime }

// WarningZone reports whether a test countdown is in its final minute.
func (s *Session) WarningZone() bool {
	return s.mode == ModeTest && s.state == StateRunning && s.Remaining() <= WarningSeconds
}

// Generation identifies the live tick chain.
func (s *Session) Generation() int { return s.generation }

// Answer returns the raw text entered for a question.
func (s *Session) Answer(id string) string { return s.answers[id] }

// AnsweredCount returns how many questions have non-blank input.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, q := range s.cfg.Questions {
		if strings.TrimSpace(s.answers[q.ID]) != "" {
			n++
		}
	}
	return n
}

// Focus returns the index of the focused question.
func (s *Session) Focus() int { return s.focus }

// Outcome returns the result once finished.
func (s *Session) Outcome() *Outcome { return s.outcome }

// LastError returns the most recent submission failure, cleared on the next
// submit.
func (s *Session) LastError() error { return s.lastErr }

// Abandoned reports whether the driver has left the attempt.
func (s *Session) Abandoned() bool { return s.abandoned }
