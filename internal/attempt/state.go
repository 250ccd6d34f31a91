// Package attempt models one timed pass through a task's question set as an
// explicit state machine. It has no rendering or timer of its own: a driver
// (the TUI screen) feeds it events and acts on the returned Effect.
package attempt

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
)

// State is the phase of an attempt.
type State int

const (
	StateModeSelection State = iota // Waiting for train/test choice
	StateRunning                    // Accepting answers, timer ticking
	StateSubmitting                 // Submission in flight, timer frozen
	StateFinished                   // Result available
)

func (s State) String() string {
	switch s {
	case StateModeSelection:
		return "mode-selection"
	case StateRunning:
		return "running"
	case StateSubmitting:
		return "submitting"
	case StateFinished:
		return "finished"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Mode is the timing variant chosen for an attempt.
type Mode int

const (
	ModeUnselected Mode = iota
	ModeTrain           // Counts up past the limit, never forces submission
	ModeTest            // Forces submission when the limit is reached
)

func (m Mode) String() string {
	switch m {
	case ModeTrain:
		return "train"
	case ModeTest:
		return "test"
	}
	return "unselected"
}

// ParseMode maps "train" / "test" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "train":
		return ModeTrain, nil
	case "test":
		return ModeTest, nil
	}
	return ModeUnselected, fmt.Errorf("unknown attempt mode %q", s)
}

// Effect tells the driver what to do after an event.
type Effect int

const (
	EffectNone          Effect = iota
	EffectScheduleTick         // Schedule a tick for the current Generation
	EffectSubmit               // Hand Submission() to the Submitter
)

// Submission is what the attempt hands to the persistence collaborator.
type Submission struct {
	TaskID    string
	StudentID string
	Mode      Mode
	StartedAt time.Time
	TimeTaken int // seconds
	Answers   grading.AnswerMap
}

// Outcome is the graded, persisted result of a submission.
type Outcome struct {
	AttemptID string
	grading.Result
	TimeTaken int
	Breakdown []grading.Line
}

// Submitter persists a submission and returns its graded outcome.
type Submitter interface {
	SubmitAttempt(ctx context.Context, sub Submission) (*Outcome, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, sub Submission) (*Outcome, error)

func (f SubmitterFunc) SubmitAttempt(ctx context.Context, sub Submission) (*Outcome, error) {
	return f(ctx, sub)
}

// Config is the frozen task data an attempt runs against.
type Config struct {
	TaskID    string
	StudentID string
	Questions problemgen.QuestionSet
	TimeLimit int // seconds

	// FixedMode skips mode selection when set.
	FixedMode Mode
}

// WarningSeconds is the remaining time at which a test countdown turns to a
// warning display.
const WarningSeconds = 60

// FormatClock renders seconds as m:ss for the running timer.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatDuration renders seconds as "Xm YYs" for results and reports.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
}
