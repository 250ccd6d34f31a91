package attempt

import (
	att "github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/coachnote"
)

// tickMsg is one second of attempt time. Generation ties it to the tick chain
// that scheduled it.
type tickMsg struct {
	Generation int
}

// submittedMsg carries the collaborator's answer to a submission.
type submittedMsg struct {
	Outcome *att.Outcome
	Err     error
}

// noteMsg carries a generated coach note for an attempt.
type noteMsg struct {
	AttemptID string
	Note      *coachnote.Note
	Err       error
}
