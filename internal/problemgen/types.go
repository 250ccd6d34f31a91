package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathcoach/internal/facts"
)

// Question is one multiplication prompt. Immutable once generated.
type Question struct {
	ID       string `json:"id"`
	Operand1 int    `json:"operand1"`
	Operand2 int    `json:"operand2"`
	Answer   int    `json:"answer"`
}

// Text renders the prompt as "a × b".
func (q Question) Text() string {
	return fmt.Sprintf("%d × %d", q.Operand1, q.Operand2)
}

// Fact returns the operand pair this question was drawn from.
func (q Question) Fact() facts.Fact {
	return facts.Fact{A: q.Operand1, B: q.Operand2}
}

// QuestionSet is the ordered, frozen list of questions owned by a task.
type QuestionSet []Question

// IDs returns the question ids in presentation order.
func (s QuestionSet) IDs() []string {
	ids := make([]string, len(s))
	for i, q := range s {
		ids[i] = q.ID
	}
	return ids
}

// Index returns the position of the question with the given id, or -1.
func (s QuestionSet) Index(id string) int {
	for i, q := range s {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy.
func (s QuestionSet) Clone() QuestionSet {
	if s == nil {
		return nil
	}
	out := make(QuestionSet, len(s))
	copy(out, s)
	return out
}

// ValidationError reports caller misuse: bad generation input or a question
// set that breaks its invariants.
type ValidationError struct {
	Field   string // Input or check that failed, e.g. "facts", "count", "ids"
	Message string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates the failures of several validators.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
