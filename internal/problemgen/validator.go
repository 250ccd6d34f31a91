package problemgen

import (
	"fmt"

	"github.com/abhisek/mathcoach/internal/facts"
)

// Validator checks one invariant of a question set.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "ids".
	Name() string

	// Validate returns nil if the set passes. allowed is the fact selection
	// the set claims to come from; nil skips provenance checks.
	Validate(set QuestionSet, allowed []facts.Fact) *ValidationError
}

// DefaultValidators are the checks applied to stored or submitted sets.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&ProductValidator{},
		&ProvenanceValidator{},
	}
}

// Validate runs every default validator and collects the failures.
func Validate(set QuestionSet, allowed []facts.Fact) error {
	var errs ValidationErrors
	for _, v := range DefaultValidators() {
		if err := v.Validate(set, allowed); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// StructuralValidator requires a non-empty set with unique, non-blank ids.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "ids" }

func (v *StructuralValidator) Validate(set QuestionSet, _ []facts.Fact) *ValidationError {
	if len(set) == 0 {
		return &ValidationError{Field: v.Name(), Message: "question set is empty"}
	}
	seen := make(map[string]bool, len(set))
	for i, q := range set {
		if q.ID == "" {
			return &ValidationError{Field: v.Name(), Message: fmt.Sprintf("question %d has no id", i)}
		}
		if seen[q.ID] {
			return &ValidationError{Field: v.Name(), Message: fmt.Sprintf("duplicate id %q", q.ID)}
		}
		seen[q.ID] = true
	}
	return nil
}

// ProductValidator requires every answer to equal its operands' product.
type ProductValidator struct{}

func (v *ProductValidator) Name() string { return "answer" }

func (v *ProductValidator) Validate(set QuestionSet, _ []facts.Fact) *ValidationError {
	for _, q := range set {
		if q.Operand1 < 0 || q.Operand2 < 0 {
			return &ValidationError{Field: v.Name(), Message: fmt.Sprintf("%s has a negative operand", q.ID)}
		}
		if q.Answer != q.Operand1*q.Operand2 {
			return &ValidationError{
				Field:   v.Name(),
				Message: fmt.Sprintf("%s: %s = %d, not %d", q.ID, q.Text(), q.Operand1*q.Operand2, q.Answer),
			}
		}
	}
	return nil
}

// ProvenanceValidator requires every question to match an allowed fact in
// either operand order.
type ProvenanceValidator struct{}

func (v *ProvenanceValidator) Name() string { return "facts" }

func (v *ProvenanceValidator) Validate(set QuestionSet, allowed []facts.Fact) *ValidationError {
	if allowed == nil {
		return nil
	}
	for _, q := range set {
		if !matchesAny(allowed, q.Operand1, q.Operand2) {
			return &ValidationError{
				Field:   v.Name(),
				Message: fmt.Sprintf("%s (%s) is not in the selected facts", q.ID, q.Text()),
			}
		}
	}
	return nil
}

func matchesAny(list []facts.Fact, a, b int) bool {
	for _, f := range list {
		if f.Matches(a, b) {
			return true
		}
	}
	return false
}
