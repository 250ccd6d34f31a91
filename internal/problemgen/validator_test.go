package problemgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathcoach/internal/facts"
)

func validSet() QuestionSet {
	return QuestionSet{
		{ID: "q0", Operand1: 3, Operand2: 2, Answer: 6},
		{ID: "q1", Operand1: 7, Operand2: 8, Answer: 56},
	}
}

func TestValidate_Passes(t *testing.T) {
	if err := Validate(validSet(), testFacts()); err != nil {
		t.Fatalf("expected valid set, got %v", err)
	}
	if err := Validate(validSet(), nil); err != nil {
		t.Fatalf("nil facts should skip provenance: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name  string
		set   QuestionSet
		facts []facts.Fact
		want  string
	}{
		{"empty", QuestionSet{}, nil, "empty"},
		{"duplicate id", QuestionSet{{ID: "q0", Operand1: 1, Operand2: 1, Answer: 1}, {ID: "q0", Operand1: 1, Operand2: 2, Answer: 2}}, nil, "duplicate"},
		{"blank id", QuestionSet{{Operand1: 1, Operand2: 1, Answer: 1}}, nil, "no id"},
		{"wrong answer", QuestionSet{{ID: "q0", Operand1: 6, Operand2: 7, Answer: 41}}, nil, "not 41"},
		{"foreign fact", validSet(), []facts.Fact{{A: 2, B: 3}}, "not in the selected facts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.set, tt.facts)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var errs ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
