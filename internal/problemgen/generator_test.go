package problemgen

import (
	"errors"
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/abhisek/mathcoach/internal/facts"
)

func testFacts() []facts.Fact {
	return []facts.Fact{{A: 2, B: 3}, {A: 7, B: 8}, {A: 0, B: 5}, {A: 9, B: 4}}
}

func TestGenerate_Length(t *testing.T) {
	gen := NewSeeded(1)
	for _, n := range []int{1, 2, 10, 60, 225, 500} {
		set, err := gen.Generate(testFacts(), n)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		if len(set) != n {
			t.Errorf("Generate(%d) returned %d questions", n, len(set))
		}
	}
}

func TestGenerate_AnswersAndProvenance(t *testing.T) {
	list := testFacts()
	set, err := NewSeeded(7).Generate(list, 200)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, q := range set {
		if q.Answer != q.Operand1*q.Operand2 {
			t.Errorf("%s: answer %d != %d", q.ID, q.Answer, q.Operand1*q.Operand2)
		}
		if !matchesAny(list, q.Operand1, q.Operand2) {
			t.Errorf("%s: (%d,%d) not drawn from the input facts", q.ID, q.Operand1, q.Operand2)
		}
	}
	if err := Validate(set, list); err != nil {
		t.Errorf("generated set should validate: %v", err)
	}
}

func TestGenerate_ReplacementSampling(t *testing.T) {
	set, err := NewSeeded(3).Generate([]facts.Fact{{A: 9, B: 9}}, 25)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(set) != 25 {
		t.Fatalf("expected 25 questions, got %d", len(set))
	}
	for _, q := range set {
		if q.Answer != 81 {
			t.Errorf("%s: expected 81, got %d", q.ID, q.Answer)
		}
	}
}

func TestGenerate_IDsAssignedBeforeShuffle(t *testing.T) {
	set, err := NewSeeded(11).Generate(testFacts(), 5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	ids := set.IDs()
	sort.Strings(ids)
	want := []string{"q0", "q1", "q2", "q3", "q4"}
	if !slices.Equal(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	gen := NewSeeded(1)

	tests := []struct {
		name  string
		facts []facts.Fact
		count int
		field string
	}{
		{"no facts", nil, 10, "facts"},
		{"empty facts", []facts.Fact{}, 10, "facts"},
		{"zero count", testFacts(), 0, "count"},
		{"negative count", testFacts(), -3, "count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := gen.Generate(tt.facts, tt.count)
			if set != nil {
				t.Errorf("expected no partial set, got %d questions", len(set))
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	a, _ := NewSeeded(42).Generate(testFacts(), 30)
	b, _ := NewSeeded(42).Generate(testFacts(), 30)
	if !slices.Equal(a, b) {
		t.Error("same seed should produce the same question set")
	}
}

func TestShuffle_PreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	inputs := [][]int{
		{},
		{4},
		{1, 2},
		{3, 3, 3, 1},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0, 5},
	}
	for _, in := range inputs {
		orig := slices.Clone(in)
		got := Shuffle(rng, in)
		if len(got) != len(orig) {
			t.Fatalf("length changed: %v -> %v", orig, got)
		}
		sortedGot := slices.Clone(got)
		sortedOrig := slices.Clone(orig)
		slices.Sort(sortedGot)
		slices.Sort(sortedOrig)
		if !slices.Equal(sortedGot, sortedOrig) {
			t.Errorf("multiset changed: %v -> %v", orig, got)
		}
	}
}

func TestShuffle_Uniformity(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 100))
	counts := make(map[[3]int]int)
	const trials = 60000
	for range trials {
		xs := []int{0, 1, 2}
		Shuffle(rng, xs)
		counts[[3]int{xs[0], xs[1], xs[2]}]++
	}
	if len(counts) != 6 {
		t.Fatalf("expected all 6 permutations, saw %d", len(counts))
	}
	for perm, n := range counts {
		// Expected 10000 each; allow a generous band.
		if n < 9000 || n > 11000 {
			t.Errorf("permutation %v seen %d times", perm, n)
		}
	}
}

func TestReshuffle_DoesNotMutate(t *testing.T) {
	gen := NewSeeded(8)
	set, _ := gen.Generate(testFacts(), 40)
	before := set.Clone()

	out := gen.Reshuffle(set)

	if !slices.Equal(set, before) {
		t.Error("Reshuffle mutated the caller's list")
	}
	if len(out) != len(set) {
		t.Fatalf("length changed: %d -> %d", len(set), len(out))
	}
	byID := make(map[string]Question)
	for _, q := range set {
		byID[q.ID] = q
	}
	for _, q := range out {
		if byID[q.ID] != q {
			t.Errorf("reshuffled question %s differs from original", q.ID)
		}
	}
}

func TestReshuffle_Degenerate(t *testing.T) {
	gen := NewSeeded(1)
	if out := gen.Reshuffle(nil); out != nil {
		t.Errorf("expected nil, got %v", out)
	}
	one := QuestionSet{{ID: "q0", Operand1: 2, Operand2: 2, Answer: 4}}
	if out := gen.Reshuffle(one); !slices.Equal(out, one) {
		t.Errorf("single element reshuffle changed content: %v", out)
	}
}
