package problemgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/mathcoach/internal/facts"
)

// Generator draws question sets from a fact selection. The random source is
// injected so generation can be replayed in tests.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator over rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a deterministic Generator.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandom creates a Generator seeded from the runtime's random source.
func NewRandom() *Generator {
	return New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// Generate draws count questions uniformly with replacement from list, then
// shuffles them. Ids are "q0".."q{count-1}", assigned before the shuffle.
func (g *Generator) Generate(list []facts.Fact, count int) (QuestionSet, error) {
	if len(list) == 0 {
		return nil, &ValidationError{Field: "facts", Message: "no facts selected"}
	}
	if count < 1 {
		return nil, &ValidationError{Field: "count", Message: fmt.Sprintf("must be at least 1, got %d", count)}
	}

	set := make(QuestionSet, count)
	for i := range count {
		f := list[g.rng.IntN(len(list))]
		set[i] = Question{
			ID:       fmt.Sprintf("q%d", i),
			Operand1: f.A,
			Operand2: f.B,
			Answer:   f.Product(),
		}
	}
	Shuffle(g.rng, set)
	return set, nil
}

// Reshuffle returns a newly ordered copy of set. The caller's slice is not
// modified.
func (g *Generator) Reshuffle(set QuestionSet) QuestionSet {
	out := set.Clone()
	Shuffle(g.rng, out)
	return out
}

// Shuffle permutes xs in place with Fisher–Yates and returns it.
func Shuffle[T any](rng *rand.Rand, xs []T) []T {
	for i := len(xs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
	return xs
}
