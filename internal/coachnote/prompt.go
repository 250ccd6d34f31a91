package coachnote

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/grading"
)

const systemPrompt = `You are a warm, upbeat times-tables coach writing to a primary school student right after a timed quiz. Praise effort honestly, never shame mistakes, and name at most five facts to practise next.`

// missedFact is a fact and how often it was missed in one attempt.
type missedFact struct {
	text  string
	count int
}

// missedFacts groups wrong or skipped questions by fact, treating 7×8 and 8×7
// as the same fact. Most missed first.
func missedFacts(in Input) []missedFact {
	counts := make(map[string]int)
	for _, l := range grading.Missed(in.Outcome.Breakdown) {
		a, b := l.Operand1, l.Operand2
		if a > b {
			a, b = b, a
		}
		counts[fmt.Sprintf("%d×%d", a, b)]++
	}
	out := make([]missedFact, 0, len(counts))
	for text, n := range counts {
		out = append(out, missedFact{text: text, count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].text < out[j].text
	})
	return out
}

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student: %s\n", in.StudentName)
	fmt.Fprintf(&b, "Task: %s\n", in.TaskTitle)
	fmt.Fprintf(&b, "Mode: %s\n", in.Mode)
	fmt.Fprintf(&b, "Score: %d/%d (%d%%)\n", in.Outcome.Score, in.Outcome.Total, in.Outcome.Percent())
	fmt.Fprintf(&b, "Grade: %s\n", in.Outcome.Tier.Label())
	fmt.Fprintf(&b, "Time: %s", attempt.FormatDuration(in.Outcome.TimeTaken))
	if in.TimeLimit > 0 {
		fmt.Fprintf(&b, " of %s allowed", attempt.FormatDuration(in.TimeLimit))
	}
	b.WriteString("\n")

	b.WriteString("\nMissed facts:\n")
	missed := missedFacts(in)
	if len(missed) == 0 {
		b.WriteString("None\n")
	}
	for _, m := range missed {
		fmt.Fprintf(&b, "- %s (x%d)\n", m.text, m.count)
	}

	return b.String()
}
