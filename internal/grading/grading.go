// Package grading scores attempts against a frozen question set and maps the
// score to a tier.
package grading

import (
	"fmt"
	"math"

	"github.com/abhisek/mathcoach/internal/problemgen"
)

// Tier is the grade band of an attempt.
type Tier string

const (
	TierFail   Tier = "fail"
	TierPass   Tier = "pass"
	TierGood   Tier = "good"
	TierMaster Tier = "master"
)

// Label returns the text shown to students.
func (t Tier) Label() string {
	switch t {
	case TierMaster:
		return "Master"
	case TierGood:
		return "Good"
	case TierPass:
		return "Pass"
	default:
		return "Not Yet"
	}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierFail, TierPass, TierGood, TierMaster:
		return true
	}
	return false
}

// Thresholds are absolute correct-answer counts for each tier.
type Thresholds struct {
	Pass   int `json:"passScore"`
	Good   int `json:"goodScore"`
	Master int `json:"masterScore"`
}

// DefaultThresholds scales the thresholds to a question count: 75% pass,
// 90% good, everything for master.
func DefaultThresholds(count int) Thresholds {
	return Thresholds{
		Pass:   int(math.Round(float64(count) * 0.75)),
		Good:   int(math.Round(float64(count) * 0.9)),
		Master: count,
	}
}

// Validate enforces 0 <= pass <= good <= master <= total.
// Grade does not call this; task creation does.
func (t Thresholds) Validate(total int) error {
	switch {
	case t.Pass < 0:
		return fmt.Errorf("pass score %d must not be negative", t.Pass)
	case t.Pass > t.Good || t.Good > t.Master:
		return fmt.Errorf("thresholds must be pass ≤ good ≤ master (got %d/%d/%d)", t.Pass, t.Good, t.Master)
	case t.Master > total:
		return fmt.Errorf("master score %d exceeds question count %d", t.Master, total)
	}
	return nil
}

// AnswerMap maps question id to the submitted answer. A nil value or a
// missing key means the question was skipped.
type AnswerMap map[string]*int

// Int returns a pointer to v, for building answer maps.
func Int(v int) *int {
	return &v
}

// Result is the derived outcome of grading.
type Result struct {
	Score int  `json:"score"`
	Total int  `json:"total"`
	Tier  Tier `json:"grade"`
}

// Percent returns the rounded score percentage.
func (r Result) Percent() int {
	return Percent(r.Score, r.Total)
}

// Grade scores answers against set. Only exact numeric matches count.
func Grade(set problemgen.QuestionSet, answers AnswerMap, th Thresholds) Result {
	score := 0
	for _, q := range set {
		if isCorrect(q, answers[q.ID]) {
			score++
		}
	}
	return Result{Score: score, Total: len(set), Tier: TierFor(score, th)}
}

// TierFor maps a score to a tier, checking master first.
func TierFor(score int, th Thresholds) Tier {
	switch {
	case score >= th.Master:
		return TierMaster
	case score >= th.Good:
		return TierGood
	case score >= th.Pass:
		return TierPass
	default:
		return TierFail
	}
}

// Line is one row of the per-question breakdown.
type Line struct {
	Index         int  `json:"questionIndex"`
	Operand1      int  `json:"operand1"`
	Operand2      int  `json:"operand2"`
	CorrectAnswer int  `json:"correctAnswer"`
	UserAnswer    *int `json:"userAnswer"`
	IsCorrect     bool `json:"isCorrect"`
}

// Breakdown lists every question in set order with the submitted answer.
func Breakdown(set problemgen.QuestionSet, answers AnswerMap) []Line {
	lines := make([]Line, len(set))
	for i, q := range set {
		ua := answers[q.ID]
		lines[i] = Line{
			Index:         i,
			Operand1:      q.Operand1,
			Operand2:      q.Operand2,
			CorrectAnswer: q.Answer,
			UserAnswer:    ua,
			IsCorrect:     isCorrect(q, ua),
		}
	}
	return lines
}

// Missed returns the questions answered wrongly or skipped.
func Missed(lines []Line) []Line {
	var out []Line
	for _, l := range lines {
		if !l.IsCorrect {
			out = append(out, l)
		}
	}
	return out
}

// Percent returns round(score/total*100), or 0 for an empty set.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

func isCorrect(q problemgen.Question, answer *int) bool {
	return answer != nil && *answer == q.Answer
}
