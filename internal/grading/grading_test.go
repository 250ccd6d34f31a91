package grading

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/problemgen"
)

func tenQuestions() problemgen.QuestionSet {
	set := make(problemgen.QuestionSet, 10)
	for i := range set {
		set[i] = problemgen.Question{ID: fmt.Sprintf("q%d", i), Operand1: i, Operand2: 3, Answer: i * 3}
	}
	return set
}

// answersWithScore answers the first n questions correctly and the rest wrongly.
func answersWithScore(set problemgen.QuestionSet, n int) AnswerMap {
	m := make(AnswerMap)
	for i, q := range set {
		if i < n {
			m[q.ID] = Int(q.Answer)
		} else {
			m[q.ID] = Int(q.Answer + 1)
		}
	}
	return m
}

func TestGrade_Boundaries(t *testing.T) {
	set := tenQuestions()
	th := Thresholds{Pass: 5, Good: 7, Master: 10}

	tests := []struct {
		score int
		want  Tier
	}{
		{10, TierMaster},
		{9, TierGood},
		{8, TierGood},
		{7, TierGood},
		{6, TierPass},
		{5, TierPass},
		{4, TierFail},
		{0, TierFail},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("score=%d", tt.score), func(t *testing.T) {
			r := Grade(set, answersWithScore(set, tt.score), th)
			assert.Equal(t, tt.score, r.Score)
			assert.Equal(t, 10, r.Total)
			assert.Equal(t, tt.want, r.Tier)
		})
	}
}

func TestGrade_WrongAndMissingAnswers(t *testing.T) {
	set := tenQuestions()
	th := Thresholds{Pass: 5, Good: 7, Master: 10}

	assert.Equal(t, 0, Grade(set, answersWithScore(set, 0), th).Score)
	assert.Equal(t, 0, Grade(set, AnswerMap{}, th).Score)
	assert.Equal(t, 0, Grade(set, nil, th).Score)

	nulls := AnswerMap{}
	for _, q := range set {
		nulls[q.ID] = nil
	}
	assert.Equal(t, 0, Grade(set, nulls, th).Score)
}

func TestGrade_IgnoresUnknownKeys(t *testing.T) {
	set := tenQuestions()
	answers := AnswerMap{"q1": Int(3), "zz": Int(3)}
	r := Grade(set, answers, Thresholds{Pass: 1, Good: 2, Master: 3})
	assert.Equal(t, 1, r.Score)
	assert.Equal(t, TierPass, r.Tier)
}

func TestGrade_UnorderedThresholdsStillEvaluateMasterFirst(t *testing.T) {
	// Not enforced by Grade: master is checked first even when it is the lowest.
	r := Grade(tenQuestions(), AnswerMap{}, Thresholds{Pass: 5, Good: 3, Master: 0})
	assert.Equal(t, TierMaster, r.Tier)
}

func TestBreakdown(t *testing.T) {
	set := problemgen.QuestionSet{
		{ID: "q1", Operand1: 2, Operand2: 3, Answer: 6},
		{ID: "q0", Operand1: 4, Operand2: 4, Answer: 16},
		{ID: "q2", Operand1: 9, Operand2: 9, Answer: 81},
	}
	lines := Breakdown(set, AnswerMap{"q1": Int(6), "q0": Int(15)})

	require.Len(t, lines, 3)
	assert.Equal(t, Line{Index: 0, Operand1: 2, Operand2: 3, CorrectAnswer: 6, UserAnswer: Int(6), IsCorrect: true}, lines[0])
	assert.False(t, lines[1].IsCorrect)
	assert.Equal(t, 15, *lines[1].UserAnswer)
	assert.Nil(t, lines[2].UserAnswer)
	assert.False(t, lines[2].IsCorrect)

	missed := Missed(lines)
	require.Len(t, missed, 2)
	assert.Equal(t, 16, missed[0].CorrectAnswer)
}

func TestAnswerMapJSONNulls(t *testing.T) {
	var m AnswerMap
	require.NoError(t, json.Unmarshal([]byte(`{"q0": 12, "q1": null}`), &m))
	require.NotNil(t, m["q0"])
	assert.Equal(t, 12, *m["q0"])
	v, ok := m["q1"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestThresholds(t *testing.T) {
	assert.Equal(t, Thresholds{Pass: 45, Good: 54, Master: 60}, DefaultThresholds(60))
	assert.Equal(t, Thresholds{Pass: 23, Good: 27, Master: 30}, DefaultThresholds(30))

	assert.NoError(t, Thresholds{Pass: 5, Good: 7, Master: 10}.Validate(10))
	assert.NoError(t, Thresholds{Pass: 10, Good: 10, Master: 10}.Validate(10))
	assert.Error(t, Thresholds{Pass: 8, Good: 7, Master: 10}.Validate(10))
	assert.Error(t, Thresholds{Pass: 5, Good: 11, Master: 10}.Validate(10))
	assert.Error(t, Thresholds{Pass: 5, Good: 7, Master: 11}.Validate(10))
	assert.Error(t, Thresholds{Pass: -1, Good: 7, Master: 10}.Validate(10))
}

func TestPercentAndLabels(t *testing.T) {
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 100, Result{Score: 4, Total: 4}.Percent())

	assert.Equal(t, "Not Yet", TierFail.Label())
	assert.Equal(t, "Master", TierMaster.Label())
	assert.True(t, TierGood.Valid())
	assert.False(t, Tier("excellent").Valid())
}
