package coachnote

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/llm"
)

func sampleInput() Input {
	return Input{
		StudentName: "Ella",
		TaskTitle:   "Sevens",
		Mode:        attempt.ModeTest,
		TimeLimit:   120,
		Outcome: attempt.Outcome{
			AttemptID: "a1",
			Result:    grading.Result{Score: 2, Total: 5, Tier: grading.TierFail},
			TimeTaken: 95,
			Breakdown: []grading.Line{
				{Index: 0, Operand1: 7, Operand2: 8, CorrectAnswer: 56, IsCorrect: false},
				{Index: 1, Operand1: 8, Operand2: 7, CorrectAnswer: 56, UserAnswer: grading.Int(54)},
				{Index: 2, Operand1: 7, Operand2: 2, CorrectAnswer: 14, UserAnswer: grading.Int(14), IsCorrect: true},
				{Index: 3, Operand1: 6, Operand2: 7, CorrectAnswer: 42},
				{Index: 4, Operand1: 7, Operand2: 7, CorrectAnswer: 49, UserAnswer: grading.Int(49), IsCorrect: true},
			},
		},
	}
}

func TestWrite(t *testing.T) {
	mock := llm.NewStub(llm.Reply{
		Content: json.RawMessage(`{"note":"  You stuck with it, Ella!  ","practise":["7×8"," ","6×7"]}`),
	})
	w := New(mock, DefaultConfig())
	require.True(t, w.Enabled())

	note, err := w.Write(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, "You stuck with it, Ella!", note.Text)
	assert.Equal(t, []string{"7×8", "6×7"}, note.Practise)

	reqs := mock.Requests()
	require.Len(t, reqs, 1)
	req := reqs[0]
	assert.Equal(t, NoteSchema, req.Schema)
	assert.Contains(t, req.Prompt, "Score: 2/5 (40%)")
	assert.Contains(t, req.Prompt, "Time: 1m 35s of 2m 00s allowed")
	assert.Contains(t, req.Prompt, "- 7×8 (x2)")
	assert.Contains(t, req.Prompt, "- 6×7 (x1)")
}

func TestWrite_FallsBackToMisses(t *testing.T) {
	mock := llm.NewStub(llm.Reply{
		Content: json.RawMessage(`{"note":"Nice effort","practise":[]}`),
	})
	note, err := New(mock, DefaultConfig()).Write(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"7×8", "6×7"}, note.Practise)
}

func TestWrite_Errors(t *testing.T) {
	_, err := New(nil, DefaultConfig()).Write(context.Background(), sampleInput())
	assert.ErrorIs(t, err, ErrDisabled)

	var nilWriter *Writer
	assert.False(t, nilWriter.Enabled())

	mock := llm.NewStub(llm.Reply{Err: &llm.Error{Kind: llm.KindUnavailable, Err: errors.New("down")}})
	_, err = New(mock, DefaultConfig()).Write(context.Background(), sampleInput())
	kind, ok := llm.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, llm.KindUnavailable, kind)

	mock = llm.NewStub(llm.Reply{Content: json.RawMessage(`not json`)})
	_, err = New(mock, DefaultConfig()).Write(context.Background(), sampleInput())
	assert.Error(t, err)
}

func TestBuildUserMessage_NoMisses(t *testing.T) {
	in := sampleInput()
	in.Outcome.Breakdown = nil
	in.TimeLimit = 0
	msg := buildUserMessage(in)
	assert.Contains(t, msg, "Missed facts:\nNone\n")
	assert.NotContains(t, msg, "allowed")
}
