// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathcoach/ent/attempt"
	"github.com/abhisek/mathcoach/ent/attemptanswer"
)

// AttemptAnswer is the model entity for the AttemptAnswer schema.
type AttemptAnswer struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AttemptID holds the value of the "attempt_id" field.
	AttemptID string `json:"attempt_id,omitempty"`
	// Position in the task's question set
	QuestionIndex int `json:"question_index,omitempty"`
	// Submitted answer; nil when skipped
	UserAnswer *int `json:"user_answer,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttemptAnswerQuery when eager-loading is set.
	Edges        AttemptAnswerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AttemptAnswerEdges holds the relations/edges for other nodes in the graph.
type AttemptAnswerEdges struct {
	// Attempt holds the value of the attempt edge.
	Attempt *Attempt `json:"attempt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AttemptOrErr returns the Attempt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttemptAnswerEdges) AttemptOrErr() (*Attempt, error) {
	if e.Attempt != nil {
		return e.Attempt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: attempt.Label}
	}
	return nil, &NotLoadedError{edge: "attempt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptAnswer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptanswer.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case attemptanswer.FieldID, attemptanswer.FieldQuestionIndex, attemptanswer.FieldUserAnswer:
			values[i] = new(sql.NullInt64)
		case attemptanswer.FieldAttemptID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptAnswer fields.
func (_m *AttemptAnswer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptanswer.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attemptanswer.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case attemptanswer.FieldQuestionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_index", values[i])
			} else if value.Valid {
				_m.QuestionIndex = int(value.Int64)
			}
		case attemptanswer.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				_m.UserAnswer = new(int)
				*_m.UserAnswer = int(value.Int64)
			}
		case attemptanswer.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptAnswer.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptAnswer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempt queries the "attempt" edge of the AttemptAnswer entity.
func (_m *AttemptAnswer) QueryAttempt() *AttemptQuery {
	return NewAttemptAnswerClient(_m.config).QueryAttempt(_m)
}

// Update returns a builder for updating this AttemptAnswer.
// Note that you need to call AttemptAnswer.Unwrap() before calling this method if this AttemptAnswer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptAnswer) Update() *AttemptAnswerUpdateOne {
	return NewAttemptAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptAnswer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptAnswer) Unwrap() *AttemptAnswer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptAnswer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptAnswer) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptAnswer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("question_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionIndex))
	builder.WriteString(", ")
	if v := _m.UserAnswer; v != nil {
		builder.WriteString("user_answer=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptAnswers is a parsable slice of AttemptAnswer.
type AttemptAnswers []*AttemptAnswer
