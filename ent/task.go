// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathcoach/ent/profile"
	"github.com/abhisek/mathcoach/ent/task"
	"github.com/abhisek/mathcoach/internal/problemgen"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned on insert
	ID string `json:"id,omitempty"`
	// Wall-clock time the record was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Trimmed task title
	Title string `json:"title,omitempty"`
	// Question family; only multiplication exists
	TaskType string `json:"task_type,omitempty"`
	// Profile that created the task
	CreatorID string `json:"creator_id,omitempty"`
	// Assigned student; nil for self-owned tasks
	AssignedToID *string `json:"assigned_to_id,omitempty"`
	// Time limit in seconds
	TimeLimit int `json:"time_limit,omitempty"`
	// PassScore holds the value of the "pass_score" field.
	PassScore int `json:"pass_score,omitempty"`
	// GoodScore holds the value of the "good_score" field.
	GoodScore int `json:"good_score,omitempty"`
	// MasterScore holds the value of the "master_score" field.
	MasterScore int `json:"master_score,omitempty"`
	// Question set frozen at creation
	Questions problemgen.QuestionSet `json:"questions,omitempty"`
	// Fact selection, count and layout used to build the set
	Config problemgen.TaskConfig `json:"config,omitempty"`
	// Soft deactivation flag
	IsActive bool `json:"is_active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Creator holds the value of the creator edge.
	Creator *Profile `json:"creator,omitempty"`
	// Assignee holds the value of the assignee edge.
	Assignee *Profile `json:"assignee,omitempty"`
	// Attempts holds the value of the attempts edge.
	Attempts []*Attempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CreatorOrErr returns the Creator value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) CreatorOrErr() (*Profile, error) {
	if e.Creator != nil {
		return e.Creator, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "creator"}
}

// AssigneeOrErr returns the Assignee value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) AssigneeOrErr() (*Profile, error) {
	if e.Assignee != nil {
		return e.Assignee, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "assignee"}
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) AttemptsOrErr() ([]*Attempt, error) {
	if e.loadedTypes[2] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldQuestions, task.FieldConfig:
			values[i] = new([]byte)
		case task.FieldIsActive:
			values[i] = new(sql.NullBool)
		case task.FieldTimeLimit, task.FieldPassScore, task.FieldGoodScore, task.FieldMasterScore:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldTitle, task.FieldTaskType, task.FieldCreatorID, task.FieldAssignedToID:
			values[i] = new(sql.NullString)
		case task.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case task.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case task.FieldCreatorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_id", values[i])
			} else if value.Valid {
				_m.CreatorID = value.String
			}
		case task.FieldAssignedToID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to_id", values[i])
			} else if value.Valid {
				_m.AssignedToID = new(string)
				*_m.AssignedToID = value.String
			}
		case task.FieldTimeLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit", values[i])
			} else if value.Valid {
				_m.TimeLimit = int(value.Int64)
			}
		case task.FieldPassScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pass_score", values[i])
			} else if value.Valid {
				_m.PassScore = int(value.Int64)
			}
		case task.FieldGoodScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field good_score", values[i])
			} else if value.Valid {
				_m.GoodScore = int(value.Int64)
			}
		case task.FieldMasterScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field master_score", values[i])
			} else if value.Valid {
				_m.MasterScore = int(value.Int64)
			}
		case task.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case task.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case task.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCreator queries the "creator" edge of the Task entity.
func (_m *Task) QueryCreator() *ProfileQuery {
	return NewTaskClient(_m.config).QueryCreator(_m)
}

// QueryAssignee queries the "assignee" edge of the Task entity.
func (_m *Task) QueryAssignee() *ProfileQuery {
	return NewTaskClient(_m.config).QueryAssignee(_m)
}

// QueryAttempts queries the "attempts" edge of the Task entity.
func (_m *Task) QueryAttempts() *AttemptQuery {
	return NewTaskClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("creator_id=")
	builder.WriteString(_m.CreatorID)
	builder.WriteString(", ")
	if v := _m.AssignedToID; v != nil {
		builder.WriteString("assigned_to_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("time_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimit))
	builder.WriteString(", ")
	builder.WriteString("pass_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PassScore))
	builder.WriteString(", ")
	builder.WriteString("good_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.GoodScore))
	builder.WriteString(", ")
	builder.WriteString("master_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasterScore))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
