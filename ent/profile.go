// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathcoach/ent/profile"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	// UUID assigned on insert
	ID string `json:"id,omitempty"`
	// Wall-clock time the record was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Display name
	Name string `json:"name,omitempty"`
	// COACH assigns tasks; STUDENT attempts them
	Role profile.Role `json:"role,omitempty"`
	// Owning coach for students
	CoachID *string `json:"coach_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProfileQuery when eager-loading is set.
	Edges        ProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProfileEdges holds the relations/edges for other nodes in the graph.
type ProfileEdges struct {
	// Coach holds the value of the coach edge.
	Coach *Profile `json:"coach,omitempty"`
	// Students holds the value of the students edge.
	Students []*Profile `json:"students,omitempty"`
	// CreatedTasks holds the value of the created_tasks edge.
	CreatedTasks []*Task `json:"created_tasks,omitempty"`
	// AssignedTasks holds the value of the assigned_tasks edge.
	AssignedTasks []*Task `json:"assigned_tasks,omitempty"`
	// Attempts holds the value of the attempts edge.
	Attempts []*Attempt `json:"attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// CoachOrErr returns the Coach value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProfileEdges) CoachOrErr() (*Profile, error) {
	if e.Coach != nil {
		return e.Coach, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "coach"}
}

// StudentsOrErr returns the Students value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) StudentsOrErr() ([]*Profile, error) {
	if e.loadedTypes[1] {
		return e.Students, nil
	}
	return nil, &NotLoadedError{edge: "students"}
}

// CreatedTasksOrErr returns the CreatedTasks value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) CreatedTasksOrErr() ([]*Task, error) {
	if e.loadedTypes[2] {
		return e.CreatedTasks, nil
	}
	return nil, &NotLoadedError{edge: "created_tasks"}
}

// AssignedTasksOrErr returns the AssignedTasks value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) AssignedTasksOrErr() ([]*Task, error) {
	if e.loadedTypes[3] {
		return e.AssignedTasks, nil
	}
	return nil, &NotLoadedError{edge: "assigned_tasks"}
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileEdges) AttemptsOrErr() ([]*Attempt, error) {
	if e.loadedTypes[4] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldID, profile.FieldName, profile.FieldRole, profile.FieldCoachID:
			values[i] = new(sql.NullString)
		case profile.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case profile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case profile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case profile.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = profile.Role(value.String)
			}
		case profile.FieldCoachID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field coach_id", values[i])
			} else if value.Valid {
				_m.CoachID = new(string)
				*_m.CoachID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCoach queries the "coach" edge of the Profile entity.
func (_m *Profile) QueryCoach() *ProfileQuery {
	return NewProfileClient(_m.config).QueryCoach(_m)
}

// QueryStudents queries the "students" edge of the Profile entity.
func (_m *Profile) QueryStudents() *ProfileQuery {
	return NewProfileClient(_m.config).QueryStudents(_m)
}

// QueryCreatedTasks queries the "created_tasks" edge of the Profile entity.
func (_m *Profile) QueryCreatedTasks() *TaskQuery {
	return NewProfileClient(_m.config).QueryCreatedTasks(_m)
}

// QueryAssignedTasks queries the "assigned_tasks" edge of the Profile entity.
func (_m *Profile) QueryAssignedTasks() *TaskQuery {
	return NewProfileClient(_m.config).QueryAssignedTasks(_m)
}

// QueryAttempts queries the "attempts" edge of the Profile entity.
func (_m *Profile) QueryAttempts() *AttemptQuery {
	return NewProfileClient(_m.config).QueryAttempts(_m)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	if v := _m.CoachID; v != nil {
		builder.WriteString("coach_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
