// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcoach/ent/attempt"
	"github.com/abhisek/mathcoach/ent/attemptanswer"
	"github.com/abhisek/mathcoach/ent/predicate"
	"github.com/abhisek/mathcoach/ent/profile"
	"github.com/abhisek/mathcoach/ent/task"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AttemptUpdate) SetTaskID(v string) *AttemptUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTaskID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AttemptUpdate) SetStudentID(v string) *AttemptUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableStudentID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AttemptUpdate) SetStartedAt(v time.Time) *AttemptUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableStartedAt(v *time.Time) *AttemptUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdate) SetCompletedAt(v time.Time) *AttemptUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCompletedAt(v *time.Time) *AttemptUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdate) ClearCompletedAt() *AttemptUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTimeTaken sets the "time_taken" field.
func (_u *AttemptUpdate) SetTimeTaken(v int) *AttemptUpdate {
	_u.mutation.ResetTimeTaken()
	_u.mutation.SetTimeTaken(v)
	return _u
}

// SetNillableTimeTaken sets the "time_taken" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTimeTaken(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTimeTaken(*v)
	}
	return _u
}

// AddTimeTaken adds value to the "time_taken" field.
func (_u *AttemptUpdate) AddTimeTaken(v int) *AttemptUpdate {
	_u.mutation.AddTimeTaken(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdate) SetScore(v int) *AttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdate) AddScore(v int) *AttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *AttemptUpdate) SetGrade(v attempt.Grade) *AttemptUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableGrade(v *attempt.Grade) *AttemptUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AttemptUpdate) SetMode(v attempt.Mode) *AttemptUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableMode(v *attempt.Mode) *AttemptUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AttemptUpdate) SetTask(v *Task) *AttemptUpdate {
	return _u.SetTaskID(v.ID)
}

// SetStudent sets the "student" edge to the Profile entity.
func (_u *AttemptUpdate) SetStudent(v *Profile) *AttemptUpdate {
	return _u.SetStudentID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the AttemptAnswer entity by IDs.
func (_u *AttemptUpdate) AddAnswerIDs(ids ...int) *AttemptUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the AttemptAnswer entity.
func (_u *AttemptUpdate) AddAnswers(v ...*AttemptAnswer) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AttemptUpdate) ClearTask() *AttemptUpdate {
	_u.mutation.ClearTask()
	return _u
}

// ClearStudent clears the "student" edge to the Profile entity.
func (_u *AttemptUpdate) ClearStudent() *AttemptUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// ClearAnswers clears all "answers" edges to the AttemptAnswer entity.
func (_u *AttemptUpdate) ClearAnswers() *AttemptUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to AttemptAnswer entities by IDs.
func (_u *AttemptUpdate) RemoveAnswerIDs(ids ...int) *AttemptUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to AttemptAnswer entities.
func (_u *AttemptUpdate) RemoveAnswers(v ...*AttemptAnswer) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.TimeTaken(); ok {
		if err := attempt.TimeTakenValidator(v); err != nil {
			return &ValidationError{Name: "time_taken", err: fmt.Errorf(`ent: validator failed for field "Attempt.time_taken": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := attempt.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Attempt.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := attempt.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Attempt.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := attempt.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Attempt.mode": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.task"`)
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.student"`)
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(attempt.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeTaken(); ok {
		_spec.SetField(attempt.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTaken(); ok {
		_spec.AddField(attempt.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(attempt.FieldGrade, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attempt.FieldMode, field.TypeEnum, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.TaskTable,
			Columns: []string{attempt.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.TaskTable,
			Columns: []string{attempt.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.StudentTable,
			Columns: []string{attempt.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.StudentTable,
			Columns: []string{attempt.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetTaskID sets the "task_id" field.
func (_u *AttemptUpdateOne) SetTaskID(v string) *AttemptUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTaskID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AttemptUpdateOne) SetStudentID(v string) *AttemptUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableStudentID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AttemptUpdateOne) SetStartedAt(v time.Time) *AttemptUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableStartedAt(v *time.Time) *AttemptUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdateOne) SetCompletedAt(v time.Time) *AttemptUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCompletedAt(v *time.Time) *AttemptUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdateOne) ClearCompletedAt() *AttemptUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTimeTaken sets the "time_taken" field.
func (_u *AttemptUpdateOne) SetTimeTaken(v int) *AttemptUpdateOne {
	_u.mutation.ResetTimeTaken()
	_u.mutation.SetTimeTaken(v)
	return _u
}

// SetNillableTimeTaken sets the "time_taken" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTimeTaken(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTimeTaken(*v)
	}
	return _u
}

// AddTimeTaken adds value to the "time_taken" field.
func (_u *AttemptUpdateOne) AddTimeTaken(v int) *AttemptUpdateOne {
	_u.mutation.AddTimeTaken(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdateOne) SetScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdateOne) AddScore(v int) *AttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *AttemptUpdateOne) SetGrade(v attempt.Grade) *AttemptUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableGrade(v *attempt.Grade) *AttemptUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *AttemptUpdateOne) SetMode(v attempt.Mode) *AttemptUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableMode(v *attempt.Mode) *AttemptUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AttemptUpdateOne) SetTask(v *Task) *AttemptUpdateOne {
	return _u.SetTaskID(v.ID)
}

// SetStudent sets the "student" edge to the Profile entity.
func (_u *AttemptUpdateOne) SetStudent(v *Profile) *AttemptUpdateOne {
	return _u.SetStudentID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the AttemptAnswer entity by IDs.
func (_u *AttemptUpdateOne) AddAnswerIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the AttemptAnswer entity.
func (_u *AttemptUpdateOne) AddAnswers(v ...*AttemptAnswer) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AttemptUpdateOne) ClearTask() *AttemptUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// ClearStudent clears the "student" edge to the Profile entity.
func (_u *AttemptUpdateOne) ClearStudent() *AttemptUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// ClearAnswers clears all "answers" edges to the AttemptAnswer entity.
func (_u *AttemptUpdateOne) ClearAnswers() *AttemptUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to AttemptAnswer entities by IDs.
func (_u *AttemptUpdateOne) RemoveAnswerIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to AttemptAnswer entities.
func (_u *AttemptUpdateOne) RemoveAnswers(v ...*AttemptAnswer) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.TimeTaken(); ok {
		if err := attempt.TimeTakenValidator(v); err != nil {
			return &ValidationError{Name: "time_taken", err: fmt.Errorf(`ent: validator failed for field "Attempt.time_taken": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := attempt.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "Attempt.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := attempt.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Attempt.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := attempt.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Attempt.mode": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.task"`)
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.student"`)
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(attempt.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TimeTaken(); ok {
		_spec.SetField(attempt.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTaken(); ok {
		_spec.AddField(attempt.FieldTimeTaken, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(attempt.FieldGrade, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(attempt.FieldMode, field.TypeEnum, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.TaskTable,
			Columns: []string{attempt.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.TaskTable,
			Columns: []string{attempt.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StudentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.StudentTable,
			Columns: []string{attempt.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.StudentTable,
			Columns: []string{attempt.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
