// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcoach/ent/attempt"
	"github.com/abhisek/mathcoach/ent/attemptanswer"
	"github.com/abhisek/mathcoach/ent/predicate"
)

// AttemptAnswerUpdate is the builder for updating AttemptAnswer entities.
type AttemptAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptAnswerMutation
}

// Where appends a list predicates to the AttemptAnswerUpdate builder.
func (_u *AttemptAnswerUpdate) Where(ps ...predicate.AttemptAnswer) *AttemptAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptAnswerUpdate) SetAttemptID(v string) *AttemptAnswerUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptAnswerUpdate) SetNillableAttemptID(v *string) *AttemptAnswerUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AttemptAnswerUpdate) SetQuestionIndex(v int) *AttemptAnswerUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AttemptAnswerUpdate) SetNillableQuestionIndex(v *int) *AttemptAnswerUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AttemptAnswerUpdate) AddQuestionIndex(v int) *AttemptAnswerUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptAnswerUpdate) SetUserAnswer(v int) *AttemptAnswerUpdate {
	_u.mutation.ResetUserAnswer()
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptAnswerUpdate) SetNillableUserAnswer(v *int) *AttemptAnswerUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// AddUserAnswer adds value to the "user_answer" field.
func (_u *AttemptAnswerUpdate) AddUserAnswer(v int) *AttemptAnswerUpdate {
	_u.mutation.AddUserAnswer(v)
	return _u
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (_u *AttemptAnswerUpdate) ClearUserAnswer() *AttemptAnswerUpdate {
	_u.mutation.ClearUserAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptAnswerUpdate) SetIsCorrect(v bool) *AttemptAnswerUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptAnswerUpdate) SetNillableIsCorrect(v *bool) *AttemptAnswerUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_u *AttemptAnswerUpdate) SetAttempt(v *Attempt) *AttemptAnswerUpdate {
	return _u.SetAttemptID(v.ID)
}

// Mutation returns the AttemptAnswerMutation object of the builder.
func (_u *AttemptAnswerUpdate) Mutation() *AttemptAnswerMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (_u *AttemptAnswerUpdate) ClearAttempt() *AttemptAnswerUpdate {
	_u.mutation.ClearAttempt()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptAnswerUpdate) check() error {
	if v, ok := _u.mutation.QuestionIndex(); ok {
		if err := attemptanswer.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "AttemptAnswer.question_index": %w`, err)}
		}
	}
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AttemptAnswer.attempt"`)
	}
	return nil
}

func (_u *AttemptAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptanswer.Table, attemptanswer.Columns, sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(attemptanswer.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(attemptanswer.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptanswer.FieldUserAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserAnswer(); ok {
		_spec.AddField(attemptanswer.FieldUserAnswer, field.TypeInt, value)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(attemptanswer.FieldUserAnswer, field.TypeInt)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptanswer.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.AttemptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attemptanswer.AttemptTable,
			Columns: []string{attemptanswer.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attemptanswer.AttemptTable,
			Columns: []string{attemptanswer.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptAnswerUpdateOne is the builder for updating a single AttemptAnswer entity.
type AttemptAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptAnswerMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptAnswerUpdateOne) SetAttemptID(v string) *AttemptAnswerUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptAnswerUpdateOne) SetNillableAttemptID(v *string) *AttemptAnswerUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *AttemptAnswerUpdateOne) SetQuestionIndex(v int) *AttemptAnswerUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *AttemptAnswerUpdateOne) SetNillableQuestionIndex(v *int) *AttemptAnswerUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *AttemptAnswerUpdateOne) AddQuestionIndex(v int) *AttemptAnswerUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptAnswerUpdateOne) SetUserAnswer(v int) *AttemptAnswerUpdateOne {
	_u.mutation.ResetUserAnswer()
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptAnswerUpdateOne) SetNillableUserAnswer(v *int) *AttemptAnswerUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// AddUserAnswer adds value to the "user_answer" field.
func (_u *AttemptAnswerUpdateOne) AddUserAnswer(v int) *AttemptAnswerUpdateOne {
	_u.mutation.AddUserAnswer(v)
	return _u
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (_u *AttemptAnswerUpdateOne) ClearUserAnswer() *AttemptAnswerUpdateOne {
	_u.mutation.ClearUserAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptAnswerUpdateOne) SetIsCorrect(v bool) *AttemptAnswerUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptAnswerUpdateOne) SetNillableIsCorrect(v *bool) *AttemptAnswerUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_u *AttemptAnswerUpdateOne) SetAttempt(v *Attempt) *AttemptAnswerUpdateOne {
	return _u.SetAttemptID(v.ID)
}

// Mutation returns the AttemptAnswerMutation object of the builder.
func (_u *AttemptAnswerUpdateOne) Mutation() *AttemptAnswerMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (_u *AttemptAnswerUpdateOne) ClearAttempt() *AttemptAnswerUpdateOne {
	_u.mutation.ClearAttempt()
	return _u
}

// Where appends a list predicates to the AttemptAnswerUpdate builder.
func (_u *AttemptAnswerUpdateOne) Where(ps ...predicate.AttemptAnswer) *AttemptAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptAnswerUpdateOne) Select(field string, fields ...string) *AttemptAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptAnswer entity.
func (_u *AttemptAnswerUpdateOne) Save(ctx context.Context) (*AttemptAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptAnswerUpdateOne) SaveX(ctx context.Context) *AttemptAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptAnswerUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionIndex(); ok {
		if err := attemptanswer.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "AttemptAnswer.question_index": %w`, err)}
		}
	}
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AttemptAnswer.attempt"`)
	}
	return nil
}

func (_u *AttemptAnswerUpdateOne) sqlSave(ctx context.Context) (_node *AttemptAnswer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptanswer.Table, attemptanswer.Columns, sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptanswer.FieldID)
		for _, f := range fields {
			if !attemptanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptanswer.FieldID {
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
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(attemptanswer.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(attemptanswer.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptanswer.FieldUserAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserAnswer(); ok {
		_spec.AddField(attemptanswer.FieldUserAnswer, field.TypeInt, value)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(attemptanswer.FieldUserAnswer, field.TypeInt)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptanswer.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.AttemptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attemptanswer.AttemptTable,
			Columns: []string{attemptanswer.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attemptanswer.AttemptTable,
			Columns: []string{attemptanswer.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AttemptAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
