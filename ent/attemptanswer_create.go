// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcoach/ent/attempt"
	"github.com/abhisek/mathcoach/ent/attemptanswer"
)

// AttemptAnswerCreate is the builder for creating a AttemptAnswer entity.
type AttemptAnswerCreate struct {
	config
	mutation *AttemptAnswerMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptAnswerCreate) SetAttemptID(v string) *AttemptAnswerCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetQuestionIndex sets the "question_index" field.
func (_c *AttemptAnswerCreate) SetQuestionIndex(v int) *AttemptAnswerCreate {
	_c.mutation.SetQuestionIndex(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *AttemptAnswerCreate) SetUserAnswer(v int) *AttemptAnswerCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_c *AttemptAnswerCreate) SetNillableUserAnswer(v *int) *AttemptAnswerCreate {
	if v != nil {
		_c.SetUserAnswer(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AttemptAnswerCreate) SetIsCorrect(v bool) *AttemptAnswerCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_c *AttemptAnswerCreate) SetAttempt(v *Attempt) *AttemptAnswerCreate {
	return _c.SetAttemptID(v.ID)
}

// Mutation returns the AttemptAnswerMutation object of the builder.
func (_c *AttemptAnswerCreate) Mutation() *AttemptAnswerMutation {
	return _c.mutation
}

// Save creates the AttemptAnswer in the database.
func (_c *AttemptAnswerCreate) Save(ctx context.Context) (*AttemptAnswer, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptAnswerCreate) SaveX(ctx context.Context) *AttemptAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptAnswerCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AttemptAnswer.attempt_id"`)}
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		return &ValidationError{Name: "question_index", err: errors.New(`ent: missing required field "AttemptAnswer.question_index"`)}
	}
	if v, ok := _c.mutation.QuestionIndex(); ok {
		if err := attemptanswer.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "AttemptAnswer.question_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "AttemptAnswer.is_correct"`)}
	}
	if len(_c.mutation.AttemptIDs()) == 0 {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required edge "AttemptAnswer.attempt"`)}
	}
	return nil
}

func (_c *AttemptAnswerCreate) sqlSave(ctx context.Context) (*AttemptAnswer, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptAnswerCreate) createSpec() (*AttemptAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptanswer.Table, sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionIndex(); ok {
		_spec.SetField(attemptanswer.FieldQuestionIndex, field.TypeInt, value)
		_node.QuestionIndex = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(attemptanswer.FieldUserAnswer, field.TypeInt, value)
		_node.UserAnswer = &value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(attemptanswer.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if nodes := _c.mutation.AttemptIDs(); len(nodes) > 0 {
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
		_node.AttemptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AttemptAnswerCreateBulk is the builder for creating many AttemptAnswer entities in bulk.
type AttemptAnswerCreateBulk struct {
	config
	err      error
	builders []*AttemptAnswerCreate
}

// Save creates the AttemptAnswer entities in the database.
func (_c *AttemptAnswerCreateBulk) Save(ctx context.Context) ([]*AttemptAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptAnswerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptAnswerCreateBulk) SaveX(ctx context.Context) []*AttemptAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
