// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcoach/ent/attempt"
	"github.com/abhisek/mathcoach/ent/profile"
	"github.com/abhisek/mathcoach/ent/task"
	"github.com/abhisek/mathcoach/internal/problemgen"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TaskCreate) SetTaskType(v string) *TaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTaskType(v *string) *TaskCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetCreatorID sets the "creator_id" field.
func (_c *TaskCreate) SetCreatorID(v string) *TaskCreate {
	_c.mutation.SetCreatorID(v)
	return _c
}

// SetAssignedToID sets the "assigned_to_id" field.
func (_c *TaskCreate) SetAssignedToID(v string) *TaskCreate {
	_c.mutation.SetAssignedToID(v)
	return _c
}

// SetNillableAssignedToID sets the "assigned_to_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedToID(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssignedToID(*v)
	}
	return _c
}

// SetTimeLimit sets the "time_limit" field.
func (_c *TaskCreate) SetTimeLimit(v int) *TaskCreate {
	_c.mutation.SetTimeLimit(v)
	return _c
}

// SetPassScore sets the "pass_score" field.
func (_c *TaskCreate) SetPassScore(v int) *TaskCreate {
	_c.mutation.SetPassScore(v)
	return _c
}

// SetGoodScore sets the "good_score" field.
func (_c *TaskCreate) SetGoodScore(v int) *TaskCreate {
	_c.mutation.SetGoodScore(v)
	return _c
}

// SetMasterScore sets the "master_score" field.
func (_c *TaskCreate) SetMasterScore(v int) *TaskCreate {
	_c.mutation.SetMasterScore(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *TaskCreate) SetQuestions(v problemgen.QuestionSet) *TaskCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *TaskCreate) SetConfig(v problemgen.TaskConfig) *TaskCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *TaskCreate) SetIsActive(v bool) *TaskCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIsActive(v *bool) *TaskCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableID(v *string) *TaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCreator sets the "creator" edge to the Profile entity.
func (_c *TaskCreate) SetCreator(v *Profile) *TaskCreate {
	return _c.SetCreatorID(v.ID)
}

// SetAssigneeID sets the "assignee" edge to the Profile entity by ID.
func (_c *TaskCreate) SetAssigneeID(id string) *TaskCreate {
	_c.mutation.SetAssigneeID(id)
	return _c
}

// SetNillableAssigneeID sets the "assignee" edge to the Profile entity by ID if the given value is not nil.
func (_c *TaskCreate) SetNillableAssigneeID(id *string) *TaskCreate {
	if id != nil {
		_c = _c.SetAssigneeID(*id)
	}
	return _c
}

// SetAssignee sets the "assignee" edge to the Profile entity.
func (_c *TaskCreate) SetAssignee(v *Profile) *TaskCreate {
	return _c.SetAssigneeID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_c *TaskCreate) AddAttemptIDs(ids ...string) *TaskCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_c *TaskCreate) AddAttempts(v ...*Attempt) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		v := task.DefaultTaskType
		_c.mutation.SetTaskType(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := task.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := task.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "Task.task_type"`)}
	}
	if _, ok := _c.mutation.CreatorID(); !ok {
		return &ValidationError{Name: "creator_id", err: errors.New(`ent: missing required field "Task.creator_id"`)}
	}
	if _, ok := _c.mutation.TimeLimit(); !ok {
		return &ValidationError{Name: "time_limit", err: errors.New(`ent: missing required field "Task.time_limit"`)}
	}
	if v, ok := _c.mutation.TimeLimit(); ok {
		if err := task.TimeLimitValidator(v); err != nil {
			return &ValidationError{Name: "time_limit", err: fmt.Errorf(`ent: validator failed for field "Task.time_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PassScore(); !ok {
		return &ValidationError{Name: "pass_score", err: errors.New(`ent: missing required field "Task.pass_score"`)}
	}
	if v, ok := _c.mutation.PassScore(); ok {
		if err := task.PassScoreValidator(v); err != nil {
			return &ValidationError{Name: "pass_score", err: fmt.Errorf(`ent: validator failed for field "Task.pass_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoodScore(); !ok {
		return &ValidationError{Name: "good_score", err: errors.New(`ent: missing required field "Task.good_score"`)}
	}
	if v, ok := _c.mutation.GoodScore(); ok {
		if err := task.GoodScoreValidator(v); err != nil {
			return &ValidationError{Name: "good_score", err: fmt.Errorf(`ent: validator failed for field "Task.good_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasterScore(); !ok {
		return &ValidationError{Name: "master_score", err: errors.New(`ent: missing required field "Task.master_score"`)}
	}
	if v, ok := _c.mutation.MasterScore(); ok {
		if err := task.MasterScoreValidator(v); err != nil {
			return &ValidationError{Name: "master_score", err: fmt.Errorf(`ent: validator failed for field "Task.master_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "Task.questions"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "Task.config"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Task.is_active"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := task.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Task.id": %w`, err)}
		}
	}
	if len(_c.mutation.CreatorIDs()) == 0 {
		return &ValidationError{Name: "creator", err: errors.New(`ent: missing required edge "Task.creator"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.TimeLimit(); ok {
		_spec.SetField(task.FieldTimeLimit, field.TypeInt, value)
		_node.TimeLimit = value
	}
	if value, ok := _c.mutation.PassScore(); ok {
		_spec.SetField(task.FieldPassScore, field.TypeInt, value)
		_node.PassScore = value
	}
	if value, ok := _c.mutation.GoodScore(); ok {
		_spec.SetField(task.FieldGoodScore, field.TypeInt, value)
		_node.GoodScore = value
	}
	if value, ok := _c.mutation.MasterScore(); ok {
		_spec.SetField(task.FieldMasterScore, field.TypeInt, value)
		_node.MasterScore = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(task.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(task.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(task.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if nodes := _c.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.CreatorTable,
			Columns: []string{task.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CreatorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssigneeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AssignedToID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AttemptsTable,
			Columns: []string{task.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
