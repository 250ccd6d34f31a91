// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathcoach/ent/attempt"
	"github.com/abhisek/mathcoach/ent/predicate"
	"github.com/abhisek/mathcoach/ent/profile"
	"github.com/abhisek/mathcoach/ent/task"
	"github.com/abhisek/mathcoach/internal/problemgen"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdate) SetTaskType(v string) *TaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskType(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *TaskUpdate) SetCreatorID(v string) *TaskUpdate {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCreatorID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// SetAssignedToID sets the "assigned_to_id" field.
func (_u *TaskUpdate) SetAssignedToID(v string) *TaskUpdate {
	_u.mutation.SetAssignedToID(v)
	return _u
}

// SetNillableAssignedToID sets the "assigned_to_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedToID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedToID(*v)
	}
	return _u
}

// ClearAssignedToID clears the value of the "assigned_to_id" field.
func (_u *TaskUpdate) ClearAssignedToID() *TaskUpdate {
	_u.mutation.ClearAssignedToID()
	return _u
}

// SetTimeLimit sets the "time_limit" field.
func (_u *TaskUpdate) SetTimeLimit(v int) *TaskUpdate {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTimeLimit(v *int) *TaskUpdate {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *TaskUpdate) AddTimeLimit(v int) *TaskUpdate {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// SetPassScore sets the "pass_score" field.
func (_u *TaskUpdate) SetPassScore(v int) *TaskUpdate {
	_u.mutation.ResetPassScore()
	_u.mutation.SetPassScore(v)
	return _u
}

// SetNillablePassScore sets the "pass_score" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePassScore(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPassScore(*v)
	}
	return _u
}

// AddPassScore adds value to the "pass_score" field.
func (_u *TaskUpdate) AddPassScore(v int) *TaskUpdate {
	_u.mutation.AddPassScore(v)
	return _u
}

// SetGoodScore sets the "good_score" field.
func (_u *TaskUpdate) SetGoodScore(v int) *TaskUpdate {
	_u.mutation.ResetGoodScore()
	_u.mutation.SetGoodScore(v)
	return _u
}

// SetNillableGoodScore sets the "good_score" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableGoodScore(v *int) *TaskUpdate {
	if v != nil {
		_u.SetGoodScore(*v)
	}
	return _u
}

// AddGoodScore adds value to the "good_score" field.
func (_u *TaskUpdate) AddGoodScore(v int) *TaskUpdate {
	_u.mutation.AddGoodScore(v)
	return _u
}

// SetMasterScore sets the "master_score" field.
func (_u *TaskUpdate) SetMasterScore(v int) *TaskUpdate {
	_u.mutation.ResetMasterScore()
	_u.mutation.SetMasterScore(v)
	return _u
}

// SetNillableMasterScore sets the "master_score" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMasterScore(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMasterScore(*v)
	}
	return _u
}

// AddMasterScore adds value to the "master_score" field.
func (_u *TaskUpdate) AddMasterScore(v int) *TaskUpdate {
	_u.mutation.AddMasterScore(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *TaskUpdate) SetQuestions(v problemgen.QuestionSet) *TaskUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *TaskUpdate) AppendQuestions(v problemgen.QuestionSet) *TaskUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *TaskUpdate) SetConfig(v problemgen.TaskConfig) *TaskUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableConfig(v *problemgen.TaskConfig) *TaskUpdate {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TaskUpdate) SetIsActive(v bool) *TaskUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIsActive(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreator sets the "creator" edge to the Profile entity.
func (_u *TaskUpdate) SetCreator(v *Profile) *TaskUpdate {
	return _u.SetCreatorID(v.ID)
}

// SetAssigneeID sets the "assignee" edge to the Profile entity by ID.
func (_u *TaskUpdate) SetAssigneeID(id string) *TaskUpdate {
	_u.mutation.SetAssigneeID(id)
	return _u
}

// SetNillableAssigneeID sets the "assignee" edge to the Profile entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssigneeID(id *string) *TaskUpdate {
	if id != nil {
		_u = _u.SetAssigneeID(*id)
	}
	return _u
}

// SetAssignee sets the "assignee" edge to the Profile entity.
func (_u *TaskUpdate) SetAssignee(v *Profile) *TaskUpdate {
	return _u.SetAssigneeID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *TaskUpdate) AddAttemptIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *TaskUpdate) AddAttempts(v ...*Attempt) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearCreator clears the "creator" edge to the Profile entity.
func (_u *TaskUpdate) ClearCreator() *TaskUpdate {
	_u.mutation.ClearCreator()
	return _u
}

// ClearAssignee clears the "assignee" edge to the Profile entity.
func (_u *TaskUpdate) ClearAssignee() *TaskUpdate {
	_u.mutation.ClearAssignee()
	return _u
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *TaskUpdate) ClearAttempts() *TaskUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *TaskUpdate) RemoveAttemptIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *TaskUpdate) RemoveAttempts(v ...*Attempt) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimit(); ok {
		if err := task.TimeLimitValidator(v); err != nil {
			return &ValidationError{Name: "time_limit", err: fmt.Errorf(`ent: validator failed for field "Task.time_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassScore(); ok {
		if err := task.PassScoreValidator(v); err != nil {
			return &ValidationError{Name: "pass_score", err: fmt.Errorf(`ent: validator failed for field "Task.pass_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoodScore(); ok {
		if err := task.GoodScoreValidator(v); err != nil {
			return &ValidationError{Name: "good_score", err: fmt.Errorf(`ent: validator failed for field "Task.good_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasterScore(); ok {
		if err := task.MasterScoreValidator(v); err != nil {
			return &ValidationError{Name: "master_score", err: fmt.Errorf(`ent: validator failed for field "Task.master_score": %w`, err)}
		}
	}
	if _u.mutation.CreatorCleared() && len(_u.mutation.CreatorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.creator"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeLimit(); ok {
		_spec.SetField(task.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(task.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassScore(); ok {
		_spec.SetField(task.FieldPassScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassScore(); ok {
		_spec.AddField(task.FieldPassScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoodScore(); ok {
		_spec.SetField(task.FieldGoodScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGoodScore(); ok {
		_spec.AddField(task.FieldGoodScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasterScore(); ok {
		_spec.SetField(task.FieldMasterScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasterScore(); ok {
		_spec.AddField(task.FieldMasterScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(task.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(task.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(task.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.CreatorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssigneeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssigneeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdateOne) SetTaskType(v string) *TaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskType(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *TaskUpdateOne) SetCreatorID(v string) *TaskUpdateOne {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCreatorID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// SetAssignedToID sets the "assigned_to_id" field.
func (_u *TaskUpdateOne) SetAssignedToID(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedToID(v)
	return _u
}

// SetNillableAssignedToID sets the "assigned_to_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedToID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedToID(*v)
	}
	return _u
}

// ClearAssignedToID clears the value of the "assigned_to_id" field.
func (_u *TaskUpdateOne) ClearAssignedToID() *TaskUpdateOne {
	_u.mutation.ClearAssignedToID()
	return _u
}

// SetTimeLimit sets the "time_limit" field.
func (_u *TaskUpdateOne) SetTimeLimit(v int) *TaskUpdateOne {
	_u.mutation.ResetTimeLimit()
	_u.mutation.SetTimeLimit(v)
	return _u
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTimeLimit(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetTimeLimit(*v)
	}
	return _u
}

// AddTimeLimit adds value to the "time_limit" field.
func (_u *TaskUpdateOne) AddTimeLimit(v int) *TaskUpdateOne {
	_u.mutation.AddTimeLimit(v)
	return _u
}

// SetPassScore sets the "pass_score" field.
func (_u *TaskUpdateOne) SetPassScore(v int) *TaskUpdateOne {
	_u.mutation.ResetPassScore()
	_u.mutation.SetPassScore(v)
	return _u
}

// SetNillablePassScore sets the "pass_score" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePassScore(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPassScore(*v)
	}
	return _u
}

// AddPassScore adds value to the "pass_score" field.
func (_u *TaskUpdateOne) AddPassScore(v int) *TaskUpdateOne {
	_u.mutation.AddPassScore(v)
	return _u
}

// SetGoodScore sets the "good_score" field.
func (_u *TaskUpdateOne) SetGoodScore(v int) *TaskUpdateOne {
	_u.mutation.ResetGoodScore()
	_u.mutation.SetGoodScore(v)
	return _u
}

// SetNillableGoodScore sets the "good_score" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableGoodScore(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetGoodScore(*v)
	}
	return _u
}

// AddGoodScore adds value to the "good_score" field.
func (_u *TaskUpdateOne) AddGoodScore(v int) *TaskUpdateOne {
	_u.mutation.AddGoodScore(v)
	return _u
}

// SetMasterScore sets the "master_score" field.
func (_u *TaskUpdateOne) SetMasterScore(v int) *TaskUpdateOne {
	_u.mutation.ResetMasterScore()
	_u.mutation.SetMasterScore(v)
	return _u
}

// SetNillableMasterScore sets the "master_score" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMasterScore(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMasterScore(*v)
	}
	return _u
}

// AddMasterScore adds value to the "master_score" field.
func (_u *TaskUpdateOne) AddMasterScore(v int) *TaskUpdateOne {
	_u.mutation.AddMasterScore(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *TaskUpdateOne) SetQuestions(v problemgen.QuestionSet) *TaskUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *TaskUpdateOne) AppendQuestions(v problemgen.QuestionSet) *TaskUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *TaskUpdateOne) SetConfig(v problemgen.TaskConfig) *TaskUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// SetNillableConfig sets the "config" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableConfig(v *problemgen.TaskConfig) *TaskUpdateOne {
	if v != nil {
		_u.SetConfig(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TaskUpdateOne) SetIsActive(v bool) *TaskUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIsActive(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreator sets the "creator" edge to the Profile entity.
func (_u *TaskUpdateOne) SetCreator(v *Profile) *TaskUpdateOne {
	return _u.SetCreatorID(v.ID)
}

// SetAssigneeID sets the "assignee" edge to the Profile entity by ID.
func (_u *TaskUpdateOne) SetAssigneeID(id string) *TaskUpdateOne {
	_u.mutation.SetAssigneeID(id)
	return _u
}

// SetNillableAssigneeID sets the "assignee" edge to the Profile entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssigneeID(id *string) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetAssigneeID(*id)
	}
	return _u
}

// SetAssignee sets the "assignee" edge to the Profile entity.
func (_u *TaskUpdateOne) SetAssignee(v *Profile) *TaskUpdateOne {
	return _u.SetAssigneeID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *TaskUpdateOne) AddAttemptIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *TaskUpdateOne) AddAttempts(v ...*Attempt) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearCreator clears the "creator" edge to the Profile entity.
func (_u *TaskUpdateOne) ClearCreator() *TaskUpdateOne {
	_u.mutation.ClearCreator()
	return _u
}

// ClearAssignee clears the "assignee" edge to the Profile entity.
func (_u *TaskUpdateOne) ClearAssignee() *TaskUpdateOne {
	_u.mutation.ClearAssignee()
	return _u
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *TaskUpdateOne) ClearAttempts() *TaskUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *TaskUpdateOne) RemoveAttemptIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *TaskUpdateOne) RemoveAttempts(v ...*Attempt) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := task.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Task.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimit(); ok {
		if err := task.TimeLimitValidator(v); err != nil {
			return &ValidationError{Name: "time_limit", err: fmt.Errorf(`ent: validator failed for field "Task.time_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PassScore(); ok {
		if err := task.PassScoreValidator(v); err != nil {
			return &ValidationError{Name: "pass_score", err: fmt.Errorf(`ent: validator failed for field "Task.pass_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoodScore(); ok {
		if err := task.GoodScoreValidator(v); err != nil {
			return &ValidationError{Name: "good_score", err: fmt.Errorf(`ent: validator failed for field "Task.good_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasterScore(); ok {
		if err := task.MasterScoreValidator(v); err != nil {
			return &ValidationError{Name: "master_score", err: fmt.Errorf(`ent: validator failed for field "Task.master_score": %w`, err)}
		}
	}
	if _u.mutation.CreatorCleared() && len(_u.mutation.CreatorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.creator"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeLimit(); ok {
		_spec.SetField(task.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimit(); ok {
		_spec.AddField(task.FieldTimeLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PassScore(); ok {
		_spec.SetField(task.FieldPassScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassScore(); ok {
		_spec.AddField(task.FieldPassScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GoodScore(); ok {
		_spec.SetField(task.FieldGoodScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGoodScore(); ok {
		_spec.AddField(task.FieldGoodScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasterScore(); ok {
		_spec.SetField(task.FieldMasterScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasterScore(); ok {
		_spec.AddField(task.FieldMasterScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(task.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(task.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(task.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.CreatorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssigneeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssigneeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
