package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathcoach/ent"
	"github.com/abhisek/mathcoach/ent/predicate"
	"github.com/abhisek/mathcoach/ent/task"
	"github.com/abhisek/mathcoach/internal/grading"
)

// taskRepo implements TaskRepo using the ent client.
type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) CreateMany(ctx context.Context, tasks []NewTask) ([]*Task, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	var created []*ent.Task
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		builders := make([]*ent.TaskCreate, len(tasks))
		for i, t := range tasks {
			c := tx.Task.Create().
				SetTitle(t.Title).
				SetCreatorID(t.CreatorID).
				SetTimeLimit(t.TimeLimit).
				SetPassScore(t.Thresholds.Pass).
				SetGoodScore(t.Thresholds.Good).
				SetMasterScore(t.Thresholds.Master).
				SetQuestions(t.Questions.Clone()).
				SetConfig(t.Config)
			if t.AssignedToID != "" {
				c.SetAssignedToID(t.AssignedToID)
			}
			builders[i] = c
		}
		var err error
		created, err = tx.Task.CreateBulk(builders...).Save(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	out := make([]*Task, len(created))
	for i, e := range created {
		out[i] = entTaskToTask(e)
	}
	return out, nil
}

func (r *taskRepo) Get(ctx context.Context, id string) (*Task, error) {
	e, err := r.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return entTaskToTask(e), nil
}

func (r *taskRepo) SetActive(ctx context.Context, id string, active bool) error {
	err := r.client.Task.UpdateOneID(id).
		SetIsActive(active).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *taskRepo) ForStudent(ctx context.Context, studentID string, activeOnly bool) ([]*Task, error) {
	preds := []predicate.Task{
		task.Or(
			task.AssignedToIDEQ(studentID),
			task.And(task.CreatorIDEQ(studentID), task.AssignedToIDIsNil()),
		),
	}
	if activeOnly {
		preds = append(preds, task.IsActiveEQ(true))
	}
	return r.query(ctx, preds)
}

func (r *taskRepo) CreatedBy(ctx context.Context, creatorID string, activeOnly bool) ([]*Task, error) {
	preds := []predicate.Task{task.CreatorIDEQ(creatorID)}
	if activeOnly {
		preds = append(preds, task.IsActiveEQ(true))
	}
	return r.query(ctx, preds)
}

func (r *taskRepo) query(ctx context.Context, preds []predicate.Task) ([]*Task, error) {
	rows, err := r.client.Task.Query().
		Where(preds...).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	out := make([]*Task, len(rows))
	for i, e := range rows {
		out[i] = entTaskToTask(e)
	}
	return out, nil
}

func entTaskToTask(e *ent.Task) *Task {
	t := &Task{
		ID:        e.ID,
		Title:     e.Title,
		TaskType:  e.TaskType,
		CreatorID: e.CreatorID,
		TimeLimit: e.TimeLimit,
		Thresholds: grading.Thresholds{
			Pass:   e.PassScore,
			Good:   e.GoodScore,
			Master: e.MasterScore,
		},
		Questions: e.Questions,
		Config:    e.Config,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
	if e.AssignedToID != nil {
		t.AssignedToID = *e.AssignedToID
	}
	return t
}

// withTx runs fn inside a transaction, rolling back on error or panic.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
