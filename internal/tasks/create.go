package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/store"
)

// CreateTaskInput describes a new task. An empty Assignees list creates a
// single self-owned task; otherwise one task is created per assignee.
type CreateTaskInput struct {
	Title      string                 `json:"title"`
	CreatorID  string                 `json:"creatorId"`
	Assignees  []string               `json:"assignedToIds"`
	TimeLimit  int                    `json:"timeLimit"`
	Thresholds grading.Thresholds     `json:"thresholds"`
	Questions  problemgen.QuestionSet `json:"questions"`
	Config     problemgen.TaskConfig  `json:"config"`
}

// CreateTask validates in and stores one task per assignee in a single
// transaction. Each record gets its own copy of the question set.
func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) ([]*store.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("title", "task title is required")
	}
	if len(in.Questions) == 0 {
		return nil, invalid("questions", "task must have at least one question")
	}
	if in.TimeLimit <= 0 {
		return nil, invalid("timeLimit", "must be positive, got %d", in.TimeLimit)
	}
	if err := in.Thresholds.Validate(len(in.Questions)); err != nil {
		return nil, &ValidationError{Field: "thresholds", Message: err.Error(), Err: err}
	}

	var allowed []facts.Fact
	if len(in.Config.SelectedFacts) > 0 {
		allowed = in.Config.SelectedFacts
	}
	if err := problemgen.Validate(in.Questions, allowed); err != nil {
		return nil, &ValidationError{Field: "questions", Message: err.Error(), Err: err}
	}

	cfg := in.Config
	if cfg.Layout == "" {
		cfg.Layout = problemgen.LayoutVertical
	} else if _, err := problemgen.ParseLayout(string(cfg.Layout)); err != nil {
		return nil, &ValidationError{Field: "layout", Message: err.Error(), Err: err}
	}
	if cfg.Mode != "" {
		if _, err := attempt.ParseMode(cfg.Mode); err != nil {
			return nil, &ValidationError{Field: "mode", Message: err.Error(), Err: err}
		}
	}
	if cfg.QuestionCount == 0 {
		cfg.QuestionCount = len(in.Questions)
	}

	creator, err := s.profiles.Get(ctx, in.CreatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("creator %q: %w", in.CreatorID, ErrNotFound)
		}
		return nil, err
	}

	assignees, err := s.checkAssignees(ctx, creator, in.Assignees)
	if err != nil {
		return nil, err
	}

	var batch []store.NewTask
	newTask := func(assignee string) store.NewTask {
		c := cfg
		c.SelectedFacts = append([]facts.Fact(nil), cfg.SelectedFacts...)
		return store.NewTask{
			Title:        title,
			CreatorID:    creator.ID,
			AssignedToID: assignee,
			TimeLimit:    in.TimeLimit,
			Thresholds:   in.Thresholds,
			Questions:    in.Questions.Clone(),
			Config:       c,
		}
	}
	if len(assignees) == 0 {
		batch = append(batch, newTask(""))
	}
	for _, id := range assignees {
		batch = append(batch, newTask(id))
	}

	created, err := s.tasks.CreateMany(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	for _, t := range created {
		assigned := t.AssignedToID
		if assigned == "" {
			assigned = "self"
		}
		s.log.Prd("Task created",
			"id", t.ID,
			"creator", t.CreatorID,
			"assignedTo", assigned,
			"questions", len(t.Questions))
	}
	return created, nil
}

// checkAssignees deduplicates ids and verifies the creator may assign to
// each of them.
func (s *Service) checkAssignees(ctx context.Context, creator *store.Profile, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if creator.Role != store.RoleCoach {
		return nil, &AuthorizationError{Action: "assign tasks as a student"}
	}

	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		p, err := s.profiles.Get(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("assignee %q: %w", id, ErrNotFound)
			}
			return nil, err
		}
		if p.Role != store.RoleStudent || p.CoachID != creator.ID {
			return nil, &AuthorizationError{Action: fmt.Sprintf("assign tasks to %s", p.Name)}
		}
		out = append(out, id)
	}
	return out, nil
}

// GenerateInput describes a task built from a fact selection rather than an
// explicit question list.
type GenerateInput struct {
	Facts []facts.Fact
	Count int
}

// Generate builds a question set for a task form or CLI invocation, turning
// generator failures into validation errors.
func Generate(gen *problemgen.Generator, in GenerateInput) (problemgen.QuestionSet, error) {
	set, err := gen.Generate(in.Facts, in.Count)
	if err != nil {
		var ve *problemgen.ValidationError
		if errors.As(err, &ve) {
			return nil, &ValidationError{Field: ve.Field, Message: ve.Message, Err: err}
		}
		return nil, err
	}
	return set, nil
}
