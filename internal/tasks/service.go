// Package tasks implements task and attempt persistence rules on top of the
// store: access checks, grading on submit, task creation and deactivation.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/store"
)

// Service coordinates the profile, task and attempt repositories.
type Service struct {
	profiles store.ProfileRepo
	tasks    store.TaskRepo
	attempts store.AttemptRepo
	log      *logger.Logger
	now      func() time.Time
}

var _ attempt.Submitter = (*Service)(nil)

// NewService creates a Service. A nil logger discards output.
func NewService(profiles store.ProfileRepo, tasks store.TaskRepo, attempts store.AttemptRepo, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		profiles: profiles,
		tasks:    tasks,
		attempts: attempts,
		log:      log,
		now:      time.Now,
	}
}

// FromStore creates a Service backed by st's repositories.
func FromStore(st *store.Store, log *logger.Logger) *Service {
	return NewService(st.ProfileRepo(), st.TaskRepo(), st.AttemptRepo(), log)
}

// FindTask returns the task or ErrNotFound.
func (s *Service) FindTask(ctx context.Context, taskID string) (*store.Task, error) {
	if taskID == "" {
		return nil, ErrNotFound
	}
	return s.tasks.Get(ctx, taskID)
}

// OpenAttempt returns the task a student is about to attempt. The student
// must exist, the task must be active, and the student must be its assignee
// or the creator of an unassigned task. Every failure is ErrNotFound.
func (s *Service) OpenAttempt(ctx context.Context, studentID, taskID string) (*store.Task, error) {
	t, err := s.accessibleTask(ctx, studentID, taskID)
	if err != nil {
		return nil, err
	}
	if !t.IsActive {
		return nil, ErrNotFound
	}
	return t, nil
}

// AttemptConfig builds the attempt configuration for a student's run of t.
// A task with a configured mode skips mode selection.
func AttemptConfig(t *store.Task, studentID string) attempt.Config {
	cfg := attempt.Config{
		TaskID:    t.ID,
		StudentID: studentID,
		Questions: t.Questions.Clone(),
		TimeLimit: t.TimeLimit,
	}
	if m, err := attempt.ParseMode(t.Config.Mode); err == nil {
		cfg.FixedMode = m
	}
	return cfg
}

// CanAccess reports whether studentID may attempt t.
func CanAccess(t *store.Task, studentID string) bool {
	if t.AssignedToID != "" {
		return t.AssignedToID == studentID
	}
	return t.CreatorID == studentID
}

func (s *Service) accessibleTask(ctx context.Context, studentID, taskID string) (*store.Task, error) {
	if studentID == "" || taskID == "" {
		return nil, ErrNotFound
	}
	p, err := s.profiles.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if p.Role != store.RoleStudent {
		return nil, ErrNotFound
	}
	t, err := s.tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !CanAccess(t, studentID) {
		return nil, ErrNotFound
	}
	return t, nil
}

// SubmitAttempt grades sub against the stored question set and persists the
// attempt with its per-question rows in one transaction. A deactivated task
// still accepts the submission of an attempt that was already open.
func (s *Service) SubmitAttempt(ctx context.Context, sub attempt.Submission) (*attempt.Outcome, error) {
	t, err := s.accessibleTask(ctx, sub.StudentID, sub.TaskID)
	if err != nil {
		return nil, err
	}
	if sub.TimeTaken < 0 {
		return nil, invalid("timeTaken", "must not be negative")
	}

	result := grading.Grade(t.Questions, sub.Answers, t.Thresholds)
	lines := grading.Breakdown(t.Questions, sub.Answers)

	rows := make([]store.AttemptAnswer, len(lines))
	for i, l := range lines {
		rows[i] = store.AttemptAnswer{
			QuestionIndex: l.Index,
			UserAnswer:    l.UserAnswer,
			IsCorrect:     l.IsCorrect,
		}
	}

	started := sub.StartedAt
	if started.IsZero() {
		started = s.now()
	}
	mode := ""
	if sub.Mode != attempt.ModeUnselected {
		mode = sub.Mode.String()
	}

	saved, err := s.attempts.Save(ctx, store.Attempt{
		TaskID:      t.ID,
		StudentID:   sub.StudentID,
		Mode:        mode,
		StartedAt:   started,
		CompletedAt: s.now(),
		TimeTaken:   sub.TimeTaken,
		Score:       result.Score,
		Grade:       result.Tier,
	}, rows)
	if err != nil {
		return nil, fmt.Errorf("submit attempt: %w", err)
	}

	s.log.Prd("Attempt saved",
		"attemptId", saved.ID,
		"task", t.ID,
		"student", sub.StudentID,
		"score", fmt.Sprintf("%d/%d", result.Score, result.Total),
		"grade", string(result.Tier))

	return &attempt.Outcome{
		AttemptID: saved.ID,
		Result:    result,
		TimeTaken: sub.TimeTaken,
		Breakdown: lines,
	}, nil
}

// DeactivateTask soft-deactivates a task. Only its creator may do this.
func (s *Service) DeactivateTask(ctx context.Context, taskID, requesterID string) error {
	t, err := s.FindTask(ctx, taskID)
	if err != nil {
		return err
	}
	if t.CreatorID != requesterID {
		return &AuthorizationError{Action: "deactivate a task created by someone else"}
	}
	if err := s.tasks.SetActive(ctx, taskID, false); err != nil {
		return fmt.Errorf("deactivate task: %w", err)
	}
	s.log.Prd("Task deactivated", "id", taskID, "by", requesterID)
	return nil
}

// StudentTasks returns the student's active tasks: assigned to them or
// created by them without an assignee. Newest first.
func (s *Service) StudentTasks(ctx context.Context, studentID string) ([]*store.Task, error) {
	if _, err := s.profiles.Get(ctx, studentID); err != nil {
		return nil, err
	}
	return s.tasks.ForStudent(ctx, studentID, true)
}

// StudentWithTasks pairs a student with their active tasks.
type StudentWithTasks struct {
	Student store.Profile
	Tasks   []*store.Task
}

// CoachDashboard returns each of the coach's students, in name order, with
// their active tasks.
func (s *Service) CoachDashboard(ctx context.Context, coachID string) ([]StudentWithTasks, error) {
	coach, err := s.profiles.Get(ctx, coachID)
	if err != nil {
		return nil, err
	}
	if coach.Role != store.RoleCoach {
		return nil, ErrNotFound
	}
	students, err := s.profiles.StudentsOf(ctx, coachID)
	if err != nil {
		return nil, err
	}
	out := make([]StudentWithTasks, 0, len(students))
	for _, st := range students {
		list, err := s.tasks.ForStudent(ctx, st.ID, true)
		if err != nil {
			return nil, err
		}
		out = append(out, StudentWithTasks{Student: st, Tasks: list})
	}
	return out, nil
}

// CreatedTasks returns every task a profile created, including inactive ones.
func (s *Service) CreatedTasks(ctx context.Context, creatorID string) ([]*store.Task, error) {
	return s.tasks.CreatedBy(ctx, creatorID, false)
}

// Profiles lists every profile, coaches first.
func (s *Service) Profiles(ctx context.Context) ([]store.Profile, error) {
	return s.profiles.List(ctx)
}

// Profile returns one profile or ErrNotFound.
func (s *Service) Profile(ctx context.Context, id string) (*store.Profile, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return s.profiles.Get(ctx, id)
}

// Students returns a coach's students in name order.
func (s *Service) Students(ctx context.Context, coachID string) ([]store.Profile, error) {
	return s.profiles.StudentsOf(ctx, coachID)
}

// Seed creates the demo coach and students if they do not exist yet.
// It is safe to run repeatedly.
func (s *Service) Seed(ctx context.Context) ([]store.Profile, error) {
	coach, err := s.ensureProfile(ctx, store.NewProfile{Name: "Coach", Role: store.RoleCoach})
	if err != nil {
		return nil, err
	}
	out := []store.Profile{*coach}
	for _, name := range []string{"Ella", "Nathan"} {
		p, err := s.ensureProfile(ctx, store.NewProfile{Name: name, Role: store.RoleStudent, CoachID: coach.ID})
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *Service) ensureProfile(ctx context.Context, np store.NewProfile) (*store.Profile, error) {
	p, err := s.profiles.FindByName(ctx, np.Name, np.Role)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("seed %s: %w", np.Name, err)
	}
	p, err = s.profiles.Create(ctx, np)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", np.Name, err)
	}
	s.log.Dev("Seeded profile", "name", p.Name, "role", string(p.Role), "id", p.ID)
	return p, nil
}
