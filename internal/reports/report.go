// Package reports builds per-student attempt history with score trends
// against each task's grade thresholds.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/store"
)

// Point is one attempt on a task's trend line.
type Point struct {
	Attempt  int       `json:"attempt"` // 1-based
	Date     time.Time `json:"date"`
	ScorePct int       `json:"scorePct"`
}

// TaskReport is the history of one task.
type TaskReport struct {
	Task      *store.Task     `json:"-"`
	TaskID    string          `json:"taskId"`
	Title     string          `json:"title"`
	Active    bool            `json:"active"`
	Total     int             `json:"total"`
	Attempts  []store.Attempt `json:"-"`
	Trend     []Point         `json:"trend"`
	PassPct   int             `json:"passPct"`
	GoodPct   int             `json:"goodPct"`
	MasterPct int             `json:"masterPct"`
}

// Best returns the highest score percentage, or -1 with no attempts.
func (r *TaskReport) Best() int {
	best := -1
	for _, p := range r.Trend {
		if p.ScorePct > best {
			best = p.ScorePct
		}
	}
	return best
}

// Latest returns the most recent attempt, or nil.
func (r *TaskReport) Latest() *store.Attempt {
	if len(r.Attempts) == 0 {
		return nil
	}
	return &r.Attempts[len(r.Attempts)-1]
}

// Report is a student's history across tasks.
type Report struct {
	Student     store.Profile `json:"-"`
	StudentID   string        `json:"studentId"`
	StudentName string        `json:"studentName"`
	Tasks       []TaskReport  `json:"tasks"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// AttemptCount sums attempts across every task.
func (r *Report) AttemptCount() int {
	n := 0
	for _, t := range r.Tasks {
		n += len(t.Attempts)
	}
	return n
}

// Builder assembles reports from the store.
type Builder struct {
	profiles store.ProfileRepo
	tasks    store.TaskRepo
	attempts store.AttemptRepo
	log      *logger.Logger
	now      func() time.Time
}

// NewBuilder creates a Builder. A nil logger discards output.
func NewBuilder(profiles store.ProfileRepo, tasks store.TaskRepo, attempts store.AttemptRepo, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Discard()
	}
	return &Builder{profiles: profiles, tasks: tasks, attempts: attempts, log: log, now: time.Now}
}

// FromStore creates a Builder backed by st's repositories.
func FromStore(st *store.Store, log *logger.Logger) *Builder {
	return NewBuilder(st.ProfileRepo(), st.TaskRepo(), st.AttemptRepo(), log)
}

// Build returns the report for every task visible to the student, including
// deactivated ones, newest task first. A non-empty taskID limits the report
// to that task.
func (b *Builder) Build(ctx context.Context, studentID, taskID string) (*Report, error) {
	student, err := b.profiles.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Role != store.RoleStudent {
		return nil, store.ErrNotFound
	}

	visible, err := b.tasks.ForStudent(ctx, studentID, false)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	attempts, err := b.attempts.ForStudent(ctx, studentID, taskID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	byTask := make(map[string][]store.Attempt)
	for _, a := range attempts {
		byTask[a.TaskID] = append(byTask[a.TaskID], a)
	}

	r := &Report{
		Student:     *student,
		StudentID:   student.ID,
		StudentName: student.Name,
		GeneratedAt: b.now(),
	}
	for _, t := range visible {
		if taskID != "" && t.ID != taskID {
			continue
		}
		r.Tasks = append(r.Tasks, taskReport(t, byTask[t.ID]))
	}
	if taskID != "" && len(r.Tasks) == 0 {
		return nil, store.ErrNotFound
	}

	b.log.Dev("Report loaded", "student", studentID, "attempts", len(attempts))
	return r, nil
}

// BuildForCoach is Build restricted to students of coachID. Anyone else's
// student is reported as not found.
func (b *Builder) BuildForCoach(ctx context.Context, coachID, studentID, taskID string) (*Report, error) {
	student, err := b.profiles.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.CoachID == "" || student.CoachID != coachID {
		return nil, store.ErrNotFound
	}
	return b.Build(ctx, studentID, taskID)
}

func taskReport(t *store.Task, attempts []store.Attempt) TaskReport {
	total := len(t.Questions)
	tr := TaskReport{
		Task:      t,
		TaskID:    t.ID,
		Title:     t.Title,
		Active:    t.IsActive,
		Total:     total,
		Attempts:  attempts,
		PassPct:   grading.Percent(t.Thresholds.Pass, total),
		GoodPct:   grading.Percent(t.Thresholds.Good, total),
		MasterPct: grading.Percent(t.Thresholds.Master, total),
		Trend:     make([]Point, len(attempts)),
	}
	for i, a := range attempts {
		tr.Trend[i] = Point{
			Attempt:  i + 1,
			Date:     a.StartedAt,
			ScorePct: grading.Percent(a.Score, total),
		}
	}
	return tr
}
