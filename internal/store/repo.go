package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// Role is a profile's role.
type Role string

const (
	RoleCoach   Role = "COACH"
	RoleStudent Role = "STUDENT"
)

// Profile is a coach or student.
type Profile struct {
	ID        string
	Name      string
	Role      Role
	CoachID   string // empty when the profile has no coach
	CreatedAt time.Time
}

// NewProfile is the input for ProfileRepo.Create.
type NewProfile struct {
	Name    string
	Role    Role
	CoachID string
}

// Task is a stored quiz with its frozen question set.
type Task struct {
	ID           string
	Title        string
	TaskType     string
	CreatorID    string
	AssignedToID string // empty for self-owned tasks
	TimeLimit    int
	Thresholds   grading.Thresholds
	Questions    problemgen.QuestionSet
	Config       problemgen.TaskConfig
	IsActive     bool
	CreatedAt    time.Time
}

// Unassigned reports whether the task is self-owned by its creator.
func (t *Task) Unassigned() bool {
	return t.AssignedToID == ""
}

// NewTask is the input for TaskRepo.CreateMany.
type NewTask struct {
	Title        string
	CreatorID    string
	AssignedToID string
	TimeLimit    int
	Thresholds   grading.Thresholds
	Questions    problemgen.QuestionSet
	Config       problemgen.TaskConfig
}

// Attempt is a persisted, graded attempt.
type Attempt struct {
	ID          string
	TaskID      string
	StudentID   string
	Mode        string
	StartedAt   time.Time
	CompletedAt time.Time
	TimeTaken   int
	Score       int
	Grade       grading.Tier
}

// AttemptAnswer is one per-question row of an attempt.
type AttemptAnswer struct {
	QuestionIndex int
	UserAnswer    *int
	IsCorrect     bool
}

// ProfileRepo manages coach and student profiles.
type ProfileRepo interface {
	Create(ctx context.Context, p NewProfile) (*Profile, error)

	// Get returns ErrNotFound when the profile does not exist.
	Get(ctx context.Context, id string) (*Profile, error)

	// FindByName returns the first profile with the name and role, or
	// ErrNotFound.
	FindByName(ctx context.Context, name string, role Role) (*Profile, error)

	// List returns every profile, coaches first, then by name.
	List(ctx context.Context) ([]Profile, error)

	// StudentsOf returns a coach's students ordered by name.
	StudentsOf(ctx context.Context, coachID string) ([]Profile, error)
}

// TaskRepo manages tasks.
type TaskRepo interface {
	// CreateMany inserts every task in one transaction.
	CreateMany(ctx context.Context, tasks []NewTask) ([]*Task, error)

	// Get returns ErrNotFound when the task does not exist.
	Get(ctx context.Context, id string) (*Task, error)

	// SetActive flips the soft deactivation flag.
	SetActive(ctx context.Context, id string, active bool) error

	// ForStudent returns tasks the student can attempt: assigned to them, or
	// created by them without an assignee. Newest first.
	ForStudent(ctx context.Context, studentID string, activeOnly bool) ([]*Task, error)

	// CreatedBy returns tasks created by a profile. Newest first.
	CreatedBy(ctx context.Context, creatorID string, activeOnly bool) ([]*Task, error)
}

// AttemptRepo persists graded attempts.
type AttemptRepo interface {
	// Save stores the attempt and its answers atomically. The returned
	// attempt carries its assigned ID.
	Save(ctx context.Context, a Attempt, answers []AttemptAnswer) (*Attempt, error)

	// ForStudent returns a student's completed attempts, oldest first,
	// optionally limited to one task.
	ForStudent(ctx context.Context, studentID, taskID string) ([]Attempt, error)

	// Answers returns an attempt's rows ordered by question index.
	Answers(ctx context.Context, attemptID string) ([]AttemptAnswer, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns ErrNotFound when the event does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// PruneLLMEvents deletes events older than before and returns the count.
	PruneLLMEvents(ctx context.Context, before time.Time) (int, error)
}
