package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedProfiles(t *testing.T, s *Store) (coach, student *Profile) {
	t.Helper()
	ctx := context.Background()
	coach, err := s.ProfileRepo().Create(ctx, NewProfile{Name: "Coach", Role: RoleCoach})
	if err != nil {
		t.Fatalf("create coach: %v", err)
	}
	student, err = s.ProfileRepo().Create(ctx, NewProfile{Name: "Ella", Role: RoleStudent, CoachID: coach.ID})
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	return coach, student
}

func sampleQuestions() problemgen.QuestionSet {
	return problemgen.QuestionSet{
		{ID: "q1", Operand1: 2, Operand2: 3, Answer: 6},
		{ID: "q2", Operand1: 4, Operand2: 5, Answer: 20},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// In-memory databases report journal_mode "memory", so WAL is
		// checked against a file database below.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mathcoach.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestIsPostgresDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{"postgres://u:p@localhost/db", true},
		{"postgresql://localhost/db", true},
		{"/tmp/mathcoach.db", false},
		{"file::memory:", false},
	}
	for _, tt := range tests {
		if got := IsPostgresDSN(tt.dsn); got != tt.want {
			t.Errorf("IsPostgresDSN(%q) = %v, want %v", tt.dsn, got, tt.want)
		}
	}
}

func TestIsFileURIDSN(t *testing.T) {
	for dsn, want := range map[string]bool{
		"file::memory:":           true,
		"file:quiz.db?mode=ro":    true,
		"":                        false,
		"fil":                     false,
		"/tmp/file:mathcoach.db":  false,
		"postgres://localhost/db": false,
	} {
		if got := IsFileURIDSN(dsn); got != want {
			t.Errorf("IsFileURIDSN(%q) = %v, want %v", dsn, got, want)
		}
	}
}

func TestDefaultDBPathFromEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "x", "m.db")
	t.Setenv("MATHCOACH_DB", want)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestProfiles(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	coach, student := seedProfiles(t, s)
	repo := s.ProfileRepo()

	got, err := repo.Get(ctx, student.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ella" || got.Role != RoleStudent || got.CoachID != coach.ID {
		t.Errorf("unexpected profile: %+v", got)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: got %v, want ErrNotFound", err)
	}

	found, err := repo.FindByName(ctx, "Coach", RoleCoach)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID != coach.ID {
		t.Errorf("find returned %s, want %s", found.ID, coach.ID)
	}
	if _, err := repo.FindByName(ctx, "Coach", RoleStudent); !errors.Is(err, ErrNotFound) {
		t.Errorf("find wrong role: got %v, want ErrNotFound", err)
	}

	if _, err := repo.Create(ctx, NewProfile{Name: "Nathan", Role: RoleStudent, CoachID: coach.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 profiles, got %d", len(all))
	}
	if all[0].Role != RoleCoach {
		t.Errorf("expected coach first, got %+v", all[0])
	}

	students, err := repo.StudentsOf(ctx, coach.ID)
	if err != nil {
		t.Fatalf("students: %v", err)
	}
	if len(students) != 2 || students[0].Name != "Ella" || students[1].Name != "Nathan" {
		t.Errorf("unexpected students: %+v", students)
	}
}

func TestTaskCreateAndVisibility(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	coach, student := seedProfiles(t, s)
	repo := s.TaskRepo()

	th := grading.DefaultThresholds(2)
	created, err := repo.CreateMany(ctx, []NewTask{
		{
			Title: "Assigned", CreatorID: coach.ID, AssignedToID: student.ID,
			TimeLimit: 600, Thresholds: th, Questions: sampleQuestions(),
			Config: problemgen.TaskConfig{QuestionCount: 2, Layout: problemgen.LayoutVertical},
		},
		{
			Title: "Own", CreatorID: student.ID,
			TimeLimit: 300, Thresholds: th, Questions: sampleQuestions(),
		},
		{
			Title: "Coach practice", CreatorID: coach.ID,
			TimeLimit: 300, Thresholds: th, Questions: sampleQuestions(),
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(created))
	}

	got, err := repo.Get(ctx, created[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TaskType != "multiplication" || !got.IsActive {
		t.Errorf("unexpected defaults: %+v", got)
	}
	if len(got.Questions) != 2 || got.Questions[1].Answer != 20 {
		t.Errorf("questions not round-tripped: %+v", got.Questions)
	}
	if got.Thresholds != th {
		t.Errorf("thresholds = %+v, want %+v", got.Thresholds, th)
	}
	if got.Config.Layout != problemgen.LayoutVertical {
		t.Errorf("layout = %q", got.Config.Layout)
	}

	visible, err := repo.ForStudent(ctx, student.ID, true)
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible tasks, got %d", len(visible))
	}
	for _, v := range visible {
		if v.Title == "Coach practice" {
			t.Error("coach's own task must not be visible to the student")
		}
	}

	if err := repo.SetActive(ctx, created[0].ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	visible, err = repo.ForStudent(ctx, student.ID, true)
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if len(visible) != 1 || visible[0].Title != "Own" {
		t.Errorf("unexpected active tasks: %+v", visible)
	}
	all, err := repo.ForStudent(ctx, student.ID, false)
	if err != nil {
		t.Fatalf("for student (all): %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected inactive task to remain listed, got %d", len(all))
	}

	mine, err := repo.CreatedBy(ctx, coach.ID, false)
	if err != nil {
		t.Fatalf("created by: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 coach tasks, got %d", len(mine))
	}

	if err := repo.SetActive(ctx, "missing", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("deactivate missing: got %v, want ErrNotFound", err)
	}
}

func TestAttemptSaveAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	coach, student := seedProfiles(t, s)

	tasks, err := s.TaskRepo().CreateMany(ctx, []NewTask{{
		Title: "T", CreatorID: coach.ID, AssignedToID: student.ID,
		TimeLimit: 60, Thresholds: grading.DefaultThresholds(2), Questions: sampleQuestions(),
	}})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	taskID := tasks[0].ID
	repo := s.AttemptRepo()

	start := time.Now().UTC().Truncate(time.Second)
	for i, score := range []int{1, 2} {
		ans := 6
		saved, err := repo.Save(ctx, Attempt{
			TaskID:      taskID,
			StudentID:   student.ID,
			Mode:        "test",
			StartedAt:   start.Add(time.Duration(i) * time.Minute),
			CompletedAt: start.Add(time.Duration(i)*time.Minute + 30*time.Second),
			TimeTaken:   30,
			Score:       score,
			Grade:       grading.TierPass,
		}, []AttemptAnswer{
			{QuestionIndex: 0, UserAnswer: &ans, IsCorrect: true},
			{QuestionIndex: 1, IsCorrect: false},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		if saved.ID == "" {
			t.Fatal("expected assigned attempt ID")
		}
	}

	attempts, err := repo.ForStudent(ctx, student.ID, taskID)
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].Score != 1 || attempts[1].Score != 2 {
		t.Errorf("attempts not oldest first: %+v", attempts)
	}

	answers, err := repo.Answers(ctx, attempts[0].ID)
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if answers[0].UserAnswer == nil || *answers[0].UserAnswer != 6 {
		t.Errorf("answer 0 = %v", answers[0].UserAnswer)
	}
	if answers[1].UserAnswer != nil {
		t.Errorf("skipped answer should be nil, got %d", *answers[1].UserAnswer)
	}
}

func TestAttemptSaveIsAtomic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	coach, student := seedProfiles(t, s)

	tasks, err := s.TaskRepo().CreateMany(ctx, []NewTask{{
		Title: "T", CreatorID: coach.ID, AssignedToID: student.ID,
		TimeLimit: 60, Thresholds: grading.DefaultThresholds(2), Questions: sampleQuestions(),
	}})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	now := time.Now()
	_, err = s.AttemptRepo().Save(ctx, Attempt{
		TaskID: tasks[0].ID, StudentID: student.ID,
		StartedAt: now, CompletedAt: now, Grade: grading.TierFail,
	}, []AttemptAnswer{
		{QuestionIndex: 0},
		{QuestionIndex: 0}, // violates the unique (attempt, index) constraint
	})
	if err == nil {
		t.Fatal("expected error for duplicate question index")
	}

	n, err := s.Client().Attempt.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected rollback to leave no attempts, found %d", n)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for _, purpose := range []string{"coach-note", "coach-note", "other"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-1",
			Purpose:      purpose,
			InputTokens:  10,
			OutputTokens: 5,
			LatencyMs:    42,
			Success:      true,
			RequestBody:  "prompt",
			ResponseBody: `{"note":"ok"}`,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Purpose != "other" {
		t.Errorf("expected newest first, got %q", events[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.RequestBody != "prompt" || got.ResponseBody != `{"note":"ok"}` {
		t.Errorf("bodies not stored: %+v", got)
	}
	if _, err := repo.GetLLMEvent(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: got %v, want ErrNotFound", err)
	}

	n, err := repo.PruneLLMEvents(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 3 {
		t.Errorf("pruned %d, want 3", n)
	}
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty after prune, got %d", len(events))
	}
}
