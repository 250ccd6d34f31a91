package api

import (
	"time"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/reports"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

type profileView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Role      store.Role `json:"role"`
	CoachID   string     `json:"coachId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toProfileView(p store.Profile) profileView {
	return profileView{ID: p.ID, Name: p.Name, Role: p.Role, CoachID: p.CoachID, CreatedAt: p.CreatedAt}
}

func toProfileViews(ps []store.Profile) []profileView {
	out := make([]profileView, len(ps))
	for i, p := range ps {
		out[i] = toProfileView(p)
	}
	return out
}

// questionView omits the answer unless the viewer created the task.
type questionView struct {
	ID       string `json:"id"`
	Operand1 int    `json:"operand1"`
	Operand2 int    `json:"operand2"`
	Answer   *int   `json:"answer,omitempty"`
}

type taskView struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	TaskType      string             `json:"taskType"`
	CreatorID     string             `json:"creatorId"`
	AssignedToID  string             `json:"assignedToId,omitempty"`
	TimeLimit     int                `json:"timeLimit"`
	Thresholds    grading.Thresholds `json:"thresholds"`
	QuestionCount int                `json:"questionCount"`
	SelectedFacts []facts.Fact       `json:"selectedFacts,omitempty"`
	Layout        string             `json:"layout"`
	Mode          string             `json:"mode,omitempty"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	Questions     []questionView     `json:"questions,omitempty"`
}

func toTaskView(t *store.Task, withQuestions, withAnswers bool) taskView {
	v := taskView{
		ID:            t.ID,
		Title:         t.Title,
		TaskType:      t.TaskType,
		CreatorID:     t.CreatorID,
		AssignedToID:  t.AssignedToID,
		TimeLimit:     t.TimeLimit,
		Thresholds:    t.Thresholds,
		QuestionCount: len(t.Questions),
		SelectedFacts: t.Config.SelectedFacts,
		Layout:        string(t.Config.LayoutOrDefault()),
		Mode:          t.Config.Mode,
		IsActive:      t.IsActive,
		CreatedAt:     t.CreatedAt,
	}
	if withQuestions {
		v.Questions = make([]questionView, len(t.Questions))
		for i, q := range t.Questions {
			v.Questions[i] = questionView{ID: q.ID, Operand1: q.Operand1, Operand2: q.Operand2}
			if withAnswers {
				v.Questions[i].Answer = grading.Int(q.Answer)
			}
		}
	}
	return v
}

func toTaskViews(ts []*store.Task) []taskView {
	out := make([]taskView, len(ts))
	for i, t := range ts {
		out[i] = toTaskView(t, false, false)
	}
	return out
}

type dashboardEntry struct {
	Student profileView `json:"student"`
	Tasks   []taskView  `json:"tasks"`
}

func toDashboard(rows []tasks.StudentWithTasks) []dashboardEntry {
	out := make([]dashboardEntry, len(rows))
	for i, r := range rows {
		out[i] = dashboardEntry{Student: toProfileView(r.Student), Tasks: toTaskViews(r.Tasks)}
	}
	return out
}

type noteView struct {
	Text     string   `json:"text"`
	Practise []string `json:"practise,omitempty"`
}

type outcomeView struct {
	AttemptID string         `json:"attemptId"`
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	Percent   int            `json:"percent"`
	Grade     grading.Tier   `json:"grade"`
	GradeText string         `json:"gradeLabel"`
	TimeTaken int            `json:"timeTaken"`
	Breakdown []grading.Line `json:"breakdown"`
	Note      *noteView      `json:"note,omitempty"`
}

func toOutcomeView(o *attempt.Outcome) outcomeView {
	return outcomeView{
		AttemptID: o.AttemptID,
		Score:     o.Score,
		Total:     o.Total,
		Percent:   o.Percent(),
		Grade:     o.Tier,
		GradeText: o.Tier.Label(),
		TimeTaken: o.TimeTaken,
		Breakdown: o.Breakdown,
	}
}

type attemptView struct {
	ID        string       `json:"id"`
	Mode      string       `json:"mode"`
	StartedAt time.Time    `json:"startedAt"`
	TimeTaken int          `json:"timeTaken"`
	Score     int          `json:"score"`
	Grade     grading.Tier `json:"grade"`
}

type taskReportView struct {
	TaskID    string        `json:"taskId"`
	Title     string        `json:"title"`
	Active    bool          `json:"isActive"`
	Total     int           `json:"total"`
	Best      int           `json:"bestPercent"`
	PassPct   int           `json:"passPercent"`
	GoodPct   int           `json:"goodPercent"`
	MasterPct int           `json:"masterPercent"`
	Trend     string        `json:"trend"`
	Attempts  []attemptView `json:"attempts"`
}

type reportView struct {
	StudentID   string           `json:"studentId"`
	StudentName string           `json:"studentName"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Tasks       []taskReportView `json:"tasks"`
}

func toReportView(r *reports.Report) reportView {
	v := reportView{
		StudentID:   r.StudentID,
		StudentName: r.StudentName,
		GeneratedAt: r.GeneratedAt,
		Tasks:       make([]taskReportView, len(r.Tasks)),
	}
	for i := range r.Tasks {
		t := &r.Tasks[i]
		tv := taskReportView{
			TaskID:    t.TaskID,
			Title:     t.Title,
			Active:    t.Active,
			Total:     t.Total,
			Best:      t.Best(),
			PassPct:   t.PassPct,
			GoodPct:   t.GoodPct,
			MasterPct: t.MasterPct,
			Trend:     reports.Sparkline(t.Trend, 20),
			Attempts:  make([]attemptView, len(t.Attempts)),
		}
		for j, a := range t.Attempts {
			tv.Attempts[j] = attemptView{
				ID:        a.ID,
				Mode:      a.Mode,
				StartedAt: a.StartedAt,
				TimeTaken: a.TimeTaken,
				Score:     a.Score,
				Grade:     a.Grade,
			}
		}
		v.Tasks[i] = tv
	}
	return v
}

type llmEventView struct {
	ID           int       `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Purpose      string    `json:"purpose"`
	InputTokens  int       `json:"inputTokens"`
	OutputTokens int       `json:"outputTokens"`
	LatencyMs    int64     `json:"latencyMs"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}
