package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/coachnote"
	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/grading"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/reports"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	ps, err := s.tasks.Profiles(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toProfileViews(ps))
}

func (s *Server) handleSelectProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProfileID string `json:"profileId"`
	}
	if err := decode(r, &req); err != nil || req.ProfileID == "" {
		badRequest(w, "profileId required")
		return
	}
	p, err := s.tasks.Profile(r.Context(), req.ProfileID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ProfileCookie,
		Value:    p.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, toProfileView(*p))
}

func (s *Server) handleStudentTasks(w http.ResponseWriter, r *http.Request) {
	ts, err := s.tasks.StudentTasks(r.Context(), chi.URLParam(r, "studentID"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTaskViews(ts))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	rows, err := s.tasks.CoachDashboard(r.Context(), chi.URLParam(r, "coachID"))
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDashboard(rows))
}

type createTaskRequest struct {
	Title      string                 `json:"title"`
	CreatorID  string                 `json:"creatorId"`
	Assignees  []string               `json:"assignedToIds"`
	TimeLimit  int                    `json:"timeLimit"`
	Thresholds *grading.Thresholds    `json:"thresholds"`
	Layout     string                 `json:"layout"`
	Questions  problemgen.QuestionSet `json:"questions"`

	// Facts and Count generate the question set when Questions is empty.
	Facts []facts.Fact `json:"facts"`
	Count int          `json:"count"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, fmt.Sprintf("bad json: %v", err))
		return
	}

	in := tasks.CreateTaskInput{
		Title:     req.Title,
		CreatorID: requester(r, req.CreatorID),
		Assignees: req.Assignees,
		TimeLimit: req.TimeLimit,
		Questions: req.Questions,
		Config: problemgen.TaskConfig{
			SelectedFacts: req.Facts,
			Layout:        problemgen.Layout(req.Layout),
		},
	}
	if in.CreatorID == "" {
		badRequest(w, "creatorId required")
		return
	}
	if in.TimeLimit == 0 {
		in.TimeLimit = problemgen.DefaultTimeLimit
	}
	if len(in.Questions) == 0 && len(req.Facts) > 0 {
		count := req.Count
		if count == 0 {
			count = problemgen.DefaultCount
		}
		s.genMu.Lock()
		set, err := tasks.Generate(s.gen, tasks.GenerateInput{Facts: req.Facts, Count: count})
		s.genMu.Unlock()
		if err != nil {
			s.respondError(w, err)
			return
		}
		in.Questions = set
	}
	in.Config.QuestionCount = len(in.Questions)
	if req.Thresholds != nil {
		in.Thresholds = *req.Thresholds
	} else {
		in.Thresholds = grading.DefaultThresholds(len(in.Questions))
	}

	created, err := s.tasks.CreateTask(r.Context(), in)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTaskViews(created))
}

// handleGetTask returns a task with its questions. The creator sees answers;
// anyone else must be a student allowed to attempt it.
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")
	who := requester(r, r.URL.Query().Get("student"))
	if who == "" {
		badRequest(w, "student required")
		return
	}

	t, err := s.tasks.FindTask(r.Context(), taskID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if t.CreatorID == who {
		respondJSON(w, http.StatusOK, toTaskView(t, true, true))
		return
	}
	if t, err = s.tasks.OpenAttempt(r.Context(), who, taskID); err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTaskView(t, true, false))
}

func (s *Server) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RequesterID string `json:"requesterId"`
	}
	if r.ContentLength != 0 {
		if err := decode(r, &req); err != nil {
			badRequest(w, "bad json")
			return
		}
	}
	who := requester(r, req.RequesterID)
	if who == "" {
		badRequest(w, "requesterId required")
		return
	}
	if err := s.tasks.DeactivateTask(r.Context(), chi.URLParam(r, "taskID"), who); err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

type submitRequest struct {
	StudentID string            `json:"studentId"`
	Mode      string            `json:"mode"`
	StartedAt time.Time         `json:"startedAt"`
	TimeTaken int               `json:"timeTaken"`
	Answers   grading.AnswerMap `json:"answers"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, fmt.Sprintf("bad json: %v", err))
		return
	}
	mode, err := attempt.ParseMode(req.Mode)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	sub := attempt.Submission{
		TaskID:    chi.URLParam(r, "taskID"),
		StudentID: requester(r, req.StudentID),
		Mode:      mode,
		StartedAt: req.StartedAt,
		TimeTaken: req.TimeTaken,
		Answers:   req.Answers,
	}
	if sub.StudentID == "" {
		badRequest(w, "studentId required")
		return
	}
	if sub.StartedAt.IsZero() {
		sub.StartedAt = time.Now().Add(-time.Duration(sub.TimeTaken) * time.Second)
	}

	out, err := s.tasks.SubmitAttempt(r.Context(), sub)
	if err != nil {
		s.respondError(w, err)
		return
	}
	view := toOutcomeView(out)
	view.Note = s.note(r.Context(), sub, out)
	respondJSON(w, http.StatusCreated, view)
}

// note asks for a coach note. Failures only cost the note.
func (s *Server) note(ctx context.Context, sub attempt.Submission, out *attempt.Outcome) *noteView {
	if !s.notes.Enabled() {
		return nil
	}
	t, err := s.tasks.FindTask(ctx, sub.TaskID)
	if err != nil {
		return nil
	}
	p, err := s.tasks.Profile(ctx, sub.StudentID)
	if err != nil {
		return nil
	}
	n, err := s.notes.Write(ctx, coachnote.Input{
		StudentName: p.Name,
		TaskTitle:   t.Title,
		Mode:        sub.Mode,
		TimeLimit:   t.TimeLimit,
		Outcome:     *out,
	})
	if err != nil {
		s.log.Test("Coach note failed", "attempt", out.AttemptID, "error", err)
		return nil
	}
	return &noteView{Text: n.Text, Practise: n.Practise}
}

func (s *Server) buildReport(r *http.Request) (*reports.Report, error) {
	studentID := chi.URLParam(r, "studentID")
	taskID := r.URL.Query().Get("task")
	if coachID := r.URL.Query().Get("coach"); coachID != "" {
		return s.reports.BuildForCoach(r.Context(), coachID, studentID, taskID)
	}
	return s.reports.Build(r.Context(), studentID, taskID)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.buildReport(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toReportView(rep))
}

func (s *Server) handleReportXLSX(w http.ResponseWriter, r *http.Request) {
	rep, err := s.buildReport(r)
	if err != nil {
		s.respondError(w, err)
		return
	}
	filename := fmt.Sprintf("report_%s.xlsx", rep.StudentName)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := reports.WriteXLSX(w, rep); err != nil {
		s.log.Prd("Report export failed", "student", rep.StudentID, "error", err)
	}
}

func (s *Server) handleLLMEvents(w http.ResponseWriter, r *http.Request) {
	if s.events == nil {
		respondJSON(w, http.StatusNotFound, errorBody{Error: "llm events unavailable"})
		return
	}
	opts := store.QueryOpts{Limit: 50}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			badRequest(w, "limit must be a non-negative integer")
			return
		}
		opts.Limit = n
	}
	recs, err := s.events.QueryLLMEvents(r.Context(), opts)
	if err != nil {
		s.respondError(w, err)
		return
	}
	out := make([]llmEventView, len(recs))
	for i, e := range recs {
		out[i] = llmEventView{
			ID:           e.ID,
			Timestamp:    e.Timestamp,
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
		}
	}
	respondJSON(w, http.StatusOK, out)
}
