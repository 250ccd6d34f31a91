package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathcoach/internal/coachnote"
	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

type fixture struct {
	h      http.Handler
	coach  store.Profile
	ella   store.Profile
	nathan store.Profile
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	seeded, err := tasks.FromStore(st, nil).Seed(context.Background())
	require.NoError(t, err)

	if opts.Generator == nil {
		opts.Generator = problemgen.NewSeeded(7)
	}
	srv := FromStore(st, nil, opts)
	return &fixture{h: srv.Routes(), coach: seeded[0], ella: seeded[1], nathan: seeded[2]}
}

func (f *fixture) do(t *testing.T, method, path string, body any, as string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if as != "" {
		req.AddCookie(&http.Cookie{Name: ProfileCookie, Value: as})
	}
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// createForStudents creates a six-question task for Ella and Nathan and
// returns it keyed by assignee.
func (f *fixture) createForStudents(t *testing.T) map[string]taskView {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/tasks", map[string]any{
		"title":         "Sevens",
		"creatorId":     f.coach.ID,
		"assignedToIds": []string{f.ella.ID, f.nathan.ID},
		"timeLimit":     120,
		"facts":         [][]int{{7, 8}, {6, 7}},
		"count":         6,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeBody[[]taskView](t, rec)
	require.Len(t, created, 2)
	out := make(map[string]taskView, len(created))
	for _, tv := range created {
		out[tv.AssignedToID] = tv
	}
	return out
}

func TestHealthAndProfiles(t *testing.T) {
	f := newFixture(t, Options{})

	rec := f.do(t, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/profiles", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	profiles := decodeBody[[]profileView](t, rec)
	require.Len(t, profiles, 3)
	assert.Equal(t, store.RoleCoach, profiles[0].Role)
}

func TestSelectProfile(t *testing.T) {
	f := newFixture(t, Options{})

	rec := f.do(t, http.MethodPost, "/api/profile/select", map[string]string{"profileId": f.ella.ID}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, ProfileCookie, cookies[0].Name)
	assert.Equal(t, f.ella.ID, cookies[0].Value)

	rec = f.do(t, http.MethodPost, "/api/profile/select", map[string]string{"profileId": "nobody"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/profile/select", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTask(t *testing.T) {
	f := newFixture(t, Options{})
	byStudent := f.createForStudents(t)

	ella := byStudent[f.ella.ID]
	assert.Equal(t, "Sevens", ella.Title)
	assert.Equal(t, 6, ella.QuestionCount)
	assert.Equal(t, 120, ella.TimeLimit)
	assert.Equal(t, "vertical", ella.Layout)
	assert.Equal(t, 5, ella.Thresholds.Pass)
	assert.Equal(t, 5, ella.Thresholds.Good)
	assert.Equal(t, 6, ella.Thresholds.Master)
	assert.Empty(t, ella.Questions)
	assert.Contains(t, byStudent, f.nathan.ID)
	assert.NotEqual(t, ella.ID, byStudent[f.nathan.ID].ID)
}

func TestCreateTask_Errors(t *testing.T) {
	f := newFixture(t, Options{})

	tests := []struct {
		name string
		body map[string]any
		as   string
		want int
	}{
		{
			name: "missing title",
			body: map[string]any{"creatorId": f.coach.ID, "facts": [][]int{{2, 3}}},
			want: http.StatusBadRequest,
		},
		{
			name: "no questions or facts",
			body: map[string]any{"title": "x", "creatorId": f.coach.ID},
			want: http.StatusBadRequest,
		},
		{
			name: "student assigning",
			body: map[string]any{"title": "x", "facts": [][]int{{2, 3}}, "assignedToIds": []string{f.nathan.ID}},
			as:   f.ella.ID,
			want: http.StatusForbidden,
		},
		{
			name: "unknown creator",
			body: map[string]any{"title": "x", "creatorId": "ghost", "facts": [][]int{{2, 3}}},
			want: http.StatusNotFound,
		},
		{
			name: "no creator",
			body: map[string]any{"title": "x", "facts": [][]int{{2, 3}}},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown field",
			body: map[string]any{"title": "x", "creatorId": f.coach.ID, "bogus": 1},
			want: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/api/tasks", tt.body, tt.as)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestCreateTask_SelfOwnedViaCookie(t *testing.T) {
	f := newFixture(t, Options{})

	rec := f.do(t, http.MethodPost, "/api/tasks", map[string]any{
		"title": "My practice",
		"facts": [][]int{{3, 4}},
		"count": 3,
	}, f.ella.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[[]taskView](t, rec)
	require.Len(t, created, 1)
	assert.Equal(t, f.ella.ID, created[0].CreatorID)
	assert.Empty(t, created[0].AssignedToID)

	rec = f.do(t, http.MethodGet, "/api/students/"+f.ella.ID+"/tasks", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]taskView](t, rec), 1)
}

func TestGetTask_AccessRule(t *testing.T) {
	f := newFixture(t, Options{})
	ellaTask := f.createForStudents(t)[f.ella.ID]
	path := "/api/tasks/" + ellaTask.ID

	rec := f.do(t, http.MethodGet, path+"?student="+f.ella.ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	tv := decodeBody[taskView](t, rec)
	require.Len(t, tv.Questions, 6)
	for _, q := range tv.Questions {
		assert.Nil(t, q.Answer)
	}

	rec = f.do(t, http.MethodGet, path, nil, f.coach.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	tv = decodeBody[taskView](t, rec)
	require.NotNil(t, tv.Questions[0].Answer)
	assert.Equal(t, tv.Questions[0].Operand1*tv.Questions[0].Operand2, *tv.Questions[0].Answer)

	rec = f.do(t, http.MethodGet, path+"?student="+f.nathan.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/tasks/missing?student="+f.ella.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func (f *fixture) answerKey(t *testing.T, taskID string) []questionView {
	t.Helper()
	rec := f.do(t, http.MethodGet, "/api/tasks/"+taskID, nil, f.coach.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody[taskView](t, rec).Questions
}

func TestSubmitAttempt(t *testing.T) {
	f := newFixture(t, Options{})
	ellaTask := f.createForStudents(t)[f.ella.ID]

	answers := map[string]*int{}
	for i, q := range f.answerKey(t, ellaTask.ID) {
		if i == 0 {
			answers[q.ID] = nil
			continue
		}
		answers[q.ID] = q.Answer
	}

	rec := f.do(t, http.MethodPost, "/api/tasks/"+ellaTask.ID+"/attempts", map[string]any{
		"mode":      "test",
		"timeTaken": 75,
		"answers":   answers,
	}, f.ella.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	out := decodeBody[outcomeView](t, rec)
	assert.NotEmpty(t, out.AttemptID)
	assert.Equal(t, 5, out.Score)
	assert.Equal(t, 6, out.Total)
	assert.Equal(t, 83, out.Percent)
	assert.Equal(t, "good", string(out.Grade))
	assert.Equal(t, "Good", out.GradeText)
	assert.Equal(t, 75, out.TimeTaken)
	require.Len(t, out.Breakdown, 6)
	assert.Nil(t, out.Note)

	rec = f.do(t, http.MethodGet, "/api/students/"+f.ella.ID+"/report", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rep := decodeBody[reportView](t, rec)
	require.Len(t, rep.Tasks, 1)
	require.Len(t, rep.Tasks[0].Attempts, 1)
	assert.Equal(t, 83, rep.Tasks[0].Best)
	assert.Equal(t, "test", rep.Tasks[0].Attempts[0].Mode)
}

func TestSubmitAttempt_Errors(t *testing.T) {
	f := newFixture(t, Options{})
	ellaTask := f.createForStudents(t)[f.ella.ID]
	path := "/api/tasks/" + ellaTask.ID + "/attempts"

	rec := f.do(t, http.MethodPost, path, map[string]any{"mode": "sprint", "answers": map[string]int{}}, f.ella.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, path, map[string]any{"mode": "train", "timeTaken": -1}, f.ella.ID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, path, map[string]any{"mode": "train"}, f.nathan.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, path, map[string]any{"mode": "train"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAttempt_WithCoachNote(t *testing.T) {
	mock := llm.NewStub(llm.Reply{
		Content: json.RawMessage(`{"note":"Great work, Ella!","practise":["7×8"]}`),
	})
	f := newFixture(t, Options{Notes: coachnote.New(mock, coachnote.DefaultConfig())})
	ellaTask := f.createForStudents(t)[f.ella.ID]

	rec := f.do(t, http.MethodPost, "/api/tasks/"+ellaTask.ID+"/attempts", map[string]any{
		"mode":      "train",
		"timeTaken": 30,
		"answers":   map[string]*int{},
	}, f.ella.ID)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	out := decodeBody[outcomeView](t, rec)
	assert.Equal(t, 0, out.Score)
	require.NotNil(t, out.Note)
	assert.Equal(t, "Great work, Ella!", out.Note.Text)
	assert.Equal(t, []string{"7×8"}, out.Note.Practise)
	assert.Contains(t, mock.Requests()[0].Prompt, "Student: Ella")
}

func TestDeactivate(t *testing.T) {
	f := newFixture(t, Options{})
	ellaTask := f.createForStudents(t)[f.ella.ID]
	path := "/api/tasks/" + ellaTask.ID + "/deactivate"

	rec := f.do(t, http.MethodPost, path, nil, f.ella.ID)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPost, path, nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, path, map[string]string{"requesterId": f.coach.ID}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/tasks/"+ellaTask.ID+"?student="+f.ella.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/students/"+f.ella.ID+"/tasks", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]taskView](t, rec))
}

func TestDashboard(t *testing.T) {
	f := newFixture(t, Options{})
	f.createForStudents(t)

	rec := f.do(t, http.MethodGet, "/api/coaches/"+f.coach.ID+"/dashboard", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decodeBody[[]dashboardEntry](t, rec)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row.Tasks, 1)
	}

	rec = f.do(t, http.MethodGet, "/api/coaches/"+f.ella.ID+"/dashboard", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportXLSXAndCoachScope(t *testing.T) {
	f := newFixture(t, Options{})
	f.createForStudents(t)

	rec := f.do(t, http.MethodGet, "/api/students/"+f.ella.ID+"/report.xlsx", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report_Ella.xlsx")
	assert.NotZero(t, rec.Body.Len())

	rec = f.do(t, http.MethodGet, "/api/students/"+f.ella.ID+"/report?coach="+f.coach.ID, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/students/"+f.ella.ID+"/report?coach="+f.nathan.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/students/"+f.ella.ID+"/report?task=missing", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLLMEvents(t *testing.T) {
	f := newFixture(t, Options{})

	rec := f.do(t, http.MethodGet, "/api/llm/events?limit=5", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]llmEventView](t, rec))

	rec = f.do(t, http.MethodGet, "/api/llm/events?limit=x", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS(t *testing.T) {
	f := newFixture(t, Options{CORSOrigins: []string{"http://app.test"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/profiles", nil)
	req.Header.Set("Origin", "http://app.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)

	assert.Equal(t, "http://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
}
