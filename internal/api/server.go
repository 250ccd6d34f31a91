// Package api exposes the task and report services as a JSON HTTP API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abhisek/mathcoach/internal/coachnote"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/reports"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
)

// ProfileCookie holds the id chosen through POST /api/profile/select.
const ProfileCookie = "profileId"

// Options configures a Server.
type Options struct {
	CORSOrigins []string
	Timeout     time.Duration

	// Notes, when enabled, adds a coach note to attempt responses.
	Notes *coachnote.Writer

	// Generator builds question sets for tasks created from a fact list.
	// A random generator is used when nil.
	Generator *problemgen.Generator
}

type Server struct {
	tasks   *tasks.Service
	reports *reports.Builder
	events  store.EventRepo
	notes   *coachnote.Writer
	log     *logger.Logger
	opts    Options

	genMu sync.Mutex
	gen   *problemgen.Generator
}

// New creates a Server. events may be nil, which disables /api/llm/events.
func New(svc *tasks.Service, rb *reports.Builder, events store.EventRepo, log *logger.Logger, opts Options) *Server {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Discard()
	}
	gen := opts.Generator
	if gen == nil {
		gen = problemgen.NewRandom()
	}
	return &Server{
		tasks:   svc,
		reports: rb,
		events:  events,
		notes:   opts.Notes,
		log:     log,
		opts:    opts,
		gen:     gen,
	}
}

// FromStore wires a Server over an opened store.
func FromStore(st *store.Store, log *logger.Logger, opts Options) *Server {
	return New(tasks.FromStore(st, log), reports.FromStore(st, log), st.EventRepo(), log, opts)
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.Timeout))

	if len(s.opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/profiles", s.handleProfiles)
		r.Post("/profile/select", s.handleSelectProfile)

		r.Get("/students/{studentID}/tasks", s.handleStudentTasks)
		r.Get("/students/{studentID}/report", s.handleReport)
		r.Get("/students/{studentID}/report.xlsx", s.handleReportXLSX)
		r.Get("/coaches/{coachID}/dashboard", s.handleDashboard)

		r.Post("/tasks", s.handleCreateTask)
		r.Route("/tasks/{taskID}", func(r chi.Router) {
			r.Get("/", s.handleGetTask)
			r.Post("/deactivate", s.handleDeactivate)
			r.Post("/attempts", s.handleSubmit)
		})

		r.Get("/llm/events", s.handleLLMEvents)
	})
	return r
}

// requester is the acting profile: the explicit value when given, else the
// profile cookie.
func requester(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c, err := r.Cookie(ProfileCookie); err == nil {
		return c.Value
	}
	return ""
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondError maps service errors onto status codes.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	var verr *tasks.ValidationError
	var aerr *tasks.AuthorizationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: verr.Error(), Field: verr.Field})
	case errors.As(err, &aerr):
		respondJSON(w, http.StatusForbidden, errorBody{Error: aerr.Error()})
	case errors.Is(err, store.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	default:
		s.log.Prd("Request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
