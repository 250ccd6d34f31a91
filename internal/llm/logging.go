package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/store"
)

type purposeKey struct{}

// WithPurpose labels requests made with ctx in the event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unlabelled".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unlabelled"
}

type recording struct {
	next   Provider
	vendor string
	events store.EventRepo
	log    *logger.Logger
}

// WithLogging stores one LLM request event per call, successful or not.
// Failures to record are logged to log, or to logger.Default() when nil.
func WithLogging(p Provider, vendor string, events store.EventRepo, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Default()
	}
	return &recording{next: p, vendor: vendor, events: events, log: log}
}

func (r *recording) ModelID() string { return r.next.ModelID() }

func (r *recording) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.next.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    r.vendor,
		Model:       r.next.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		var e *Error
		if errors.As(err, &e) {
			ev.ResponseBody = string(e.Content)
		}
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}

	if logErr := r.events.AppendLLMRequest(context.WithoutCancel(ctx), ev); logErr != nil {
		r.log.Test("LLM event not recorded", "purpose", ev.Purpose, "err", logErr)
	}
	return resp, err
}

// transcript renders a request for the event log.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", req.Prompt)
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}

type deadline struct {
	next Provider
	d    time.Duration
}

// WithTimeout bounds every call, retries included when it wraps WithRetry.
func WithTimeout(p Provider, d time.Duration) Provider {
	return &deadline{next: p, d: d}
}

func (t *deadline) ModelID() string { return t.next.ModelID() }

func (t *deadline) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.next.Generate(ctx, req)
}
