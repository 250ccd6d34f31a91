// Package llm is a small client over the hosted chat models used for coach
// notes. Every vendor is reached through Provider; decorators add retries,
// deadlines and event logging.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured completion per call.
type Provider interface {
	// Generate sends req and returns the model's output. When req.Schema is
	// set the output has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the configured model identifier.
	ModelID() string
}

// Request is a single-turn prompt.
type Request struct {
	System string
	Prompt string

	// Schema, when set, asks the vendor for JSON output and is used to
	// validate what comes back. Without it Content is the raw reply text.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the vendor default
}

// Schema is a named JSON Schema.
type Schema struct {
	// Name keys the compiled-schema cache and is sent to vendors that want
	// a schema name. Kebab-case, e.g. "coach-note".
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons, normalized across vendors.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is a completed generation.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // model that served the request
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is input plus output tokens.
func (u Usage) Total() int { return u.InputTokens + u.OutputTokens }

// backend is one vendor API. It translates a Request into the vendor's wire
// call and maps the reply back without judging its content.
type backend interface {
	complete(ctx context.Context, req Request) (*Response, error)
	model() string
}

// vendorProvider adapts a backend to Provider. Truncation and schema checks
// live here so each backend only deals with its SDK.
type vendorProvider struct {
	b backend
}

func (v vendorProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := v.b.complete(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Model == "" {
		resp.Model = v.b.model()
	}
	if req.Schema == nil {
		return resp, nil
	}
	// Truncated JSON never validates; report the real cause.
	if resp.StopReason == StopMaxTokens {
		return nil, &Error{Kind: KindTruncated, Content: resp.Content}
	}
	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}

func (v vendorProvider) ModelID() string { return v.b.model() }

// resolveModel maps a friendly alias to a vendor model ID. Unknown names
// are taken as model IDs.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
