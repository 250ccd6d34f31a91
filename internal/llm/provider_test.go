package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestStub(t *testing.T) {
	stub := NewStub(
		Reply{Content: json.RawMessage(`{"note":"Great work"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		Reply{Err: &Error{Kind: KindRateLimit}},
	)

	resp, err := stub.Generate(context.Background(), Request{Prompt: "first"})
	if err != nil {
		t.Fatalf("first reply: %v", err)
	}
	if string(resp.Content) != `{"note":"Great work"}` || resp.Usage.Total() != 15 || resp.StopReason != StopEnd {
		t.Errorf("first reply = %+v", resp)
	}

	_, err = stub.Generate(context.Background(), Request{Prompt: "second"})
	if k, ok := KindOf(err); !ok || k != KindRateLimit {
		t.Errorf("second reply err = %v", err)
	}

	_, err = stub.Generate(context.Background(), Request{Prompt: "third"})
	if k, ok := KindOf(err); !ok || k != KindUnavailable {
		t.Errorf("exhausted script err = %v", err)
	}

	stub.Push(Reply{Content: json.RawMessage(`"late"`)})
	if _, err := stub.Generate(context.Background(), Request{}); err != nil {
		t.Errorf("pushed reply: %v", err)
	}

	reqs := stub.Requests()
	if len(reqs) != 4 || reqs[0].Prompt != "first" || reqs[2].Prompt != "third" {
		t.Errorf("requests = %+v", reqs)
	}
}

type fixedBackend struct {
	resp *Response
}

func (f fixedBackend) complete(context.Context, Request) (*Response, error) {
	r := *f.resp
	return &r, nil
}

func (fixedBackend) model() string { return "fixed-1" }

func TestVendorProvider(t *testing.T) {
	good := json.RawMessage(`{"note":"ok","practise":["7×8"]}`)

	p := vendorProvider{fixedBackend{&Response{Content: good, StopReason: StopEnd}}}
	resp, err := p.Generate(context.Background(), Request{Schema: noteSchema()})
	if err != nil {
		t.Fatalf("valid reply: %v", err)
	}
	if resp.Model != "fixed-1" {
		t.Errorf("model defaulted to %q", resp.Model)
	}

	p = vendorProvider{fixedBackend{&Response{Content: json.RawMessage(`{"note":`), StopReason: StopMaxTokens}}}
	_, err = p.Generate(context.Background(), Request{Schema: noteSchema()})
	if k, _ := KindOf(err); k != KindTruncated {
		t.Errorf("truncated reply err = %v", err)
	}

	// Without a schema the raw text is handed back as is.
	p = vendorProvider{fixedBackend{&Response{Content: json.RawMessage(`plain words`), StopReason: StopMaxTokens}}}
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Errorf("schemaless reply: %v", err)
	}
}

func TestErrorKinds(t *testing.T) {
	wrapped := fmt.Errorf("coach note: %w", &Error{Kind: KindInvalid, Err: errors.New("missing note")})
	if k, ok := KindOf(wrapped); !ok || k != KindInvalid {
		t.Errorf("KindOf(wrapped) = %v, %v", k, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("plain error reported a kind")
	}
	if got := wrapped.Error(); got != "coach note: llm: invalid response: missing note" {
		t.Errorf("message = %q", got)
	}
	if k, _ := KindOf(fromStatus(http.StatusTooManyRequests, nil)); k != KindRateLimit {
		t.Error("429 not a rate limit")
	}
	if k, _ := KindOf(fromStatus(http.StatusServiceUnavailable, nil)); k != KindUnavailable {
		t.Error("503 not unavailable")
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unlabelled" {
		t.Fatalf("unset purpose = %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "coach-note")); p != "coach-note" {
		t.Fatalf("purpose = %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"disabled", Config{}, false},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("nothing set is disabled", func(t *testing.T) {
		cfg := configFromEnv(envMap(nil))
		if cfg.Enabled() {
			t.Fatalf("expected disabled config, got provider %q", cfg.Provider)
		}
	})

	t.Run("explicit provider", func(t *testing.T) {
		cfg := configFromEnv(envMap(map[string]string{
			"MATHCOACH_LLM_PROVIDER":     "openai",
			"MATHCOACH_OPENAI_API_KEY":   "sk-1",
			"MATHCOACH_OPENAI_MODEL":     "gpt-4o",
			"MATHCOACH_LLM_TIMEOUT":      "5s",
			"MATHCOACH_LLM_MAX_ATTEMPTS": "4",
			"GEMINI_API_KEY":             "ignored",
		}))
		if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-1" || cfg.OpenAI.Model != "gpt-4o" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if cfg.Timeout != 5*time.Second {
			t.Errorf("timeout = %s, want 5s", cfg.Timeout)
		}
		if cfg.Retry.MaxAttempts != 4 {
			t.Errorf("max attempts = %d, want 4", cfg.Retry.MaxAttempts)
		}
	})

	t.Run("discovers vendor key", func(t *testing.T) {
		cfg := configFromEnv(envMap(map[string]string{
			"OPENAI_API_KEY":    "sk-o",
			"ANTHROPIC_API_KEY": "sk-a",
		}))
		if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "sk-o" {
			t.Fatalf("expected openai discovery, got %+v", cfg)
		}
	})

	t.Run("bad timeout keeps default", func(t *testing.T) {
		cfg := configFromEnv(envMap(map[string]string{
			"MATHCOACH_LLM_PROVIDER": "gemini",
			"MATHCOACH_LLM_TIMEOUT":  "soon",
		}))
		if cfg.Timeout != DefaultConfig().Timeout {
			t.Errorf("timeout = %s, want default", cfg.Timeout)
		}
	})
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{}, nil, nil)
	if err != nil || p != nil {
		t.Fatalf("disabled config: got (%v, %v), want (nil, nil)", p, err)
	}

	if _, err := NewProvider(ctx, Config{Provider: ProviderOpenAI}, nil, nil); err == nil {
		t.Fatal("expected error for missing key")
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-or"
	p, err = NewProvider(ctx, cfg, nil, nil)
	if err != nil {
		t.Fatalf("openrouter: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("model = %q", p.ModelID())
	}
}

func TestEstimateCost(t *testing.T) {
	cost, ok := EstimateCost("gpt-4o-mini", 1_000_000, 1_000_000)
	if !ok {
		t.Fatal("expected known model")
	}
	if cost < 0.749 || cost > 0.751 {
		t.Errorf("cost = %f, want 0.75", cost)
	}
	if _, ok := EstimateCost("nope", 1, 1); ok {
		t.Error("expected unknown model")
	}
}
