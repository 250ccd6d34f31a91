package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

const notePayload = `{"note":"Strong run. Practise 7×8 and 6×9.","practise":["7×8","6×9"]}`

func testNoteRequest() Request {
	return Request{
		System:    "You are an encouraging times-tables coach.",
		Prompt:    "Ella scored 18/20 on Sevens.",
		Schema:    noteSchema(),
		MaxTokens: 256,
	}
}

func serveJSON(t *testing.T, status int, body any, seen *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			b, _ := io.ReadAll(r.Body)
			*seen = string(b)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func newAnthropicAt(t *testing.T, url string) Provider {
	t.Helper()
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku"},
		option.WithBaseURL(url), option.WithMaxRetries(0))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestAnthropic(t *testing.T) {
	var body string
	srv := serveJSON(t, http.StatusOK, anthropicMessage(notePayload, "end_turn"), &body)
	p := newAnthropicAt(t, srv.URL)

	if p.ModelID() != "claude-haiku-4-5-20251001" {
		t.Errorf("alias not resolved: %q", p.ModelID())
	}
	resp, err := p.Generate(context.Background(), testNoteRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Usage.Total() != 80 || resp.StopReason != StopEnd {
		t.Errorf("usage %+v stop %q", resp.Usage, resp.StopReason)
	}
	if !strings.Contains(body, "Ella scored 18/20") || !strings.Contains(body, "encouraging times-tables coach") {
		t.Errorf("request body missing prompt: %s", body)
	}
}

func TestAnthropic_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		want   Kind
	}{
		{"rate limit", http.StatusTooManyRequests,
			map[string]any{"type": "error", "error": map[string]any{"type": "rate_limit_error", "message": "slow down"}}, KindRateLimit},
		{"server error", http.StatusInternalServerError,
			map[string]any{"type": "error", "error": map[string]any{"type": "api_error", "message": "boom"}}, KindUnavailable},
		{"truncated", http.StatusOK, anthropicMessage(`{"note":"Strong`, "max_tokens"), KindTruncated},
		{"off schema", http.StatusOK, anthropicMessage(`{"note":"hi"}`, "end_turn"), KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newAnthropicAt(t, serveJSON(t, tt.status, tt.body, nil).URL)
			_, err := p.Generate(context.Background(), testNoteRequest())
			if k, ok := KindOf(err); !ok || k != tt.want {
				t.Fatalf("err = %v, want kind %s", err, tt.want)
			}
		})
	}
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAI(t *testing.T) {
	var body string
	srv := serveJSON(t, http.StatusOK, chatCompletion(notePayload, "stop"), &body)
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := p.Generate(context.Background(), testNoteRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Model != "gpt-4o-mini" || resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("unexpected response %+v", resp)
	}

	var sent struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
	if err := json.Unmarshal([]byte(body), &sent); err != nil {
		t.Fatalf("decode request: %v", err)
	}
	if len(sent.Messages) != 2 || sent.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("messages = %+v", sent.Messages)
	}
	if sent.ResponseFormat.Type != string(openai.ChatCompletionResponseFormatTypeJSONSchema) {
		t.Errorf("response format not requested: %s", body)
	}
}

func TestOpenAI_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		want   Kind
	}{
		{"rate limit", http.StatusTooManyRequests,
			map[string]any{"error": map[string]any{"message": "slow down", "type": "rate_limit"}}, KindRateLimit},
		{"bad gateway", http.StatusBadGateway,
			map[string]any{"error": map[string]any{"message": "upstream", "type": "server_error"}}, KindUnavailable},
		{"length", http.StatusOK, chatCompletion(`{"note":"Str`, "length"), KindTruncated},
		{"no choices", http.StatusOK, map[string]any{"id": "x", "object": "chat.completion", "choices": []any{}}, KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveJSON(t, tt.status, tt.body, nil)
			p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
			if err != nil {
				t.Fatal(err)
			}
			_, err = p.Generate(context.Background(), testNoteRequest())
			if k, ok := KindOf(err); !ok || k != tt.want {
				t.Fatalf("err = %v, want kind %s", err, tt.want)
			}
		})
	}
}

func TestOpenRouter(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x/y"}); err == nil {
		t.Error("expected error without a key")
	}
	if _, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k"}); err == nil {
		t.Error("expected error without a model")
	}

	srv := serveJSON(t, http.StatusOK, chatCompletion(notePayload, "stop"), nil)
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "anthropic/claude-3-haiku", BaseURL: srv.URL})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "anthropic/claude-3-haiku" {
		t.Errorf("slug changed: %q", p.ModelID())
	}
	if _, err := p.Generate(context.Background(), testNoteRequest()); err != nil {
		t.Errorf("generate: %v", err)
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(noteSchema().Definition)

	if s.Type != genai.TypeObject || len(s.Properties) != 3 {
		t.Fatalf("root = %s with %d properties", s.Type, len(s.Properties))
	}
	if s.Properties["practise"].Type != genai.TypeArray || s.Properties["practise"].Items.Type != genai.TypeString {
		t.Errorf("practise = %+v", s.Properties["practise"])
	}
	if got := s.Properties["tone"].Enum; len(got) != 2 || got[0] != "cheer" {
		t.Errorf("tone enum = %v", got)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name    string
		aliases map[string]string
		want    string
	}{
		{"claude-sonnet", anthropicAliases, "claude-sonnet-4-20250514"},
		{"gemini-flash", geminiAliases, "gemini-2.0-flash"},
		{"gpt-mini", openaiAliases, "gpt-4o-mini"},
		{"gpt-4.1-nano", openaiAliases, "gpt-4.1-nano"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, tt.aliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
