package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

var openaiAliases = map[string]string{
	"gpt-mini": "gpt-4o-mini",
	"gpt":      "gpt-4o",
}

// openaiBackend speaks the chat completions API. OpenRouter and other
// compatible gateways differ only in base URL.
type openaiBackend struct {
	client  *openai.Client
	modelID string
	vendor  string
}

// NewOpenAIProvider returns a Provider for OpenAI or a compatible API when
// cfg.BaseURL is set.
func NewOpenAIProvider(cfg OpenAIConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	return newChatProvider("openai", cfg.APIKey, cfg.BaseURL, resolveModel(cfg.Model, openaiAliases))
}

// NewOpenRouterProvider returns a Provider for OpenRouter. Model names are
// OpenRouter slugs such as "google/gemini-2.0-flash-exp" and pass through
// unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultOpenRouterBaseURL
	}
	return newChatProvider("openrouter", cfg.APIKey, base, cfg.Model)
}

func newChatProvider(vendor, key, baseURL, model string) (Provider, error) {
	if model == "" {
		return nil, fmt.Errorf("%s: model is required", vendor)
	}
	conf := openai.DefaultConfig(key)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	return vendorProvider{&openaiBackend{
		client:  openai.NewClientWithConfig(conf),
		modelID: model,
		vendor:  vendor,
	}}, nil
}

func (b *openaiBackend) model() string { return b.modelID }

func (b *openaiBackend) complete(ctx context.Context, req Request) (*Response, error) {
	var msgs []openai.ChatCompletionMessage
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	call := openai.ChatCompletionRequest{
		Model:               b.modelID,
		Messages:            msgs,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal schema %s: %w", b.vendor, req.Schema.Name, err)
		}
		call.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        req.Schema.Name,
				Description: req.Schema.Description,
				Schema:      json.RawMessage(def),
				Strict:      true,
			},
		}
	}

	out, err := b.client.CreateChatCompletion(ctx, call)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, fromStatus(apiErr.HTTPStatusCode, err)
		}
		return nil, &Error{Kind: KindUnavailable, Err: err}
	}
	if len(out.Choices) == 0 {
		return nil, invalid(nil, "%s: reply has no choices", b.vendor)
	}

	choice := out.Choices[0]
	resp := &Response{
		Content: json.RawMessage(choice.Message.Content),
		Model:   out.Model,
		Usage: Usage{
			InputTokens:  out.Usage.PromptTokens,
			OutputTokens: out.Usage.CompletionTokens,
		},
		StopReason: StopEnd,
	}
	if choice.FinishReason == openai.FinishReasonLength {
		resp.StopReason = StopMaxTokens
	}
	return resp, nil
}
