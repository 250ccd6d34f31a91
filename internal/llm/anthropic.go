package llm

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var anthropicAliases = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

type anthropicBackend struct {
	client  anthropic.Client
	modelID string
}

// NewAnthropicProvider returns a Provider backed by the Messages API.
func NewAnthropicProvider(cfg AnthropicConfig, opts ...option.RequestOption) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic: API key is required")
	}
	opts = append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	return vendorProvider{&anthropicBackend{
		client:  anthropic.NewClient(opts...),
		modelID: resolveModel(cfg.Model, anthropicAliases),
	}}, nil
}

func (b *anthropicBackend) model() string { return b.modelID }

func (b *anthropicBackend) complete(ctx context.Context, req Request) (*Response, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(b.modelID),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if req.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: req.Schema.Definition},
		}
	}

	msg, err := b.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, fromStatus(apiErr.StatusCode, err)
		}
		return nil, &Error{Kind: KindUnavailable, Err: err}
	}

	resp := &Response{
		Model: string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
		StopReason: StopEnd,
	}
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		resp.StopReason = StopMaxTokens
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			resp.Content = json.RawMessage(block.Text)
			return resp, nil
		}
	}
	return nil, invalid(nil, "anthropic: no text block in reply %s", msg.ID)
}
