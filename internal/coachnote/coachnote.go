// Package coachnote asks an LLM for a short encouraging note after an
// attempt, naming the facts worth practising next.
package coachnote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/llm"
)

// Purpose labels coach-note requests in the LLM event log.
const Purpose = "coach-note"

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = errors.New("coach notes are disabled")

// Config tunes generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation settings for notes.
func DefaultConfig() Config {
	return Config{MaxTokens: 300, Temperature: 0.7}
}

// Input is the finished attempt a note is written about.
type Input struct {
	StudentName string
	TaskTitle   string
	Mode        attempt.Mode
	TimeLimit   int
	Outcome     attempt.Outcome
}

// Note is the generated feedback.
type Note struct {
	Text     string
	Practise []string
}

// Writer generates notes. A Writer with a nil provider is disabled.
type Writer struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Writer. provider may be nil.
func New(provider llm.Provider, cfg Config) *Writer {
	return &Writer{provider: provider, cfg: cfg}
}

// Enabled reports whether notes can be generated.
func (w *Writer) Enabled() bool {
	return w != nil && w.provider != nil
}

type noteOutput struct {
	Note     string   `json:"note"`
	Practise []string `json:"practise"`
}

// Write generates a note for in.
func (w *Writer) Write(ctx context.Context, in Input) (*Note, error) {
	if !w.Enabled() {
		return nil, ErrDisabled
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := w.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(in),
		Schema:      NoteSchema,
		MaxTokens:   w.cfg.MaxTokens,
		Temperature: w.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("coach note generation: %w", err)
	}

	var out noteOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse coach note: %w", err)
	}

	note := &Note{Text: strings.TrimSpace(out.Note)}
	for _, p := range out.Practise {
		if p = strings.TrimSpace(p); p != "" {
			note.Practise = append(note.Practise, p)
		}
	}
	// Fall back to the attempt's own misses when the model names none.
	if len(note.Practise) == 0 {
		for i, m := range missedFacts(in) {
			if i == 5 {
				break
			}
			note.Practise = append(note.Practise, m.text)
		}
	}
	return note, nil
}
