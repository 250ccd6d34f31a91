package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func noteSchema() *Schema {
	return &Schema{
		Name:        "test-note",
		Description: "A short note with facts to practise",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"note": map[string]any{"type": "string", "minLength": 1},
				"practise": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"tone": map[string]any{"type": "string", "enum": []any{"cheer", "steady"}},
			},
			"required": []any{"note", "practise"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"note":"Nice run","practise":["7×8"],"tone":"cheer"}`, false},
		{"optional omitted", `{"note":"Nice run","practise":[]}`, false},
		{"missing required", `{"note":"Nice run"}`, true},
		{"wrong type", `{"note":3,"practise":[]}`, true},
		{"wrong item type", `{"note":"x","practise":[7]}`, true},
		{"bad enum", `{"note":"x","practise":[],"tone":"shout"}`, true},
		{"empty note", `{"note":"","practise":[]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(noteSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var e *Error
				if !errors.As(err, &e) || e.Kind != KindInvalid {
					t.Fatalf("expected a KindInvalid error, got %T %v", err, err)
				}
				if string(e.Content) != tt.raw {
					t.Errorf("content = %q, want the reply", e.Content)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
