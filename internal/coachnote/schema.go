package coachnote

import "github.com/abhisek/mathcoach/internal/llm"

// NoteSchema defines the JSON schema for a coach note.
var NoteSchema = &llm.Schema{
	Name:        "coach-note",
	Description: "A short encouraging note about a times-tables attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"note": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Two or three warm, specific sentences addressed to the student",
			},
			"practise": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"maxItems":    5,
				"description": "Facts to practise next, written like 7×8",
			},
		},
		"required":             []any{"note", "practise"},
		"additionalProperties": false,
	},
}
