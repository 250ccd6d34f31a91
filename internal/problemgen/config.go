package problemgen

import (
	"fmt"

	"github.com/abhisek/mathcoach/internal/facts"
)

// Layout controls how an attempt presents its questions.
type Layout string

const (
	LayoutVertical   Layout = "vertical"
	LayoutHorizontal Layout = "horizontal"
)

// ParseLayout validates a layout name.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutVertical, LayoutHorizontal:
		return Layout(s), nil
	}
	return "", fmt.Errorf("unknown layout %q (want vertical or horizontal)", s)
}

// Count presets offered by the task form.
var CountPresets = []int{30, 60, 90}

// Defaults for a new task.
const (
	DefaultCount     = 60
	DefaultTimeLimit = 600 // seconds
)

// TaskConfig records how a task's question set was produced.
type TaskConfig struct {
	SelectedFacts []facts.Fact `json:"selectedFacts"`
	QuestionCount int          `json:"questionCount"`
	Layout        Layout       `json:"layout"`

	// Mode pins every attempt to "train" or "test". Empty lets the student
	// choose.
	Mode string `json:"mode,omitempty"`
}

// LayoutOrDefault returns the configured layout, vertical when unset.
func (c TaskConfig) LayoutOrDefault() Layout {
	if c.Layout == "" {
		return LayoutVertical
	}
	return c.Layout
}
