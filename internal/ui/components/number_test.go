package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestEditNumber(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		key    tea.KeyPressMsg
		max    int
		want   string
		wantOK bool
	}{
		{"append digit", "4", keyPress('2'), 81, "42", true},
		{"rejects letter", "4", keyPress('x'), 81, "4", false},
		{"over bound", "9", keyPress('0'), 81, "9", false},
		{"at bound", "8", keyPress('1'), 81, "81", true},
		{"unbounded", "999", keyPress('9'), 0, "9999", true},
		{"leading zero dropped", "0", keyPress('7'), 81, "7", true},
		{"single zero", "", keyPress('0'), 81, "0", true},
		{"backspace", "42", tea.KeyPressMsg{Code: tea.KeyBackspace}, 81, "4", true},
		{"backspace empty", "", tea.KeyPressMsg{Code: tea.KeyBackspace}, 81, "", false},
		{"enter ignored", "4", tea.KeyPressMsg{Code: tea.KeyEnter}, 81, "4", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EditNumber(tt.text, tt.key, tt.max)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("EditNumber(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestChoice(t *testing.T) {
	c := NewChoice("Mode", []string{"Train", "Test"}, 5)
	if c.Selected != 0 {
		t.Fatalf("Selected = %d, want clamp to 0", c.Selected)
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if c.Value() != "Test" {
		t.Errorf("Value = %q, want Test", c.Value())
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if c.Value() != "Train" {
		t.Errorf("Value = %q, want Train", c.Value())
	}
}
