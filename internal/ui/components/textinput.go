package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput. A numeric input accepts digits only and,
// when Max is positive, refuses keystrokes that would exceed it.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	Max         int
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti}
}

// NewNumberInput creates a digits-only input bounded by max.
func NewNumberInput(placeholder string, max int) TextInput {
	t := NewTextInput(placeholder, len(strconv.Itoa(max)))
	t.NumericOnly = true
	t.Max = max
	return t
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && len(kmsg.Text) > 0 {
			if _, ok := EditNumber(t.Model.Value(), kmsg, t.Max); !ok {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// Focus and Blur toggle whether the input takes keystrokes.
func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }
func (t *TextInput) Blur()          { t.Model.Blur() }

// EditNumber applies a key press to numeric text. Digits append, backspace
// deletes; ok is false when the key is not an edit or the result would exceed
// max (max <= 0 disables the bound).
func EditNumber(text string, key tea.KeyPressMsg, max int) (string, bool) {
	switch key.String() {
	case "backspace":
		if text == "" {
			return text, false
		}
		return text[:len(text)-1], true
	case "ctrl+u":
		return "", text != ""
	}

	if len(key.Text) != 1 || key.Text[0] < '0' || key.Text[0] > '9' {
		return text, false
	}
	next := text + key.Text
	if next != "0" && next[0] == '0' {
		next = next[1:]
	}
	if max > 0 {
		if n, err := strconv.Atoi(next); err != nil || n > max {
			return text, false
		}
	}
	return next, true
}
