package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pickedMsg string

func key(code rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: code} }

func TestMenuSkipsDisabledItems(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Header", Disabled: true},
		{Label: "Sevens", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("sevens") } }},
		{Label: "Archived", Disabled: true},
		{Label: "Nines", Detail: "best 90%"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyDown))
	if m.Selected != 3 {
		t.Errorf("down at bottom = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key(tea.KeyUp))
	m, _ = m.Update(key(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("up past disabled header = %d, want 1", m.Selected)
	}

	_, cmd := m.Update(key(tea.KeyEnter))
	if cmd == nil || cmd() != pickedMsg("sevens") {
		t.Error("enter did not run the selected action")
	}

	view := m.View()
	if !strings.Contains(view, "▸ Sevens") || !strings.Contains(view, "best 90%") {
		t.Errorf("view = %q", view)
	}
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenu(nil)
	if _, ok := m.Current(); ok {
		t.Error("empty menu has a current item")
	}
	if _, cmd := m.Update(key(tea.KeyEnter)); cmd != nil {
		t.Error("enter on an empty menu returned a command")
	}
}
