package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/router"
	"github.com/abhisek/mathcoach/internal/screen"
	"github.com/abhisek/mathcoach/internal/screens"
	"github.com/abhisek/mathcoach/internal/ui/layout"
)

type stubScreen struct {
	intercept bool
	keys      []string
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		s.keys = append(s.keys, k.String())
	}
	return s, nil
}
func (s *stubScreen) View(width, height int) string { return "stub" }
func (s *stubScreen) Title() string                 { return "Stub" }
func (s *stubScreen) InterceptsBack() bool          { return s.intercept }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Z", Description: "Zap"}}
}

func testModel() AppModel {
	return newAppModel(Options{Deps: &screens.Deps{Log: logger.Discard()}})
}

var esc = tea.KeyPressMsg{Code: tea.KeyEscape}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(esc)
	if cmd != nil {
		t.Error("esc on the root screen should be ignored")
	}
}

func TestEscPopsScreen(t *testing.T) {
	m := testModel()
	m.router.Push(&stubScreen{})

	_, cmd := m.Update(esc)
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}

func TestEscForwardedToInterceptor(t *testing.T) {
	m := testModel()
	stub := &stubScreen{intercept: true}
	m.router.Push(stub)

	_, cmd := m.Update(esc)
	if cmd != nil {
		t.Error("intercepted esc should not pop")
	}
	if len(stub.keys) != 1 || stub.keys[0] != "esc" {
		t.Errorf("screen keys = %v, want [esc]", stub.keys)
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
}

func TestProfileNameAndScreenHints(t *testing.T) {
	m := testModel()
	stub := &stubScreen{}
	m.router.Push(stub)

	next, _ := m.Update(screens.ProfileSelectedMsg{Name: "Ella"})
	am := next.(AppModel)
	if am.who != "Ella" {
		t.Errorf("who = %q, want Ella", am.who)
	}

	hints := am.footerHints(stub)
	if len(hints) != 1 || hints[0].Description != "Zap" {
		t.Errorf("hints = %v, want the screen's own", hints)
	}
	if !strings.Contains(layout.RenderHeader(stub.Title(), am.who, 80), "Ella") {
		t.Error("header should name the active profile")
	}
}
