package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 40) || !IsTooSmall(120, 23) {
		t.Error("undersized terminal accepted")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size rejected")
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Coach dashboard", "Ella", 100)
	for _, want := range []string{"Math Coach", "Coach dashboard", "Ella"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if strings.Contains(RenderHeader("Profiles", "", 100), "●") {
		t.Error("profile marker shown with no profile")
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("T", "", 80)
	footer := RenderFooter([]KeyHint{{"esc", "Back"}, {"enter", "Open"}}, 80)
	if !strings.Contains(footer, "Back") || !strings.Contains(footer, "enter") {
		t.Errorf("footer = %q", footer)
	}

	frame := RenderFrame(header, "body", footer, 80, 30)
	if h := lipgloss.Height(frame); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
}

func TestSpread(t *testing.T) {
	got := spread("ab", "cd", "ef", 20)
	if lipgloss.Width(got) != 20 {
		t.Errorf("width = %d, want 20: %q", lipgloss.Width(got), got)
	}
	if !strings.HasPrefix(got, "ab") || !strings.HasSuffix(got, "ef") {
		t.Errorf("spread = %q", got)
	}
	// Too narrow still keeps one space between parts.
	if got := spread("ab", "cd", "ef", 3); got != "ab cd ef" {
		t.Errorf("narrow spread = %q", got)
	}
}
