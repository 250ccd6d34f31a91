// Package screens holds what every TUI screen shares: its dependencies and a
// few rendering helpers.
package screens

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/coachnote"
	"github.com/abhisek/mathcoach/internal/facts"
	"github.com/abhisek/mathcoach/internal/logger"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/reports"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tasks"
	"github.com/abhisek/mathcoach/internal/ui/theme"
)

// Deps is injected into every screen.
type Deps struct {
	Tasks   *tasks.Service
	Reports *reports.Builder
	Notes   *coachnote.Writer // may be nil
	Log     *logger.Logger

	// Grid is the fact grid offered by the task form. Its largest product
	// bounds answer input.
	Grid facts.Grid

	// ExportDir is where report spreadsheets are written.
	ExportDir string

	// Timeout bounds each store call made from a screen.
	Timeout time.Duration

	genMu sync.Mutex
	gen   *problemgen.Generator
}

// SetGenerator replaces the question generator, for deterministic tests.
func (d *Deps) SetGenerator(g *problemgen.Generator) {
	d.genMu.Lock()
	d.gen = g
	d.genMu.Unlock()
}

// WithGenerator runs fn with the shared generator. tea.Cmds run on their own
// goroutines, so access is serialized.
func (d *Deps) WithGenerator(fn func(g *problemgen.Generator)) {
	d.genMu.Lock()
	defer d.genMu.Unlock()
	if d.gen == nil {
		d.gen = problemgen.NewRandom()
	}
	fn(d.gen)
}

// Context returns a context bounded by Timeout.
func (d *Deps) Context() (context.Context, context.CancelFunc) {
	t := d.Timeout
	if t <= 0 {
		t = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), t)
}

// AnswerBound is the largest answer the attempt input accepts.
func (d *Deps) AnswerBound() int {
	return d.Grid.MaxProduct()
}

// Centered renders s centred in width.
func Centered(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

// RenderError renders an error message with a hint to go back.
func RenderError(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.ErrorText.Render(msg) + "\n\n" + theme.Hint.Render("Press Esc to go back"))
}

// RenderLoading renders a loading placeholder.
func RenderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Loading...")
}

// Rule renders a horizontal divider.
func Rule(width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width))
}

// ProfileSelectedMsg tells the app whose name to show in the header. An
// empty Name clears it.
type ProfileSelectedMsg struct {
	Name string
}

// TaskLine summarises a task for dashboard menus.
func TaskLine(t *store.Task) string {
	return fmt.Sprintf("%d questions · %s", len(t.Questions), attempt.FormatDuration(t.TimeLimit))
}
