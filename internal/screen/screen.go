package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathcoach/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is notified when the screen is popped off the stack.
type Leaver interface {
	OnLeave()
}

// Resumer is notified when the screen above it is popped and it becomes
// active again.
type Resumer interface {
	Resume() tea.Cmd
}

// BackInterceptor screens handle Esc themselves while InterceptsBack is true.
type BackInterceptor interface {
	InterceptsBack() bool
}
