package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/amrit/quizdeck/internal/ui/layout"
)

// Screen defines the interface for all application screens. Screens are thin
// projections of the navigation view-model: they hold cursor state and
// dispatch nav actions, never navigation truth.
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

// KeyHintProvider is an optional interface that screens can implement to
// provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is an optional interface for screens with a focused text
// input. While capturing, global single-letter shortcuts are suspended so
// typing works.
type InputCapturer interface {
	CapturingInput() bool
}
