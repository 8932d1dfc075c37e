// Package nav is the navigation core: a pure state machine over the
// application's screens. It holds the single source of truth for what is
// displayed, consumes discrete user actions, and derives per-screen
// view-models for the rendering layer. Nothing in this package knows about
// terminals or key events.
package nav

// Screen identifies what is currently displayed.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenSpecializations
	ScreenSubSpecializations
	ScreenLevels
	ScreenQuiz
	ScreenResult
	ScreenStats
)

// String returns the header title for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenSpecializations:
		return "Specializations"
	case ScreenSubSpecializations:
		return "Sub-specializations"
	case ScreenLevels:
		return "Levels"
	case ScreenQuiz:
		return "Quiz"
	case ScreenResult:
		return "Result"
	case ScreenStats:
		return "Statistics"
	}
	return "Unknown"
}

// State is the navigation state: the active screen plus contextual fields.
// Fields irrelevant to the current screen are stale, not guaranteed absent;
// consumers must only read what the screen's view-model enumerates.
type State struct {
	Screen           Screen
	CategoryID       string
	SpecializationID string
	LevelID          int
	Score            int
	Answers          []int
	Review           bool
}

// CanGoBack reports whether back navigation is offered. Only Home disables
// it.
func (s State) CanGoBack() bool {
	return s.Screen != ScreenHome
}

// home is the cleared initial state.
func home() State {
	return State{Screen: ScreenHome}
}
