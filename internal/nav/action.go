package nav

// Action is a discrete user intention consumed by the machine. Every screen
// interaction the rendering layer offers maps to exactly one variant.
type Action interface {
	isAction()
}

// SelectCategory picks a category from Home.
type SelectCategory struct{ ID string }

// SelectSpecialization picks a specialization from the Specializations or
// SubSpecializations screen.
type SelectSpecialization struct{ ID string }

// SelectLevel picks an unlocked, question-bearing level from Levels.
type SelectLevel struct{ ID int }

// CompleteQuiz finishes an attempt with its final score and full answer
// sequence.
type CompleteQuiz struct {
	Score   int
	Answers []int
}

// Retry restarts the just-finished level with a fresh answer buffer.
type Retry struct{}

// Review replays the just-finished attempt read-only.
type Review struct{}

// NextLevel advances to the subsequent level after a pass.
type NextLevel struct{}

// OpenStats shows aggregate statistics; reachable from Home only.
type OpenStats struct{}

// Back navigates to the screen-specific back target.
type Back struct{}

// GoHome returns to Home from anywhere, clearing all selection context.
type GoHome struct{}

func (SelectCategory) isAction()       {}
func (SelectSpecialization) isAction() {}
func (SelectLevel) isAction()          {}
func (CompleteQuiz) isAction()         {}
func (Retry) isAction()                {}
func (Review) isAction()               {}
func (NextLevel) isAction()            {}
func (OpenStats) isAction()            {}
func (Back) isAction()                 {}
func (GoHome) isAction()               {}

// ActionMsg carries an Action through the Bubble Tea message loop. Defined
// here so screens depend only on nav, not on the router.
type ActionMsg struct {
	Action Action
}
