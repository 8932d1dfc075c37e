package nav

import (
	"github.com/amrit/quizdeck/internal/content"
	"github.com/amrit/quizdeck/internal/progress"
	"github.com/amrit/quizdeck/internal/quiz"
)

// ProgressTracker is the slice of the progress service the machine needs.
// Implemented by progress.Service.
type ProgressTracker interface {
	RecordScore(specID string, levelID, score int) error
	BestScore(specID string, levelID int) (int, bool)
	All() progress.Progress
}

// Machine owns the navigation state and applies actions against the static
// catalog and recorded progress. It must only be driven from the single
// event-handling goroutine.
type Machine struct {
	catalog *content.Catalog
	tracker ProgressTracker
	state   State

	// saveErr holds the most recent progress persistence failure, shown on
	// the result screen status line.
	saveErr error
}

// NewMachine starts a machine on the Home screen.
func NewMachine(catalog *content.Catalog, tracker ProgressTracker) *Machine {
	return &Machine{
		catalog: catalog,
		tracker: tracker,
		state:   home(),
	}
}

// State returns the current navigation state.
func (m *Machine) State() State {
	return m.state
}

// SaveError returns the most recent persistence failure, or nil.
func (m *Machine) SaveError() error {
	return m.saveErr
}

// Apply runs one transition and returns the resulting state. Actions whose
// preconditions do not hold are safe no-ops: affordances are disabled in the
// UI, and the guards here re-validate the same conditions. An unexpected
// lookup miss (an id-bearing state pointing at a nonexistent entity) is a
// contract violation and resolves to Home.
func (m *Machine) Apply(a Action) State {
	switch a := a.(type) {
	case SelectCategory:
		m.state = m.selectCategory(a.ID)
	case SelectSpecialization:
		m.state = m.selectSpecialization(a.ID)
	case SelectLevel:
		m.state = m.selectLevel(a.ID)
	case CompleteQuiz:
		m.state = m.completeQuiz(a.Score, a.Answers)
	case Retry:
		m.state = m.retry()
	case Review:
		m.state = m.review()
	case NextLevel:
		m.state = m.nextLevel()
	case OpenStats:
		if m.state.Screen == ScreenHome {
			m.state = State{Screen: ScreenStats}
		}
	case Back:
		m.state = m.back()
	case GoHome:
		m.state = home()
	}
	return m.state
}

func (m *Machine) selectCategory(id string) State {
	s := m.state
	if s.Screen != ScreenHome {
		return s
	}
	if m.catalog.CategoryByID(id) == nil {
		return home()
	}
	return State{Screen: ScreenSpecializations, CategoryID: id}
}

func (m *Machine) selectSpecialization(id string) State {
	s := m.state
	if s.Screen != ScreenSpecializations && s.Screen != ScreenSubSpecializations {
		return s
	}
	node := m.findSpec(id)
	if node == nil {
		return home()
	}

	s.SpecializationID = node.ID
	// A node with children gets the synthetic pseudo-category treatment, but
	// only for the first nesting hop: selecting from SubSpecializations
	// always lands on Levels.
	if s.Screen == ScreenSpecializations && node.HasChildren() {
		s.Screen = ScreenSubSpecializations
	} else {
		s.Screen = ScreenLevels
	}
	return s
}

func (m *Machine) selectLevel(id int) State {
	s := m.state
	if s.Screen != ScreenLevels {
		return s
	}
	spec := m.findSpec(s.SpecializationID)
	if spec == nil {
		return home()
	}
	level := spec.LevelByID(id)
	if level == nil || !level.HasQuestions() {
		return s
	}
	if !m.unlocked(spec, id) {
		return s
	}

	s.Screen = ScreenQuiz
	s.LevelID = id
	s.Review = false
	s.Answers = blankAnswers(len(level.Questions))
	return s
}

func (m *Machine) completeQuiz(score int, answers []int) State {
	s := m.state
	if s.Screen != ScreenQuiz || s.Review {
		return s
	}
	// Persist before transitioning; the result screen reads best scores.
	m.saveErr = m.tracker.RecordScore(s.SpecializationID, s.LevelID, score)

	s.Screen = ScreenResult
	s.Score = score
	s.Answers = answers
	return s
}

func (m *Machine) retry() State {
	s := m.state
	if s.Screen != ScreenResult {
		return s
	}
	_, level := m.currentLevel(s)
	if level == nil {
		return home()
	}

	s.Screen = ScreenQuiz
	s.Review = false
	s.Answers = blankAnswers(len(level.Questions))
	return s
}

func (m *Machine) review() State {
	s := m.state
	if s.Screen != ScreenResult {
		return s
	}
	s.Screen = ScreenQuiz
	s.Review = true
	// Answers carried over from the completed attempt, replayed read-only.
	return s
}

func (m *Machine) nextLevel() State {
	s := m.state
	if s.Screen != ScreenResult {
		return s
	}
	spec, level := m.currentLevel(s)
	if level == nil {
		return home()
	}
	if !quiz.Passed(s.Score, len(level.Questions)) {
		return s
	}
	next := quiz.NextLevel(spec, level.ID, func(levelID int) (int, bool) {
		return m.tracker.BestScore(spec.ID, levelID)
	})
	if next == nil {
		return s
	}

	s.Screen = ScreenQuiz
	s.LevelID = next.ID
	s.Review = false
	s.Answers = blankAnswers(len(next.Questions))
	return s
}

// back resolves the screen-specific back target.
func (m *Machine) back() State {
	s := m.state
	switch s.Screen {
	case ScreenSpecializations:
		return home()
	case ScreenSubSpecializations:
		s.Screen = ScreenSpecializations
		s.SpecializationID = ""
		return s
	case ScreenLevels:
		// The one-level parent lookup decides whether Levels was entered
		// through a SubSpecializations hop. Deeper nesting defeats it and
		// falls back to the Specializations screen.
		parent := content.FindParentSpecialization(m.catalog.Categories, s.SpecializationID)
		if parent != nil {
			s.Screen = ScreenSubSpecializations
			s.SpecializationID = parent.ID
			return s
		}
		s.Screen = ScreenSpecializations
		s.SpecializationID = ""
		s.LevelID = 0
		return s
	case ScreenQuiz:
		s.Screen = ScreenLevels
		s.LevelID = 0
		return s
	case ScreenResult:
		s.Screen = ScreenLevels
		s.Score = 0
		s.Answers = nil
		return s
	case ScreenStats:
		return home()
	}
	// Home: back is not offered.
	return s
}

// findSpec searches the whole catalog; specialization ids are globally
// unique.
func (m *Machine) findSpec(id string) *content.Specialization {
	if id == "" {
		return nil
	}
	for ci := range m.catalog.Categories {
		if s := content.FindSpecialization(m.catalog.Categories[ci].Specializations, id); s != nil {
			return s
		}
	}
	return nil
}

func (m *Machine) currentLevel(s State) (*content.Specialization, *content.Level) {
	spec := m.findSpec(s.SpecializationID)
	if spec == nil {
		return nil, nil
	}
	return spec, spec.LevelByID(s.LevelID)
}

func (m *Machine) unlocked(spec *content.Specialization, levelID int) bool {
	statuses := quiz.Statuses(spec, func(id int) (int, bool) {
		return m.tracker.BestScore(spec.ID, id)
	})
	for _, st := range statuses {
		if st.Level.ID == levelID {
			return st.Unlocked
		}
	}
	return false
}

func blankAnswers(n int) []int {
	answers := make([]int, n)
	for i := range answers {
		answers[i] = quiz.Unanswered
	}
	return answers
}
