package nav

import (
	"github.com/amrit/quizdeck/internal/content"
	"github.com/amrit/quizdeck/internal/quiz"
)

// ViewModel is the render boundary: per screen, exactly the data the
// rendering layer needs plus the derived header title and back-availability.
// Fields outside the active screen's section are zero.
type ViewModel struct {
	Screen    Screen
	Title     string
	CanGoBack bool

	// Home
	Categories []content.Category

	// Specializations and SubSpecializations
	Category        *content.Category
	Parent          *content.Specialization
	Specializations []content.Specialization

	// Levels
	Specialization *content.Specialization
	Levels         []quiz.LevelStatus

	// Quiz
	Level     *content.Level
	Questions []content.Question
	Answers   []int
	Review    bool

	// Result
	Score       int
	Total       int
	Passed      bool
	HasNext     bool // a subsequent question-bearing level exists; control shown
	NextAllowed bool // pass achieved and the next level reachable; control enabled
	SaveError   error

	// Stats
	Rows []StatsRow

	// Header totals, available on every screen.
	PassedLevels int
	TotalLevels  int
}

// StatsRow is one aggregate line on the statistics screen: a leaf
// specialization with its pass counts.
type StatsRow struct {
	Category       string
	Specialization string
	PassedLevels   int
	TotalLevels    int
	Points         int
}

// View derives the view-model for the current state. Stale context is never
// exposed: each screen's section is populated only when the corresponding
// entities resolve. A state whose ids no longer resolve degrades to the Home
// view-model.
func (m *Machine) View() ViewModel {
	s := m.state
	vm := ViewModel{
		Screen:    s.Screen,
		Title:     s.Screen.String(),
		CanGoBack: s.CanGoBack(),
	}
	vm.PassedLevels, vm.TotalLevels = m.totals()

	switch s.Screen {
	case ScreenHome:
		vm.Categories = m.catalog.Categories

	case ScreenSpecializations:
		cat := m.catalog.CategoryByID(s.CategoryID)
		if cat == nil {
			return m.homeView(vm)
		}
		vm.Category = cat
		vm.Specializations = cat.Specializations

	case ScreenSubSpecializations:
		cat := m.catalog.CategoryByID(s.CategoryID)
		parent := m.findSpec(s.SpecializationID)
		if cat == nil || parent == nil {
			return m.homeView(vm)
		}
		vm.Category = cat
		vm.Parent = parent
		vm.Specializations = parent.Children

	case ScreenLevels:
		spec := m.findSpec(s.SpecializationID)
		if spec == nil {
			return m.homeView(vm)
		}
		vm.Specialization = spec
		vm.Levels = quiz.Statuses(spec, m.bestOf(spec.ID))

	case ScreenQuiz:
		spec, level := m.currentLevel(s)
		if level == nil {
			return m.homeView(vm)
		}
		vm.Specialization = spec
		vm.Level = level
		vm.Questions = level.Questions
		vm.Answers = s.Answers
		vm.Review = s.Review

	case ScreenResult:
		spec, level := m.currentLevel(s)
		if level == nil {
			return m.homeView(vm)
		}
		vm.Category = m.catalog.CategoryByID(s.CategoryID)
		vm.Specialization = spec
		vm.Level = level
		vm.Score = s.Score
		vm.Total = len(level.Questions)
		vm.Answers = s.Answers
		vm.Passed = quiz.Passed(s.Score, len(level.Questions))
		vm.HasNext = quiz.HasNextLevel(spec, level.ID)
		vm.NextAllowed = vm.Passed && quiz.NextLevel(spec, level.ID, m.bestOf(spec.ID)) != nil
		vm.SaveError = m.saveErr

	case ScreenStats:
		vm.Rows = m.statsRows()
	}
	return vm
}

// homeView is the LookupMiss fallback: render Home rather than a screen
// whose ids no longer resolve.
func (m *Machine) homeView(vm ViewModel) ViewModel {
	vm.Screen = ScreenHome
	vm.Title = ScreenHome.String()
	vm.CanGoBack = false
	vm.Categories = m.catalog.Categories
	return vm
}

func (m *Machine) bestOf(specID string) quiz.BestScoreFunc {
	return func(levelID int) (int, bool) {
		return m.tracker.BestScore(specID, levelID)
	}
}

// totals counts passed and total question-bearing levels across the whole
// catalog for the header.
func (m *Machine) totals() (passed, total int) {
	walkLeaves(m.catalog, func(_ *content.Category, spec *content.Specialization) {
		for _, st := range quiz.Statuses(spec, m.bestOf(spec.ID)) {
			if !st.Level.HasQuestions() {
				continue
			}
			total++
			if st.Passed {
				passed++
			}
		}
	})
	return passed, total
}

// statsRows aggregates progress per specialization. Nodes without any
// question-bearing level (placeholders, pure grouping nodes) produce no row.
func (m *Machine) statsRows() []StatsRow {
	var rows []StatsRow
	walkLeaves(m.catalog, func(cat *content.Category, spec *content.Specialization) {
		row := StatsRow{Category: cat.Name, Specialization: spec.Name}
		for _, st := range quiz.Statuses(spec, m.bestOf(spec.ID)) {
			if !st.Level.HasQuestions() {
				continue
			}
			row.TotalLevels++
			if st.Passed {
				row.PassedLevels++
			}
			if st.HasBest {
				row.Points += st.Best
			}
		}
		if row.TotalLevels > 0 {
			rows = append(rows, row)
		}
	})
	return rows
}

// walkLeaves visits every specialization in the tree; nodes with children
// act as pseudo-categories but their own levels are still visited when
// present.
func walkLeaves(cat *content.Catalog, visit func(*content.Category, *content.Specialization)) {
	for ci := range cat.Categories {
		c := &cat.Categories[ci]
		var walk func(specs []content.Specialization)
		walk = func(specs []content.Specialization) {
			for si := range specs {
				visit(c, &specs[si])
				walk(specs[si].Children)
			}
		}
		walk(c.Specializations)
	}
}
