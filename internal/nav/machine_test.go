package nav

import (
	"errors"
	"testing"

	"github.com/amrit/quizdeck/internal/content"
	"github.com/amrit/quizdeck/internal/progress"
	"github.com/amrit/quizdeck/internal/quiz"
)

// fakeTracker implements ProgressTracker in memory.
type fakeTracker struct {
	scores    progress.Progress
	recordErr error
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{scores: progress.Progress{}}
}

func (f *fakeTracker) RecordScore(specID string, levelID, score int) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	if prior, ok := f.scores.Best(specID, levelID); ok && score <= prior {
		return nil
	}
	levels, ok := f.scores[specID]
	if !ok {
		levels = map[int]int{}
		f.scores[specID] = levels
	}
	levels[levelID] = score
	return nil
}

func (f *fakeTracker) BestScore(specID string, levelID int) (int, bool) {
	return f.scores.Best(specID, levelID)
}

func (f *fakeTracker) All() progress.Progress {
	return f.scores.Clone()
}

func newTestMachine() (*Machine, *fakeTracker) {
	tracker := newFakeTracker()
	return NewMachine(content.Seed(), tracker), tracker
}

// walk applies a sequence of actions and returns the final state.
func walk(t *testing.T, m *Machine, actions ...Action) State {
	t.Helper()
	var s State
	for _, a := range actions {
		s = m.Apply(a)
	}
	return s
}

func TestInitialState(t *testing.T) {
	m, _ := newTestMachine()
	s := m.State()
	if s.Screen != ScreenHome {
		t.Errorf("initial screen = %v, want Home", s.Screen)
	}
	if s.CanGoBack() {
		t.Error("Home must not offer back")
	}
}

func TestSelectCategory(t *testing.T) {
	m, _ := newTestMachine()

	s := m.Apply(SelectCategory{ID: "programming"})
	if s.Screen != ScreenSpecializations || s.CategoryID != "programming" {
		t.Errorf("state = %+v, want Specializations/programming", s)
	}
}

func TestSelectCategoryUnknownFallsToHome(t *testing.T) {
	m, _ := newTestMachine()

	s := m.Apply(SelectCategory{ID: "nope"})
	if s.Screen != ScreenHome {
		t.Errorf("screen = %v, want Home after lookup miss", s.Screen)
	}
}

func TestSelectCategoryOffHomeIsNoOp(t *testing.T) {
	m, _ := newTestMachine()
	before := walk(t, m, SelectCategory{ID: "programming"})

	after := m.Apply(SelectCategory{ID: "networking"})
	if after.Screen != before.Screen || after.CategoryID != before.CategoryID {
		t.Errorf("state changed: %+v -> %+v", before, after)
	}
}

func TestSelectLeafSpecializationGoesToLevels(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
	)
	if s.Screen != ScreenLevels || s.SpecializationID != "go" {
		t.Errorf("state = %+v, want Levels/go", s)
	}
}

func TestSelectNestedSpecializationGoesToSubSpecializations(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "databases"},
	)
	if s.Screen != ScreenSubSpecializations || s.SpecializationID != "databases" {
		t.Errorf("state = %+v, want SubSpecializations/databases", s)
	}

	// The second hop always lands on Levels, children or not.
	s = m.Apply(SelectSpecialization{ID: "sql"})
	if s.Screen != ScreenLevels || s.SpecializationID != "sql" {
		t.Errorf("state = %+v, want Levels/sql", s)
	}
}

func TestSelectSpecializationUnknownFallsToHome(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "ghost"},
	)
	if s.Screen != ScreenHome {
		t.Errorf("screen = %v, want Home after lookup miss", s.Screen)
	}
}

func TestSelectLevelStartsQuiz(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 1},
	)
	if s.Screen != ScreenQuiz || s.LevelID != 1 {
		t.Fatalf("state = %+v, want Quiz/level 1", s)
	}
	if s.Review {
		t.Error("fresh quiz must not be in review mode")
	}
	if len(s.Answers) != 4 {
		t.Fatalf("answers len = %d, want 4", len(s.Answers))
	}
	for i, a := range s.Answers {
		if a != quiz.Unanswered {
			t.Errorf("Answers[%d] = %d, want Unanswered", i, a)
		}
	}
}

func TestSelectLockedLevelIsNoOp(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 2},
	)
	if s.Screen != ScreenLevels {
		t.Errorf("screen = %v, want Levels (level 2 locked)", s.Screen)
	}
}

func TestSelectUnlockedAfterPass(t *testing.T) {
	m, tracker := newTestMachine()
	tracker.scores = progress.Progress{"go": {1: 2}} // half of 4 passes

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 2},
	)
	if s.Screen != ScreenQuiz || s.LevelID != 2 {
		t.Errorf("state = %+v, want Quiz/level 2", s)
	}
}

func TestSelectEmptyLevelIsNoOp(t *testing.T) {
	m, tracker := newTestMachine()
	tracker.scores = progress.Progress{"nosql": {1: 3}}

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "databases"},
		SelectSpecialization{ID: "nosql"},
		SelectLevel{ID: 2}, // unauthored
	)
	if s.Screen != ScreenLevels {
		t.Errorf("screen = %v, want Levels (empty level not selectable)", s.Screen)
	}
}

func TestCompleteQuizRecordsAndShowsResult(t *testing.T) {
	m, tracker := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 1},
		CompleteQuiz{Score: 3, Answers: []int{1, 1, 2, 1}},
	)
	if s.Screen != ScreenResult || s.Score != 3 {
		t.Fatalf("state = %+v, want Result/score 3", s)
	}
	if best, ok := tracker.BestScore("go", 1); !ok || best != 3 {
		t.Errorf("recorded best = %d, %v, want 3, true", best, ok)
	}
	if m.SaveError() != nil {
		t.Errorf("SaveError = %v, want nil", m.SaveError())
	}
}

func TestCompleteQuizPersistFailureSurfaces(t *testing.T) {
	m, tracker := newTestMachine()
	tracker.recordErr = errors.New("disk full")

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 1},
		CompleteQuiz{Score: 3, Answers: []int{1, 1, 2, 1}},
	)
	// The session continues to the result screen regardless.
	if s.Screen != ScreenResult {
		t.Fatalf("screen = %v, want Result despite save failure", s.Screen)
	}
	if m.SaveError() == nil {
		t.Error("expected SaveError to carry the persistence failure")
	}
}

func TestRetryRestartsBlank(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 1},
		CompleteQuiz{Score: 1, Answers: []int{0, 0, 0, 0}},
		Retry{},
	)
	if s.Screen != ScreenQuiz || s.Review {
		t.Fatalf("state = %+v, want fresh Quiz", s)
	}
	for i, a := range s.Answers {
		if a != quiz.Unanswered {
			t.Errorf("Answers[%d] = %d, want Unanswered after retry", i, a)
		}
	}
}

func TestReviewReplaysAnswers(t *testing.T) {
	m, _ := newTestMachine()
	answers := []int{1, 1, 2, 1}

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 1},
		CompleteQuiz{Score: 3, Answers: answers},
		Review{},
	)
	if s.Screen != ScreenQuiz || !s.Review {
		t.Fatalf("state = %+v, want Quiz in review mode", s)
	}
	for i, a := range s.Answers {
		if a != answers[i] {
			t.Errorf("Answers[%d] = %d, want %d", i, a, answers[i])
		}
	}
}

func TestNextLevelAfterPass(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 1},
		CompleteQuiz{Score: 4, Answers: []int{1, 1, 2, 1}},
		NextLevel{},
	)
	if s.Screen != ScreenQuiz || s.LevelID != 2 {
		t.Errorf("state = %+v, want Quiz/level 2", s)
	}
}

func TestNextLevelAfterFailIsNoOp(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 1},
		CompleteQuiz{Score: 1, Answers: []int{0, 0, 0, 0}},
		NextLevel{},
	)
	if s.Screen != ScreenResult {
		t.Errorf("screen = %v, want Result (next level gated on pass)", s.Screen)
	}
}

func TestNextLevelBlockedByEmptyLevelIsNoOp(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "databases"},
		SelectSpecialization{ID: "nosql"},
		SelectLevel{ID: 1},
		CompleteQuiz{Score: 3, Answers: []int{1, 1, 1}},
		NextLevel{},
	)
	if s.Screen != ScreenResult {
		t.Errorf("screen = %v, want Result (unauthored level 2 blocks)", s.Screen)
	}
}

func TestOpenStatsOnlyFromHome(t *testing.T) {
	m, _ := newTestMachine()

	s := m.Apply(OpenStats{})
	if s.Screen != ScreenStats {
		t.Fatalf("screen = %v, want Stats", s.Screen)
	}

	m2, _ := newTestMachine()
	s = walk(t, m2, SelectCategory{ID: "programming"}, OpenStats{})
	if s.Screen != ScreenSpecializations {
		t.Errorf("screen = %v, OpenStats off Home must be a no-op", s.Screen)
	}
}

func TestBackTargets(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Screen
	}{
		{
			name:    "specializations to home",
			actions: []Action{SelectCategory{ID: "programming"}, Back{}},
			want:    ScreenHome,
		},
		{
			name: "sub-specializations to specializations",
			actions: []Action{
				SelectCategory{ID: "programming"},
				SelectSpecialization{ID: "databases"},
				Back{},
			},
			want: ScreenSpecializations,
		},
		{
			name: "levels of a top-level specialization to specializations",
			actions: []Action{
				SelectCategory{ID: "programming"},
				SelectSpecialization{ID: "go"},
				Back{},
			},
			want: ScreenSpecializations,
		},
		{
			name: "levels of a nested specialization to sub-specializations",
			actions: []Action{
				SelectCategory{ID: "programming"},
				SelectSpecialization{ID: "databases"},
				SelectSpecialization{ID: "sql"},
				Back{},
			},
			want: ScreenSubSpecializations,
		},
		{
			name: "quiz to levels",
			actions: []Action{
				SelectCategory{ID: "programming"},
				SelectSpecialization{ID: "go"},
				SelectLevel{ID: 1},
				Back{},
			},
			want: ScreenLevels,
		},
		{
			name: "result to levels",
			actions: []Action{
				SelectCategory{ID: "programming"},
				SelectSpecialization{ID: "go"},
				SelectLevel{ID: 1},
				CompleteQuiz{Score: 2, Answers: []int{1, 1, 0, 0}},
				Back{},
			},
			want: ScreenLevels,
		},
		{
			name:    "stats to home",
			actions: []Action{OpenStats{}, Back{}},
			want:    ScreenHome,
		},
		{
			name:    "home stays put",
			actions: []Action{Back{}},
			want:    ScreenHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMachine()
			s := walk(t, m, tt.actions...)
			if s.Screen != tt.want {
				t.Errorf("screen = %v, want %v", s.Screen, tt.want)
			}
		})
	}
}

func TestBackFromNestedLevelsRestoresParent(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "databases"},
		SelectSpecialization{ID: "sql"},
		Back{},
	)
	if s.SpecializationID != "databases" {
		t.Errorf("SpecializationID = %q, want parent 'databases'", s.SpecializationID)
	}
}

func TestGoHomeClearsEverything(t *testing.T) {
	m, _ := newTestMachine()

	s := walk(t, m,
		SelectCategory{ID: "programming"},
		SelectSpecialization{ID: "go"},
		SelectLevel{ID: 1},
		GoHome{},
	)
	if s.Screen != ScreenHome || s.CategoryID != "" || s.SpecializationID != "" || s.LevelID != 0 || s.Answers != nil {
		t.Errorf("state = %+v, want cleared Home", s)
	}
}

func TestResultActionsOffResultAreNoOps(t *testing.T) {
	m, _ := newTestMachine()
	before := walk(t, m, SelectCategory{ID: "programming"})

	for _, a := range []Action{Retry{}, Review{}, NextLevel{}} {
		after := m.Apply(a)
		if after.Screen != before.Screen {
			t.Errorf("%T off the result screen changed state to %+v", a, after)
		}
	}
}
