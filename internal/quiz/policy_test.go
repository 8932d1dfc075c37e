package quiz

import (
	"testing"

	"github.com/amrit/quizdeck/internal/content"
)

func bestFrom(scores map[int]int) BestScoreFunc {
	return func(levelID int) (int, bool) {
		s, ok := scores[levelID]
		return s, ok
	}
}

// threeLevels builds a specialization with three question-bearing levels of
// 4, 4, and 3 questions.
func threeLevels() *content.Specialization {
	q := func(n int) []content.Question {
		out := make([]content.Question, n)
		for i := range out {
			out[i] = content.Question{ID: i + 1, Text: "q", Options: []string{"a", "b"}, CorrectIndex: 0}
		}
		return out
	}
	return &content.Specialization{
		ID:   "spec",
		Name: "Spec",
		Levels: []content.Level{
			{ID: 1, Number: 1, Questions: q(4)},
			{ID: 2, Number: 2, Questions: q(4)},
			{ID: 3, Number: 3, Questions: q(3)},
		},
	}
}

// withEmptyMiddle has an unauthored level 2 between two question-bearing
// levels.
func withEmptyMiddle() *content.Specialization {
	spec := threeLevels()
	spec.Levels[1].Questions = nil
	return spec
}

func TestPassed(t *testing.T) {
	tests := []struct {
		best, count int
		want        bool
	}{
		{0, 4, false},
		{1, 4, false},
		{2, 4, true}, // exactly half passes
		{3, 4, true},
		{1, 3, false}, // 1 < 1.5
		{2, 3, true},
		{1, 2, true},
		{0, 0, false}, // no questions can never pass
		{5, 0, false},
	}

	for _, tt := range tests {
		if got := Passed(tt.best, tt.count); got != tt.want {
			t.Errorf("Passed(%d, %d) = %v, want %v", tt.best, tt.count, got, tt.want)
		}
	}
}

func TestStatusesOnlyFirstUnlockedInitially(t *testing.T) {
	statuses := Statuses(threeLevels(), bestFrom(nil))

	want := []bool{true, false, false}
	for i, st := range statuses {
		if st.Unlocked != want[i] {
			t.Errorf("level %d unlocked = %v, want %v", st.Level.ID, st.Unlocked, want[i])
		}
	}
}

func TestStatusesPassUnlocksNext(t *testing.T) {
	// Level 1 passed with exactly half.
	statuses := Statuses(threeLevels(), bestFrom(map[int]int{1: 2}))

	want := []bool{true, true, false}
	for i, st := range statuses {
		if st.Unlocked != want[i] {
			t.Errorf("level %d unlocked = %v, want %v", st.Level.ID, st.Unlocked, want[i])
		}
	}
}

func TestStatusesFailKeepsNextLocked(t *testing.T) {
	// A recorded attempt below the threshold unlocks nothing.
	statuses := Statuses(threeLevels(), bestFrom(map[int]int{1: 1}))

	if statuses[0].Passed {
		t.Error("level 1 should not count as passed at 1/4")
	}
	if statuses[1].Unlocked {
		t.Error("level 2 must stay locked after a failed level 1")
	}
}

func TestStatusesChainUnlocks(t *testing.T) {
	statuses := Statuses(threeLevels(), bestFrom(map[int]int{1: 4, 2: 3}))

	for i, st := range statuses {
		if !st.Unlocked {
			t.Errorf("level %d (index %d) should be unlocked", st.Level.ID, i)
		}
	}
}

func TestStatusesEmptyLevelIsHardStop(t *testing.T) {
	// Passing level 1 cannot unlock past the unauthored level 2, and a
	// recorded best for level 3 does not bypass the stop.
	statuses := Statuses(withEmptyMiddle(), bestFrom(map[int]int{1: 4, 3: 3}))

	if !statuses[0].Unlocked {
		t.Error("level 1 should be unlocked")
	}
	if statuses[1].Unlocked {
		t.Error("unauthored level 2 must stay locked")
	}
	if statuses[2].Unlocked {
		t.Error("level 3 behind the hard stop must stay locked")
	}
}

func TestStatusesEmptyFirstLevelLocksEverything(t *testing.T) {
	spec := threeLevels()
	spec.Levels[0].Questions = nil

	statuses := Statuses(spec, bestFrom(map[int]int{2: 4}))
	for _, st := range statuses {
		if st.Unlocked {
			t.Errorf("level %d should be locked when level 1 has no questions", st.Level.ID)
		}
	}
}

func TestStatusesSortsByNumber(t *testing.T) {
	spec := threeLevels()
	// Declaration order scrambled; Number decides.
	spec.Levels[0], spec.Levels[2] = spec.Levels[2], spec.Levels[0]

	statuses := Statuses(spec, bestFrom(nil))
	for i, st := range statuses {
		if st.Level.Number != i+1 {
			t.Fatalf("statuses[%d].Number = %d, want %d", i, st.Level.Number, i+1)
		}
	}
	if !statuses[0].Unlocked || statuses[2].Unlocked {
		t.Error("unlock walk must follow display numbers, not slice order")
	}
}

func TestScore(t *testing.T) {
	questions := []content.Question{
		{ID: 1, Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: 2, Options: []string{"a", "b"}, CorrectIndex: 1},
		{ID: 3, Options: []string{"a", "b"}, CorrectIndex: 1},
	}

	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{0, 1, 1}, 3},
		{"some correct", []int{0, 0, 1}, 2},
		{"none correct", []int{1, 0, 0}, 0},
		{"unanswered slots ignored", []int{0, Unanswered, Unanswered}, 1},
		{"short answer slice", []int{0}, 1},
		{"nil answers", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(questions, tt.answers); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextLevel(t *testing.T) {
	spec := threeLevels()

	// Level 1 passed: next is level 2.
	next := NextLevel(spec, 1, bestFrom(map[int]int{1: 4}))
	if next == nil || next.ID != 2 {
		t.Fatalf("NextLevel after passing 1 = %v, want level 2", next)
	}

	// Level 1 not passed: level 2 is locked, so no next.
	if next := NextLevel(spec, 1, bestFrom(nil)); next != nil {
		t.Errorf("NextLevel without a pass = level %d, want nil", next.ID)
	}

	// Last level has no successor.
	if next := NextLevel(spec, 3, bestFrom(map[int]int{1: 4, 2: 4, 3: 3})); next != nil {
		t.Errorf("NextLevel at last level = level %d, want nil", next.ID)
	}
}

func TestNextLevelBlockedByEmptyLevel(t *testing.T) {
	// The unauthored level 2 sits between 1 and 3; passing 1 must not
	// produce level 3 as next.
	if next := NextLevel(withEmptyMiddle(), 1, bestFrom(map[int]int{1: 4})); next != nil {
		t.Errorf("NextLevel across a hard stop = level %d, want nil", next.ID)
	}
}

func TestHasNextLevel(t *testing.T) {
	spec := threeLevels()

	tests := []struct {
		currentID int
		want      bool
	}{
		{1, true},
		{2, true},
		{3, false},
	}
	for _, tt := range tests {
		if got := HasNextLevel(spec, tt.currentID); got != tt.want {
			t.Errorf("HasNextLevel(%d) = %v, want %v", tt.currentID, got, tt.want)
		}
	}

	// The control exists even when the hard stop makes it unreachable.
	if !HasNextLevel(withEmptyMiddle(), 1) {
		t.Error("HasNextLevel should see level 3 past the unauthored level 2")
	}
}
