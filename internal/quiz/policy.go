// Package quiz implements the level unlock and scoring policy plus the
// per-attempt session logic.
package quiz

import (
	"sort"

	"github.com/amrit/quizdeck/internal/content"
)

// PassFraction is the fraction of correct answers required to pass a level.
// The comparison is on the exact fractional threshold, never on a rounded
// question count.
const PassFraction = 0.5

// Unanswered marks a question slot with no recorded answer.
const Unanswered = -1

// BestScoreFunc reports the best recorded score for a level id within the
// specialization being evaluated.
type BestScoreFunc func(levelID int) (int, bool)

// Passed reports whether a best score passes a level with the given question
// count. Levels without questions can never be passed.
func Passed(best, questionCount int) bool {
	if questionCount == 0 {
		return false
	}
	return float64(best) >= PassFraction*float64(questionCount)
}

// LevelStatus is the unlock computation result for one level.
type LevelStatus struct {
	Level    content.Level
	Unlocked bool
	Passed   bool
	Best     int
	HasBest  bool
}

// Statuses computes unlock state for a specialization's levels against
// recorded progress. Levels are walked in ascending display-number order: a
// level stays unlocked only while every earlier question-bearing level was
// passed, and a level with zero questions is a hard stop that keeps itself
// and everything after it locked until content exists.
func Statuses(spec *content.Specialization, best BestScoreFunc) []LevelStatus {
	levels := make([]content.Level, len(spec.Levels))
	copy(levels, spec.Levels)
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].Number < levels[j].Number
	})

	out := make([]LevelStatus, 0, len(levels))
	open := true
	for _, l := range levels {
		st := LevelStatus{Level: l}
		st.Best, st.HasBest = best(l.ID)
		st.Passed = st.HasBest && Passed(st.Best, len(l.Questions))

		switch {
		case !open:
			// A prior level is unpassed or a hard stop was hit.
		case !l.HasQuestions():
			open = false
		default:
			st.Unlocked = true
			if !st.Passed {
				open = false
			}
		}
		out = append(out, st)
	}
	return out
}

// Score counts positions where the chosen answer index equals the question's
// correct index. Unanswered slots never count.
func Score(questions []content.Question, answers []int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] != Unanswered && answers[i] == q.CorrectIndex {
			score++
		}
	}
	return score
}

// NextLevel returns the next unlocked, question-bearing level after the
// current one in display order, or nil. A zero-question level immediately
// after the current one blocks forward progress, so the result is nil in
// that case.
func NextLevel(spec *content.Specialization, currentID int, best BestScoreFunc) *content.Level {
	statuses := Statuses(spec, best)
	seen := false
	for i := range statuses {
		if statuses[i].Level.ID == currentID {
			seen = true
			continue
		}
		if !seen {
			continue
		}
		if statuses[i].Unlocked && statuses[i].Level.HasQuestions() {
			l := statuses[i].Level
			return &l
		}
		return nil
	}
	return nil
}

// HasNextLevel reports whether any level with questions follows the current
// one in display order, regardless of unlock state. The result screen shows
// a disabled "next level" control when one exists but the attempt failed.
func HasNextLevel(spec *content.Specialization, currentID int) bool {
	statuses := Statuses(spec, func(int) (int, bool) { return 0, false })
	seen := false
	for i := range statuses {
		if statuses[i].Level.ID == currentID {
			seen = true
			continue
		}
		if seen && statuses[i].Level.HasQuestions() {
			return true
		}
	}
	return false
}
