package quiz

import (
	"github.com/google/uuid"

	"github.com/amrit/quizdeck/internal/content"
)

// Attempt is the per-attempt answer buffer for one run through a level's
// questions. Once a slot holds an answer it is immutable; review mode
// replays a finished attempt read-only.
type Attempt struct {
	ID        string
	Questions []content.Question
	Answers   []int
	Index     int
	Review    bool
}

// NewAttempt starts a fresh attempt with every slot unanswered.
func NewAttempt(questions []content.Question) *Attempt {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}
	return &Attempt{
		ID:        uuid.NewString(),
		Questions: questions,
		Answers:   answers,
	}
}

// NewReview replays a completed attempt's answers. Selection is disabled and
// navigation is unrestricted.
func NewReview(questions []content.Question, answers []int) *Attempt {
	buf := make([]int, len(questions))
	for i := range buf {
		if i < len(answers) {
			buf[i] = answers[i]
		} else {
			buf[i] = Unanswered
		}
	}
	return &Attempt{
		ID:        uuid.NewString(),
		Questions: questions,
		Answers:   buf,
		Review:    true,
	}
}

// Current returns the question at the cursor, or nil when past the end.
func (a *Attempt) Current() *content.Question {
	if a.Index < 0 || a.Index >= len(a.Questions) {
		return nil
	}
	return &a.Questions[a.Index]
}

// Answered reports whether the current question has a recorded answer.
func (a *Attempt) Answered() bool {
	return a.Index < len(a.Answers) && a.Answers[a.Index] != Unanswered
}

// Select records an option for the current question. It is a no-op in
// review mode, when the slot already holds an answer, or when the option
// index is out of range. Returns whether the answer was recorded.
func (a *Attempt) Select(option int) bool {
	if a.Review || a.Done() || a.Answered() {
		return false
	}
	q := a.Current()
	if q == nil || option < 0 || option >= len(q.Options) {
		return false
	}
	a.Answers[a.Index] = option
	return true
}

// CanAdvance reports whether the cursor may move forward: always in review
// mode, otherwise only once the current question is answered.
func (a *Attempt) CanAdvance() bool {
	return a.Review || a.Answered()
}

// Next advances the cursor. Returns false when blocked by an unanswered
// question. Advancing past the last question marks the attempt done; in
// review mode the cursor stops at the last question instead.
func (a *Attempt) Next() bool {
	if a.Done() || !a.CanAdvance() {
		return false
	}
	if a.Review && a.Index == len(a.Questions)-1 {
		return false
	}
	a.Index++
	return true
}

// Prev moves the cursor back one question. Recorded answers stay immutable,
// so this is only useful for re-reading.
func (a *Attempt) Prev() {
	if a.Index > 0 {
		a.Index--
	}
}

// Done reports whether the cursor has advanced past the last question.
func (a *Attempt) Done() bool {
	return a.Index >= len(a.Questions)
}

// Score computes the attempt's score at its current answer state.
func (a *Attempt) Score() int {
	return Score(a.Questions, a.Answers)
}
