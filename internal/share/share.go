// Package share builds the plain-text payloads handed to sharing
// collaborators. Constructing the string is the core's job; dispatching it
// to a share sheet or messaging link belongs to the rendering layer.
package share

import (
	"fmt"
	"strings"
)

// ResultSummary describes one completed attempt for sharing.
type ResultSummary struct {
	Category       string
	Specialization string
	LevelNumber    int
	Score          int
	Total          int
	Passed         bool
}

// Text renders the shareable summary string.
func (r ResultSummary) Text() string {
	outcome := "failed"
	if r.Passed {
		outcome = "passed"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Quizdeck result: %s / %s, level %d\n", r.Category, r.Specialization, r.LevelNumber)
	fmt.Fprintf(&b, "Score %d/%d (%s)", r.Score, r.Total, outcome)
	return b.String()
}

// QuestionReport renders the error-report payload for a problematic
// question.
func QuestionReport(levelNumber, questionID int, questionText string) string {
	return fmt.Sprintf(
		"Question report\nLevel: %d\nQuestion ID: %d\nText: %s",
		levelNumber, questionID, questionText,
	)
}
