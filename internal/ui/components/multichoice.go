package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/amrit/quizdeck/internal/ui/theme"
)

// MultiChoice renders one question's options. Locked means an answer is
// recorded (or the attempt is a review) and selection is disabled; the
// correct and chosen options are then highlighted.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Cursor       int
	Locked       bool
	ChosenIndex  int // Unanswered (-1) when no answer recorded
}

// NewMultiChoice creates the component for a question, pre-locked when the
// slot already holds an answer.
func NewMultiChoice(question string, options []string, correctIndex, chosen int, locked bool) MultiChoice {
	cursor := 0
	if chosen >= 0 {
		cursor = chosen
	}
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Cursor:       cursor,
		Locked:       locked,
		ChosenIndex:  chosen,
	}
}

// Update handles cursor movement. Option choice itself is reported by the
// owning screen via Choice(); the component never mutates answer state.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	}

	return m, nil
}

// Choice returns the option under the cursor.
func (m MultiChoice) Choice() int {
	return m.Cursor
}

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// View renders the question and its options.
func (m MultiChoice) View() string {
	s := theme.Body().Bold(true).Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Cursor && !m.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if m.Locked {
			switch {
			case i == m.CorrectIndex:
				s += theme.Correct().Render(line) + "\n"
			case i == m.ChosenIndex:
				s += theme.Incorrect().Render(line) + "\n"
			default:
				s += theme.Disabled().Render(line) + "\n"
			}
		} else {
			if i == m.Cursor {
				s += theme.Selected().Render(line) + "\n"
			} else {
				s += theme.Unselected().Render(line) + "\n"
			}
		}
	}

	return s
}
