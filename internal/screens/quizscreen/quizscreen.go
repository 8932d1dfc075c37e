// Package quizscreen runs one attempt through a level's questions, and
// replays finished attempts in review mode.
package quizscreen

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrit/quizdeck/internal/nav"
	"github.com/amrit/quizdeck/internal/quiz"
	"github.com/amrit/quizdeck/internal/screen"
	"github.com/amrit/quizdeck/internal/share"
	"github.com/amrit/quizdeck/internal/ui/components"
	"github.com/amrit/quizdeck/internal/ui/layout"
	"github.com/amrit/quizdeck/internal/ui/theme"
)

// Screen owns the live answer buffer for one attempt. Navigation truth
// stays in the machine; completing the attempt dispatches CompleteQuiz.
type Screen struct {
	vm      nav.ViewModel
	attempt *quiz.Attempt
	mc      components.MultiChoice

	// reporting shows the question-report overlay.
	reporting  bool
	reportText string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the screen from a Quiz view-model. Review view-models carry
// the finished attempt's answers; fresh ones start all-unanswered.
func New(vm nav.ViewModel) *Screen {
	var attempt *quiz.Attempt
	if vm.Review {
		attempt = quiz.NewReview(vm.Questions, vm.Answers)
	} else {
		attempt = quiz.NewAttempt(vm.Questions)
	}

	s := &Screen{vm: vm, attempt: attempt}
	s.syncChoice()
	return s
}

// syncChoice rebuilds the option component for the question under the
// cursor.
func (s *Screen) syncChoice() {
	q := s.attempt.Current()
	if q == nil {
		return
	}
	chosen := s.attempt.Answers[s.attempt.Index]
	locked := s.attempt.Review || chosen != quiz.Unanswered
	s.mc = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex, chosen, locked)
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) CapturingInput() bool {
	return s.reporting
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.reporting {
		switch kmsg.String() {
		case "esc", "enter", "q":
			s.reporting = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		if !s.attempt.Review && !s.attempt.Answered() {
			if s.attempt.Select(s.mc.Choice()) {
				s.syncChoice()
			}
			return s, nil
		}
		return s.advance()
	case "right", "l", "n":
		return s.advance()
	case "left", "p":
		s.attempt.Prev()
		s.syncChoice()
		return s, nil
	case "r":
		q := s.attempt.Current()
		if q != nil && s.vm.Level != nil {
			s.reportText = share.QuestionReport(s.vm.Level.Number, q.ID, q.Text)
			s.reporting = true
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	return s, cmd
}

// advance moves forward; walking past the last question completes the
// attempt and hands score plus answers to the machine.
func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	if !s.attempt.CanAdvance() {
		return s, nil
	}

	atLast := s.attempt.Index == len(s.attempt.Questions)-1
	if atLast && !s.attempt.Review {
		s.attempt.Next()
		score := s.attempt.Score()
		answers := s.attempt.Answers
		return s, func() tea.Msg {
			return nav.ActionMsg{Action: nav.CompleteQuiz{Score: score, Answers: answers}}
		}
	}

	if s.attempt.Next() {
		s.syncChoice()
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.reporting {
		return s.renderReport(width, height)
	}

	q := s.attempt.Current()
	if q == nil {
		return ""
	}

	total := len(s.attempt.Questions)
	position := theme.Subtitle().Render(
		fmt.Sprintf("Question %d of %d", s.attempt.Index+1, total))

	bar := components.NewProgressBar("", float64(s.attempt.Index)/float64(total), false, 40)

	status := ""
	switch {
	case s.attempt.Review:
		status = theme.Hint().Render("review mode: answers are read-only")
	case s.attempt.Answered():
		status = theme.Hint().Render("answer locked, press enter to continue")
	}

	content := position + "\n" + bar.View() + "\n\n" + s.mc.View() + "\n" + status

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *Screen) renderReport(width, height int) string {
	body := s.reportText + "\n\nAttempt: " + s.attempt.ID
	card := theme.Card().Render(body + "\n\n" + theme.Hint().Render("esc to close"))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *Screen) Title() string {
	return s.vm.Title
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.attempt.Review {
		return []layout.KeyHint{
			{Key: "←→", Description: "Browse"},
			{Key: "Esc", Description: "Back"},
			{Key: "R", Description: "Report question"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer / Next"},
		{Key: "Esc", Description: "Quit level"},
		{Key: "R", Description: "Report question"},
	}
}
