// Package result shows the outcome of a completed attempt: score, pass or
// fail, and the retry / review / next-level / share affordances.
package result

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrit/quizdeck/internal/nav"
	"github.com/amrit/quizdeck/internal/screen"
	"github.com/amrit/quizdeck/internal/share"
	"github.com/amrit/quizdeck/internal/ui/components"
	"github.com/amrit/quizdeck/internal/ui/layout"
	"github.com/amrit/quizdeck/internal/ui/theme"
)

// Screen presents the result view-model. The "next level" item is shown
// whenever a subsequent question-bearing level exists, but enabled only
// after a pass.
type Screen struct {
	vm      nav.ViewModel
	menu    components.Menu
	sharing bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the screen from a Result view-model.
func New(vm nav.ViewModel) *Screen {
	s := &Screen{vm: vm}

	items := []components.MenuItem{
		{Label: "RETRY", Action: dispatch(nav.Retry{})},
		{Label: "REVIEW ANSWERS", Action: dispatch(nav.Review{})},
	}
	if vm.HasNext {
		items = append(items, components.MenuItem{
			Label:    "NEXT LEVEL",
			Disabled: !vm.NextAllowed,
			Action:   dispatch(nav.NextLevel{}),
		})
	}
	items = append(items,
		components.MenuItem{
			Label: "SHARE RESULT",
			Action: func() tea.Cmd {
				s.sharing = true
				return nil
			},
		},
		components.MenuItem{Label: "BACK TO LEVELS", Action: dispatch(nav.Back{})},
	)

	s.menu = components.NewMenu(items)
	return s
}

func dispatch(a nav.Action) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return nav.ActionMsg{Action: a}
		}
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) CapturingInput() bool {
	return s.sharing
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.sharing {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "esc", "enter", "q":
				s.sharing = false
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) summary() share.ResultSummary {
	sum := share.ResultSummary{
		Score:  s.vm.Score,
		Total:  s.vm.Total,
		Passed: s.vm.Passed,
	}
	if s.vm.Category != nil {
		sum.Category = s.vm.Category.Name
	}
	if s.vm.Specialization != nil {
		sum.Specialization = s.vm.Specialization.Name
	}
	if s.vm.Level != nil {
		sum.LevelNumber = s.vm.Level.Number
	}
	return sum
}

func (s *Screen) View(width, height int) string {
	if s.sharing {
		card := theme.Card().Render(
			s.summary().Text() + "\n\n" + theme.Hint().Render("esc to close"))
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(card)
	}

	verdict := theme.Incorrect().Render("LEVEL FAILED")
	if s.vm.Passed {
		verdict = theme.Correct().Render("LEVEL PASSED")
	}

	scoreLine := theme.Title().Render(
		fmt.Sprintf("%d / %d", s.vm.Score, s.vm.Total))

	frac := 0.0
	if s.vm.Total > 0 {
		frac = float64(s.vm.Score) / float64(s.vm.Total)
	}
	bar := components.NewProgressBar("", frac, true, 40)

	status := ""
	if s.vm.SaveError != nil {
		status = theme.Incorrect().Render(
			fmt.Sprintf("could not save progress: %v", s.vm.SaveError))
	}

	content := verdict + "\n\n" + scoreLine + "\n" + bar.View() + "\n\n" + s.menu.View()
	if status != "" {
		content += "\n" + status
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (s *Screen) Title() string {
	return s.vm.Title
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back to levels"},
	}
}
