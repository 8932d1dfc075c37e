// Package levels renders a specialization's level list with unlock state
// and best scores.
package levels

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrit/quizdeck/internal/nav"
	"github.com/amrit/quizdeck/internal/quiz"
	"github.com/amrit/quizdeck/internal/screen"
	"github.com/amrit/quizdeck/internal/ui/components"
	"github.com/amrit/quizdeck/internal/ui/layout"
	"github.com/amrit/quizdeck/internal/ui/theme"
)

// Screen lists a specialization's levels. Locked and question-less levels
// are rendered disabled; selecting them is also a no-op in the machine.
type Screen struct {
	vm   nav.ViewModel
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen from a Levels view-model.
func New(vm nav.ViewModel) *Screen {
	items := make([]components.MenuItem, 0, len(vm.Levels))
	for _, st := range vm.Levels {
		id := st.Level.ID
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("Level %d", st.Level.Number),
			Detail:   detail(st),
			Disabled: !st.Unlocked || !st.Level.HasQuestions(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return nav.ActionMsg{Action: nav.SelectLevel{ID: id}}
				}
			},
		})
	}

	return &Screen{
		vm:   vm,
		menu: components.NewMenu(items),
	}
}

func detail(st quiz.LevelStatus) string {
	switch {
	case !st.Level.HasQuestions():
		return "coming soon"
	case !st.Unlocked:
		return "locked"
	case st.HasBest:
		mark := ""
		if st.Passed {
			mark = " ✓"
		}
		return fmt.Sprintf("best %d/%d%s", st.Best, len(st.Level.Questions), mark)
	default:
		return fmt.Sprintf("%d questions", len(st.Level.Questions))
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	heading := ""
	if s.vm.Specialization != nil {
		heading = theme.Title().Render(s.vm.Specialization.Name)
	}

	content := heading + "\n\n" + s.menu.View()

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
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
		{Key: "G", Description: "Home"},
	}
}
