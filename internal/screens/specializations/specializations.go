// Package specializations renders the specialization list for a category,
// and doubles as the sub-specialization list when a nested node is treated
// as a pseudo-category.
package specializations

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrit/quizdeck/internal/content"
	"github.com/amrit/quizdeck/internal/nav"
	"github.com/amrit/quizdeck/internal/screen"
	"github.com/amrit/quizdeck/internal/ui/components"
	"github.com/amrit/quizdeck/internal/ui/layout"
	"github.com/amrit/quizdeck/internal/ui/theme"
)

// Screen lists selectable specializations. Placeholders ("coming soon") are
// rendered disabled.
type Screen struct {
	vm   nav.ViewModel
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen from a Specializations or SubSpecializations
// view-model.
func New(vm nav.ViewModel) *Screen {
	items := make([]components.MenuItem, 0, len(vm.Specializations))
	for _, spec := range vm.Specializations {
		id := spec.ID
		items = append(items, components.MenuItem{
			Label:    spec.Name,
			Detail:   detail(spec),
			Disabled: spec.Placeholder(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return nav.ActionMsg{Action: nav.SelectSpecialization{ID: id}}
				}
			},
		})
	}

	return &Screen{
		vm:   vm,
		menu: components.NewMenu(items),
	}
}

func detail(spec content.Specialization) string {
	if spec.Placeholder() {
		return "coming soon"
	}
	if spec.HasChildren() {
		return fmt.Sprintf("%d tracks", len(spec.Children))
	}
	return fmt.Sprintf("%d levels", len(spec.Levels))
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
	switch {
	case s.vm.Parent != nil:
		heading = theme.Title().Render(s.vm.Parent.Name)
	case s.vm.Category != nil:
		heading = theme.Title().Render(s.vm.Category.Name)
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
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
		{Key: "G", Description: "Home"},
	}
}
