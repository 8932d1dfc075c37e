// Package home renders the category list plus the secondary entry points:
// statistics, theme toggle, quit.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrit/quizdeck/internal/nav"
	"github.com/amrit/quizdeck/internal/screen"
	"github.com/amrit/quizdeck/internal/ui/components"
	"github.com/amrit/quizdeck/internal/ui/layout"
	"github.com/amrit/quizdeck/internal/ui/theme"
)

// HomeScreen is the entry screen of the application.
type HomeScreen struct {
	vm          nav.ViewModel
	menu        components.Menu
	toggleTheme func()
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen from the home view-model. toggleTheme swaps and
// persists the palette.
func New(vm nav.ViewModel, toggleTheme func()) *HomeScreen {
	items := make([]components.MenuItem, 0, len(vm.Categories)+3)

	for _, cat := range vm.Categories {
		id := cat.ID
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(cat.Name),
			Detail: fmt.Sprintf("%d specializations", len(cat.Specializations)),
			Action: func() tea.Cmd {
				return dispatch(nav.SelectCategory{ID: id})
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "STATISTICS",
			Action: func() tea.Cmd {
				return dispatch(nav.OpenStats{})
			},
		},
		components.MenuItem{
			Label: "THEME: " + strings.ToUpper(string(theme.ActiveMode())),
			Action: func() tea.Cmd {
				toggleTheme()
				// Re-entering Home rebuilds the menu with the new label.
				return dispatch(nav.GoHome{})
			},
		},
		components.MenuItem{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{
		vm:          vm,
		menu:        components.NewMenu(items),
		toggleTheme: toggleTheme,
	}
}

func dispatch(a nav.Action) tea.Cmd {
	return func() tea.Msg {
		return nav.ActionMsg{Action: a}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "t" {
		// Shortcut for the theme menu item.
		h.toggleTheme()
		return h, dispatch(nav.GoHome{})
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title().Render("Q U I Z D E C K")
	subtitle := theme.Subtitle().Render("pick a category, climb the levels")
	progress := theme.Hint().Render(
		fmt.Sprintf("%d of %d levels passed", h.vm.PassedLevels, h.vm.TotalLevels))

	content := title + "\n" + subtitle + "\n\n" + h.menu.View() + "\n" + progress

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return h.vm.Title
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
