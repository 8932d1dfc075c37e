package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/amrit/quizdeck/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu. Disabled items are
// rendered but skipped by the cursor and never activated.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			s += theme.Disabled().Render("    "+item.Label) + renderDetail(item) + "\n"
		case i == m.Selected:
			s += theme.Selected().Render("  ▸ "+item.Label) + renderDetail(item) + "\n"
		default:
			s += theme.Unselected().Render("    "+item.Label) + renderDetail(item) + "\n"
		}
	}
	return s
}

func renderDetail(item MenuItem) string {
	if item.Detail == "" {
		return ""
	}
	return "  " + theme.Hint().Render(item.Detail)
}
