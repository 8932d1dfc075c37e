// Package stats shows aggregate progress per specialization, with a text
// filter.
package stats

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrit/quizdeck/internal/nav"
	"github.com/amrit/quizdeck/internal/screen"
	"github.com/amrit/quizdeck/internal/ui/layout"
	"github.com/amrit/quizdeck/internal/ui/theme"
)

// Screen renders the statistics table.
type Screen struct {
	vm     nav.ViewModel
	filter textinput.Model
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.InputCapturer = (*Screen)(nil)

// New creates the screen from a Stats view-model.
func New(vm nav.ViewModel) *Screen {
	ti := textinput.New()
	ti.Placeholder = "filter specializations..."
	ti.CharLimit = 40
	return &Screen{vm: vm, filter: ti}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) CapturingInput() bool {
	return s.filter.Focused()
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.filter.Focused() {
		if kmsg.String() == "esc" || kmsg.String() == "enter" {
			s.filter.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		return s, cmd
	}

	if kmsg.String() == "/" {
		return s, s.filter.Focus()
	}
	return s, nil
}

// rows applies the filter to the view-model rows.
func (s *Screen) rows() []nav.StatsRow {
	needle := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	if needle == "" {
		return s.vm.Rows
	}
	var out []nav.StatsRow
	for _, r := range s.vm.Rows {
		if strings.Contains(strings.ToLower(r.Specialization), needle) ||
			strings.Contains(strings.ToLower(r.Category), needle) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Screen) View(width, height int) string {
	heading := theme.Title().Render("Statistics")

	var b strings.Builder
	rows := s.rows()
	if len(rows) == 0 {
		b.WriteString(theme.Hint().Render("nothing to show"))
	}
	for _, r := range rows {
		name := fmt.Sprintf("%-14s %-22s", r.Category, r.Specialization)
		counts := fmt.Sprintf("%d/%d levels passed", r.PassedLevels, r.TotalLevels)
		line := theme.Body().Render(name) + "  "
		if r.PassedLevels == r.TotalLevels {
			line += theme.Correct().Render(counts)
		} else {
			line += theme.Unselected().Render(counts)
		}
		line += theme.Hint().Render(fmt.Sprintf("  %d pts", r.Points))
		b.WriteString(line + "\n")
	}

	totals := theme.Subtitle().Render(
		fmt.Sprintf("overall: %d of %d levels passed", s.vm.PassedLevels, s.vm.TotalLevels))

	content := heading + "\n\n" + s.filter.View() + "\n\n" + b.String() + "\n" + totals

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
	if s.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Done filtering"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Filter"},
		{Key: "Esc", Description: "Home"},
	}
}
