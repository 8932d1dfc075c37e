// Package app wires the navigation machine, router, and screens into the
// root Bubble Tea model.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/amrit/quizdeck/internal/content"
	"github.com/amrit/quizdeck/internal/nav"
	"github.com/amrit/quizdeck/internal/progress"
	"github.com/amrit/quizdeck/internal/router"
	"github.com/amrit/quizdeck/internal/screen"
	"github.com/amrit/quizdeck/internal/screens/home"
	"github.com/amrit/quizdeck/internal/screens/levels"
	"github.com/amrit/quizdeck/internal/screens/quizscreen"
	"github.com/amrit/quizdeck/internal/screens/result"
	"github.com/amrit/quizdeck/internal/screens/specializations"
	"github.com/amrit/quizdeck/internal/screens/stats"
	"github.com/amrit/quizdeck/internal/store"
	"github.com/amrit/quizdeck/internal/ui/layout"
	"github.com/amrit/quizdeck/internal/ui/theme"
)

// Options carries the app's injected dependencies.
type Options struct {
	Catalog  *content.Catalog
	Progress *progress.Service
	Store    *store.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	machine := nav.NewMachine(opts.Catalog, opts.Progress)

	toggleTheme := func() {
		mode := theme.Toggle()
		// Best-effort persistence; the toggle itself never fails.
		_ = opts.Store.SaveTheme(string(mode))
	}

	build := func(vm nav.ViewModel) screen.Screen {
		switch vm.Screen {
		case nav.ScreenSpecializations, nav.ScreenSubSpecializations:
			return specializations.New(vm)
		case nav.ScreenLevels:
			return levels.New(vm)
		case nav.ScreenQuiz:
			return quizscreen.New(vm)
		case nav.ScreenResult:
			return result.New(vm)
		case nav.ScreenStats:
			return stats.New(vm)
		default:
			return home.New(vm, toggleTheme)
		}
	}

	return AppModel{
		router: router.New(machine, build),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Screens with a focused input own the keyboard except for quit.
		if ic, ok := m.router.Active().(screen.InputCapturer); ok && ic.CapturingInput() {
			break
		}
		switch msg.String() {
		case "esc":
			if m.router.Machine().State().CanGoBack() {
				return m, m.router.Dispatch(nav.Back{})
			}
			return m, nil
		case "g":
			return m, m.router.Dispatch(nav.GoHome{})
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	vm := m.router.Machine().View()
	header := layout.RenderHeader(vm.Title, vm.PassedLevels, vm.TotalLevels, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if vm.CanGoBack {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "G", Description: "Home"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, body, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
