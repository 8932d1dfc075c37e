// Package router connects the navigation machine to the screen layer: it
// applies dispatched actions and swaps the active screen when the machine
// lands somewhere new.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/amrit/quizdeck/internal/nav"
	"github.com/amrit/quizdeck/internal/screen"
)

// Builder constructs the screen for a view-model. Injected by the app so the
// router stays free of screen package imports.
type Builder func(nav.ViewModel) screen.Screen

// Router owns the machine and the active screen.
type Router struct {
	machine *nav.Machine
	build   Builder
	active  screen.Screen
}

// New creates a Router and builds the initial screen.
func New(machine *nav.Machine, build Builder) *Router {
	return &Router{
		machine: machine,
		build:   build,
		active:  build(machine.View()),
	}
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Machine exposes the navigation machine for view-model reads.
func (r *Router) Machine() *nav.Machine {
	return r.machine
}

// Dispatch applies a nav action. Every applied action rebuilds the active
// screen from the fresh view-model; screens hold no navigation truth, so a
// rebuild is always safe.
func (r *Router) Dispatch(a nav.Action) tea.Cmd {
	r.machine.Apply(a)
	r.active = r.build(r.machine.View())
	return r.active.Init()
}

// Update forwards a message to the active screen, intercepting dispatched
// actions.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if am, ok := msg.(nav.ActionMsg); ok {
		return r.Dispatch(am.Action)
	}

	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
