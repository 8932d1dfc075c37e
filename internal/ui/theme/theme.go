// Package theme holds the color palettes and shared styles. Two palettes
// ship with the app; the active one is swapped at runtime and the choice is
// persisted as the "theme" record.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Mode selects a palette.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode maps a persisted mode string to a Mode, defaulting to light.
func ParseMode(s string) Mode {
	if s == string(ModeDark) {
		return ModeDark
	}
	return ModeLight
}

// Palette is the full color set used by the UI.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
	Locked    color.Color
}

var dark = Palette{
	Primary:   lipgloss.Color("#8B5CF6"), // Vivid Purple
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
	Locked:    lipgloss.Color("#475569"), // Muted Slate
}

var light = Palette{
	Primary:   lipgloss.Color("#6D28D9"), // Deep Purple
	Secondary: lipgloss.Color("#0F766E"), // Dark Teal
	Accent:    lipgloss.Color("#C2410C"), // Burnt Orange
	Success:   lipgloss.Color("#15803D"), // Green
	Error:     lipgloss.Color("#BE123C"), // Rose
	Text:      lipgloss.Color("#0F172A"), // Near Black
	TextDim:   lipgloss.Color("#64748B"), // Slate
	BgCard:    lipgloss.Color("#E2E8F0"), // Light Slate
	Border:    lipgloss.Color("#94A3B8"), // Slate
	Locked:    lipgloss.Color("#CBD5E1"), // Pale Slate
}

var (
	active     = light
	activeMode = ModeLight
)

// Use switches the active palette.
func Use(m Mode) {
	activeMode = m
	if m == ModeDark {
		active = dark
	} else {
		active = light
	}
}

// Active returns the current palette.
func Active() Palette {
	return active
}

// ActiveMode returns the current mode.
func ActiveMode() Mode {
	return activeMode
}

// Toggle switches between light and dark and returns the new mode.
func Toggle() Mode {
	if activeMode == ModeDark {
		Use(ModeLight)
	} else {
		Use(ModeDark)
	}
	return activeMode
}

// Styles are built on demand so palette swaps take effect immediately.

func Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(active.Primary).Align(lipgloss.Center)
}

func Subtitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(active.TextDim).Align(lipgloss.Center)
}

func Body() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(active.Text)
}

func Hint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(active.TextDim).Italic(true)
}

func Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(active.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(active.Border).
		Padding(1, 2)
}

func Selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(active.Primary).Bold(true)
}

func Unselected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(active.Text)
}

func Disabled() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(active.Locked)
}

func Correct() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(active.Success).Bold(true)
}

func Incorrect() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(active.Error).Bold(true)
}
