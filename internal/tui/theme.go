package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor where possible and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg  lipgloss.TerminalColor = ac("235", "252")
	colorControlBg  lipgloss.TerminalColor = ac("252", "235")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorAccent     lipgloss.TerminalColor = ac("27", "62") // blue
	colorAccentFg   lipgloss.TerminalColor = ac("255", "235")

	colorSuccess lipgloss.TerminalColor = ac("28", "78")
	colorWarning lipgloss.TerminalColor = ac("130", "214")
	colorDanger  lipgloss.TerminalColor = ac("160", "203")
	colorInfo    lipgloss.TerminalColor = ac("25", "75")
)

func styleMuted() lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(colorMuted)
	if lipgloss.HasDarkBackground() {
		st = st.Faint(true)
	}
	return st
}

func styleHeading() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleTabActive() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).
		Foreground(colorAccentFg).Background(colorAccent).Padding(0, 1)
}

func styleTab() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSurfaceFg).Background(colorControlBg).Padding(0, 1)
}

func styleSelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).
		Foreground(colorSelectedFg).Background(colorSelectedBg)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorDanger)
}

// hasColor reports whether the terminal supports color at all; honored so
// NO_COLOR environments get plain text.
func hasColor() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}
