package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pamsartech/jytechinvestment-admin/internal/model"
)

// toneColor maps a badge tone to its foreground color.
func toneColor(t model.Tone) lipgloss.TerminalColor {
	switch t {
	case model.ToneSuccess:
		return colorSuccess
	case model.ToneWarning:
		return colorWarning
	case model.ToneDanger:
		return colorDanger
	case model.ToneInfo:
		return colorInfo
	case model.ToneAccent:
		return colorAccent
	default:
		return colorMuted
	}
}

// renderPill renders a status badge as colored text. Plain label when the
// terminal has no color.
func renderPill(b model.Badge) string {
	if !hasColor() {
		return b.Label
	}
	return lipgloss.NewStyle().Foreground(toneColor(b.Tone)).Render(b.Label)
}
