package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paw-chaos/internal/hal"
)

const (
	panelWidth = 36
	barWidth   = 26
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(1, 2).
			Width(panelWidth)

	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	barFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barLowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderController draws the OLED panel, the status LED and the help bar.
func renderController(m Model) string {
	var body string
	if m.display.promptMode {
		body = renderPrompt(m.display)
	} else {
		body = strings.Join(m.display.lines, "\n")
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(body),
		renderLED(m.display.led),
		"",
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// renderPrompt draws the in-stage view: the commanded action and the
// time budget draining under it.
func renderPrompt(d *Display) string {
	secs := float64(d.remaining) / float64(time.Second)
	return fmt.Sprintf("Do: %s\n\n%s %.2fs",
		promptStyle.Render(d.prompt.String()),
		renderBar(d.remaining, d.limit),
		secs,
	)
}

func renderBar(remaining, limit time.Duration) string {
	filled := barWidth
	if limit > 0 {
		filled = int(float64(barWidth) * float64(remaining) / float64(limit))
	}
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}

	full := barFullStyle
	if filled <= barWidth/4 {
		full = barLowStyle
	}
	return full.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}

// renderLED draws the status LED as a colored dot.
func renderLED(c hal.Color) string {
	dot := "○"
	style := barEmptyStyle
	if c != (hal.Color{}) {
		dot = "●"
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)))
	}
	return labelStyle.Render(" LED ") + style.Render(dot)
}
