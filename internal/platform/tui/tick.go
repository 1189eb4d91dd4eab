// Package tui is the terminal frontend for the controller. It renders the
// OLED panel, status LED and buzzer in the terminal and maps key presses
// onto the simulated sensors, so the whole firmware loop runs end to end
// without hardware.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one iteration of the firmware loop.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
