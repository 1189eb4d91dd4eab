package tui

import (
	"time"

	"github.com/vovakirdan/paw-chaos/internal/gesture"
	"github.com/vovakirdan/paw-chaos/internal/hal"
)

// Display collects the game core's output commands for the renderer: the
// OLED panel content, the LED color, and buzzer tones forwarded to a
// Buzzer. It stands in for the physical peripherals.
type Display struct {
	buzzer Buzzer

	lines []string

	promptMode bool
	prompt     gesture.Action
	remaining  time.Duration
	limit      time.Duration

	led hal.Color
}

// NewDisplay returns a display forwarding tones to the given buzzer.
// A nil buzzer mutes audio.
func NewDisplay(buzzer Buzzer) *Display {
	if buzzer == nil {
		buzzer = NopBuzzer{}
	}
	return &Display{buzzer: buzzer}
}

// ShowPrompt switches the panel to the in-stage prompt view. The largest
// remaining value since the last view switch is kept as the bar scale.
func (d *Display) ShowPrompt(action gesture.Action, remaining time.Duration) {
	if !d.promptMode || action != d.prompt || remaining > d.limit {
		d.limit = remaining
	}
	d.promptMode = true
	d.prompt = action
	d.remaining = remaining
}

// ShowMessage switches the panel to plain text lines.
func (d *Display) ShowMessage(lines ...string) {
	d.promptMode = false
	d.lines = lines
}

// SetIndicator sets the status LED color.
func (d *Display) SetIndicator(c hal.Color) {
	d.led = c
}

// PlayTone forwards a tone to the buzzer.
func (d *Display) PlayTone(freqHz int, dur time.Duration) {
	d.buzzer.Play(freqHz, dur)
}
