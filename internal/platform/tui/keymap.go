package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds keys to the simulated sensors. Each binding fakes the
// physical manipulation: turning or pressing the knob, shaking or
// flipping the whole device.
type keyMap struct {
	TurnLeft  key.Binding
	TurnRight key.Binding
	Press     key.Binding
	Shake     key.Binding
	Flip      key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TurnLeft, k.TurnRight, k.Press, k.Shake, k.Flip, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TurnLeft, k.TurnRight, k.Press},
		{k.Shake, k.Flip, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		TurnLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Press: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "press knob"),
		),
		Shake: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shake"),
		),
		Flip: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
