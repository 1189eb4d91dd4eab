package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paw-chaos/internal/config"
	"github.com/vovakirdan/paw-chaos/internal/game"
	"github.com/vovakirdan/paw-chaos/internal/gesture"
	"github.com/vovakirdan/paw-chaos/internal/hal"
	"github.com/vovakirdan/paw-chaos/internal/input"
)

// Model is the Bubble Tea model running the controller loop: each tick it
// polls the simulated sensors, classifies the events and advances the
// game, exactly as the device firmware would.
type Model struct {
	cfg      config.Config
	tickRate int

	enc *hal.SimEncoder
	btn *hal.SimButton
	acc *hal.SimAccel

	sampler    *input.Sampler
	classifier *gesture.Classifier
	game       *game.Game
	display    *Display

	keys keyMap
	help help.Model

	lastTick time.Time
	width    int
	height   int
	quitting bool
}

// NewModel wires the full controller stack around simulated sensors.
// A nil buzzer mutes audio; a zero seed falls back to the clock.
func NewModel(cfg config.Config, table game.ScoreTable, buzzer Buzzer, logger *log.Logger, tickRate int, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	enc := hal.NewSimEncoder()
	btn := &hal.SimButton{}
	acc := &hal.SimAccel{}
	display := NewDisplay(buzzer)

	return Model{
		cfg:      cfg,
		tickRate: tickRate,
		enc:      enc,
		btn:      btn,
		acc:      acc,
		sampler: input.NewSampler(enc, btn, acc, input.Config{
			MinStepInterval:   cfg.Sampler.MinStepInterval,
			ButtonStablePolls: cfg.Sampler.ButtonStablePolls,
		}),
		classifier: gesture.NewClassifier(gesture.Config{
			ShakeThreshold:  cfg.Gesture.ShakeThreshold,
			ShakeWindow:     cfg.Gesture.ShakeWindow,
			ShakeRefractory: cfg.Gesture.ShakeRefractory,
			FlipThreshold:   cfg.Gesture.FlipThreshold,
			FlipDwell:       cfg.Gesture.FlipDwell,
			BaselineAlpha:   cfg.Gesture.BaselineAlpha,
		}),
		game:    game.New(cfg, display, table, logger, seed),
		display: display,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey injects the simulated manipulation for a key press. The
// sensors then produce the same signal shapes the real parts would, so
// everything downstream of the sampler is exercised unchanged.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.TurnLeft):
		m.enc.Turn(false, 1)

	case key.Matches(msg, m.keys.TurnRight):
		m.enc.Turn(true, 1)

	case key.Matches(msg, m.keys.Press):
		// Hold past the debounce threshold so the edge registers.
		m.btn.Press(m.cfg.Sampler.ButtonStablePolls + 2)

	case key.Matches(msg, m.keys.Shake):
		m.acc.Shake(m.cfg.Gesture.ShakeThreshold, m.cfg.Gesture.ShakeWindow)

	case key.Matches(msg, m.keys.Flip):
		m.acc.Flip(m.cfg.Gesture.FlipDwell + 5)
	}

	return m, nil
}

// handleTick runs one firmware loop iteration with the measured delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	interval := time.Second / time.Duration(m.tickRate)

	dt := interval
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	// Clamp stalls (suspended terminal, debugger) so a single late tick
	// cannot swallow a whole stage budget.
	if max := 4 * interval; dt > max {
		dt = max
	}
	if dt <= 0 {
		dt = interval
	}

	ev := m.sampler.Poll()
	action, detected := m.classifier.Classify(ev)

	prev := m.game.State()
	m.game.Tick(dt, ev, action, detected)
	if shouldResetMotion(prev, m.game.State()) {
		// Motion history from fiddling in the menu must not leak into
		// the first stage.
		m.classifier.Reset()
	}

	return m, tickCmd(m.tickRate)
}

// shouldResetMotion reports whether the game transition starts a new run,
// which clears the classifier's accumulated motion state.
func shouldResetMotion(prev, next game.State) bool {
	return prev == game.StateDifficultySelect && next == game.StateCountdown
}

// View renders the controller.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderController(m)
}

// Run starts the controller UI and blocks until the player quits.
func Run(cfg config.Config, table game.ScoreTable, buzzer Buzzer, logger *log.Logger, tickRate int, seed int64) error {
	m := NewModel(cfg, table, buzzer, logger, tickRate, seed)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
