// Package input turns raw pollable sensor lines into debounced discrete
// events, one batch per tick of the main loop.
package input

import "github.com/vovakirdan/paw-chaos/internal/hal"

// StepDirection is the rotation direction of a validated encoder detent.
type StepDirection int

const (
	StepCW StepDirection = iota
	StepCCW
)

// String returns a human-readable name for the direction.
func (d StepDirection) String() string {
	if d == StepCCW {
		return "CCW"
	}
	return "CW"
}

// Events is everything the sampler observed during one poll. The zero
// value means "nothing happened", which is the common case.
type Events struct {
	// Steps holds validated encoder detents, in the order they decoded.
	Steps []StepDirection

	// ButtonDown and ButtonUp fire on debounced transitions only, never
	// on held state.
	ButtonDown bool
	ButtonUp   bool

	// Accel is the raw accelerometer vector for this tick. AccelValid is
	// false when the read failed; classification skips the sample.
	Accel      hal.Vec3
	AccelValid bool
}

// Config holds the sampler's debounce tuning.
type Config struct {
	// MinStepInterval is the minimum number of ticks between accepted
	// encoder steps. Steps arriving closer together are treated as
	// contact bounce and discarded.
	MinStepInterval int

	// ButtonStablePolls is how many consecutive polls the button level
	// must hold before a transition is accepted.
	ButtonStablePolls int
}

// Sampler polls the encoder, button and accelerometer once per tick and
// emits debounced events. A failed read on any device yields no event for
// that device on that tick; it never propagates.
type Sampler struct {
	enc hal.Encoder
	btn hal.Button
	acc hal.Accelerometer
	cfg Config

	tick         uint64
	lastClk      bool
	haveClk      bool
	lastStepTick uint64
	haveStep     bool

	btnState     bool
	btnCandidate bool
	btnRun       int
}

// NewSampler wires a sampler to its devices. ButtonStablePolls is
// clamped to at least one poll so edges still fire under a degenerate
// config.
func NewSampler(enc hal.Encoder, btn hal.Button, acc hal.Accelerometer, cfg Config) *Sampler {
	if cfg.ButtonStablePolls < 1 {
		cfg.ButtonStablePolls = 1
	}
	if cfg.MinStepInterval < 0 {
		cfg.MinStepInterval = 0
	}
	return &Sampler{enc: enc, btn: btn, acc: acc, cfg: cfg}
}

// Poll reads all devices once and returns the events for this tick.
func (s *Sampler) Poll() Events {
	s.tick++
	var ev Events

	// Quadrature decode: a step fires on the CLK rising edge, with DT
	// selecting the direction. DT low means clockwise.
	if clk, dt, err := s.enc.Lines(); err == nil {
		if s.haveClk && !s.lastClk && clk {
			dir := StepCW
			if dt {
				dir = StepCCW
			}
			if !s.haveStep || s.tick-s.lastStepTick >= uint64(s.cfg.MinStepInterval) {
				ev.Steps = append(ev.Steps, dir)
				s.lastStepTick = s.tick
				s.haveStep = true
			}
		}
		s.lastClk = clk
		s.haveClk = true
	}

	// Button edges: the raw level must hold for ButtonStablePolls before
	// a transition is accepted.
	if pressed, err := s.btn.Pressed(); err == nil {
		if pressed == s.btnCandidate {
			if s.btnRun < s.cfg.ButtonStablePolls {
				s.btnRun++
			}
		} else {
			s.btnCandidate = pressed
			s.btnRun = 1
		}
		if s.btnRun >= s.cfg.ButtonStablePolls && s.btnCandidate != s.btnState {
			s.btnState = s.btnCandidate
			if s.btnState {
				ev.ButtonDown = true
			} else {
				ev.ButtonUp = true
			}
		}
	}

	// Accelerometer: raw vector, classification happens downstream.
	if v, err := s.acc.Acceleration(); err == nil {
		ev.Accel = v
		ev.AccelValid = true
	}

	return ev
}
