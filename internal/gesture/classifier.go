// Package gesture maps debounced sensor events onto the five player
// actions. Button and encoder events translate directly; shake and flip
// are recognized from a short rolling window of accelerometer samples.
package gesture

import (
	"github.com/vovakirdan/paw-chaos/internal/hal"
	"github.com/vovakirdan/paw-chaos/internal/input"
)

// Action is one of the five recognized player gestures.
type Action int

const (
	ActionPaw Action = iota
	ActionTailLeft
	ActionTailRight
	ActionShake
	ActionFlip
)

// ActionCount is the number of distinct actions.
const ActionCount = 5

// String returns the display name shown on the prompt screen.
func (a Action) String() string {
	switch a {
	case ActionPaw:
		return "PAW"
	case ActionTailLeft:
		return "TAIL LEFT"
	case ActionTailRight:
		return "TAIL RIGHT"
	case ActionShake:
		return "SHAKE"
	case ActionFlip:
		return "FLIP"
	default:
		return "UNKNOWN"
	}
}

// Config holds the motion-detection tuning. These are tuning parameters,
// not structural behavior; defaults live in the config package.
type Config struct {
	// ShakeThreshold is the peak-to-peak deviation in m/s² that counts as
	// a shake. The window must swing past half the threshold on both
	// sides of the baseline, so a single orientation change (a flip)
	// does not register.
	ShakeThreshold float64

	// ShakeWindow is the number of recent samples inspected.
	ShakeWindow int

	// ShakeRefractory is the number of ticks after a shake during which
	// neither shake nor flip may fire again.
	ShakeRefractory int

	// FlipThreshold is how far below zero the up axis must read, in
	// m/s², to count as inverted.
	FlipThreshold float64

	// FlipDwell is how many consecutive ticks the inversion must hold
	// before a flip fires. Transient tumbling during a shake never
	// dwells that long.
	FlipDwell int

	// BaselineAlpha is the per-axis EMA coefficient tracking gravity.
	BaselineAlpha float64
}

// Classifier turns per-tick sensor events into zero or one Action.
type Classifier struct {
	cfg Config

	window       *ring
	baseline     hal.Vec3
	haveBaseline bool

	refractory int
	dwell      int
	flipFired  bool
}

// NewClassifier returns a classifier with the given tuning. The window
// size and flip dwell are clamped to at least one so a degenerate config
// degrades detection instead of breaking it.
func NewClassifier(cfg Config) *Classifier {
	if cfg.ShakeWindow < 1 {
		cfg.ShakeWindow = 1
	}
	if cfg.FlipDwell < 1 {
		cfg.FlipDwell = 1
	}
	return &Classifier{cfg: cfg, window: newRing(cfg.ShakeWindow)}
}

// Reset clears motion history, e.g. when a new game starts.
func (c *Classifier) Reset() {
	c.window.reset()
	c.haveBaseline = false
	c.refractory = 0
	c.dwell = 0
	c.flipFired = false
}

// Classify consumes one tick's events and returns at most one action.
// Discrete events take precedence over motion patterns; between the two
// motion gestures SHAKE wins a simultaneous tick because its detection is
// time-windowed and more specific, while FLIP keeps dwelling and resolves
// once the shake refractory elapses.
func (c *Classifier) Classify(ev input.Events) (Action, bool) {
	shake, flip := c.observeMotion(ev)

	switch {
	case ev.ButtonDown:
		return ActionPaw, true
	case len(ev.Steps) > 0:
		if ev.Steps[0] == input.StepCCW {
			return ActionTailLeft, true
		}
		return ActionTailRight, true
	case shake:
		return ActionShake, true
	case flip:
		return ActionFlip, true
	}
	return 0, false
}

// observeMotion updates the accelerometer bookkeeping and reports whether
// a shake or flip fired this tick. Runs every tick, even when a discrete
// event wins classification, so the motion state never goes stale.
func (c *Classifier) observeMotion(ev input.Events) (shake, flip bool) {
	if !ev.AccelValid {
		// Transient read fault: hold all motion state for one tick.
		return false, false
	}

	if c.refractory > 0 {
		c.refractory--
	}

	if !c.haveBaseline {
		c.baseline = ev.Accel
		c.haveBaseline = true
	} else {
		a := c.cfg.BaselineAlpha
		c.baseline.X += a * (ev.Accel.X - c.baseline.X)
		c.baseline.Y += a * (ev.Accel.Y - c.baseline.Y)
		c.baseline.Z += a * (ev.Accel.Z - c.baseline.Z)
	}

	// The window stays empty while the refractory runs: firing again must
	// take fresh post-refractory motion, never leftovers of the shake
	// that was just detected.
	if c.refractory == 0 {
		c.window.push(hal.Vec3{
			X: ev.Accel.X - c.baseline.X,
			Y: ev.Accel.Y - c.baseline.Y,
			Z: ev.Accel.Z - c.baseline.Z,
		})
		if c.windowShaken() {
			shake = true
			c.refractory = c.cfg.ShakeRefractory
			c.window.reset()
		}
	}

	// Flip dwell counts raw up-axis inversion, independent of baseline.
	// It keeps accumulating through a shake refractory; firing waits.
	if ev.Accel.Z < -c.cfg.FlipThreshold {
		c.dwell++
	} else {
		c.dwell = 0
		c.flipFired = false
	}
	if !shake && c.refractory == 0 && !c.flipFired && c.dwell >= c.cfg.FlipDwell {
		flip = true
		c.flipFired = true
	}

	return shake, flip
}

// windowShaken reports whether any axis swung past half the shake
// threshold on both sides of the baseline within the window.
func (c *Classifier) windowShaken() bool {
	lo, hi := c.window.extrema()
	half := c.cfg.ShakeThreshold / 2
	return (hi.X > half && lo.X < -half) ||
		(hi.Y > half && lo.Y < -half) ||
		(hi.Z > half && lo.Z < -half)
}
