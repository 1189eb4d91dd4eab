package hal

// Simulated devices backing the terminal frontend and the test suites.
// They reproduce the signal shapes of the real parts: the encoder walks
// through quadrature phases one poll at a time, the button holds its level
// for a number of polls, and the accelerometer plays back queued waveform
// samples on top of a gravity rest vector.

// Gravity is the rest reading on the up axis in m/s².
const Gravity = 9.8

// SimEncoder emits quadrature line states. Each queued detent is played
// back as the phase sequence a real encoder produces for one click.
type SimEncoder struct {
	phases [][2]bool
	clk    bool
	dt     bool

	// Err, when set, is returned by every Lines call until cleared.
	Err error
}

// NewSimEncoder returns an encoder idling with both lines high, as with
// pull-up wiring.
func NewSimEncoder() *SimEncoder {
	return &SimEncoder{clk: true, dt: true}
}

// Turn queues detents clockwise (cw true) or counter-clockwise. A CW
// detent presents DT low on the CLK rising edge, a CCW detent DT high.
func (e *SimEncoder) Turn(cw bool, detents int) {
	for range detents {
		if cw {
			e.phases = append(e.phases,
				[2]bool{false, false},
				[2]bool{true, false},
				[2]bool{true, true},
			)
		} else {
			e.phases = append(e.phases,
				[2]bool{false, true},
				[2]bool{true, true},
			)
		}
	}
}

// Lines returns the current quadrature state, advancing one phase per poll.
func (e *SimEncoder) Lines() (bool, bool, error) {
	if e.Err != nil {
		return e.clk, e.dt, e.Err
	}
	if len(e.phases) > 0 {
		e.clk, e.dt = e.phases[0][0], e.phases[0][1]
		e.phases = e.phases[1:]
	}
	return e.clk, e.dt, nil
}

// SimButton holds a pressed level for a fixed number of polls per press.
type SimButton struct {
	holdPolls int

	// Err, when set, is returned by every Pressed call until cleared.
	Err error
}

// Press holds the line at the pressed level for the next polls reads.
// Use a value above the sampler's stability threshold for the edge to
// survive debouncing.
func (b *SimButton) Press(polls int) {
	b.holdPolls = polls
}

// Pressed reports the current line level.
func (b *SimButton) Pressed() (bool, error) {
	if b.Err != nil {
		return false, b.Err
	}
	if b.holdPolls > 0 {
		b.holdPolls--
		return true, nil
	}
	return false, nil
}

// SimAccel plays back queued waveform samples; with an empty queue it
// reports the rest vector (gravity on +Z, or -Z while flipped).
type SimAccel struct {
	queue     []Vec3
	flipPolls int

	// Err, when set, is returned by every Acceleration call until cleared.
	Err error
}

// Shake queues an oscillating X-axis burst of the given amplitude.
func (a *SimAccel) Shake(amplitude float64, samples int) {
	for i := range samples {
		x := amplitude
		if i%2 == 1 {
			x = -amplitude
		}
		a.queue = append(a.queue, Vec3{X: x, Z: Gravity})
	}
}

// Flip inverts the gravity axis for the next polls reads.
func (a *SimAccel) Flip(polls int) {
	a.flipPolls = polls
}

// Acceleration returns the next sample.
func (a *SimAccel) Acceleration() (Vec3, error) {
	if a.Err != nil {
		return Vec3{}, a.Err
	}
	if len(a.queue) > 0 {
		v := a.queue[0]
		a.queue = a.queue[1:]
		return v, nil
	}
	if a.flipPolls > 0 {
		a.flipPolls--
		return Vec3{Z: -Gravity}, nil
	}
	return Vec3{Z: Gravity}, nil
}
