package game

import "time"

// StageTimer is the countdown for a single stage. It advances by the
// measured inter-tick delta, and expiry is a one-shot edge: Advance
// reports it exactly once, and only a new Start re-arms it.
type StageTimer struct {
	limit   time.Duration
	elapsed time.Duration
	fired   bool
}

// Start resets the timer with a new limit, re-arming expiry.
func (t *StageTimer) Start(limit time.Duration) {
	t.limit = limit
	t.elapsed = 0
	t.fired = false
}

// Advance adds dt to the elapsed time. Returns true exactly once, on the
// tick the timer expires.
func (t *StageTimer) Advance(dt time.Duration) bool {
	if t.fired {
		return false
	}
	t.elapsed += dt
	if t.elapsed >= t.limit {
		t.fired = true
		return true
	}
	return false
}

// Remaining returns the time left, never negative.
func (t *StageTimer) Remaining() time.Duration {
	if r := t.limit - t.elapsed; r > 0 {
		return r
	}
	return 0
}

// Limit returns the limit the timer was started with.
func (t *StageTimer) Limit() time.Duration {
	return t.limit
}

// Expired reports whether the timer has run out.
func (t *StageTimer) Expired() bool {
	return t.fired
}
