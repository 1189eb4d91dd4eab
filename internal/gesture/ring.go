package gesture

import "github.com/vovakirdan/paw-chaos/internal/hal"

// ring is a fixed-size window of recent baseline-relative samples. Bounded
// by construction so the classifier's memory and latency stay constant.
type ring struct {
	buf  []hal.Vec3
	next int
	size int
}

func newRing(n int) *ring {
	return &ring{buf: make([]hal.Vec3, n)}
}

func (r *ring) push(v hal.Vec3) {
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	if r.size < len(r.buf) {
		r.size++
	}
}

func (r *ring) reset() {
	r.size = 0
	r.next = 0
}

// extrema returns the per-axis minimum and maximum over the stored window.
func (r *ring) extrema() (lo, hi hal.Vec3) {
	if r.size == 0 {
		return
	}
	first := true
	for i := range r.size {
		v := r.buf[(r.next-1-i+len(r.buf)*2)%len(r.buf)]
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo.X = min(lo.X, v.X)
		lo.Y = min(lo.Y, v.Y)
		lo.Z = min(lo.Z, v.Z)
		hi.X = max(hi.X, v.X)
		hi.Y = max(hi.Y, v.Y)
		hi.Z = max(hi.Z, v.Z)
	}
	return lo, hi
}
