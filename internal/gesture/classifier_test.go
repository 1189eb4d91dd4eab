package gesture

import (
	"testing"

	"github.com/vovakirdan/paw-chaos/internal/hal"
	"github.com/vovakirdan/paw-chaos/internal/input"
)

func testCfg() Config {
	return Config{
		ShakeThreshold:  20,
		ShakeWindow:     8,
		ShakeRefractory: 10,
		FlipThreshold:   5,
		FlipDwell:       4,
		BaselineAlpha:   0.05,
	}
}

func rest() input.Events {
	return input.Events{Accel: hal.Vec3{Z: hal.Gravity}, AccelValid: true}
}

func accel(v hal.Vec3) input.Events {
	return input.Events{Accel: v, AccelValid: true}
}

// feed runs a sample sequence through the classifier and returns every
// action that fired, in order.
func feed(c *Classifier, evs []input.Events) []Action {
	var out []Action
	for _, ev := range evs {
		if a, ok := c.Classify(ev); ok {
			out = append(out, a)
		}
	}
	return out
}

func shakeBurst(amplitude float64, samples int) []input.Events {
	out := make([]input.Events, 0, samples)
	for i := range samples {
		x := amplitude
		if i%2 == 1 {
			x = -amplitude
		}
		out = append(out, accel(hal.Vec3{X: x, Z: hal.Gravity}))
	}
	return out
}

func flipHold(polls int) []input.Events {
	out := make([]input.Events, 0, polls)
	for range polls {
		out = append(out, accel(hal.Vec3{Z: -hal.Gravity}))
	}
	return out
}

func TestClassifyDiscreteEvents(t *testing.T) {
	tests := []struct {
		name string
		ev   input.Events
		want Action
	}{
		{"button press is paw", input.Events{ButtonDown: true}, ActionPaw},
		{"ccw step is tail left", input.Events{Steps: []input.StepDirection{input.StepCCW}}, ActionTailLeft},
		{"cw step is tail right", input.Events{Steps: []input.StepDirection{input.StepCW}}, ActionTailRight},
		{"button beats encoder", input.Events{ButtonDown: true, Steps: []input.StepDirection{input.StepCW}}, ActionPaw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(testCfg())
			got, ok := c.Classify(tt.ev)
			if !ok || got != tt.want {
				t.Errorf("Classify = %v, %v; want %v, true", got, ok, tt.want)
			}
		})
	}
}

func TestClassifyNothing(t *testing.T) {
	c := NewClassifier(testCfg())
	for i := range 20 {
		if a, ok := c.Classify(rest()); ok {
			t.Fatalf("tick %d: resting device classified as %v", i, a)
		}
	}
}

func TestClassifyShake(t *testing.T) {
	c := NewClassifier(testCfg())

	// Settle the gravity baseline, then oscillate well past the threshold.
	evs := []input.Events{rest()}
	evs = append(evs, shakeBurst(15, 6)...)

	got := feed(c, evs)
	if len(got) != 1 || got[0] != ActionShake {
		t.Fatalf("got %v, want exactly one SHAKE", got)
	}
}

func TestClassifyShakeNeedsBothPolarities(t *testing.T) {
	c := NewClassifier(testCfg())

	// A one-sided push exceeds the peak-to-peak threshold against zero but
	// never swings below the baseline, so it must not count.
	evs := []input.Events{rest()}
	for range 6 {
		evs = append(evs, accel(hal.Vec3{X: 25, Z: hal.Gravity}))
	}

	if got := feed(c, evs); len(got) != 0 {
		t.Fatalf("one-sided push classified as %v", got)
	}
}

func TestClassifyShakeRefractory(t *testing.T) {
	cfg := testCfg()
	c := NewClassifier(cfg)
	c.Classify(rest())

	// A long burst fires once, then stays quiet through the refractory.
	got := feed(c, shakeBurst(15, cfg.ShakeRefractory))
	if len(got) != 1 {
		t.Fatalf("sustained burst fired %d times, want 1", len(got))
	}

	// Resting samples drain the refractory. Nothing may fire here: the
	// burst's samples are history and the device is still.
	if got := feed(c, []input.Events{rest(), rest()}); len(got) != 0 {
		t.Fatalf("refractory drain at rest fired %v, want nothing", got)
	}

	// A fresh burst after the drain fires again.
	got = feed(c, shakeBurst(15, 6))
	if len(got) != 1 || got[0] != ActionShake {
		t.Fatalf("post-refractory burst got %v, want one SHAKE", got)
	}
}

func TestClassifierDegenerateConfig(t *testing.T) {
	// An empty config (a hand-written YAML missing the gesture section)
	// must degrade to discrete-only classification, never fail.
	c := NewClassifier(Config{})

	for i := range 10 {
		if a, ok := c.Classify(rest()); ok {
			t.Fatalf("tick %d: zero-config classified motion as %v", i, a)
		}
	}
	if got := feed(c, shakeBurst(30, 8)); len(got) != 0 {
		t.Fatalf("zero-config motion classified as %v", got)
	}

	got, ok := c.Classify(input.Events{ButtonDown: true, Accel: hal.Vec3{Z: hal.Gravity}, AccelValid: true})
	if !ok || got != ActionPaw {
		t.Fatalf("Classify = %v, %v; want PAW, true", got, ok)
	}
}

func TestClassifyFlip(t *testing.T) {
	cfg := testCfg()
	c := NewClassifier(cfg)
	c.Classify(rest())

	got := feed(c, flipHold(cfg.FlipDwell+5))
	if len(got) != 1 || got[0] != ActionFlip {
		t.Fatalf("got %v, want exactly one FLIP while held inverted", got)
	}

	// Back upright, then invert again: fires once more.
	feed(c, []input.Events{rest(), rest()})
	got = feed(c, flipHold(cfg.FlipDwell))
	if len(got) != 1 || got[0] != ActionFlip {
		t.Fatalf("second inversion got %v, want one FLIP", got)
	}
}

func TestClassifyFlipNeedsDwell(t *testing.T) {
	cfg := testCfg()
	c := NewClassifier(cfg)
	c.Classify(rest())

	// Inversion shorter than the dwell is tumbling, not a flip.
	evs := flipHold(cfg.FlipDwell - 1)
	evs = append(evs, rest(), rest())
	if got := feed(c, evs); len(got) != 0 {
		t.Fatalf("transient inversion classified as %v", got)
	}
}

func TestClassifyShakeWinsSimultaneousFlip(t *testing.T) {
	cfg := testCfg()
	c := NewClassifier(cfg)
	c.Classify(rest())

	// A shake that ends with the device left upside down satisfies both
	// detectors. Shake fires first; flip keeps dwelling through the
	// refractory and resolves only once it elapses.
	evs := shakeBurst(15, 4)
	evs = append(evs, flipHold(cfg.ShakeRefractory+2)...)

	got := feed(c, evs)
	if len(got) != 2 || got[0] != ActionShake || got[1] != ActionFlip {
		t.Fatalf("got %v, want [SHAKE FLIP] with FLIP deferred past the refractory", got)
	}
}

func TestClassifySkipsInvalidAccel(t *testing.T) {
	cfg := testCfg()
	c := NewClassifier(cfg)
	c.Classify(rest())

	// Dropped reads interleaved with inversion: dwell only counts valid
	// samples, so the flip fires later but still fires.
	var evs []input.Events
	for range cfg.FlipDwell - 1 {
		evs = append(evs, accel(hal.Vec3{Z: -hal.Gravity}))
		evs = append(evs, input.Events{}) // read fault
	}
	if got := feed(c, evs); len(got) != 0 {
		t.Fatalf("flip fired at %v before dwell completed", got)
	}

	got := feed(c, flipHold(2))
	if len(got) != 1 || got[0] != ActionFlip {
		t.Fatalf("got %v, want one FLIP once dwell completes", got)
	}
}

func TestClassifierReset(t *testing.T) {
	cfg := testCfg()
	c := NewClassifier(cfg)
	c.Classify(rest())

	feed(c, flipHold(cfg.FlipDwell-1))
	c.Reset()

	// Dwell was cleared: a short inversion after reset must not fire.
	evs := append([]input.Events{rest()}, flipHold(cfg.FlipDwell-1)...)
	if got := feed(c, evs); len(got) != 0 {
		t.Fatalf("stale dwell survived Reset: %v", got)
	}
}
