package tui

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Buzzer plays short fixed-frequency tones, standing in for the piezo.
type Buzzer interface {
	Play(freqHz int, dur time.Duration)
}

// NopBuzzer discards all tones. Used with --mute and over SSH.
type NopBuzzer struct{}

func (NopBuzzer) Play(int, time.Duration) {}

// BeepBuzzer synthesizes tones through the system audio device.
type BeepBuzzer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBeepBuzzer opens the audio device. Tones overlap through a shared
// mixer, like rapid-fire beeps on the real piezo.
func NewBeepBuzzer() (*BeepBuzzer, error) {
	b := &BeepBuzzer{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return nil, err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return b, nil
}

// Play queues a tone. Safe to call from the UI loop; synthesis happens on
// the speaker goroutine.
func (b *BeepBuzzer) Play(freqHz int, dur time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || freqHz <= 0 || dur <= 0 {
		return
	}
	gen := newToneGenerator(sampleRate, float64(freqHz), dur)
	b.mixer.Add(beep.Take(sampleRate.N(dur), gen))
}

// Close silences any tones still playing.
func (b *BeepBuzzer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	b.mixer.Clear()
	b.initialized = false
}

// toneGenerator produces a sine tone with a short attack and an
// exponential tail so beeps start and stop without clicks.
type toneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newToneGenerator(sr beep.SampleRate, freq float64, dur time.Duration) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq, total: sr.N(dur)}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := g.sr.N(time.Millisecond * 5)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if g.pos < attack {
			envelope = float64(g.pos) / float64(attack)
		}
		tail := float64(g.total-g.pos) / float64(g.total)
		envelope *= math.Min(1, tail*4)

		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}
