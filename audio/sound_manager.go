package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	tickDuration  = 40 * time.Millisecond
	tickFrequency = 660.0
	tickMinGap    = 60 * time.Millisecond
)

// SoundManager plays the edge tick when the cursor is stopped at the grid border
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastTick    time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Bump plays a short tick; rapid repeats inside tickMinGap are dropped
func (sm *SoundManager) Bump() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	now := time.Now()
	if now.Sub(sm.lastTick) < tickMinGap {
		return
	}
	sm.lastTick = now

	speaker.Lock()
	sm.mixer.Add(NewTick())
	speaker.Unlock()
}

// NewTick returns the finite tick streamer
func NewTick() beep.Streamer {
	return beep.Take(sampleRate.N(tickDuration), NewTickGenerator(sampleRate, tickFrequency))
}

// TickGenerator generates a decaying sine click
type TickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewTickGenerator creates a tick sound generator
func NewTickGenerator(sr beep.SampleRate, freq float64) *TickGenerator {
	return &TickGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *TickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fast attack, exponential release
		attack := math.Min(t/0.002, 1.0)
		release := math.Exp(-t * 60)
		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t) * attack * release

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TickGenerator) Err() error {
	return nil
}
