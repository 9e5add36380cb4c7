package tui

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short cues. A zero Sound, or one whose Init failed, stays silent.
type Sound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSound() *Sound {
	return &Sound{mixer: &beep.Mixer{}}
}

// Init opens the audio device
func (s *Sound) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close stops playback and releases the device
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.mixer.Clear()
	speaker.Close()
	s.initialized = false
}

// Bump plays a dull thud for walking into a wall
func (s *Sound) Bump() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(80*time.Millisecond), NewTone(sampleRate, 110)))
	speaker.Unlock()
}

// Tone is a decaying sine wave
type Tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewTone(sr beep.SampleRate, freq float64) *Tone {
	return &Tone{sr: sr, freq: freq}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		secs := float64(t.pos) / float64(t.sr)
		v := 0.3 * math.Exp(-secs*30) * math.Sin(2*math.Pi*t.freq*secs)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }
