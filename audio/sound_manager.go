package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/waterfall/constants"
)

const (
	sampleRate              = beep.SampleRate(48000)
	speakerBufferDurationMs = 100

	chimeAmplitude    = 0.18
	chimeDecayRate    = 6.0
	chimeIntensityCap = 4
	maxChimeVoices    = 6

	dropAmplitude   = 0.25
	dropFreqStartHz = 420.0
	dropFreqEndHz   = 140.0
)

// chimeScale is a major pentatonic in the bell register
var chimeScale = []float64{523.25, 587.33, 659.25, 783.99, 880.00, 1046.50}

// SoundManager plays the collision chimes and rock drop cue
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	now       func() time.Time
	lastChime time.Time
	note      int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// ToggleMute flips muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether sound output is muted
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Enabled reports whether sounds are actually played
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// PlayChime plays a bell note for a frame with collisions; louder for more hits
func (sm *SoundManager) PlayChime(collisions int) {
	if collisions <= 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || !sm.allowChime(sm.now()) {
		return
	}
	freq := sm.nextNote()

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxChimeVoices {
		return
	}
	streamer := beep.Take(sampleRate.N(constants.ChimeDuration), NewChimeGenerator(sampleRate, freq, chimeGain(collisions)))
	sm.mixer.Add(streamer)
}

// PlayDrop plays the rock placement sound
func (sm *SoundManager) PlayDrop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	streamer := beep.Take(sampleRate.N(constants.DropDuration), NewDropGenerator(sampleRate, constants.DropDuration))
	sm.mixer.Add(streamer)
}

// allowChime enforces ChimeCooldown between chimes; caller holds mu
func (sm *SoundManager) allowChime(now time.Time) bool {
	if !sm.lastChime.IsZero() && now.Sub(sm.lastChime) < constants.ChimeCooldown {
		return false
	}
	sm.lastChime = now
	return true
}

// nextNote walks the scale; caller holds mu
func (sm *SoundManager) nextNote() float64 {
	f := chimeScale[sm.note%len(chimeScale)]
	sm.note = (sm.note + 2) % len(chimeScale)
	return f
}

func chimeGain(collisions int) float64 {
	if collisions > chimeIntensityCap {
		collisions = chimeIntensityCap
	}
	return chimeAmplitude * (0.6 + 0.1*float64(collisions))
}

// ChimeGenerator generates a decaying bell tone with two inharmonic partials
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
}

// NewChimeGenerator creates a chime at freq with peak amplitude gain
func NewChimeGenerator(sr beep.SampleRate, freq, gain float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq, gain: gain}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Short linear attack avoids a click
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*chimeDecayRate)

		sample := 0.7*math.Sin(2*math.Pi*g.freq*t) +
			0.2*math.Sin(2*math.Pi*g.freq*2.76*t) +
			0.1*math.Sin(2*math.Pi*g.freq*5.4*t)
		sample *= envelope * g.gain

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// DropGenerator generates a falling pitch blip like a stone hitting water
type DropGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	phase   float64
}

// NewDropGenerator creates a drop sweep lasting d
func NewDropGenerator(sr beep.SampleRate, d time.Duration) *DropGenerator {
	return &DropGenerator{sr: sr, samples: sr.N(d)}
}

func (g *DropGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)

		// Exponential sweep keeps the fall perceptually even
		freq := dropFreqStartHz * math.Pow(dropFreqEndHz/dropFreqStartHz, progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Sin(math.Pi * progress)
		sample := dropAmplitude * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DropGenerator) Err() error {
	return nil
}
