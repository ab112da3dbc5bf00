// Package audio plays short generated cues for interaction feedback.
// Audio is strictly optional: a failed speaker init downgrades to
// silent mode instead of erroring out of the app.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	chimeFreq = 880.0 // A5
	clickFreq = 440.0 // A4

	chimeDuration = 350 * time.Millisecond
	clickDuration = 60 * time.Millisecond
)

// SoundManager manages the cue mixer and mute state
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager; call Initialize before use
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

// Cleanup stops all cues and shuts the mixer down
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.initialized = false
}

// ToggleMute toggles mute state, returns true if sound is now enabled
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return !sm.muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Chime plays the celebratory confetti cue
func (sm *SoundManager) Chime() {
	sm.play(chimeFreq, chimeDuration)
}

// Click plays the short heart-click cue
func (sm *SoundManager) Click() {
	sm.play(clickFreq, clickDuration)
}

func (sm *SoundManager) play(freq float64, duration time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	tone := NewTone(freq, duration, sampleRate)
	shaped := NewEnvelope(tone, duration, 5*time.Millisecond, 40*time.Millisecond, sampleRate)
	speaker.Lock()
	sm.mixer.Add(shaped)
	speaker.Unlock()
}
