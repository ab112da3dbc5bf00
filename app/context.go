// Package app wires input intents, the gesture recognizer and the state
// store into one single-writer application: every transition runs
// synchronously inside the handler that received the user event.
package app

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/valentine/audio"
	"github.com/lixenwraith/valentine/gesture"
	"github.com/lixenwraith/valentine/state"
)

// DefaultConfettiDelay is how long the confetti flag stays up before
// the deferred auto-hide fires.
const DefaultConfettiDelay = 3000 * time.Millisecond

// Context carries the shared application dependencies.
type Context struct {
	Store          *state.Store
	Sounds         *audio.SoundManager
	Logger         *slog.Logger
	SwipeThreshold float64
	ConfettiDelay  time.Duration
}

// NewContext fills in defaults for anything the caller left unset.
func NewContext(store *state.Store, sounds *audio.SoundManager, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		Store:          store,
		Sounds:         sounds,
		Logger:         logger,
		SwipeThreshold: gesture.DefaultThreshold,
		ConfettiDelay:  DefaultConfettiDelay,
	}
}
