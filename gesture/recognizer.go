// Package gesture classifies drag gestures into cardinal swipe
// directions. It is a pure, synchronous classifier: no I/O, no retries,
// no blocking. Malformed input is a programming error on the caller's
// side and fails fast instead of propagating NaN.
package gesture

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Direction is the cardinal classification of a completed swipe.
type Direction uint8

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "none"
	}
}

const (
	// DefaultThreshold is the minimum travel distance for a swipe,
	// in viewport units.
	DefaultThreshold = 50.0

	// MaxVelocity is the sentinel reported when a swipe completes with
	// zero or negative duration instead of dividing by zero.
	MaxVelocity = 1e6
)

// ErrNotTracking reports Finish or Track without a prior Begin.
var ErrNotTracking = errors.New("gesture: no active gesture")

// Position is a point in the 2D viewport coordinate space.
type Position struct {
	X, Y float64
}

func (p Position) valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Swipe is the optional unified report fired alongside a directional
// handler. Velocity is threshold units per second.
type Swipe struct {
	Direction Direction
	Duration  time.Duration
	Velocity  float64
}

// Handlers holds the per-direction callbacks. Every field is
// independently optional; an absent handler is skipped, not an error.
type Handlers struct {
	OnLeft  func()
	OnRight func()
	OnUp    func()
	OnDown  func()

	// OnSwipe fires in addition to the directional handler whenever a
	// gesture clears the threshold.
	OnSwipe func(Swipe)
}

// Recognizer buckets a start/end coordinate pair into a swipe
// direction. It tracks one gesture at a time and carries no goroutines;
// Track never blocks.
type Recognizer struct {
	threshold float64
	handlers  Handlers

	active    bool
	start     Position
	startTime time.Time
	last      Position
}

// NewRecognizer builds a recognizer. A non-positive threshold falls
// back to DefaultThreshold.
func NewRecognizer(threshold float64, handlers Handlers) *Recognizer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Recognizer{
		threshold: threshold,
		handlers:  handlers,
	}
}

// Threshold returns the configured minimum travel distance.
func (r *Recognizer) Threshold() float64 {
	return r.threshold
}

// Begin records the gesture origin and resets tracking state.
func (r *Recognizer) Begin(p Position, t time.Time) error {
	if !p.valid() {
		return fmt.Errorf("gesture: malformed start position (%v, %v)", p.X, p.Y)
	}
	r.active = true
	r.start = p
	r.startTime = t
	r.last = p
	return nil
}

// Track records the latest observed position for live feedback. It
// never fires a handler.
func (r *Recognizer) Track(p Position) error {
	if !r.active {
		return ErrNotTracking
	}
	if !p.valid() {
		return fmt.Errorf("gesture: malformed track position (%v, %v)", p.X, p.Y)
	}
	r.last = p
	return nil
}

// Last returns the most recently tracked position and whether a gesture
// is in progress.
func (r *Recognizer) Last() (Position, bool) {
	return r.last, r.active
}

// Finish classifies the gesture and fires the matching handlers. A
// gesture below the threshold returns None and fires nothing; that is a
// no-op, not an error.
func (r *Recognizer) Finish(p Position, t time.Time) (Direction, error) {
	if !r.active {
		return None, ErrNotTracking
	}
	if !p.valid() {
		return None, fmt.Errorf("gesture: malformed end position (%v, %v)", p.X, p.Y)
	}
	r.active = false

	dir := Classify(p.X-r.start.X, p.Y-r.start.Y, r.threshold)
	if dir == None {
		return None, nil
	}

	switch dir {
	case Left:
		if r.handlers.OnLeft != nil {
			r.handlers.OnLeft()
		}
	case Right:
		if r.handlers.OnRight != nil {
			r.handlers.OnRight()
		}
	case Up:
		if r.handlers.OnUp != nil {
			r.handlers.OnUp()
		}
	case Down:
		if r.handlers.OnDown != nil {
			r.handlers.OnDown()
		}
	}

	if r.handlers.OnSwipe != nil {
		duration := t.Sub(r.startTime)
		velocity := MaxVelocity
		if duration > 0 {
			velocity = r.threshold / duration.Seconds()
			if velocity > MaxVelocity {
				velocity = MaxVelocity
			}
		}
		r.handlers.OnSwipe(Swipe{
			Direction: dir,
			Duration:  duration,
			Velocity:  velocity,
		})
	}
	return dir, nil
}

// Classify buckets a drag vector against the threshold. Horizontal wins
// only on a strict majority: an exact |dx| == |dy| tie is vertical.
func Classify(dx, dy, threshold float64) Direction {
	adx := math.Abs(dx)
	ady := math.Abs(dy)
	if adx > ady && adx > threshold {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if ady > threshold {
		if dy > 0 {
			return Down
		}
		return Up
	}
	return None
}
