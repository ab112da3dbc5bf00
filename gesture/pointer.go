package gesture

import "errors"

// ErrNoContact reports a touch-style event with no contact points.
// This indicates a broken integration with the input source, not a user
// error, so it is surfaced instead of silently dropped.
var ErrNoContact = errors.New("gesture: touch event has no contact points")

// Contact is one touch point reported by a multi-point source.
type Contact struct {
	X, Y float64
}

// FromTouch normalizes a touch-style event to the single-position
// contract. Only the first contact is tracked; additional simultaneous
// contacts are ignored.
func FromTouch(contacts []Contact) (Position, error) {
	if len(contacts) == 0 {
		return Position{}, ErrNoContact
	}
	p := Position{X: contacts[0].X, Y: contacts[0].Y}
	if !p.valid() {
		return Position{}, errors.New("gesture: touch contact has malformed coordinates")
	}
	return p, nil
}

// FromMouse normalizes single-point integer mouse coordinates.
func FromMouse(x, y int) Position {
	return Position{X: float64(x), Y: float64(y)}
}
