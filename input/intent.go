package input

import "github.com/lixenwraith/valentine/state"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C
	IntentResize // Terminal resize event

	// View switching
	IntentNavigate // h/g/n select a screen directly
	IntentBack     // ESC

	// Gallery
	IntentNextPhoto      // Right arrow, ]
	IntentPrevPhoto      // Left arrow, [
	IntentLikePhoto      // Enter
	IntentToggleFavorite // f

	// Naughty meter
	IntentHeartClick   // Space
	IntentRaiseNaughty // +
	IntentResetNaughty // r

	// Audio
	IntentToggleMute // m

	// Pointer gesture tracking (left button only)
	IntentPointerDown
	IntentPointerMove
	IntentPointerUp
)

// Intent is one parsed semantic action
type Intent struct {
	Type IntentType
	View state.View // valid for IntentNavigate
	X, Y int        // valid for pointer intents
}
