package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/valentine/state"
)

// Machine parses tcell events into semantic Intents. It owns no
// application state beyond the pointer-button tracking needed to split
// mouse traffic into down/move/up; gesture classification lives in the
// gesture package.
type Machine struct {
	// dragging is true while the left button is held
	dragging bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Reset clears pointer tracking state
func (m *Machine) Reset() {
	m.dragging = false
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event maps to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(tev)
	case *tcell.EventMouse:
		return m.processMouse(tev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyEscape:
		return &Intent{Type: IntentBack}
	case tcell.KeyEnter:
		return &Intent{Type: IntentLikePhoto}
	case tcell.KeyLeft:
		return &Intent{Type: IntentPrevPhoto}
	case tcell.KeyRight:
		return &Intent{Type: IntentNextPhoto}
	case tcell.KeyRune:
		return m.processRune(ev.Rune())
	}
	return nil
}

func (m *Machine) processRune(r rune) *Intent {
	switch r {
	case 'q':
		return &Intent{Type: IntentQuit}
	case 'h':
		return &Intent{Type: IntentNavigate, View: state.ViewHome}
	case 'g':
		return &Intent{Type: IntentNavigate, View: state.ViewGallery}
	case 'n':
		return &Intent{Type: IntentNavigate, View: state.ViewNaughty}
	case '[':
		return &Intent{Type: IntentPrevPhoto}
	case ']':
		return &Intent{Type: IntentNextPhoto}
	case 'f':
		return &Intent{Type: IntentToggleFavorite}
	case ' ':
		return &Intent{Type: IntentHeartClick}
	case '+':
		return &Intent{Type: IntentRaiseNaughty}
	case 'r':
		return &Intent{Type: IntentResetNaughty}
	case 'm':
		return &Intent{Type: IntentToggleMute}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 != 0 {
		if !m.dragging {
			m.dragging = true
			return &Intent{Type: IntentPointerDown, X: x, Y: y}
		}
		return &Intent{Type: IntentPointerMove, X: x, Y: y}
	}
	if m.dragging {
		m.dragging = false
		return &Intent{Type: IntentPointerUp, X: x, Y: y}
	}
	return nil
}
