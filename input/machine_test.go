package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/valentine/state"
)

func TestProcessKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want IntentType
	}{
		{"Quit on q", tcell.KeyRune, 'q', IntentQuit},
		{"Quit on Ctrl+C", tcell.KeyCtrlC, 0, IntentQuit},
		{"Back on escape", tcell.KeyEscape, 0, IntentBack},
		{"Like on enter", tcell.KeyEnter, 0, IntentLikePhoto},
		{"Prev on left arrow", tcell.KeyLeft, 0, IntentPrevPhoto},
		{"Next on right arrow", tcell.KeyRight, 0, IntentNextPhoto},
		{"Prev on bracket", tcell.KeyRune, '[', IntentPrevPhoto},
		{"Next on bracket", tcell.KeyRune, ']', IntentNextPhoto},
		{"Favorite on f", tcell.KeyRune, 'f', IntentToggleFavorite},
		{"Heart on space", tcell.KeyRune, ' ', IntentHeartClick},
		{"Raise on plus", tcell.KeyRune, '+', IntentRaiseNaughty},
		{"Reset on r", tcell.KeyRune, 'r', IntentResetNaughty},
		{"Mute on m", tcell.KeyRune, 'm', IntentToggleMute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			intent := m.Process(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			if intent == nil {
				t.Fatal("Expected an intent")
			}
			if intent.Type != tt.want {
				t.Errorf("Expected intent %v, got %v", tt.want, intent.Type)
			}
		})
	}
}

func TestProcessNavigationKeys(t *testing.T) {
	tests := []struct {
		r    rune
		want state.View
	}{
		{'h', state.ViewHome},
		{'g', state.ViewGallery},
		{'n', state.ViewNaughty},
	}

	for _, tt := range tests {
		m := NewMachine()
		intent := m.Process(tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone))
		if intent == nil || intent.Type != IntentNavigate {
			t.Fatalf("Expected navigate intent for %q, got %+v", tt.r, intent)
		}
		if intent.View != tt.want {
			t.Errorf("Expected view %v for %q, got %v", tt.want, tt.r, intent.View)
		}
	}
}

func TestProcessUnknownKeyIsNil(t *testing.T) {
	m := NewMachine()
	if intent := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); intent != nil {
		t.Errorf("Expected nil intent, got %+v", intent)
	}
}

func TestProcessResize(t *testing.T) {
	m := NewMachine()
	intent := m.Process(tcell.NewEventResize(80, 24))
	if intent == nil || intent.Type != IntentResize {
		t.Fatalf("Expected resize intent, got %+v", intent)
	}
}

func TestProcessMouseDragSequence(t *testing.T) {
	m := NewMachine()

	down := m.Process(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if down == nil || down.Type != IntentPointerDown || down.X != 10 || down.Y != 5 {
		t.Fatalf("Expected pointer down at (10,5), got %+v", down)
	}

	move := m.Process(tcell.NewEventMouse(20, 5, tcell.Button1, tcell.ModNone))
	if move == nil || move.Type != IntentPointerMove || move.X != 20 {
		t.Fatalf("Expected pointer move at (20,5), got %+v", move)
	}

	up := m.Process(tcell.NewEventMouse(80, 5, tcell.ButtonNone, tcell.ModNone))
	if up == nil || up.Type != IntentPointerUp || up.X != 80 {
		t.Fatalf("Expected pointer up at (80,5), got %+v", up)
	}

	// Further motion without a held button maps to nothing
	if intent := m.Process(tcell.NewEventMouse(81, 5, tcell.ButtonNone, tcell.ModNone)); intent != nil {
		t.Errorf("Expected nil after release, got %+v", intent)
	}
}

func TestResetClearsDragTracking(t *testing.T) {
	m := NewMachine()
	m.Process(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	m.Reset()
	if intent := m.Process(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone)); intent != nil {
		t.Errorf("Expected nil after reset, got %+v", intent)
	}
}
