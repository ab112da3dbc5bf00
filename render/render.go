// Package render draws the application views from read-only state
// snapshots. Nothing in here mutates state; the presentation layer is
// driven entirely by what the store hands it.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/valentine/state"
)

// Frame carries per-frame rendering context.
type Frame struct {
	Width  int
	Height int
	Number int64
}

// Renderer draws one view from a snapshot.
type Renderer interface {
	Render(screen tcell.Screen, snap state.ApplicationState, f Frame)
}

// Orchestrator selects the active view renderer and layers the confetti
// overlay and status bar on top.
type Orchestrator struct {
	home     Renderer
	gallery  Renderer
	naughty  Renderer
	confetti *ConfettiOverlay
}

// NewOrchestrator creates an orchestrator with all view renderers
// registered.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		home:     &HomeRenderer{},
		gallery:  &GalleryRenderer{},
		naughty:  &NaughtyRenderer{},
		confetti: &ConfettiOverlay{},
	}
}

// RenderFrame clears and redraws the whole screen from the snapshot.
func (o *Orchestrator) RenderFrame(screen tcell.Screen, snap state.ApplicationState, f Frame) {
	screen.Clear()

	switch snap.CurrentView {
	case state.ViewGallery:
		o.gallery.Render(screen, snap, f)
	case state.ViewNaughty:
		o.naughty.Render(screen, snap, f)
	default:
		o.home.Render(screen, snap, f)
	}

	if snap.ShowConfetti {
		o.confetti.Render(screen, snap, f)
	}

	drawStatusBar(screen, snap, f)
	screen.Show()
}

// drawText writes a string starting at (x, y), clipped to the screen.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}
	for i, r := range text {
		if x+i >= w {
			break
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawCentered writes a string centered horizontally on row y.
func drawCentered(screen tcell.Screen, y int, style tcell.Style, text string) {
	w, _ := screen.Size()
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, style, text)
}

func drawStatusBar(screen tcell.Screen, snap state.ApplicationState, f Frame) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	var hints string
	switch snap.CurrentView {
	case state.ViewGallery:
		hints = "[←/→] photo  [enter] like  [f] favorite  [esc] back  [q] quit"
	case state.ViewNaughty:
		hints = "[space] heart  [+] more  [r] reset  [esc] back  [q] quit"
	default:
		hints = "[g] gallery  [n] naughty meter  [q] quit"
	}
	drawText(screen, 1, f.Height-1, style, hints)
}
