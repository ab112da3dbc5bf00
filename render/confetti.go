package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/valentine/state"
)

var (
	confettiGlyphs = []rune{'*', '·', '✦', '♥', '+'}
	confettiColors = []tcell.Color{
		tcell.ColorHotPink,
		tcell.ColorGold,
		tcell.ColorSkyblue,
		tcell.ColorSpringGreen,
		tcell.ColorOrangeRed,
	}
)

// ConfettiOverlay scatters celebratory glyphs over the active view
// while the confetti flag is up. Placement is a cheap hash of cell
// position and frame number so the pattern animates without any stored
// particle state.
type ConfettiOverlay struct{}

// Render implements Renderer.
func (c *ConfettiOverlay) Render(screen tcell.Screen, snap state.ApplicationState, f Frame) {
	step := f.Number / 3 // reshuffle every few frames
	for y := 0; y < f.Height-1; y++ {
		for x := 0; x < f.Width; x++ {
			h := cellHash(x, y, step)
			if h%37 != 0 {
				continue
			}
			glyph := confettiGlyphs[int(h/37)%len(confettiGlyphs)]
			color := confettiColors[int(h/41)%len(confettiColors)]
			screen.SetContent(x, y, glyph, nil,
				tcell.StyleDefault.Foreground(color))
		}
	}
}

func cellHash(x, y int, step int64) uint64 {
	h := uint64(x)*2654435761 + uint64(y)*40503 + uint64(step)*9176
	h ^= h >> 13
	h *= 0x9e3779b97f4a7c15
	h ^= h >> 29
	return h
}
