package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/valentine/state"
)

var heartArt = []string{
	"  ...      ...  ",
	" .....    ..... ",
	"................",
	" .............. ",
	"  ............  ",
	"    ........    ",
	"      ....      ",
	"       ..       ",
}

// HomeRenderer draws the landing screen.
type HomeRenderer struct{}

// Render implements Renderer.
func (h *HomeRenderer) Render(screen tcell.Screen, snap state.ApplicationState, f Frame) {
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorHotPink).Bold(true)
	heartStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	top := f.Height/2 - len(heartArt)/2 - 3
	if top < 1 {
		top = 1
	}

	drawCentered(screen, top, titleStyle, "Happy Valentine's Day")
	for i, row := range heartArt {
		drawCentered(screen, top+2+i, heartStyle, row)
	}
	drawCentered(screen, top+3+len(heartArt), textStyle, "a little something, made just for you")
}
