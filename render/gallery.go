package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/valentine/state"
)

// GalleryRenderer draws the current photo entry with its caption,
// like count and favorite marker.
type GalleryRenderer struct{}

// Render implements Renderer.
func (g *GalleryRenderer) Render(screen tcell.Screen, snap state.ApplicationState, f Frame) {
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorHotPink).Bold(true)
	frameStyle := tcell.StyleDefault.Foreground(tcell.ColorLightPink)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	drawCentered(screen, 1, titleStyle, "Our Gallery")

	if len(snap.Photos) == 0 {
		drawCentered(screen, f.Height/2, dimStyle, "no photos yet")
		return
	}

	photo := snap.Photos[snap.CurrentPhotoIndex]

	// Photo frame
	boxW := f.Width * 2 / 3
	if boxW < 20 {
		boxW = 20
	}
	boxH := f.Height / 2
	if boxH < 6 {
		boxH = 6
	}
	boxX := (f.Width - boxW) / 2
	boxY := 3
	drawBox(screen, boxX, boxY, boxW, boxH, frameStyle)

	drawCentered(screen, boxY+boxH/2, dimStyle, photo.URL)

	caption := photo.Caption
	if photo.IsFavorite {
		caption = "♥ " + caption
	}
	drawCentered(screen, boxY+boxH+1, textStyle, caption)
	drawCentered(screen, boxY+boxH+2, dimStyle,
		fmt.Sprintf("likes: %d", photo.Likes))
	drawCentered(screen, boxY+boxH+3, dimStyle,
		fmt.Sprintf("photo %d of %d", snap.CurrentPhotoIndex+1, len(snap.Photos)))
}

func drawBox(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for cx := x + 1; cx < x+w-1; cx++ {
		screen.SetContent(cx, y, '─', nil, style)
		screen.SetContent(cx, y+h-1, '─', nil, style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		screen.SetContent(x, cy, '│', nil, style)
		screen.SetContent(x+w-1, cy, '│', nil, style)
	}
	screen.SetContent(x, y, '╭', nil, style)
	screen.SetContent(x+w-1, y, '╮', nil, style)
	screen.SetContent(x, y+h-1, '╰', nil, style)
	screen.SetContent(x+w-1, y+h-1, '╯', nil, style)
}
