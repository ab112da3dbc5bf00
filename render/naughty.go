package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/valentine/state"
)

// NaughtyRenderer draws the naughty meter as a segmented gradient bar
// plus the interaction counters.
type NaughtyRenderer struct{}

// Render implements Renderer.
func (n *NaughtyRenderer) Render(screen tcell.Screen, snap state.ApplicationState, f Frame) {
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorHotPink).Bold(true)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	drawCentered(screen, 1, titleStyle, "Naughty Meter")

	// Display level: map 0-MaxNaughtyLevel to 10 segments
	displayLevel := snap.NaughtyLevel * 10 / state.MaxNaughtyLevel
	if displayLevel > 10 {
		displayLevel = 10
	}
	if displayLevel < 0 {
		displayLevel = 0
	}

	barY := 4
	segmentWidth := float64(f.Width) / 10.0
	for segment := 0; segment < 10; segment++ {
		segmentStart := int(float64(segment) * segmentWidth)
		segmentEnd := int(float64(segment+1) * segmentWidth)

		var style tcell.Style
		if segment < displayLevel {
			progress := float64(segment+1) / 10.0
			style = tcell.StyleDefault.Foreground(meterColor(progress))
		} else {
			style = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
		}

		for x := segmentStart; x < segmentEnd && x < f.Width; x++ {
			screen.SetContent(x, barY, '█', nil, style)
		}
	}

	drawCentered(screen, barY+2, textStyle,
		fmt.Sprintf("%d / %d", snap.NaughtyLevel, state.MaxNaughtyLevel))
	drawCentered(screen, barY+4, dimStyle,
		fmt.Sprintf("heart clicks: %d", snap.HeartClicks))
	if snap.NaughtyLevel >= state.MaxNaughtyLevel {
		drawCentered(screen, barY+6, titleStyle, "maxed out!")
	}
}

// meterColor maps meter progress to a pink-to-red gradient.
func meterColor(progress float64) tcell.Color {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	g := int32(180 - progress*160)
	return tcell.NewRGBColor(255, g, int32(120-progress*100))
}
