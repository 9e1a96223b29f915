package tactile

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawOverlay prints the FPS/TPS counters and, in debug mode, the current
// traces in the top-left corner of screen.
func drawOverlay(screen *ebiten.Image, showFPS bool, traces string) {
	var text string
	if showFPS {
		text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	text += traces
	if text == "" {
		return
	}
	ebitenutil.DebugPrint(screen, text)
}
