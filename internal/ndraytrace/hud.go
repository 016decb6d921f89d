package ndraytrace

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudColor = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}

// hudText is the one-line status drawn over a frame.
func hudText(st *RenderState) string {
	return fmt.Sprintf("frame %d  samples %d  step %d/%d/%d",
		st.Frame, st.Stats.Total(), st.Stats.Step[0], st.Stats.Step[1], st.Stats.Step[2])
}

func drawHUD(fb *Framebuffer, st *RenderState) {
	tinyfont.WriteLine(fb, &proggy.TinySZ8pt7b, 2, 10, hudText(st), hudColor)
}
