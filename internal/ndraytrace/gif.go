package ndraytrace

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// SaveAnimatedGIF writes one GIF frame per framebuffer.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveAnimatedGIF(frames []*Framebuffer, path string, delay int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}

	n := len(frames)
	for k, fb := range frames {
		if k%imax(1, n/100) == 0 { // ~1% steps
			fmt.Printf("[GIF] %.2f%%\n", Real(k+1)*100/Real(n))
		}
		// Quantize to paletted for GIF
		pimg := image.NewPaletted(fb.Img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), fb.Img, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
