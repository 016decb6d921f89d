package ndraytrace

import (
	"fmt"
	"image/png"
	"math"
	"os"
)

// SavePNG writes a single framebuffer as a lossless PNG.
func SavePNG(fb *Framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, fb.Img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePNGSequence writes prefix_<k>.png for every frame, zero padded so the
// files sort in frame order.
func SavePNGSequence(frames []*Framebuffer, prefix string) error {
	n := len(frames)
	if n == 0 {
		return ErrNoFrames
	}
	width := 1
	if n > 1 {
		width = int(math.Log10(Real(n-1))) + 1
	}
	step := 1
	if n >= 100 {
		step = n / 100
	}
	for k, fb := range frames {
		if k%step == 0 {
			fmt.Printf("[PNG]  %.2f%%\n", Real(k+1)*100/Real(n))
		}
		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		if err := SavePNG(fb, full); err != nil {
			return err
		}
	}
	return nil
}
