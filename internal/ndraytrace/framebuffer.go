package ndraytrace

import (
	"image"
	"image/color"
)

// Surface is the pixel grid the sampler renders into. Reads are part of
// the algorithm: refinement passes read back corners written earlier in
// the same frame.
type Surface interface {
	Width() int
	Height() int
	// WritePixel stores c at (x,y); writes outside the surface are ignored.
	WritePixel(x, y int, c RGBA)
	// ReadPixel returns the stored color and false when (x,y) is outside.
	ReadPixel(x, y int) (color.RGBA, bool)
}

// Framebuffer is an RGBA surface backed by an image.RGBA.
type Framebuffer struct {
	Img  *image.RGBA
	Mode ChannelMode
}

func NewFramebuffer(width, height int, mode ChannelMode) *Framebuffer {
	if width <= 0 || height <= 0 {
		panic("framebuffer size must be positive")
	}
	return &Framebuffer{
		Img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		Mode: mode,
	}
}

func (f *Framebuffer) Width() int  { return f.Img.Rect.Dx() }
func (f *Framebuffer) Height() int { return f.Img.Rect.Dy() }

func (f *Framebuffer) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Img.Rect.Dx() && y < f.Img.Rect.Dy()
}

func (f *Framebuffer) put(x, y int, c color.RGBA) {
	p := f.Img.PixOffset(x, y)
	f.Img.Pix[p+0] = c.R
	f.Img.Pix[p+1] = c.G
	f.Img.Pix[p+2] = c.B
	f.Img.Pix[p+3] = c.A
}

func (f *Framebuffer) WritePixel(x, y int, c RGBA) {
	if !f.in(x, y) {
		return
	}
	f.put(x, y, f.Mode.Quantize(c))
}

func (f *Framebuffer) ReadPixel(x, y int) (color.RGBA, bool) {
	if !f.in(x, y) {
		return color.RGBA{}, false
	}
	p := f.Img.PixOffset(x, y)
	return color.RGBA{f.Img.Pix[p+0], f.Img.Pix[p+1], f.Img.Pix[p+2], f.Img.Pix[p+3]}, true
}

// Clear sets every pixel to c.
func (f *Framebuffer) Clear(c color.RGBA) {
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			f.put(x, y, c)
		}
	}
}

// Size, SetPixel and Display let tinyfont draw into the framebuffer.
func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.Width()), int16(f.Height())
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if !f.in(int(x), int(y)) {
		return
	}
	f.put(int(x), int(y), c)
}

func (f *Framebuffer) Display() error { return nil }
