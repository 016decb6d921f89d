package ndraytrace

import (
	"image/color"
	"testing"
)

func TestFramebufferReadWrite(t *testing.T) {
	fb := NewFramebuffer(4, 3, ChannelTruncate)
	if fb.Width() != 4 || fb.Height() != 3 {
		t.Fatalf("size %dx%d", fb.Width(), fb.Height())
	}
	fb.WritePixel(1, 2, RGBA{10.9, 20, 30, 255})
	c, ok := fb.ReadPixel(1, 2)
	if !ok || c != (color.RGBA{10, 20, 30, 255}) {
		t.Fatalf("ReadPixel=%+v,%v", c, ok)
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if _, ok := fb.ReadPixel(p[0], p[1]); ok {
			t.Fatalf("(%d,%d) should be outside", p[0], p[1])
		}
		// ignored, must not panic
		fb.WritePixel(p[0], p[1], white)
	}
}

func TestFramebufferClearAndDisplayer(t *testing.T) {
	fb := NewFramebuffer(3, 2, ChannelClamp)
	red := color.RGBA{255, 0, 0, 255}
	fb.Clear(red)
	if c, _ := fb.ReadPixel(2, 1); c != red {
		t.Fatalf("Clear left %+v", c)
	}
	if w, h := fb.Size(); w != 3 || h != 2 {
		t.Fatalf("Size=%d,%d", w, h)
	}
	blue := color.RGBA{0, 0, 255, 255}
	fb.SetPixel(0, 1, blue)
	fb.SetPixel(9, 9, blue)
	if c, _ := fb.ReadPixel(0, 1); c != blue {
		t.Fatalf("SetPixel left %+v", c)
	}
	if err := fb.Display(); err != nil {
		t.Fatal(err)
	}
}

func TestNewFramebufferRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero width")
		}
	}()
	NewFramebuffer(0, 5, ChannelTruncate)
}
