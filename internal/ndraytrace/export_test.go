package ndraytrace

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRenderFrames(t *testing.T) {
	cfg := smallConfig(t)
	d := NewDriver(cfg, nil)
	times := []time.Duration{0, 500 * time.Millisecond, 0}
	frames, err := RenderFrames(context.Background(), d, cfg.Width, cfg.Height, times, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("got %d frames", len(frames))
	}
	if !bytes.Equal(frames[0].Img.Pix, frames[2].Img.Pix) {
		t.Fatal("frames at the same time differ")
	}
	if bytes.Equal(frames[0].Img.Pix, frames[1].Img.Pix) {
		t.Fatal("light did not move between frames")
	}
}

func TestRenderFramesErrors(t *testing.T) {
	cfg := smallConfig(t)
	d := NewDriver(cfg, nil)
	if _, err := RenderFrames(context.Background(), d, 8, 8, nil, 1); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("err=%v want ErrNoFrames", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RenderFrames(ctx, d, 8, 8, []time.Duration{0}, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want context.Canceled", err)
	}
}

func tinyFrames(t *testing.T, n int) []*Framebuffer {
	t.Helper()
	cfg := smallConfig(t)
	d := NewDriver(cfg, nil)
	frames, err := RenderFrames(context.Background(), d, cfg.Width, cfg.Height, cfg.FrameTimes()[:n], 1)
	if err != nil {
		t.Fatal(err)
	}
	return frames
}

func TestSaveAnimatedGIF(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "out.gif")
	if err := SaveAnimatedGIF(tinyFrames(t, 2), tmp, GIFDelay); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(tmp); err != nil {
		t.Fatalf("gif not written: %v", err)
	}
	if err := SaveAnimatedGIF(nil, tmp, GIFDelay); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("err=%v want ErrNoFrames", err)
	}
}

func TestSavePNGSequence(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "frame")
	if err := SavePNGSequence(tinyFrames(t, 3), prefix); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"_0.png", "_1.png", "_2.png"} {
		if _, err := os.Stat(prefix + f); err != nil {
			t.Fatalf("png not written: %v", err)
		}
	}
}
