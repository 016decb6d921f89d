package ndraytrace

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Run renders without a window: Export writes an animation and returns,
// otherwise frames are rendered on a ticker until cfg.Frames or ctx ends.
func Run(ctx context.Context, cfg *Config) error {
	if Export {
		return runExport(ctx, cfg)
	}
	return runHeadless(ctx, cfg)
}

func runExport(ctx context.Context, cfg *Config) error {
	d := NewDriver(cfg, nil)
	times := cfg.FrameTimes()

	start := time.Now()
	frames, err := RenderFrames(ctx, d, cfg.Width, cfg.Height, times, exportWorkers(cfg))
	if err != nil {
		return fmt.Errorf("render frames: %w", err)
	}
	DebugLog("Frames: %d, time: %s", len(frames), time.Since(start))
	if Debug {
		sampleStats()
	}

	if PNG {
		prefix := cfg.Export.PNGPrefix
		if prefix == "" {
			prefix = strings.TrimSuffix(cfg.Export.GIFOut, ".gif")
		}
		if err := SavePNGSequence(frames, prefix); err != nil {
			return fmt.Errorf("save png sequence: %w", err)
		}
		DebugLog("Saved PNG sequence with prefix: %s", prefix)
	}
	if err := SaveAnimatedGIF(frames, cfg.Export.GIFOut, cfg.Export.GIFDelay); err != nil {
		return fmt.Errorf("save gif: %w", err)
	}
	fmt.Printf("Saved animated GIF: %s\n", cfg.Export.GIFOut)
	return nil
}

// exportWorkers renders one frame per CPU; frames whose sampler already
// fans out get proportionally fewer concurrent siblings.
func exportWorkers(cfg *Config) int {
	workers := runtime.NumCPU() / cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return workers
}

func runHeadless(ctx context.Context, cfg *Config) error {
	d := NewDriver(cfg, NewClock())
	st := d.NewState(cfg.Width, cfg.Height)
	report := uint64(cfg.HeadlessHz)
	d.OnFrame = func(st *RenderState) {
		if st.Frame%report == 0 {
			fmt.Printf("[FRAME] %d: %d samples\n", st.Frame, st.Stats.Total())
		}
	}

	err := RunHeadless(ctx, d, st, HeadlessConfig{Hz: cfg.HeadlessHz, Frames: cfg.Frames})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if Debug {
		sampleStats()
	}
	if PNG && st.Frame > 0 {
		path := cfg.Export.PNGPrefix
		if path == "" {
			path = "frame"
		}
		path += ".png"
		if err := SavePNG(st.FB, path); err != nil {
			return fmt.Errorf("save png: %w", err)
		}
		fmt.Printf("Saved last frame: %s\n", path)
	}
	return nil
}
