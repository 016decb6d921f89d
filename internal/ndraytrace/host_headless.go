package ndraytrace

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz     int
	Frames uint64 // stop after N frames, 0 = until ctx is done
}

// tickScheduler runs the pending callback on every tick.
type tickScheduler struct {
	pending func()
}

func (s *tickScheduler) Request(fn func()) { s.pending = fn }

func (s *tickScheduler) step() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn()
	return true
}

// RunHeadless drives frames from a ticker instead of a display.
func RunHeadless(ctx context.Context, d *Driver, st *RenderState, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = HeadlessHz
	}
	dt := time.Second / time.Duration(cfg.Hz)
	if dt <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	sched := &tickScheduler{}
	d.Start(st, sched)

	t := time.NewTicker(dt)
	defer t.Stop()

	var frames uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if !sched.step() {
				continue
			}
			frames++
			if cfg.Frames > 0 && frames >= cfg.Frames {
				return nil
			}
		}
	}
}
