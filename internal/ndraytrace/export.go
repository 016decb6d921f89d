package ndraytrace

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrNoFrames = errors.New("no frames to save")

// RenderFrames renders one independent frame per elapsed time, up to
// workers frames at once. Every frame owns its framebuffer.
func RenderFrames(ctx context.Context, d *Driver, width, height int, times []time.Duration, workers int) ([]*Framebuffer, error) {
	if len(times) == 0 {
		return nil, ErrNoFrames
	}
	if workers < 1 {
		workers = 1
	}
	frames := make([]*Framebuffer, len(times))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, t := range times {
		i, t := i, t
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st := &RenderState{FB: NewFramebuffer(width, height, d.Mode)}
			st.Frame = uint64(i)
			stats := d.RenderAt(st, t)
			DebugLog("Export frame %d at %s: %d samples", i, t, stats.Total())
			frames[i] = st.FB
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}
