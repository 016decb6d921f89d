package ndraytrace

import (
	"time"
)

// Clock is a monotonic source of elapsed time.
type Clock interface {
	Now() time.Duration
}

type monoClock struct{ start time.Time }

// NewClock returns a Clock counting from the moment it was created.
func NewClock() Clock { return &monoClock{start: time.Now()} }

func (c *monoClock) Now() time.Duration { return time.Since(c.start) }

// Scheduler runs a callback once before the next paint.
type Scheduler interface {
	Request(fn func())
}

// RenderState is everything that changes from frame to frame.
type RenderState struct {
	Start time.Duration // clock reading of the first frame
	Frame uint64        // frames rendered so far
	FB    *Framebuffer
	Light Vector      // light position of the last frame
	Stats SampleStats // stats of the last frame
}

// Driver animates the light and renders frames of a static scene.
type Driver struct {
	Scene       *Scene
	Camera      Vector
	LightBase   Vector
	Period      time.Duration
	OrbitRadius Real
	Sampler     *AdaptiveSampler
	Clock       Clock
	HUD         bool
	Mode        ChannelMode
	// OnFrame, when set, runs after every frame rendered by Frame.
	OnFrame func(*RenderState)
}

// NewDriver builds the scene described by cfg.
func NewDriver(cfg *Config, clock Clock) *Driver {
	return &Driver{
		Scene:       BuildSceneRadius(cfg.Dimension, cfg.InnerRadius),
		Camera:      cfg.CameraPos(),
		LightBase:   cfg.LightBasePos(),
		Period:      cfg.Period(),
		OrbitRadius: *cfg.OrbitRadius,
		Sampler:     &AdaptiveSampler{Threshold: *cfg.Threshold, Workers: cfg.Workers},
		Clock:       clock,
		HUD:         cfg.HUD || HUD,
		Mode:        cfg.Mode(),
	}
}

// NewState allocates a framebuffer and starts the animation clock now.
func (d *Driver) NewState(width, height int) *RenderState {
	st := &RenderState{FB: NewFramebuffer(width, height, d.Mode)}
	if d.Clock != nil {
		st.Start = d.Clock.Now()
	}
	return st
}

// RenderAt renders the frame seen t after the animation start.
func (d *Driver) RenderAt(st *RenderState, t time.Duration) SampleStats {
	light := LightPosition(d.LightBase, t, d.Period, d.OrbitRadius)
	view := NewView(d.Scene, d.Camera, light, st.FB.Width(), st.FB.Height())
	st.Light = light
	st.Stats = d.Sampler.Render(st.FB, view)
	st.Frame++
	if d.HUD {
		drawHUD(st.FB, st)
	}
	return st.Stats
}

// Frame renders the frame for the current clock reading.
func (d *Driver) Frame(st *RenderState) {
	t := d.Clock.Now() - st.Start
	d.RenderAt(st, t)
	if Debug {
		DebugLog("Frame %d at %s: %d samples", st.Frame, t, st.Stats.Total())
	}
	if d.OnFrame != nil {
		d.OnFrame(st)
	}
}

// Start registers a callback that renders a frame and registers itself
// again, so frames keep coming for as long as the scheduler runs them.
func (d *Driver) Start(st *RenderState, sched Scheduler) {
	var tick func()
	tick = func() {
		d.Frame(st)
		sched.Request(tick)
	}
	sched.Request(tick)
}
