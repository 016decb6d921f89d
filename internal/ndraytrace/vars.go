package ndraytrace

import "tinygo.org/x/drivers"

var (
	Debug    = false // set to true to count samples per category and print per-frame stats
	Headless = false // set to true to render on a ticker instead of a window
	Export   = false // set to true to render a fixed set of frames into a GIF and exit
	PNG      = false // set to true to also save PNGs (export: one per frame, headless: last frame)
	HUD      = false // set to true to draw frame/sample counters into the framebuffer
	// Compile time checks
	_ Surface           = (*Framebuffer)(nil)
	_ drivers.Displayer = (*Framebuffer)(nil)
	_ Sampler           = (*View)(nil)
	_ Clock             = (*monoClock)(nil)
	_ Scheduler         = (*tickScheduler)(nil)
)
