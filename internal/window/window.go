// Package window shows rendered frames in a desktop window. Ebiten calls
// Draw once per display refresh, which is where pending frame callbacks run.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lukaszgryglicki/ndraytrace/internal/ndraytrace"
)

type game struct {
	st      *ndraytrace.RenderState
	fbImg   *ebiten.Image
	pending func()
}

// Request implements ndraytrace.Scheduler.
func (g *game) Request(fn func()) { g.pending = fn }

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if fn := g.pending; fn != nil {
		g.pending = nil
		fn()
	}
	fb := g.st.FB
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}
	g.fbImg.WritePixels(fb.Img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.st.FB.Width(), g.st.FB.Height()
}

// Run opens a cfg.Width×cfg.Height window and renders a frame on every
// refresh until the window is closed or Escape/Q is pressed.
func Run(cfg *ndraytrace.Config) error {
	drv := ndraytrace.NewDriver(cfg, ndraytrace.NewClock())
	st := drv.NewState(cfg.Width, cfg.Height)
	g := &game{st: st}
	drv.Start(st, g)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(g)
}
