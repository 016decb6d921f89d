package ndraytrace

import (
	"fmt"
	"image/color"
	"math"
)

// RGB stores unquantized color channels on the 0..255 scale.
type RGB struct {
	R, G, B Real
}

func (c RGB) Mul(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }

// Opaque attaches the hit alpha.
func (c RGB) Opaque() RGBA { return RGBA{c.R, c.G, c.B, HitAlpha} }

// RGBA is a sample color before it is written into a framebuffer.
// Channels may leave the 0..255 range; the framebuffer's ChannelMode decides.
type RGBA struct {
	R, G, B, A Real
}

func (c RGBA) vector() Vector { return Vector{c.R, c.G, c.B, c.A} }

func rgbaOf(c color.RGBA) RGBA {
	return RGBA{Real(c.R), Real(c.G), Real(c.B), Real(c.A)}
}

// ChannelMode selects how out-of-range channels are stored.
type ChannelMode uint8

const (
	ChannelTruncate ChannelMode = iota // drop the fraction, keep the low 8 bits
	ChannelClamp                       // round, then clamp to [0,255]
)

func (m ChannelMode) String() string {
	switch m {
	case ChannelTruncate:
		return "truncate"
	case ChannelClamp:
		return "clamp"
	}
	return fmt.Sprintf("ChannelMode(%d)", uint8(m))
}

// ParseChannelMode accepts "truncate" (or "") and "clamp".
func ParseChannelMode(s string) (ChannelMode, error) {
	switch s {
	case "", "truncate":
		return ChannelTruncate, nil
	case "clamp":
		return ChannelClamp, nil
	}
	return 0, fmt.Errorf("unknown channel mode %q (want truncate or clamp)", s)
}

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func (m ChannelMode) channel(v Real) uint8 {
	if !isFinite(v) {
		return 0
	}
	if m == ChannelClamp {
		v = math.Round(v)
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return uint8(int64(v))
}

// Quantize converts a sample color to 8-bit channels.
func (m ChannelMode) Quantize(c RGBA) color.RGBA {
	return color.RGBA{m.channel(c.R), m.channel(c.G), m.channel(c.B), m.channel(c.A)}
}
