package ndraytrace

import (
	"image/color"
	"math"
	"testing"
)

func TestChannelModes(t *testing.T) {
	cases := []struct {
		in              Real
		truncate, clamp uint8
	}{
		{0, 0, 0},
		{127.5, 127, 128},
		{255, 255, 255},
		{300.7, 44, 255},
		{-1.5, 255, 0},
		{math.NaN(), 0, 0},
		{math.Inf(1), 0, 0},
	}
	for _, c := range cases {
		if got := ChannelTruncate.channel(c.in); got != c.truncate {
			t.Fatalf("truncate(%v)=%d want %d", c.in, got, c.truncate)
		}
		if got := ChannelClamp.channel(c.in); got != c.clamp {
			t.Fatalf("clamp(%v)=%d want %d", c.in, got, c.clamp)
		}
	}
}

func TestQuantize(t *testing.T) {
	got := ChannelClamp.Quantize(RGBA{-4, 12.4, 400, 255})
	if got != (color.RGBA{0, 12, 255, 255}) {
		t.Fatalf("Quantize=%+v", got)
	}
}

func TestParseChannelMode(t *testing.T) {
	for s, want := range map[string]ChannelMode{"": ChannelTruncate, "truncate": ChannelTruncate, "clamp": ChannelClamp} {
		m, err := ParseChannelMode(s)
		if err != nil || m != want {
			t.Fatalf("ParseChannelMode(%q)=%v,%v want %v", s, m, err, want)
		}
		if s != "" && m.String() != s {
			t.Fatalf("String()=%q want %q", m.String(), s)
		}
	}
	if _, err := ParseChannelMode("wrap"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestOpaque(t *testing.T) {
	if c := (RGB{1, 2, 3}).Mul(2).Opaque(); c != (RGBA{2, 4, 6, 255}) {
		t.Fatalf("Opaque=%+v", c)
	}
}
