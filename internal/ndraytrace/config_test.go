package ndraytrace

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != Width || cfg.Height != Height || cfg.Dimension != Dimension {
		t.Fatalf("size/dimension defaults: %+v", cfg)
	}
	if *cfg.Threshold != DeviationThreshold || cfg.Mode() != ChannelTruncate || cfg.Workers != 1 {
		t.Fatalf("sampler defaults: %+v", cfg)
	}
	if !vecNear(cfg.CameraPos(), Vector{-10, -2, 0}, 0) {
		t.Fatalf("camera %+v", cfg.CameraPos())
	}
	if !vecNear(cfg.LightBasePos(), Vector{-4, 0, 4}, 0) {
		t.Fatalf("light %+v", cfg.LightBasePos())
	}
	if cfg.Period() != 2*time.Second {
		t.Fatalf("period %s", cfg.Period())
	}
	if cfg.Export.GIFOut != GIFOut || cfg.Export.Frames != ExportFrames {
		t.Fatalf("export defaults: %+v", cfg.Export)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"width": 64,
		"height": 48,
		"dimension": 4,
		"camera": [-5],
		"threshold": 0,
		"channelMode": "clamp",
		"workers": 3,
		"export": {"frames": 3, "frameStepMs": 100}
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.Dimension != 4 || cfg.Workers != 3 {
		t.Fatalf("overrides lost: %+v", cfg)
	}
	if *cfg.Threshold != 0 {
		t.Fatalf("explicit zero threshold replaced by %g", *cfg.Threshold)
	}
	if cfg.Mode() != ChannelClamp {
		t.Fatalf("mode %s", cfg.Mode())
	}
	if !vecNear(cfg.CameraPos(), Vector{-5, -10, -10, -10}, 0) {
		t.Fatalf("camera %+v", cfg.CameraPos())
	}
	if !vecNear(cfg.LightBasePos(), Vector{-4, 0, 4, -3}, 0) {
		t.Fatalf("light %+v", cfg.LightBasePos())
	}
	want := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}
	got := cfg.FrameTimes()
	if len(got) != len(want) {
		t.Fatalf("frame times %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame times %v want %v", got, want)
		}
	}
}

func TestLoadConfigErrors(t *testing.T) {
	bad := map[string]string{
		"negative width": `{"width": -1}`,
		"dimension":      `{"dimension": 17}`,
		"mode":           `{"channelMode": "wrap"}`,
		"syntax":         `{"width": `,
	}
	for name, body := range bad {
		if _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file: expected error")
	}
}
