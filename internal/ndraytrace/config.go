package ndraytrace

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type ExportCfg struct {
	Frames      int    `json:"frames,omitempty"`
	FrameStepMs int    `json:"frameStepMs,omitempty"`
	GIFOut      string `json:"gifOut,omitempty"`
	GIFDelay    int    `json:"gifDelay,omitempty"` // 100ths of a second
	PNGPrefix   string `json:"pngPrefix,omitempty"`
}

// Config holds everything that can be tuned without recompiling.
// Zero or missing values fall back to the package constants.
type Config struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	Dimension int `json:"dimension"`
	// Camera and LightBase list leading components; the remaining axes
	// (up to Dimension) are filled with CameraFill / LightFill.
	Camera        []Real `json:"camera,omitempty"`
	CameraFill    *Real  `json:"cameraFill,omitempty"`
	LightBase     []Real `json:"lightBase,omitempty"`
	LightFill     *Real  `json:"lightFill,omitempty"`
	OrbitPeriodMs int    `json:"orbitPeriodMs,omitempty"`
	OrbitRadius   *Real  `json:"orbitRadius,omitempty"`
	Threshold     *Real  `json:"threshold,omitempty"`
	InnerRadius   Real   `json:"innerRadius,omitempty"`
	ChannelMode   string `json:"channelMode,omitempty"` // "truncate" or "clamp"
	Workers       int    `json:"workers,omitempty"`
	HUD           bool   `json:"hud,omitempty"`
	Title         string `json:"title,omitempty"`
	HeadlessHz    int    `json:"headlessHz,omitempty"`
	Frames        uint64 `json:"frames,omitempty"` // headless: stop after N frames, 0 = run until interrupted

	Export ExportCfg `json:"export"`

	mode ChannelMode
}

func realPtr(v Real) *Real { return &v }

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := cfg.setDefaults(); err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig reads a JSON config; an empty path yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.setDefaults(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), dim=%d, threshold=%g, mode=%s, workers=%d", path, cfg.Width, cfg.Height, cfg.Dimension, *cfg.Threshold, cfg.mode, cfg.Workers)
	return &cfg, nil
}

func (cfg *Config) setDefaults() error {
	// Defaults / validation
	if cfg.Width < 0 || cfg.Height < 0 {
		return fmt.Errorf("size must not be negative, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width == 0 {
		cfg.Width = Width
	}
	if cfg.Height == 0 {
		cfg.Height = Height
	}
	if cfg.Dimension < 0 {
		return fmt.Errorf("dimension must be positive, got %d", cfg.Dimension)
	}
	if cfg.Dimension == 0 {
		cfg.Dimension = Dimension
	}
	if cfg.Dimension > 16 {
		return fmt.Errorf("dimension %d would build %d spheres", cfg.Dimension, 1<<cfg.Dimension+1)
	}
	if len(cfg.Camera) == 0 {
		cfg.Camera = append([]Real(nil), CameraPos...)
	}
	if cfg.CameraFill == nil {
		cfg.CameraFill = realPtr(CameraFill)
	}
	if len(cfg.LightBase) == 0 {
		cfg.LightBase = append([]Real(nil), LightBasePos...)
	}
	if cfg.LightFill == nil {
		cfg.LightFill = realPtr(LightFill)
	}
	if cfg.OrbitPeriodMs <= 0 {
		cfg.OrbitPeriodMs = OrbitPeriodMs
	}
	if cfg.OrbitRadius == nil {
		cfg.OrbitRadius = realPtr(OrbitRadius)
	}
	if cfg.Threshold == nil {
		cfg.Threshold = realPtr(DeviationThreshold)
	}
	if cfg.InnerRadius <= 0 {
		cfg.InnerRadius = InnerRadius
	}
	mode, err := ParseChannelMode(cfg.ChannelMode)
	if err != nil {
		return err
	}
	cfg.mode = mode
	cfg.ChannelMode = mode.String()
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Title == "" {
		cfg.Title = WindowTitle
	}
	if cfg.HeadlessHz <= 0 {
		cfg.HeadlessHz = HeadlessHz
	}
	if cfg.Export.Frames <= 0 {
		cfg.Export.Frames = ExportFrames
	}
	if cfg.Export.FrameStepMs <= 0 {
		cfg.Export.FrameStepMs = ExportFrameStepMs
	}
	if cfg.Export.GIFOut == "" {
		cfg.Export.GIFOut = GIFOut
	}
	if cfg.Export.GIFDelay <= 0 {
		cfg.Export.GIFDelay = GIFDelay
	}
	return nil
}

func (cfg *Config) Mode() ChannelMode { return cfg.mode }

func (cfg *Config) CameraPos() Vector {
	return PadVec(cfg.Camera, *cfg.CameraFill, cfg.Dimension)
}

func (cfg *Config) LightBasePos() Vector {
	return PadVec(cfg.LightBase, *cfg.LightFill, cfg.Dimension)
}

func (cfg *Config) Period() time.Duration {
	return time.Duration(cfg.OrbitPeriodMs) * time.Millisecond
}

// FrameTimes lists the elapsed times rendered by an export.
func (cfg *Config) FrameTimes() []time.Duration {
	ts := make([]time.Duration, cfg.Export.Frames)
	step := time.Duration(cfg.Export.FrameStepMs) * time.Millisecond
	for i := range ts {
		ts[i] = time.Duration(i) * step
	}
	return ts
}
