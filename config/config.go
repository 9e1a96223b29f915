// Package config defines the engine's runtime configuration and loads it from
// defaults, an optional YAML file, and TACTILE_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/phanxgames/tactile"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MaxAgeTicks is how long a touch sample stays in the history.
	MaxAgeTicks uint64 `koanf:"max_age_ticks"`

	// ClusterDistance is the linear distance in pixels below which a sample
	// joins an existing trace.
	ClusterDistance int32 `koanf:"cluster_distance"`

	// FirstMatchOnly stops a sample from joining more than one trace.
	FirstMatchOnly bool `koanf:"first_match_only"`

	// DeltaMode is "last_point" or "last_step".
	DeltaMode string `koanf:"delta_mode"`

	// ScreenWidth and ScreenHeight are the display size in pixels.
	ScreenWidth  int `koanf:"screen_width"`
	ScreenHeight int `koanf:"screen_height"`

	// TicksPerSecond is the host loop rate.
	TicksPerSecond int `koanf:"ticks_per_second"`

	// MouseAsTouch treats the held left mouse button as a touch.
	MouseAsTouch bool `koanf:"mouse_as_touch"`

	// ShowFPS and Debug control the on-screen overlay.
	ShowFPS bool `koanf:"show_fps"`
	Debug   bool `koanf:"debug"`

	// MetricsAddr serves Prometheus metrics when non-empty, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	// ScreenshotDir is where scripted screenshots are written.
	ScreenshotDir string `koanf:"screenshot_dir"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		MaxAgeTicks:     tactile.DefaultMaxAge,
		ClusterDistance: tactile.DefaultClusterDistance,
		DeltaMode:       tactile.DeltaLastPoint.String(),
		ScreenWidth:     480,
		ScreenHeight:    272,
		TicksPerSecond:  60,
		MouseAsTouch:    true,
		ScreenshotDir:   "screenshots",
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.MaxAgeTicks == 0:
		return fmt.Errorf("%w: max_age_ticks must be positive", ErrInvalidConfig)
	case c.ClusterDistance <= 0:
		return fmt.Errorf("%w: cluster_distance must be positive", ErrInvalidConfig)
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks_per_second must be positive", ErrInvalidConfig)
	}
	if _, ok := tactile.ParseDeltaMode(c.DeltaMode); !ok {
		return fmt.Errorf("%w: unknown delta_mode %q", ErrInvalidConfig, c.DeltaMode)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// ManipulatorOptions maps the pipeline settings to tactile options.
func (c *Config) ManipulatorOptions() []tactile.Option {
	mode, _ := tactile.ParseDeltaMode(c.DeltaMode)
	return []tactile.Option{
		tactile.WithMaxAge(c.MaxAgeTicks),
		tactile.WithClusterDistance(c.ClusterDistance),
		tactile.WithFirstMatchOnly(c.FirstMatchOnly),
		tactile.WithDeltaMode(mode),
	}
}

// RunConfig maps the display settings to a tactile.RunConfig.
func (c *Config) RunConfig(title string) tactile.RunConfig {
	return tactile.RunConfig{
		Title:          title,
		Width:          c.ScreenWidth,
		Height:         c.ScreenHeight,
		TicksPerSecond: c.TicksPerSecond,
		ShowFPS:        c.ShowFPS,
		Debug:          c.Debug,
		MouseAsTouch:   c.MouseAsTouch,
		ScreenshotDir:  c.ScreenshotDir,
		Options:        c.ManipulatorOptions(),
	}
}
