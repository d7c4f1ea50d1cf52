// Package config holds the tunable constants of point generation,
// distance derivation and replay pacing, with YAML load/save.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/toursim/internal/geom"
)

const (
	DefaultWidth         = 640.0
	DefaultHeight        = 480.0
	DefaultPadding       = 20.0
	DefaultMinSeparation = 60.0
	DefaultMaxAttempts   = 50
	DefaultMinPoints     = 3
	DefaultMaxPoints     = 9
	DefaultScale         = 0.1
	DefaultCap           = 99.0
	DefaultTickMs        = 500
)

type Config struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Padding       float64 `yaml:"padding"`
	MinSeparation float64 `yaml:"min_separation"`
	MaxAttempts   int     `yaml:"max_attempts"`
	MinPoints     int     `yaml:"min_points"`
	MaxPoints     int     `yaml:"max_points"`
	Scale         float64 `yaml:"scale"`
	Cap           float64 `yaml:"cap"`
	TickMs        int     `yaml:"tick_ms"`
	Seed          int64   `yaml:"seed"`
}

func Default() *Config {
	return &Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Padding:       DefaultPadding,
		MinSeparation: DefaultMinSeparation,
		MaxAttempts:   DefaultMaxAttempts,
		MinPoints:     DefaultMinPoints,
		MaxPoints:     DefaultMaxPoints,
		Scale:         DefaultScale,
		Cap:           DefaultCap,
		TickMs:        DefaultTickMs,
	}
}

// Load reads a YAML file over the defaults, so partial files work.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: canvas must be positive, got %gx%g", c.Width, c.Height)
	}
	if 2*c.Padding >= c.Width || 2*c.Padding >= c.Height {
		return fmt.Errorf("config: padding %g leaves no usable area", c.Padding)
	}
	if c.MinPoints < 1 || c.MaxPoints < c.MinPoints {
		return fmt.Errorf("config: point range %d..%d invalid", c.MinPoints, c.MaxPoints)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("config: max_attempts must be at least 1")
	}
	if c.MinSeparation < 0 || c.Scale <= 0 || c.Cap <= 0 {
		return fmt.Errorf("config: separation must be non-negative, scale and cap positive")
	}
	if c.TickMs < 1 {
		return fmt.Errorf("config: tick_ms must be at least 1")
	}
	return nil
}

func (c *Config) SamplerConfig() geom.SamplerConfig {
	return geom.SamplerConfig{
		Width:         c.Width,
		Height:        c.Height,
		Padding:       c.Padding,
		MinSeparation: c.MinSeparation,
		MaxAttempts:   c.MaxAttempts,
		MinPoints:     c.MinPoints,
		MaxPoints:     c.MaxPoints,
	}
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}
