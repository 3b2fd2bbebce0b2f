// Package config loads the YAML run configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vector-duel/input"
	"github.com/lixenwraith/vector-duel/parameter"
)

// ErrInvalid marks a configuration that loaded but failed validation
var ErrInvalid = errors.New("invalid configuration")

// Config is the full run configuration
// Zero Seed selects a time-based seed
type Config struct {
	Seed          uint64         `yaml:"seed"`
	FrameInterval time.Duration  `yaml:"frame_interval"`
	Dwell         time.Duration  `yaml:"dwell"`
	Scope         Scope          `yaml:"scope"`
	Keys          input.Bindings `yaml:"keys"`
	Audio         Audio          `yaml:"audio"`
	Record        Record         `yaml:"record"`
}

// Scope configures the hosted phosphor displays
type Scope struct {
	Decay  float64 `yaml:"decay"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// Audio configures sound effects
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Record configures the WAV beam recorder; empty Path disables it
type Record struct {
	Path          string `yaml:"path"`
	SampleRate    int    `yaml:"sample_rate"`
	BlankToCenter bool   `yaml:"blank_to_center"`
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		FrameInterval: parameter.FrameUpdateInterval,
		Dwell:         parameter.PointDwell,
		Scope: Scope{
			Decay:  parameter.PhosphorDecay,
			Width:  parameter.WindowSize,
			Height: parameter.WindowSize,
		},
		Keys: input.DefaultBindings(),
		Audio: Audio{
			Enabled: true,
			Volume:  0.5,
		},
		Record: Record{
			SampleRate: parameter.RecordSampleRate,
		},
	}
}

// Load reads path over the defaults
// A missing file is not an error and yields Default()
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillKeys()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML
func (c *Config) Save(path string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks value ranges and key bindings
func (c *Config) Validate() error {
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive, got %s", ErrInvalid, c.FrameInterval)
	}
	if c.Dwell < 0 {
		return fmt.Errorf("%w: dwell must not be negative, got %s", ErrInvalid, c.Dwell)
	}
	if c.Scope.Decay < 0 || c.Scope.Decay >= 1 {
		return fmt.Errorf("%w: scope.decay must be in [0, 1), got %g", ErrInvalid, c.Scope.Decay)
	}
	if c.Scope.Width <= 0 || c.Scope.Height <= 0 {
		return fmt.Errorf("%w: scope size must be positive, got %dx%d", ErrInvalid, c.Scope.Width, c.Scope.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	}
	if c.Record.SampleRate <= 0 {
		return fmt.Errorf("%w: record.sample_rate must be positive, got %d", ErrInvalid, c.Record.SampleRate)
	}
	if _, err := c.Keys.Resolve(); err != nil {
		return fmt.Errorf("%w: keys: %v", ErrInvalid, err)
	}
	return nil
}

// fillKeys restores default bindings for controls a seat leaves unset
// yaml decodes each array element fresh, so seats lose their defaults on load
func (c *Config) fillKeys() {
	defaults := input.DefaultBindings()
	for seat := range c.Keys {
		if c.Keys[seat] == nil {
			c.Keys[seat] = input.KeyNames{}
		}
		for control, keys := range defaults[seat] {
			if _, ok := c.Keys[seat][control]; !ok {
				c.Keys[seat][control] = keys
			}
		}
	}
}

// SeedOrNow returns Seed, or the current time when unset
func (c *Config) SeedOrNow() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
