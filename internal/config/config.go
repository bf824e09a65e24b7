// Package config defines the YAML configuration for stardust demo runs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultParticles = 100
	DefaultSteps     = 200
	DefaultWidth     = 80
	DefaultHeight    = 24
	DefaultFrameRate = 30
)

// Config describes one demo run: scene shape, policy selection, and output.
type Config struct {
	Evolution string             `yaml:"evolution"`
	Renderer  string             `yaml:"renderer"`
	Particles int                `yaml:"particles"`
	Steps     int                `yaml:"steps"`
	Seed      int64              `yaml:"seed"`
	Width     int                `yaml:"width"`
	Height    int                `yaml:"height"`
	FrameRate int                `yaml:"frame_rate"`
	Params    map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Evolution: "velocity",
		Renderer:  "canvas",
		Particles: DefaultParticles,
		Steps:     DefaultSteps,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FrameRate: DefaultFrameRate,
		Params:    map[string]float64{},
	}
}

// Load reads a YAML config file, overlaying it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
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

// Validate rejects configurations the engine cannot run.
func (c *Config) Validate() error {
	if c.Particles < 0 {
		return fmt.Errorf("config: particles must be non-negative, got %d", c.Particles)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("config: steps must be positive, got %d", c.Steps)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: canvas %dx%d is empty", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return fmt.Errorf("config: frame rate must be non-negative, got %d", c.FrameRate)
	}
	return nil
}

// Param returns a named policy parameter or the given fallback.
func (c *Config) Param(name string, fallback float64) float64 {
	if v, ok := c.Params[name]; ok {
		return v
	}
	return fallback
}
