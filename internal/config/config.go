// Package config loads the window, simulation and view settings.
// Values missing from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	View       ViewConfig       `yaml:"view"`
	Colors     ColorConfig      `yaml:"colors"`
}

// WindowConfig controls the OS window
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// SimulationConfig controls the fixed update rate
type SimulationConfig struct {
	TPS int `yaml:"tps"` // Updates per second; each tick advances 1/TPS seconds
}

// ViewConfig is the fixed projection the scene is drawn through
type ViewConfig struct {
	FOV    float64    `yaml:"fov"` // Vertical field of view in degrees
	Near   float64    `yaml:"near"`
	Far    float64    `yaml:"far"`
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
}

// ColorConfig holds 0xRRGGBB colours
type ColorConfig struct {
	Background uint32 `yaml:"background"`
	HUD        bool   `yaml:"hud"` // Draw the yaw readout
}

// DefaultConfig returns the settings used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "wireduck - arrow keys to look around",
			Resizable: true,
		},
		Simulation: SimulationConfig{
			TPS: 60,
		},
		View: ViewConfig{
			FOV:    75,
			Near:   0.1,
			Far:    1000,
			Eye:    [3]float64{0, 2, 4},
			Target: [3]float64{0, 0, 0},
		},
		Colors: ColorConfig{
			Background: 0x000000,
			HUD:        true,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Simulation.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.Simulation.TPS))
	}
	if c.View.FOV <= 0 || c.View.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov must be between 0 and 180 degrees, got %g", c.View.FOV))
	}
	if c.View.Near <= 0 || c.View.Far <= c.View.Near {
		errs = append(errs, fmt.Errorf("clip planes must satisfy 0 < near < far, got %g/%g", c.View.Near, c.View.Far))
	}
	if c.View.Eye == c.View.Target {
		errs = append(errs, errors.New("eye and target must differ"))
	}
	return errors.Join(errs...)
}

// TickDelta is the number of seconds each update advances
func (c *Config) TickDelta() float64 {
	return 1 / float64(c.Simulation.TPS)
}
