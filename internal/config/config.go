// Package config provides YAML-based configuration loading for the snake
// engine and the emulated device around it.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/core"
)

// Config contains all configuration for one snake device.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Snake     SnakeConfig     `yaml:"snake"`
	Apple     AppleConfig     `yaml:"apple"`
	Seed      int64           `yaml:"seed"`
	Input     InputConfig     `yaml:"input"`
	Animation AnimationConfig `yaml:"animation"`
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines body limits.
type SnakeConfig struct {
	Capacity      int `yaml:"capacity"`       // reaching it wins the round
	InitialLength int `yaml:"initial_length"` // length after every reset
}

// AppleConfig defines apple placement.
type AppleConfig struct {
	PlacementAttempts int `yaml:"placement_attempts"` // 1 = no re-roll on the body
}

// InputConfig defines how the analog stick is sampled.
type InputConfig struct {
	SamplesPerStep int           `yaml:"samples_per_step"`
	SampleInterval time.Duration `yaml:"sample_interval"`
	Center         int           `yaml:"center"`    // raw reading at rest
	Threshold      int           `yaml:"threshold"` // deflection that counts as a direction
}

// StepInterval is the time between two engine steps.
func (c InputConfig) StepInterval() time.Duration {
	return time.Duration(c.SamplesPerStep) * c.SampleInterval
}

// AnimationConfig defines banner and flash timing.
type AnimationConfig struct {
	FirstFrame time.Duration `yaml:"first_frame"`
	Frame      time.Duration `yaml:"frame"`
	FinalHold  time.Duration `yaml:"final_hold"`
	Flash      time.Duration `yaml:"flash"`
	Flashes    int           `yaml:"flashes"`
}

// Runtime converts the file configuration to engine constants.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid:                   core.NewGrid(c.Grid.Width, c.Grid.Height),
		Capacity:               c.Snake.Capacity,
		InitialLength:          c.Snake.InitialLength,
		ApplePlacementAttempts: c.Apple.PlacementAttempts,
		Seed:                   c.Seed,
	}
}

// Validate checks the configuration, including the engine invariants.
func (c Config) Validate() error {
	var errs []error
	if err := c.Runtime().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Input.SamplesPerStep < 1 {
		errs = append(errs, fmt.Errorf("input.samples_per_step %d must be at least 1", c.Input.SamplesPerStep))
	}
	if c.Input.SampleInterval <= 0 {
		errs = append(errs, fmt.Errorf("input.sample_interval %s must be positive", c.Input.SampleInterval))
	}
	if c.Input.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("input.threshold %d must be positive", c.Input.Threshold))
	}
	if c.Animation.Frame <= 0 || c.Animation.Flash <= 0 {
		errs = append(errs, errors.New("animation.frame and animation.flash must be positive"))
	}
	if c.Animation.Flashes < 0 {
		errs = append(errs, fmt.Errorf("animation.flashes %d must not be negative", c.Animation.Flashes))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
