package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/matrix-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded configuration of the 8x8 device.
func Default() Config {
	rc := core.DefaultConfig()
	return Config{
		Grid: GridConfig{
			Width:  rc.Grid.Width,
			Height: rc.Grid.Height,
		},
		Snake: SnakeConfig{
			Capacity:      rc.Capacity,
			InitialLength: rc.InitialLength,
		},
		Apple: AppleConfig{
			PlacementAttempts: rc.ApplePlacementAttempts,
		},
		Seed: rc.Seed,
		Input: InputConfig{
			SamplesPerStep: 10,
			SampleInterval: 10 * time.Millisecond,
			Center:         500,
			Threshold:      250,
		},
		Animation: AnimationConfig{
			FirstFrame: 500 * time.Millisecond,
			Frame:      200 * time.Millisecond,
			FinalHold:  1000 * time.Millisecond,
			Flash:      500 * time.Millisecond,
			Flashes:    2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
