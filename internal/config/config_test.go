package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestStepInterval(t *testing.T) {
	if got := Default().Input.StepInterval(); got != 100*time.Millisecond {
		t.Errorf("StepInterval() = %s, expected 100ms", got)
	}
}

func TestRuntime(t *testing.T) {
	rc := Default().Runtime()
	if rc.Grid.Width != 8 || rc.Grid.Height != 8 || rc.Capacity != 20 || rc.InitialLength != 3 {
		t.Errorf("Runtime() = %+v", rc)
	}
	if rc.Seed != 0xDEADBEEF {
		t.Errorf("Runtime().Seed = %#x, expected 0xdeadbeef", rc.Seed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"capacity above cells", func(c *Config) { c.Snake.Capacity = 65 }, false},
		{"capacity equals initial length", func(c *Config) { c.Snake.Capacity = 3 }, false},
		{"zero width", func(c *Config) { c.Grid.Width = 0 }, false},
		{"no samples", func(c *Config) { c.Input.SamplesPerStep = 0 }, false},
		{"zero interval", func(c *Config) { c.Input.SampleInterval = 0 }, false},
		{"zero threshold", func(c *Config) { c.Input.Threshold = 0 }, false},
		{"zero frame", func(c *Config) { c.Animation.Frame = 0 }, false},
		{"no flashes", func(c *Config) { c.Animation.Flashes = 0 }, true},
		{"wide grid", func(c *Config) { c.Grid.Width = 16; c.Snake.Capacity = 40 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() error = %v, expected nil", err)
			}
			if !tc.valid && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSeed:       "0x2A",
		EnvGridWidth:  "16",
		EnvGridHeight: "8",
		EnvCapacity:   "40",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := ApplyEnv(&cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", cfg.Seed)
	}
	if cfg.Grid.Width != 16 || cfg.Grid.Height != 8 || cfg.Snake.Capacity != 40 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == EnvCapacity {
			return "lots", true
		}
		return "", false
	}

	cfg := Default()
	if err := ApplyEnv(&cfg, lookup); err == nil {
		t.Error("ApplyEnv() with non-numeric capacity should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv(EnvSeed, "7")

	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  width: 4\n  height: 4\nsnake:\n  capacity: 6\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Width != 4 || cfg.Snake.Capacity != 6 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Snake.InitialLength != 3 || cfg.Input.SamplesPerStep != 10 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, expected env override 7", cfg.Seed)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  capacity: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted capacity larger than the grid")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}
