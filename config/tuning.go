package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning holds the application-shell knobs loadable from a YAML file.
// Simulation semantics (speeds, durations, impulses) are fixed in the
// constant package; this covers the host-side surface around the core.
type Tuning struct {
	// FrameIntervalMs is the simulation tick interval in milliseconds
	FrameIntervalMs int `yaml:"frameIntervalMs"`
	// MaxDeltaMs caps the elapsed time applied in one tick
	MaxDeltaMs int `yaml:"maxDeltaMs"`
	// RenderIntervalMs is the terminal redraw interval
	RenderIntervalMs int `yaml:"renderIntervalMs"`

	// Audio enables the beep cue player
	Audio bool `yaml:"audio"`

	// Scene placement
	CatX      float64 `yaml:"catX"`
	CatZ      float64 `yaml:"catZ"`
	Furniture bool    `yaml:"furniture"`
}

// Default returns the tuning used when no file is present
func Default() Tuning {
	return Tuning{
		FrameIntervalMs:  16,
		MaxDeltaMs:       32,
		RenderIntervalMs: 33,
		Audio:            true,
		CatX:             0,
		CatZ:             0,
		Furniture:        true,
	}
}

// Load reads a tuning file, filling missing fields from Default. A
// missing file is not an error; a malformed one is.
func Load(path string) (Tuning, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return t, fmt.Errorf("read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("parse tuning file %s: %w", path, err)
	}

	if err := t.validate(); err != nil {
		return Default(), fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

func (t Tuning) validate() error {
	if t.FrameIntervalMs <= 0 {
		return fmt.Errorf("frameIntervalMs must be positive, got %d", t.FrameIntervalMs)
	}
	if t.MaxDeltaMs < t.FrameIntervalMs {
		return fmt.Errorf("maxDeltaMs %d must be at least frameIntervalMs %d", t.MaxDeltaMs, t.FrameIntervalMs)
	}
	if t.RenderIntervalMs <= 0 {
		return fmt.Errorf("renderIntervalMs must be positive, got %d", t.RenderIntervalMs)
	}
	return nil
}

// FrameInterval returns the tick interval as a duration
func (t Tuning) FrameInterval() time.Duration {
	return time.Duration(t.FrameIntervalMs) * time.Millisecond
}

// MaxDelta returns the tick delta cap as a duration
func (t Tuning) MaxDelta() time.Duration {
	return time.Duration(t.MaxDeltaMs) * time.Millisecond
}

// RenderInterval returns the redraw interval as a duration
func (t Tuning) RenderInterval() time.Duration {
	return time.Duration(t.RenderIntervalMs) * time.Millisecond
}
