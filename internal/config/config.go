// Package config provides YAML-based game configuration loading and
// difficulty presets for Sum Link.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SumlinkConfig contains all configuration for the Sum Link game.
type SumlinkConfig struct {
	StartLevel int           `yaml:"start_level"`
	Grid       GridConfig    `yaml:"grid"`
	Targets    TargetsConfig `yaml:"targets"`
	Values     ValuesConfig  `yaml:"values"`
	Timing     TimingConfig  `yaml:"timing"`
}

// GridConfig defines how the board grows with the level number.
type GridConfig struct {
	BaseSize  int `yaml:"base_size"`
	GrowEvery int `yaml:"grow_every"`
	MaxSize   int `yaml:"max_size"`
}

// TargetsConfig defines target count growth and the target value range.
type TargetsConfig struct {
	BaseCount int  `yaml:"base_count"`
	GrowEvery int  `yaml:"grow_every"`
	MaxCount  int  `yaml:"max_count"`
	Factor    int  `yaml:"factor"`
	Unique    bool `yaml:"unique"`
}

// ValuesConfig defines the inclusive range of cell values.
type ValuesConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimingConfig defines UI delays in milliseconds.
type TimingConfig struct {
	AdvanceDelayMs int `yaml:"advance_delay_ms"`
	ToastMs        int `yaml:"toast_ms"`
}

// AdvanceDelay returns the level-advance delay as a duration.
func (t TimingConfig) AdvanceDelay() time.Duration {
	return time.Duration(t.AdvanceDelayMs) * time.Millisecond
}

// ToastDuration returns the notification lifetime as a duration.
func (t TimingConfig) ToastDuration() time.Duration {
	return time.Duration(t.ToastMs) * time.Millisecond
}

// Validate checks that the configuration can generate playable levels.
func (c SumlinkConfig) Validate() error {
	switch {
	case c.StartLevel < 1:
		return fmt.Errorf("%w: start_level must be >= 1, got %d", ErrInvalidConfig, c.StartLevel)
	case c.Grid.BaseSize < 1 || c.Grid.MaxSize < c.Grid.BaseSize:
		return fmt.Errorf("%w: grid sizes must satisfy 1 <= base_size <= max_size", ErrInvalidConfig)
	case c.Grid.GrowEvery < 1:
		return fmt.Errorf("%w: grid.grow_every must be >= 1", ErrInvalidConfig)
	case c.Targets.BaseCount < 1 || c.Targets.MaxCount < c.Targets.BaseCount:
		return fmt.Errorf("%w: target counts must satisfy 1 <= base_count <= max_count", ErrInvalidConfig)
	case c.Targets.GrowEvery < 1:
		return fmt.Errorf("%w: targets.grow_every must be >= 1", ErrInvalidConfig)
	case c.Targets.Factor < 1:
		return fmt.Errorf("%w: targets.factor must be >= 1", ErrInvalidConfig)
	case c.Values.Min < 1 || c.Values.Max < c.Values.Min:
		return fmt.Errorf("%w: values must satisfy 1 <= min <= max", ErrInvalidConfig)
	case c.Timing.AdvanceDelayMs < 0 || c.Timing.ToastMs < 0:
		return fmt.Errorf("%w: timing values must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// StartLevelForPreset returns the first level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 8
	default:
		return 1
	}
}

// ApplySumlinkPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySumlinkPreset(cfg *SumlinkConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.StartLevel = StartLevelForPreset(preset)
}
