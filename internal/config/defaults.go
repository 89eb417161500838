package config

import (
	_ "embed"
	"slices"
)

//go:embed defaults/sumlink.yaml
var defaultSumlinkYAML []byte

// DefaultSumlinkConfig returns the default Sum Link configuration.
func DefaultSumlinkConfig() SumlinkConfig {
	return SumlinkConfig{
		StartLevel: 1,
		Grid: GridConfig{
			BaseSize:  4,
			GrowEvery: 2,
			MaxSize:   8,
		},
		Targets: TargetsConfig{
			BaseCount: 3,
			GrowEvery: 3,
			MaxCount:  6,
			Factor:    10,
			Unique:    false,
		},
		Values: ValuesConfig{
			Min: 1,
			Max: 9,
		},
		Timing: TimingConfig{
			AdvanceDelayMs: 1000,
			ToastMs:        1500,
		},
	}
}

// DefaultSumlinkYAML returns a copy of the embedded default config file.
func DefaultSumlinkYAML() []byte {
	return slices.Clone(defaultSumlinkYAML)
}
