package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSumlink loads Sum Link configuration.
// Search order: customPath -> ~/.sumlink/configs/sumlink.yaml -> ./configs/sumlink.yaml -> embedded default
//
// Values missing from a file keep their defaults. A custom path that cannot
// be read, parsed or validated is an error; the other locations are skipped
// silently when unusable.
func LoadSumlink(customPath string) (SumlinkConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSumlinkConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSumlink(data)
		if err != nil {
			return DefaultSumlinkConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("sumlink.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSumlink(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "sumlink.yaml")); err == nil {
		if cfg, err := parseSumlink(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSumlink(DefaultSumlinkYAML())
	if err != nil {
		return DefaultSumlinkConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSumlink decodes YAML over the defaults and validates the result.
func parseSumlink(data []byte) (SumlinkConfig, error) {
	cfg := DefaultSumlinkConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sumlink", "configs", filename)
}
