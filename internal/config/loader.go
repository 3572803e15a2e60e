package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDucks loads the duck tower configuration.
// Search order: customPath -> ~/.ducks/configs/ducks.yaml -> ./configs/ducks.yaml -> embedded default.
// Files only need to carry the keys they override; everything else keeps its default.
func LoadDucks(customPath string) (DucksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DucksConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseDucks(data)
		if err != nil {
			return DucksConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ducks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDucks(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ducks.yaml"); err == nil {
		if cfg, err := ParseDucks(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseDucks(defaultDucksYAML)
	if err != nil {
		return DefaultDucksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseDucks decodes YAML on top of the built-in defaults and validates the result.
func ParseDucks(data []byte) (DucksConfig, error) {
	cfg := DefaultDucksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DucksConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DucksConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ducks", "configs", filename)
}
