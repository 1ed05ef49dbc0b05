package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTiles loads the tile puzzle configuration.
// Search order: customPath -> ~/.tiles/configs/tiles.yaml -> ./configs/tiles.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadTiles(customPath string) (TilesConfig, error) {
	cfg := DefaultTilesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tiles.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "tiles.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTilesYAML, &cfg); err != nil {
		return DefaultTilesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unreadable or invalid
// files are ignored so the next location in the search order is used.
func tryLoad(path string) (TilesConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TilesConfig{}, false
	}
	cfg := DefaultTilesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TilesConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return TilesConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns ~/.tiles/configs/<filename>, or "" without a home directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tiles", "configs", filename)
}
