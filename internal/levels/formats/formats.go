// Package formats provides the level file parsers.
package formats

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Level is a parsed level file, not yet validated.
type Level struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Tiles       [][]int `json:"tiles" yaml:"tiles"`
	TargetScore int     `json:"targetScore" yaml:"targetScore"`
	Moves       int     `json:"moves" yaml:"moves"`
}

// ParseJSON parses a JSON level file.
func ParseJSON(data []byte) (Level, error) {
	var l Level
	if err := json.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return l, nil
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return l, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext string) (Level, error) {
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
