// Package config provides YAML-based configuration loading and difficulty
// presets for the tile puzzle.
package config

import "fmt"

// TilesConfig contains all configuration for the tile puzzle.
type TilesConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines board simulation parameters.
type BoardConfig struct {
	Palette         int `yaml:"palette"`
	BaseScore       int `yaml:"base_score"`
	MaxDealAttempts int `yaml:"max_deal_attempts"`
}

// AnimationConfig defines how long each resolution phase stays on screen, in ticks.
type AnimationConfig struct {
	StepTicks       int `yaml:"step_ticks"`
	SwapTicks       int `yaml:"swap_ticks"`
	InvalidTicks    int `yaml:"invalid_ticks"`
	LevelClearTicks int `yaml:"level_clear_ticks"`
}

// DifficultyConfig adjusts levels without editing them.
type DifficultyConfig struct {
	MovesBonus int `yaml:"moves_bonus"` // Added to every level's move budget
}

// Palette bounds accepted by Validate.
const (
	MinPalette = 3
	MaxPalette = 6
)

// Validate checks that the configuration is usable.
func (c TilesConfig) Validate() error {
	if c.Board.Palette < MinPalette || c.Board.Palette > MaxPalette {
		return fmt.Errorf("board.palette %d outside [%d,%d]", c.Board.Palette, MinPalette, MaxPalette)
	}
	if c.Board.BaseScore <= 0 {
		return fmt.Errorf("board.base_score must be positive, got %d", c.Board.BaseScore)
	}
	if c.Board.MaxDealAttempts <= 0 {
		return fmt.Errorf("board.max_deal_attempts must be positive, got %d", c.Board.MaxDealAttempts)
	}

	ticks := []struct {
		name  string
		value int
	}{
		{"animation.step_ticks", c.Animation.StepTicks},
		{"animation.swap_ticks", c.Animation.SwapTicks},
		{"animation.invalid_ticks", c.Animation.InvalidTicks},
		{"animation.level_clear_ticks", c.Animation.LevelClearTicks},
	}
	for _, t := range ticks {
		if t.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", t.name, t.value)
		}
	}
	return nil
}

// Moves returns the move budget for a level after the difficulty bonus.
// The result is never below one.
func (c TilesConfig) Moves(base int) int {
	return max(1, base+c.Difficulty.MovesBonus)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyTilesPreset modifies the config based on a difficulty preset.
// Fewer piece types make chains easier to find.
func ApplyTilesPreset(cfg *TilesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Palette = 5
		cfg.Difficulty.MovesBonus = 5
	case DifficultyNormal:
		cfg.Board.Palette = 6
		cfg.Difficulty.MovesBonus = 0
	case DifficultyHard:
		cfg.Board.Palette = 6
		cfg.Difficulty.MovesBonus = -3
	}
}
