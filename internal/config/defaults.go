package config

import (
	_ "embed"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// DefaultTilesConfig returns the default tile puzzle configuration.
func DefaultTilesConfig() TilesConfig {
	return TilesConfig{
		Board: BoardConfig{
			Palette:         6,
			BaseScore:       60,
			MaxDealAttempts: 1000,
		},
		Animation: AnimationConfig{
			StepTicks:       4,
			SwapTicks:       3,
			InvalidTicks:    6,
			LevelClearTicks: 45,
		},
	}
}
