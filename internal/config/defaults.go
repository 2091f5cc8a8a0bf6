package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultCrossingConfig returns the campaign configuration.
// Mirrors defaults/crossing.yaml and is used if the embedded file cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Playfield: Playfield{
			Rows:     12,
			Cols:     10,
			CellSize: 50,
			GoalRows: 1,
			Lanes:    []int{2, 3, 4, 5, 6, 7, 8, 9},
		},
		Player: PlayerConfig{
			Size: 40,
		},
		Obstacles: ObstacleConfig{
			Width:           50,
			Height:          40,
			MinGap:          10,
			BaseSpeed:       1.5,
			SpeedPerLevel:   0.35,
			SpeedJitter:     1.0,
			BaseSpacing:     220,
			SpacingPerLevel: 12,
			SpacingJitter:   20,
			MinSpacing:      90,
		},
		Round: RoundConfig{
			Lives:          3,
			MaxLevel:       10,
			HitReactionMS:  1200,
			LevelClearedMS: 1500,
		},
		Bonus: BonusConfig{
			Ornaments:    6,
			AvoidRadius:  120,
			HopSeconds:   0.8,
			MaxTargetTry: 16,
		},
	}
}

// ClassicCrossingConfig returns the single-level classic configuration.
func ClassicCrossingConfig() CrossingConfig {
	cfg := DefaultCrossingConfig()
	cfg.Obstacles.BaseSpeed = 2
	cfg.Obstacles.SpeedPerLevel = 0
	cfg.Obstacles.SpeedJitter = 2
	cfg.Obstacles.BaseSpacing = 166
	cfg.Obstacles.SpacingPerLevel = 0
	cfg.Obstacles.SpacingJitter = 0
	cfg.Obstacles.MinSpacing = 166
	cfg.Round.MaxLevel = 1
	cfg.Round.HitReactionMS = 600
	cfg.Round.LevelClearedMS = 1000
	cfg.Bonus.Ornaments = 4
	cfg.Bonus.AvoidRadius = 100
	cfg.Bonus.HopSeconds = 1.0
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case "crossing":
		return defaultCrossingYAML
	case "crossing_classic":
		return defaultClassicYAML
	default:
		return nil
	}
}
