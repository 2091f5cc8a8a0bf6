// Package config provides YAML-based configuration loading and validation
// for the road crossing game, plus the per-level difficulty formulas.
package config

import "time"

// CrossingConfig contains all configuration for one game variant.
type CrossingConfig struct {
	Playfield Playfield      `yaml:"playfield"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Round     RoundConfig    `yaml:"round"`
	Bonus     BonusConfig    `yaml:"bonus"`
}

// Playfield defines the grid the game is played on.
// Row 0 is the top of the screen; the goal band is rows [0, GoalRows).
type Playfield struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	CellSize float64 `yaml:"cell_size"` // Pixels per grid cell
	GoalRows int     `yaml:"goal_rows"` // Rows at the top that count as the goal
	Lanes    []int   `yaml:"lanes"`     // Row indices that carry traffic
}

// Width returns the playfield width in pixels.
func (p Playfield) Width() float64 {
	return float64(p.Cols) * p.CellSize
}

// Height returns the playfield height in pixels.
func (p Playfield) Height() float64 {
	return float64(p.Rows) * p.CellSize
}

// GoalLine returns the y coordinate a player must move above to reach the goal.
func (p Playfield) GoalLine() float64 {
	return float64(p.GoalRows) * p.CellSize
}

// PlayerConfig defines the player's hit box.
type PlayerConfig struct {
	Size float64 `yaml:"size"` // Square hit box edge, in pixels
}

// ObstacleConfig defines obstacle geometry and the difficulty curve inputs.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MinGap float64 `yaml:"min_gap"` // Minimum bumper-to-bumper gap within a lane

	BaseSpeed     float64 `yaml:"base_speed"`      // Pixels per tick at level 1
	SpeedPerLevel float64 `yaml:"speed_per_level"` // Added per level after the first
	SpeedJitter   float64 `yaml:"speed_jitter"`    // Random extra in [0, jitter)

	BaseSpacing     float64 `yaml:"base_spacing"`      // Front-to-front distance at level 1
	SpacingPerLevel float64 `yaml:"spacing_per_level"` // Removed per level after the first
	SpacingJitter   float64 `yaml:"spacing_jitter"`    // Random offset in [-jitter, +jitter]
	MinSpacing      float64 `yaml:"min_spacing"`       // Floor applied after the formula
}

// RoundConfig defines lives, level count and phase timings.
type RoundConfig struct {
	Lives          int `yaml:"lives"`
	MaxLevel       int `yaml:"max_level"`
	HitReactionMS  int `yaml:"hit_reaction_ms"`
	LevelClearedMS int `yaml:"level_cleared_ms"`
}

// HitReaction returns the post-collision pause length.
func (r RoundConfig) HitReaction() time.Duration {
	return time.Duration(r.HitReactionMS) * time.Millisecond
}

// LevelCleared returns how long the level-cleared banner stays up.
func (r RoundConfig) LevelCleared() time.Duration {
	return time.Duration(r.LevelClearedMS) * time.Millisecond
}

// BonusConfig defines the ornamental bonus board scene.
type BonusConfig struct {
	Ornaments    int     `yaml:"ornaments"`      // Number of roaming ornaments
	AvoidRadius  float64 `yaml:"avoid_radius"`   // Distance kept from the player, in pixels
	HopSeconds   float64 `yaml:"hop_seconds"`    // Duration of one ornament hop
	MaxTargetTry int     `yaml:"max_target_try"` // Attempts to find a target away from the player
}
