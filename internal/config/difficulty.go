package config

import "math"

// LevelCurve turns a level number into obstacle speed and spacing.
// The only inputs are the level and a random draw supplied by the caller,
// so the same level always yields the same range of values.
type LevelCurve struct {
	cfg ObstacleConfig
}

// NewLevelCurve creates a curve from the obstacle configuration.
func NewLevelCurve(cfg ObstacleConfig) LevelCurve {
	return LevelCurve{cfg: cfg}
}

// Speed returns the lane speed for a level.
// u is a uniform draw in [0, 1) that scales the speed jitter.
func (c LevelCurve) Speed(level int, u float64) float64 {
	steps := float64(max(level, 1) - 1)
	return c.cfg.BaseSpeed + c.cfg.SpeedPerLevel*steps + clampF(u, 0, 1)*c.cfg.SpeedJitter
}

// Spacing returns the front-to-front obstacle distance for a level.
// u is a uniform draw in [0, 1), mapped to a jitter in [-jitter, +jitter].
// The result never drops below MinSpacing, even when the formula goes
// negative at high levels.
func (c LevelCurve) Spacing(level int, u float64) float64 {
	steps := float64(max(level, 1) - 1)
	jitter := (clampF(u, 0, 1)*2 - 1) * c.cfg.SpacingJitter
	spacing := c.cfg.BaseSpacing - c.cfg.SpacingPerLevel*steps + jitter
	return math.Max(c.cfg.MinSpacing, spacing)
}

// SpeedRange returns the lowest and highest speed a level can produce.
func (c LevelCurve) SpeedRange(level int) (float64, float64) {
	return c.Speed(level, 0), c.Speed(level, 1)
}

// SpacingRange returns the lowest and highest spacing a level can produce.
func (c LevelCurve) SpacingRange(level int) (float64, float64) {
	return c.Spacing(level, 0), c.Spacing(level, 1)
}

// PerLane returns how many obstacles fit in a lane of the given width.
// Always at least one.
func (c LevelCurve) PerLane(spacing, fieldWidth float64) int {
	if spacing <= 0 {
		spacing = c.cfg.MinSpacing
	}
	return max(1, int(math.Floor(fieldWidth/spacing)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// LevelStats summarises what one level can produce.
type LevelStats struct {
	Level                  int
	SpeedMin, SpeedMax     float64 // Pixels per tick
	SpacingMin, SpacingMax float64 // Front-to-front, pixels
	CarsMin, CarsMax       int     // Obstacles per lane
}

// LevelTable returns the stats for every level of a configuration.
func (c CrossingConfig) LevelTable() []LevelStats {
	curve := NewLevelCurve(c.Obstacles)
	width := c.Playfield.Width()

	rows := make([]LevelStats, 0, c.Round.MaxLevel)
	for level := 1; level <= c.Round.MaxLevel; level++ {
		speedMin, speedMax := curve.SpeedRange(level)
		spacingMin, spacingMax := curve.SpacingRange(level)
		rows = append(rows, LevelStats{
			Level:      level,
			SpeedMin:   speedMin,
			SpeedMax:   speedMax,
			SpacingMin: spacingMin,
			SpacingMax: spacingMax,
			// Wider spacing means fewer cars.
			CarsMin: curve.PerLane(spacingMax, width),
			CarsMax: curve.PerLane(spacingMin, width),
		})
	}
	return rows
}
