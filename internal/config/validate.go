package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "config: invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate rejects configurations the simulation cannot run with.
// The only clamps applied later are gameplay floors (min spacing, min gap),
// so anything else that is out of range has to fail here.
func (c CrossingConfig) Validate() error {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	pf := c.Playfield
	if pf.Rows <= 0 {
		fail("playfield.rows must be positive, got %d", pf.Rows)
	}
	if pf.Cols <= 0 {
		fail("playfield.cols must be positive, got %d", pf.Cols)
	}
	if pf.CellSize <= 0 {
		fail("playfield.cell_size must be positive, got %g", pf.CellSize)
	}
	if pf.GoalRows <= 0 || pf.GoalRows >= pf.Rows {
		fail("playfield.goal_rows must be in [1, rows), got %d", pf.GoalRows)
	}
	if len(pf.Lanes) == 0 {
		fail("playfield.lanes must name at least one lane")
	}
	seen := make(map[int]bool, len(pf.Lanes))
	for _, lane := range pf.Lanes {
		// The last row is the start row; lanes live strictly between goal and start.
		if lane < pf.GoalRows || lane >= pf.Rows-1 {
			fail("playfield.lanes: row %d is outside the road band [%d, %d)", lane, pf.GoalRows, pf.Rows-1)
		}
		if seen[lane] {
			fail("playfield.lanes: row %d listed twice", lane)
		}
		seen[lane] = true
	}

	if c.Player.Size <= 0 || c.Player.Size > pf.CellSize {
		fail("player.size must be in (0, cell_size], got %g", c.Player.Size)
	}

	ob := c.Obstacles
	if ob.Width <= 0 || ob.Height <= 0 {
		fail("obstacles.width and obstacles.height must be positive, got %gx%g", ob.Width, ob.Height)
	}
	if ob.Height > pf.CellSize {
		fail("obstacles.height %g does not fit in a %g pixel lane", ob.Height, pf.CellSize)
	}
	if ob.MinGap < 0 {
		fail("obstacles.min_gap must not be negative, got %g", ob.MinGap)
	}
	if ob.BaseSpeed <= 0 {
		fail("obstacles.base_speed must be positive, got %g", ob.BaseSpeed)
	}
	if ob.SpeedPerLevel < 0 || ob.SpeedJitter < 0 {
		fail("obstacles.speed_per_level and obstacles.speed_jitter must not be negative")
	}
	if ob.BaseSpacing <= 0 {
		fail("obstacles.base_spacing must be positive, got %g", ob.BaseSpacing)
	}
	if ob.SpacingPerLevel < 0 || ob.SpacingJitter < 0 {
		fail("obstacles.spacing_per_level and obstacles.spacing_jitter must not be negative")
	}
	if ob.MinSpacing < ob.Width+ob.MinGap {
		fail("obstacles.min_spacing %g is below width + min_gap (%g)", ob.MinSpacing, ob.Width+ob.MinGap)
	}
	if pf.Width() > 0 && ob.MinSpacing > pf.Width() {
		fail("obstacles.min_spacing %g is wider than the playfield (%g)", ob.MinSpacing, pf.Width())
	}

	rd := c.Round
	if rd.Lives < 1 {
		fail("round.lives must be at least 1, got %d", rd.Lives)
	}
	if rd.MaxLevel < 1 {
		fail("round.max_level must be at least 1, got %d", rd.MaxLevel)
	}
	if rd.HitReactionMS <= 0 {
		fail("round.hit_reaction_ms must be positive, got %d", rd.HitReactionMS)
	}
	if rd.LevelClearedMS <= 0 {
		fail("round.level_cleared_ms must be positive, got %d", rd.LevelClearedMS)
	}

	bn := c.Bonus
	if bn.Ornaments < 0 {
		fail("bonus.ornaments must not be negative, got %d", bn.Ornaments)
	}
	if bn.Ornaments > 0 {
		if bn.AvoidRadius < 0 {
			fail("bonus.avoid_radius must not be negative, got %g", bn.AvoidRadius)
		}
		if bn.HopSeconds <= 0 {
			fail("bonus.hop_seconds must be positive, got %g", bn.HopSeconds)
		}
		if bn.MaxTargetTry < 1 {
			fail("bonus.max_target_try must be at least 1, got %d", bn.MaxTargetTry)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
