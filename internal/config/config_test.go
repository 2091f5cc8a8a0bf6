package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	tests := []struct {
		name     string
		yaml     []byte
		expected CrossingConfig
	}{
		{"crossing", GetDefaultYAML("crossing"), DefaultCrossingConfig()},
		{"crossing_classic", GetDefaultYAML("crossing_classic"), ClassicCrossingConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse(tc.yaml)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if !reflect.DeepEqual(cfg, tc.expected) {
				t.Errorf("embedded YAML differs from hardcoded default:\n got %+v\nwant %+v", cfg, tc.expected)
			}
		})
	}
}

func TestUnknownVariantHasNoYAML(t *testing.T) {
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown variant should have no embedded YAML")
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CrossingConfig)
		problem string
	}{
		{"zero lanes", func(c *CrossingConfig) { c.Playfield.Lanes = nil }, "at least one lane"},
		{"lane in goal band", func(c *CrossingConfig) { c.Playfield.Lanes = []int{0} }, "outside the road band"},
		{"lane on start row", func(c *CrossingConfig) { c.Playfield.Lanes = []int{11} }, "outside the road band"},
		{"duplicate lane", func(c *CrossingConfig) { c.Playfield.Lanes = []int{3, 3} }, "listed twice"},
		{"zero cell size", func(c *CrossingConfig) { c.Playfield.CellSize = 0 }, "cell_size"},
		{"no rows", func(c *CrossingConfig) { c.Playfield.Rows = 0 }, "rows"},
		{"player too big", func(c *CrossingConfig) { c.Player.Size = 60 }, "player.size"},
		{"zero speed", func(c *CrossingConfig) { c.Obstacles.BaseSpeed = 0 }, "base_speed"},
		{"negative spacing", func(c *CrossingConfig) { c.Obstacles.BaseSpacing = -5 }, "base_spacing"},
		{"min spacing below car", func(c *CrossingConfig) { c.Obstacles.MinSpacing = 55 }, "min_spacing"},
		{"negative gap", func(c *CrossingConfig) { c.Obstacles.MinGap = -1 }, "min_gap"},
		{"no lives", func(c *CrossingConfig) { c.Round.Lives = 0 }, "round.lives"},
		{"no levels", func(c *CrossingConfig) { c.Round.MaxLevel = 0 }, "max_level"},
		{"zero hit reaction", func(c *CrossingConfig) { c.Round.HitReactionMS = 0 }, "hit_reaction_ms"},
		{"zero hop", func(c *CrossingConfig) { c.Bonus.HopSeconds = 0 }, "hop_seconds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCrossingConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			var invalid *ValidationError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tc.problem) {
				t.Errorf("error %q should mention %q", err, tc.problem)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultCrossingConfig()
	cfg.Round.Lives = 0
	cfg.Round.MaxLevel = 0

	var invalid *ValidationError
	if !errors.As(cfg.Validate(), &invalid) {
		t.Fatal("expected *ValidationError")
	}
	if len(invalid.Problems) != 2 {
		t.Errorf("expected 2 problems, got %d: %v", len(invalid.Problems), invalid.Problems)
	}
}

func TestLoadCrossingCustomPath(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	data := GetDefaultYAML("crossing")
	data = []byte(strings.Replace(string(data), "max_level: 10", "max_level: 4", 1))
	if err := os.WriteFile(good, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCrossing(good)
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if cfg.Round.MaxLevel != 4 {
		t.Errorf("MaxLevel = %d, expected 4", cfg.Round.MaxLevel)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("playfield:\n  lanes: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCrossing(bad); err == nil {
		t.Error("LoadCrossing() should reject an invalid file")
	}

	if _, err := LoadCrossing(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadCrossing() should fail for a missing custom path")
	}
}

func TestLoadClassic(t *testing.T) {
	cfg, err := LoadClassic()
	if err != nil {
		t.Fatalf("LoadClassic() failed: %v", err)
	}
	if cfg.Round.MaxLevel != 1 {
		t.Errorf("classic should have a single level, got %d", cfg.Round.MaxLevel)
	}
	curve := NewLevelCurve(cfg.Obstacles)
	if n := curve.PerLane(curve.Spacing(1, 0.5), cfg.Playfield.Width()); n != 3 {
		t.Errorf("classic should put 3 cars in a lane, got %d", n)
	}
}

func TestLevelCurveMonotonic(t *testing.T) {
	curve := NewLevelCurve(DefaultCrossingConfig().Obstacles)

	prevSpeed, prevSpacing := 0.0, 1e9
	for level := 1; level <= 10; level++ {
		speed := curve.Speed(level, 0.5)
		spacing := curve.Spacing(level, 0.5)
		if speed <= prevSpeed {
			t.Errorf("level %d: speed %v should exceed %v", level, speed, prevSpeed)
		}
		if spacing > prevSpacing {
			t.Errorf("level %d: spacing %v should not exceed %v", level, spacing, prevSpacing)
		}
		prevSpeed, prevSpacing = speed, spacing
	}
}

func TestLevelCurveSpacingFloor(t *testing.T) {
	ob := DefaultCrossingConfig().Obstacles
	curve := NewLevelCurve(ob)

	// Far past the point where the formula goes negative
	if got := curve.Spacing(1000, 0); got != ob.MinSpacing {
		t.Errorf("Spacing() = %v, expected floor %v", got, ob.MinSpacing)
	}
	if got := curve.PerLane(0, 500); got != int(500/ob.MinSpacing) {
		t.Errorf("PerLane(0) = %d, expected spacing to fall back to the floor", got)
	}
	if got := curve.PerLane(900, 500); got != 1 {
		t.Errorf("PerLane() should be at least 1, got %d", got)
	}
}

func TestLevelCurveRanges(t *testing.T) {
	ob := DefaultCrossingConfig().Obstacles
	curve := NewLevelCurve(ob)

	lo, hi := curve.SpeedRange(1)
	if lo != ob.BaseSpeed || hi != ob.BaseSpeed+ob.SpeedJitter {
		t.Errorf("SpeedRange(1) = [%v, %v]", lo, hi)
	}
	lo, hi = curve.SpacingRange(1)
	if lo != ob.BaseSpacing-ob.SpacingJitter || hi != ob.BaseSpacing+ob.SpacingJitter {
		t.Errorf("SpacingRange(1) = [%v, %v]", lo, hi)
	}
}

func TestLevelTable(t *testing.T) {
	cfg := DefaultCrossingConfig()
	rows := cfg.LevelTable()
	if len(rows) != cfg.Round.MaxLevel {
		t.Fatalf("rows = %d, want %d", len(rows), cfg.Round.MaxLevel)
	}

	first := rows[0]
	if first.Level != 1 || first.SpeedMin != 1.5 || first.SpeedMax != 2.5 {
		t.Errorf("level 1 speed = [%v,%v], want [1.5,2.5]", first.SpeedMin, first.SpeedMax)
	}
	if first.SpacingMin != 200 || first.SpacingMax != 240 {
		t.Errorf("level 1 spacing = [%v,%v], want [200,240]", first.SpacingMin, first.SpacingMax)
	}
	if first.CarsMin != 2 || first.CarsMax != 2 {
		t.Errorf("level 1 cars = [%d,%d], want [2,2]", first.CarsMin, first.CarsMax)
	}

	for i := 1; i < len(rows); i++ {
		if rows[i].CarsMax < rows[i-1].CarsMax {
			t.Errorf("level %d has fewer cars than level %d", rows[i].Level, rows[i-1].Level)
		}
	}
}
