package crossing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

func newTestField(cfg config.CrossingConfig, seed int64) *Field {
	return NewField(cfg, rand.New(rand.NewSource(seed)))
}

// checkSpacing fails if any car is closer to the car ahead than width+minGap.
func checkSpacing(t *testing.T, f *Field, tick int) {
	t.Helper()
	minFront := f.ob.Width + f.ob.MinGap
	for _, ln := range f.lanes {
		for _, i := range ln.members {
			if d, ok := f.nearestAhead(i, ln.members); ok && d < minFront-1e-9 {
				t.Fatalf("tick %d lane %d: front distance %.3f below %.1f", tick, ln.row, d, minFront)
			}
		}
	}
}

func TestRegenerateLanes(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	f := newTestField(cfg, 42)
	f.Regenerate(1)

	perLane := make(map[int]int)
	for _, o := range f.Obstacles() {
		perLane[o.Lane]++
		if o.Dir != LaneDirection(o.Lane) {
			t.Errorf("lane %d car moves %d, want %d", o.Lane, o.Dir, LaneDirection(o.Lane))
		}
		wantY := float64(o.Lane)*cfg.Playfield.CellSize + (cfg.Playfield.CellSize-o.H)/2
		if o.Y != wantY {
			t.Errorf("lane %d car at y=%v, want %v", o.Lane, o.Y, wantY)
		}
	}

	curve := config.NewLevelCurve(cfg.Obstacles)
	for _, row := range cfg.Playfield.Lanes {
		want := curve.PerLane(f.LaneSpacing(row), cfg.Playfield.Width())
		if perLane[row] != want {
			t.Errorf("lane %d has %d cars, want %d", row, perLane[row], want)
		}
	}
	if f.LaneSpacing(0) != 0 {
		t.Errorf("goal row reported a spacing")
	}
}

func TestLaneDirection(t *testing.T) {
	if LaneDirection(2) != 1 || LaneDirection(3) != -1 {
		t.Errorf("even rows must drive right and odd rows left")
	}
}

func TestRegenerateSharesLaneSpeed(t *testing.T) {
	f := newTestField(config.DefaultCrossingConfig(), 5)
	f.Regenerate(4)

	speeds := make(map[int]float64)
	for _, o := range f.Obstacles() {
		if s, ok := speeds[o.Lane]; ok && s != o.Speed {
			t.Errorf("lane %d mixes speeds %v and %v", o.Lane, s, o.Speed)
		}
		speeds[o.Lane] = o.Speed
	}
}

func TestSpacingHoldsOverManyTicks(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	width := cfg.Playfield.Width()

	for _, seed := range []int64{1, 2, 3} {
		for level := 1; level <= cfg.Round.MaxLevel; level += 3 {
			f := newTestField(cfg, seed)
			f.Regenerate(level)
			checkSpacing(t, f, 0)

			for tick := 1; tick <= 3000; tick++ {
				f.Advance()
				checkSpacing(t, f, tick)
				for _, o := range f.Obstacles() {
					if o.X < -o.W || o.X >= width {
						t.Fatalf("seed %d level %d tick %d: car at x=%v left its ring", seed, level, tick, o.X)
					}
				}
			}
		}
	}
}

func TestSpacingUnderUnevenSpeeds(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	f := newTestField(cfg, 9)
	f.Regenerate(1)

	// Give each car in every lane a different speed so followers catch up.
	for _, ln := range f.lanes {
		for k, i := range ln.members {
			f.obstacles[i].Speed = 1 + float64(k)*1.5
		}
	}
	for tick := 1; tick <= 2000; tick++ {
		f.Advance()
		checkSpacing(t, f, tick)
	}
	if f.Suppressed() == 0 {
		t.Errorf("expected some moves to be held back")
	}
}

func TestSingleCarLaneNeverSuppressed(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	cfg.Obstacles.BaseSpacing = cfg.Playfield.Width()
	cfg.Obstacles.MinSpacing = cfg.Playfield.Width()
	cfg.Obstacles.SpacingJitter = 0
	cfg.Obstacles.SpacingPerLevel = 0

	f := newTestField(cfg, 1)
	f.Regenerate(1)
	if len(f.Obstacles()) != len(cfg.Playfield.Lanes) {
		t.Fatalf("got %d cars, want one per lane", len(f.Obstacles()))
	}

	for tick := 0; tick < 1000; tick++ {
		f.Advance()
	}
	if f.Suppressed() != 0 {
		t.Errorf("single-car lanes suppressed %d moves", f.Suppressed())
	}
}

func TestWrapKeepsLaneAndSpeed(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	f := newTestField(cfg, 1)
	width := cfg.Playfield.Width()

	tests := []struct {
		name  string
		start Obstacle
		wantX float64
	}{
		{"rightward", Obstacle{Lane: 2, X: width - 1, W: 50, H: 40, Speed: 3, Dir: 1}, width + 2 - (width + 50)},
		{"leftward", Obstacle{Lane: 3, X: -49, W: 50, H: 40, Speed: 3, Dir: -1}, -52 + (width + 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.Clear()
			f.obstacles = append(f.obstacles, tt.start)
			f.lanes = append(f.lanes, lane{row: tt.start.Lane, dir: tt.start.Dir, members: []int{0}})

			f.Advance()
			got := f.Obstacles()[0]
			if math.Abs(got.X-tt.wantX) > 1e-9 {
				t.Errorf("x = %v, want %v", got.X, tt.wantX)
			}
			if got.Lane != tt.start.Lane || got.Speed != tt.start.Speed || got.Dir != tt.start.Dir {
				t.Errorf("wrap changed lane/speed/dir: %+v", got)
			}
		})
	}
}

func TestCollisionStrictAndSymmetric(t *testing.T) {
	car := Obstacle{X: 100, Y: 100, W: 50, H: 40}

	tests := []struct {
		name string
		box  core.Box
		want bool
	}{
		{"overlap", core.NewBox(120, 110, 40, 40), true},
		{"inside", core.NewBox(105, 105, 10, 10), true},
		{"touch right edge", core.NewBox(150, 100, 40, 40), false},
		{"touch left edge", core.NewBox(60, 100, 40, 40), false},
		{"touch bottom edge", core.NewBox(100, 140, 40, 40), false},
		{"touch top edge", core.NewBox(100, 60, 40, 40), false},
		{"touch corner", core.NewBox(150, 140, 10, 10), false},
		{"far away", core.NewBox(300, 300, 40, 40), false},
	}

	f := newTestField(config.DefaultCrossingConfig(), 1)
	f.obstacles = append(f.obstacles, car)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.CollidesWith(tt.box); got != tt.want {
				t.Errorf("CollidesWith = %v, want %v", got, tt.want)
			}
			if a, b := car.Box().Intersects(tt.box), tt.box.Intersects(car.Box()); a != b {
				t.Errorf("intersection not symmetric: %v vs %v", a, b)
			}
		})
	}
}

func TestRegenerateDeterministic(t *testing.T) {
	cfg := config.DefaultCrossingConfig()
	a := newTestField(cfg, 77)
	b := newTestField(cfg, 77)
	a.Regenerate(6)
	b.Regenerate(6)

	if len(a.Obstacles()) != len(b.Obstacles()) {
		t.Fatalf("counts differ: %d vs %d", len(a.Obstacles()), len(b.Obstacles()))
	}
	for i := range a.Obstacles() {
		if a.Obstacles()[i] != b.Obstacles()[i] {
			t.Fatalf("car %d differs: %+v vs %+v", i, a.Obstacles()[i], b.Obstacles()[i])
		}
	}
}
