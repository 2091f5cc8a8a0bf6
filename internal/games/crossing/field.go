package crossing

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Obstacle is a single car. Speed and direction are shared by every car in
// the same lane.
type Obstacle struct {
	Lane  int     // Playfield row of the lane
	X, Y  float64 // Top-left corner in pixels
	W, H  float64
	Speed float64 // Pixels per tick
	Dir   int     // +1 moves right, -1 moves left
	Color core.Color
}

// Box returns the obstacle's hit box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// LaneDirection returns the travel direction for a lane row.
// Even rows drive right, odd rows drive left.
func LaneDirection(row int) int {
	if row%2 == 0 {
		return 1
	}
	return -1
}

// lane groups the indices of the obstacles that share one row.
type lane struct {
	row     int
	dir     int
	speed   float64
	spacing float64
	members []int
}

// Field owns every obstacle of the current level and moves them each tick.
//
// Horizontally each lane is a ring of length fieldWidth+obstacleWidth: an
// obstacle lives in [-W, fieldWidth) and wraps from one end to the other, so
// distances along a lane are measured modulo that ring.
type Field struct {
	pf        config.Playfield
	ob        config.ObstacleConfig
	curve     config.LevelCurve
	rng       *rand.Rand
	obstacles []Obstacle
	lanes     []lane
	order     []int // scratch buffer for Advance

	suppressed int // moves held back by lane spacing, for diagnostics
}

// NewField creates an empty field. Call Regenerate to populate it.
func NewField(cfg config.CrossingConfig, rng *rand.Rand) *Field {
	return &Field{
		pf:        cfg.Playfield,
		ob:        cfg.Obstacles,
		curve:     config.NewLevelCurve(cfg.Obstacles),
		rng:       rng,
		obstacles: make([]Obstacle, 0, 64),
	}
}

// Regenerate discards all obstacles and builds the set for a level.
// Each lane gets its own speed and spacing draw; cars start spread across
// the whole lane from a random offset so traffic is already flowing on the
// first tick.
func (f *Field) Regenerate(level int) {
	f.obstacles = f.obstacles[:0]
	f.lanes = f.lanes[:0]
	f.suppressed = 0

	width := f.pf.Width()
	cell := f.pf.CellSize

	for i, row := range f.pf.Lanes {
		speed := f.curve.Speed(level, f.rng.Float64())
		spacing := f.curve.Spacing(level, f.rng.Float64())
		count := f.curve.PerLane(spacing, width)
		offset := f.rng.Float64() * spacing

		ln := lane{
			row:     row,
			dir:     LaneDirection(row),
			speed:   speed,
			spacing: spacing,
			members: make([]int, 0, count),
		}
		color := core.VehiclePalette[i%len(core.VehiclePalette)]
		y := float64(row)*cell + (cell-f.ob.Height)/2

		for k := 0; k < count; k++ {
			ln.members = append(ln.members, len(f.obstacles))
			f.obstacles = append(f.obstacles, Obstacle{
				Lane:  row,
				X:     offset + float64(k)*spacing - f.ob.Width,
				Y:     y,
				W:     f.ob.Width,
				H:     f.ob.Height,
				Speed: speed,
				Dir:   ln.dir,
				Color: color,
			})
		}
		f.lanes = append(f.lanes, ln)
	}
}

// Clear removes every obstacle.
func (f *Field) Clear() {
	f.obstacles = f.obstacles[:0]
	f.lanes = f.lanes[:0]
}

// Advance moves every obstacle by one tick.
//
// Within a lane the leading car moves first, so each car measures its gap
// against where the car ahead already is this tick. A car whose gap would
// shrink below width+minGap stays put for this tick.
func (f *Field) Advance() {
	minFront := f.ob.Width + f.ob.MinGap

	for li := range f.lanes {
		ln := &f.lanes[li]
		f.order = append(f.order[:0], ln.members...)
		sort.Slice(f.order, func(a, b int) bool {
			oa, oc := f.obstacles[f.order[a]], f.obstacles[f.order[b]]
			return oa.X*float64(ln.dir) > oc.X*float64(ln.dir)
		})

		for _, i := range f.order {
			o := &f.obstacles[i]
			if gap, ok := f.nearestAhead(i, ln.members); ok && gap-o.Speed < minFront {
				f.suppressed++
				continue
			}
			o.X += o.Speed * float64(o.Dir)
			f.wrap(o)
		}
	}
}

// nearestAhead returns the front-to-front distance from obstacle i to the
// closest other obstacle in front of it, along its direction of travel.
func (f *Field) nearestAhead(i int, members []int) (float64, bool) {
	o := f.obstacles[i]
	best, found := 0.0, false
	for _, j := range members {
		if j == i {
			continue
		}
		d := f.ringDistance(o, f.obstacles[j])
		if !found || d < best {
			best, found = d, true
		}
	}
	return best, found
}

// ringDistance is how far other is ahead of o, in [0, ring).
func (f *Field) ringDistance(o, other Obstacle) float64 {
	ring := f.pf.Width() + o.W
	d := math.Mod(float64(o.Dir)*(other.X-o.X), ring)
	if d < 0 {
		d += ring
	}
	return d
}

// wrap moves an obstacle that has fully left the field on its leading edge
// to just outside the trailing edge.
func (f *Field) wrap(o *Obstacle) {
	width := f.pf.Width()
	ring := width + o.W
	switch {
	case o.Dir > 0 && o.X >= width:
		o.X -= ring
	case o.Dir < 0 && o.X < -o.W:
		o.X += ring
	}
}

// FirstHit returns the first obstacle whose hit box overlaps box.
func (f *Field) FirstHit(box core.Box) (Obstacle, bool) {
	for _, o := range f.obstacles {
		if o.Box().Intersects(box) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// CollidesWith reports whether box overlaps any obstacle.
func (f *Field) CollidesWith(box core.Box) bool {
	_, hit := f.FirstHit(box)
	return hit
}

// Obstacles returns the live obstacles. The slice is owned by the field and
// must not be modified.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// LaneSpacing returns the spacing drawn for a lane row at the last
// regeneration, or 0 if the row carries no traffic.
func (f *Field) LaneSpacing(row int) float64 {
	for _, ln := range f.lanes {
		if ln.row == row {
			return ln.spacing
		}
	}
	return 0
}

// Suppressed returns how many moves were held back since the last regeneration.
func (f *Field) Suppressed() int {
	return f.suppressed
}
