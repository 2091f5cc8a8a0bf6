package crossing

import (
	"math"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Direction is a single hop direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// delta returns the hop offset in cells.
func (d Direction) delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Pending is a single-slot register for one directional press.
// The input side fills it, the controller empties it, and whatever is left
// at the end of a tick is dropped. Presses never queue or repeat.
type Pending struct {
	dir Direction
}

// Press stores a direction unless one is already waiting this tick.
// Reports whether the press was accepted.
func (p *Pending) Press(d Direction) bool {
	if d == DirNone || p.dir != DirNone {
		return false
	}
	p.dir = d
	return true
}

// Take consumes the waiting direction.
func (p *Pending) Take() (Direction, bool) {
	d := p.dir
	p.dir = DirNone
	return d, d != DirNone
}

// Peek returns the waiting direction without consuming it.
func (p *Pending) Peek() Direction {
	return p.dir
}

// Expire drops an unconsumed press.
func (p *Pending) Expire() {
	p.dir = DirNone
}

// Player is the frog: a square hit box that hops one cell at a time.
type Player struct {
	X, Y float64 // Top-left corner in pixels

	size  float64
	pf    config.Playfield
	lanes map[int]bool
}

// NewPlayer creates a player at the start cell.
func NewPlayer(pf config.Playfield, size float64) *Player {
	lanes := make(map[int]bool, len(pf.Lanes))
	for _, row := range pf.Lanes {
		lanes[row] = true
	}
	p := &Player{size: size, pf: pf, lanes: lanes}
	p.ResetToStart()
	return p
}

// Box returns the player's hit box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.size, p.size)
}

// StartPosition returns the bottom-center start cell, with the hit box
// centered inside it.
func (p *Player) StartPosition() (float64, float64) {
	cell := p.pf.CellSize
	inset := (cell - p.size) / 2
	return float64(p.pf.Cols/2)*cell + inset, float64(p.pf.Rows-1)*cell + inset
}

// ResetToStart puts the player back on the start cell.
func (p *Player) ResetToStart() {
	p.X, p.Y = p.StartPosition()
}

// ApplyPending consumes the pending press, if any, and hops.
// Reports whether a press was consumed.
func (p *Player) ApplyPending(pending *Pending) bool {
	d, ok := pending.Take()
	if !ok {
		return false
	}
	p.ApplyMove(d)
	return true
}

// ApplyMove hops exactly one cell, then clamps to the playfield and lines
// the hit box up with the lane it landed in.
func (p *Player) ApplyMove(d Direction) {
	dx, dy := d.delta()
	p.X += float64(dx) * p.pf.CellSize
	p.Y += float64(dy) * p.pf.CellSize
	p.clamp()
	p.snapToLane()
}

func (p *Player) clamp() {
	p.X = core.ClampF(p.X, 0, p.pf.Width()-p.size)
	p.Y = core.ClampF(p.Y, 0, p.pf.Height()-p.size)
}

// snapToLane centers the player vertically on a lane when its center is in
// one. Obstacles are centered the same way, so hit boxes line up.
func (p *Player) snapToLane() {
	row := p.Row()
	if !p.lanes[row] {
		return
	}
	p.Y = float64(row)*p.pf.CellSize + p.pf.CellSize/2 - p.size/2
}

// Row returns the playfield row containing the player's vertical center.
func (p *Player) Row() int {
	_, cy := p.Box().Center()
	return int(math.Floor(cy / p.pf.CellSize))
}

// ReachedGoal reports whether the player is above the goal line.
func (p *Player) ReachedGoal() bool {
	return p.Y < p.pf.GoalLine()
}
