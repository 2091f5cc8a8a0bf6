package crossing

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

func newTestPlayer() *Player {
	cfg := config.DefaultCrossingConfig()
	return NewPlayer(cfg.Playfield, cfg.Player.Size)
}

func TestPlayerStartsBottomCenter(t *testing.T) {
	p := newTestPlayer()
	if p.X != 255 || p.Y != 555 {
		t.Fatalf("start = (%v,%v), want (255,555)", p.X, p.Y)
	}
	if p.Row() != 11 {
		t.Errorf("start row = %d, want 11", p.Row())
	}
}

func TestPlayerResetIdempotent(t *testing.T) {
	p := newTestPlayer()
	p.ApplyMove(DirUp)
	p.ApplyMove(DirLeft)

	p.ResetToStart()
	x, y := p.X, p.Y
	p.ResetToStart()
	if p.X != x || p.Y != y {
		t.Errorf("second reset moved player: (%v,%v) -> (%v,%v)", x, y, p.X, p.Y)
	}
}

func TestPlayerHopsOneCell(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy float64
	}{
		{DirLeft, -50, 0},
		{DirRight, 50, 0},
		{DirUp, 0, -50},
		{DirNone, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			p := newTestPlayer()
			x, y := p.X, p.Y
			p.ApplyMove(tt.dir)
			if p.X-x != tt.dx || p.Y-y != tt.dy {
				t.Errorf("moved by (%v,%v), want (%v,%v)", p.X-x, p.Y-y, tt.dx, tt.dy)
			}
		})
	}
}

func TestPlayerSnapsToLaneCenter(t *testing.T) {
	p := newTestPlayer()
	p.ApplyMove(DirUp) // row 10 is a verge
	p.ApplyMove(DirUp) // row 9 is a lane

	if p.Row() != 9 {
		t.Fatalf("row = %d, want 9", p.Row())
	}
	// Lane center is 9*50+25; hit box is 40 tall.
	if p.Y != 455 {
		t.Errorf("y = %v, want 455", p.Y)
	}
	_, cy := p.Box().Center()
	if cy != 475 {
		t.Errorf("center y = %v, want lane center 475", cy)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	p := newTestPlayer()
	pf := p.pf
	rng := rand.New(rand.NewSource(3))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for i := 0; i < 5000; i++ {
		p.ApplyMove(dirs[rng.Intn(len(dirs))])
		b := p.Box()
		if b.X < 0 || b.Y < 0 || b.Right() > pf.Width() || b.Bottom() > pf.Height() {
			t.Fatalf("move %d: box %+v outside %vx%v", i, b, pf.Width(), pf.Height())
		}
	}

	// Pushing into every wall keeps the player pinned.
	for i := 0; i < 20; i++ {
		p.ApplyMove(DirLeft)
		p.ApplyMove(DirUp)
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("top-left corner = (%v,%v), want (0,0)", p.X, p.Y)
	}
	if !p.ReachedGoal() {
		t.Errorf("top row should count as goal")
	}
}

func TestPendingSingleSlot(t *testing.T) {
	var p Pending

	if p.Press(DirNone) {
		t.Errorf("DirNone accepted")
	}
	if !p.Press(DirUp) {
		t.Fatalf("first press rejected")
	}
	if p.Press(DirLeft) {
		t.Errorf("second press in the same tick accepted")
	}

	d, ok := p.Take()
	if !ok || d != DirUp {
		t.Fatalf("Take() = %v,%v, want up,true", d, ok)
	}
	if _, ok := p.Take(); ok {
		t.Errorf("press consumed twice")
	}

	p.Press(DirRight)
	p.Expire()
	if p.Peek() != DirNone {
		t.Errorf("Expire left %v pending", p.Peek())
	}
}

func TestApplyPendingConsumes(t *testing.T) {
	p := newTestPlayer()
	var pending Pending

	if p.ApplyPending(&pending) {
		t.Errorf("empty register applied a move")
	}
	pending.Press(DirRight)
	x := p.X
	if !p.ApplyPending(&pending) || p.X != x+50 {
		t.Errorf("pending hop not applied")
	}
	if p.ApplyPending(&pending) {
		t.Errorf("pending hop applied twice")
	}
}
