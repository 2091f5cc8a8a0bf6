package crossing

import (
	"math"
	"math/rand"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// ornamentColors cycles through festive colors for the bonus board.
var ornamentColors = []core.Color{
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
	core.ColorOrange,
	core.ColorBrightWhite,
}

// Ornament is a decorative entity that hops around the bonus board.
type Ornament struct {
	X, Y             float64 // Center in pixels
	TargetX, TargetY float64 // Where the current hop ends
	Color            core.Color

	tx, ty  *gween.Tween
	fleeing bool
}

// BonusBoard is the idle scene shown after the last level is cleared.
// Ornaments hop between random spots and keep away from the player.
type BonusBoard struct {
	cfg       config.BonusConfig
	pf        config.Playfield
	rng       *rand.Rand
	ornaments []Ornament
}

// NewBonusBoard creates an empty bonus board.
func NewBonusBoard(cfg config.BonusConfig, pf config.Playfield, rng *rand.Rand) *BonusBoard {
	return &BonusBoard{cfg: cfg, pf: pf, rng: rng}
}

// Start scatters the ornaments away from the player and sends each on its
// first hop.
func (b *BonusBoard) Start(player core.Box) {
	b.ornaments = b.ornaments[:0]
	for i := 0; i < b.cfg.Ornaments; i++ {
		x, y := b.pickSpot(player)
		o := Ornament{X: x, Y: y, Color: ornamentColors[i%len(ornamentColors)]}
		b.retarget(&o, player)
		b.ornaments = append(b.ornaments, o)
	}
}

// Stop removes all ornaments.
func (b *BonusBoard) Stop() {
	b.ornaments = b.ornaments[:0]
}

// Update advances every hop by dt. An ornament whose hop has finished, or
// that the player has come too close to, is sent somewhere else.
func (b *BonusBoard) Update(dt time.Duration, player core.Box) {
	sec := float32(dt.Seconds())
	for i := range b.ornaments {
		o := &b.ornaments[i]
		x, doneX := o.tx.Update(sec)
		y, doneY := o.ty.Update(sec)
		o.X, o.Y = float64(x), float64(y)

		near := b.tooClose(o.X, o.Y, player)
		switch {
		case near && !o.fleeing:
			b.retarget(o, player)
			o.fleeing = true
		case doneX && doneY:
			b.retarget(o, player)
		}
		if !near {
			o.fleeing = false
		}
	}
}

// Ornaments returns the current ornaments. The slice must not be modified.
func (b *BonusBoard) Ornaments() []Ornament {
	return b.ornaments
}

// retarget starts a new hop from the ornament's current position.
func (b *BonusBoard) retarget(o *Ornament, player core.Box) {
	o.TargetX, o.TargetY = b.pickSpot(player)
	hop := float32(b.cfg.HopSeconds)
	o.tx = gween.New(float32(o.X), float32(o.TargetX), hop, ease.InOutQuad)
	o.ty = gween.New(float32(o.Y), float32(o.TargetY), hop, ease.OutQuad)
}

// pickSpot draws random points until one is far enough from the player.
// If none is found it falls back to the field corner farthest from the
// player, which is always the best available choice.
func (b *BonusBoard) pickSpot(player core.Box) (float64, float64) {
	w, h := b.pf.Width(), b.pf.Height()
	for try := 0; try < b.cfg.MaxTargetTry; try++ {
		x, y := b.rng.Float64()*w, b.rng.Float64()*h
		if !b.tooClose(x, y, player) {
			return x, y
		}
	}

	px, py := player.Center()
	x, y := 0.0, 0.0
	if px < w/2 {
		x = w
	}
	if py < h/2 {
		y = h
	}
	return x, y
}

func (b *BonusBoard) tooClose(x, y float64, player core.Box) bool {
	px, py := player.Center()
	return math.Hypot(x-px, y-py) < b.cfg.AvoidRadius
}
