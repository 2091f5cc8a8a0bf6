package crossing

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// maxHits bounds the collision history kept for visual effects.
const maxHits = 32

// Phase is the round's current mode of play.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseHitReaction
	PhaseLevelCleared
	PhaseGameOver
	PhaseBonusBoard
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseHitReaction:
		return "hit_reaction"
	case PhaseLevelCleared:
		return "level_cleared"
	case PhaseGameOver:
		return "game_over"
	case PhaseBonusBoard:
		return "bonus_board"
	default:
		return "unknown"
	}
}

// Controls are the non-directional signals for one tick.
type Controls struct {
	Continue bool // Skip the level-cleared banner
	Restart  bool // Start over after game over or the bonus board
}

// HitMark records where and when the player was hit.
type HitMark struct {
	X, Y  float64 // Center of the overlap between player and car
	Level int
	At    time.Duration
}

// Round owns the whole simulation: the obstacle field, the player, lives,
// level and phase. Nothing else mutates round state.
type Round struct {
	cfg    config.CrossingConfig
	field  *Field
	player *Player
	bonus  *BonusBoard
	logger *log.Logger

	pending  Pending
	lives    int
	level    int
	phase    Phase
	afterHit Phase         // Phase to enter when the hit reaction ends
	deadline time.Duration // When the current timed phase ends
	now      time.Duration
	hits     []HitMark
}

// NewRound creates a round at level 1 with full lives.
// cfg must already be validated. A nil logger discards output.
func NewRound(cfg config.CrossingConfig, seed int64, logger *log.Logger) *Round {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(seed))
	r := &Round{
		cfg:    cfg,
		field:  NewField(cfg, rng),
		player: NewPlayer(cfg.Playfield, cfg.Player.Size),
		bonus:  NewBonusBoard(cfg.Bonus, cfg.Playfield, rng),
		logger: logger,
	}
	r.Restart(0)
	return r
}

// Restart resets lives, level, obstacles, player and hit history.
func (r *Round) Restart(now time.Duration) {
	r.lives = r.cfg.Round.Lives
	r.level = 1
	r.hits = r.hits[:0]
	r.deadline = 0
	r.now = now
	r.pending.Expire()
	r.bonus.Stop()
	r.field.Regenerate(r.level)
	r.player.ResetToStart()
	r.setPhase(PhasePlaying)
}

// Press queues a hop for the next tick. Only the first press of a tick counts.
func (r *Round) Press(d Direction) bool {
	return r.pending.Press(d)
}

// Tick advances the round to now. now must come from a monotonic clock.
// A press that this tick does not use is dropped.
func (r *Round) Tick(now time.Duration, ctl Controls) {
	dt := max(now-r.now, 0)
	r.now = now
	defer r.pending.Expire()

	switch r.phase {
	case PhasePlaying:
		r.tickPlaying(now)

	case PhaseHitReaction:
		if now >= r.deadline {
			r.endHitReaction()
		}

	case PhaseLevelCleared:
		// Continue is ignored once the last level is reached.
		skip := ctl.Continue && r.level < r.cfg.Round.MaxLevel
		if skip || now >= r.deadline {
			r.setPhase(PhasePlaying)
		}

	case PhaseGameOver:
		if ctl.Restart {
			r.Restart(now)
		}

	case PhaseBonusBoard:
		if ctl.Restart {
			r.Restart(now)
			return
		}
		r.player.ApplyPending(&r.pending)
		r.bonus.Update(dt, r.player.Box())
	}
}

// tickPlaying checks for a hit, then for the goal, and only then moves
// the player and the traffic.
func (r *Round) tickPlaying(now time.Duration) {
	box := r.player.Box()

	if car, hit := r.field.FirstHit(box); hit {
		r.lives = max(r.lives-1, 0)
		x, y := overlapCenter(box, car.Box())
		r.recordHit(HitMark{X: x, Y: y, Level: r.level, At: now})

		r.afterHit = PhasePlaying
		if r.lives == 0 {
			r.afterHit = PhaseGameOver
		}
		r.deadline = now + r.cfg.Round.HitReaction()
		r.logger.Debug("player hit", "lane", car.Lane, "lives", r.lives, "level", r.level)
		r.setPhase(PhaseHitReaction)
		return
	}

	if r.player.ReachedGoal() {
		if r.level < r.cfg.Round.MaxLevel {
			r.level++
			r.field.Regenerate(r.level)
			r.player.ResetToStart()
			r.deadline = now + r.cfg.Round.LevelCleared()
			r.logger.Debug("level cleared", "next", r.level)
			r.setPhase(PhaseLevelCleared)
			return
		}
		r.field.Clear()
		r.bonus.Start(r.player.Box())
		r.logger.Info("all levels cleared", "levels", r.level, "lives", r.lives)
		r.setPhase(PhaseBonusBoard)
		return
	}

	r.player.ApplyPending(&r.pending)
	r.field.Advance()
}

func (r *Round) endHitReaction() {
	if r.afterHit == PhaseGameOver {
		r.logger.Info("game over", "level", r.level)
		r.setPhase(PhaseGameOver)
		return
	}
	r.player.ResetToStart()
	r.setPhase(PhasePlaying)
}

func (r *Round) setPhase(p Phase) {
	if p != r.phase {
		r.logger.Debug("phase change", "from", r.phase, "to", p, "at", r.now)
	}
	r.phase = p
}

func (r *Round) recordHit(h HitMark) {
	if len(r.hits) == maxHits {
		copy(r.hits, r.hits[1:])
		r.hits = r.hits[:maxHits-1]
	}
	r.hits = append(r.hits, h)
}

// overlapCenter returns the center of the intersection of two boxes.
func overlapCenter(a, b core.Box) (float64, float64) {
	left := math.Max(a.X, b.X)
	right := math.Min(a.Right(), b.Right())
	top := math.Max(a.Y, b.Y)
	bottom := math.Min(a.Bottom(), b.Bottom())
	return (left + right) / 2, (top + bottom) / 2
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Lives returns the remaining lives.
func (r *Round) Lives() int {
	return r.lives
}

// Level returns the current level, starting at 1.
func (r *Round) Level() int {
	return r.level
}

// MaxLevel returns the configured number of levels.
func (r *Round) MaxLevel() int {
	return r.cfg.Round.MaxLevel
}

// Player returns the player. Callers must treat it as read-only.
func (r *Round) Player() *Player {
	return r.player
}

// Obstacles returns the live obstacles.
func (r *Round) Obstacles() []Obstacle {
	return r.field.Obstacles()
}

// Hits returns the collision history, oldest first.
func (r *Round) Hits() []HitMark {
	return r.hits
}

// Ornaments returns the bonus board ornaments; empty outside the bonus board.
func (r *Round) Ornaments() []Ornament {
	return r.bonus.Ornaments()
}

// Remaining returns how long the current timed phase has left, or zero.
func (r *Round) Remaining() time.Duration {
	if r.phase != PhaseHitReaction && r.phase != PhaseLevelCleared {
		return 0
	}
	return max(r.deadline-r.now, 0)
}

// Playfield returns the playfield geometry.
func (r *Round) Playfield() config.Playfield {
	return r.cfg.Playfield
}
