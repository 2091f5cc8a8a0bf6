// Package crossing implements a road-crossing arcade game: the player hops
// across lanes of traffic to reach the goal band, level after level.
package crossing

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

// Variant identifiers.
const (
	VariantStandard = "crossing"
	VariantClassic  = "crossing_classic"
)

// HUD rows above the field and hint rows below it.
const (
	hudHeight    = 2
	footerHeight = 1
)

// Package-level settings applied on the next Reset.
var (
	settingsMu     sync.RWMutex
	standardConfig = config.DefaultCrossingConfig()
	packageLogger  = log.New(io.Discard)
)

// SetConfig replaces the configuration used by the standard variant.
// The classic variant always runs its built-in configuration.
func SetConfig(cfg config.CrossingConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	settingsMu.Lock()
	standardConfig = cfg
	settingsMu.Unlock()
	return nil
}

// SetLogger sets the logger handed to new rounds. nil discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	settingsMu.Lock()
	packageLogger = l
	settingsMu.Unlock()
}

// ConfigFor returns the configuration a variant will run with.
func ConfigFor(variant string) config.CrossingConfig {
	cfg, _ := settings(variant)
	return cfg
}

func settings(variant string) (config.CrossingConfig, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if variant == VariantClassic {
		cfg, err := config.LoadClassic()
		if err != nil {
			cfg = config.ClassicCrossingConfig()
		}
		return cfg, packageLogger
	}
	return standardConfig, packageLogger
}

// Game adapts a Round to the platform's game interface.
type Game struct {
	variant string
	cfg     config.CrossingConfig
	round   *Round
	clock   *TickClock
	tick    uint64

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// New creates the standard multi-level game.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates the single-level classic game.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

func init() {
	registry.Register(VariantStandard, func() registry.Game {
		return New()
	})
	registry.Register(VariantClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Road Crossing (Classic)"
	}
	return "Road Crossing"
}

// Reset starts a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, logger := settings(g.variant)
	g.cfg = gameCfg
	g.round = NewRound(gameCfg, cfg.Seed, logger.With("game", g.variant))
	g.clock = NewTickClock(cfg.TickInterval())
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	logger.Debug("round reset", "game", g.variant, "seed", cfg.Seed, "lanes", len(gameCfg.Playfield.Lanes))
}

// Resize updates the screen dimensions. The round keeps running; a window
// too small for the field suspends the simulation until it grows again.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	_, ok := fieldLayout(g.cfg.Playfield, w, h)
	g.tooSmall = !ok
}

// moveBindings are checked in order; only one hop is queued per tick.
var moveBindings = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && !g.tooSmall {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance()
	for _, b := range moveBindings {
		if in.Has(b.action) {
			g.round.Press(b.dir)
			break
		}
	}
	g.round.Tick(g.clock.Now(), Controls{
		Continue: in.Has(core.ActionConfirm),
		Restart:  in.Has(core.ActionRestart),
	})

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	phase := g.round.Phase()
	return core.GameState{
		Level:    g.round.Level(),
		Lives:    g.round.Lives(),
		Phase:    phase.String(),
		GameOver: phase == PhaseGameOver || phase == PhaseBonusBoard,
		Paused:   g.paused,
	}
}

// Round exposes the underlying simulation for inspection.
func (g *Game) Round() *Round {
	return g.round
}
