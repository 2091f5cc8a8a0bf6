package crossing

import "time"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Now       time.Duration
	Level     int
	Lives     int
	Phase     Phase
	PlayerX   float64
	PlayerY   float64
	Obstacles int
	// ObstacleSum is the sum of all obstacle x positions; any divergence in
	// traffic shows up here.
	ObstacleSum float64
	Hits        int
	Paused      bool
	TooSmall    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
	if g.round == nil {
		return s
	}
	s.Now = g.clock.Now()
	s.Level = g.round.Level()
	s.Lives = g.round.Lives()
	s.Phase = g.round.Phase()
	s.PlayerX = g.round.Player().X
	s.PlayerY = g.round.Player().Y
	for _, o := range g.round.Obstacles() {
		s.Obstacles++
		s.ObstacleSum += o.X
	}
	s.Hits = len(g.round.Hits())
	return s
}
