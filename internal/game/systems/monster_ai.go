package systems

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/ecs"
)

// MonsterAISystem runs after visibility so it reads fresh viewsheds. It has no
// behavior yet and never mutates the world.
type MonsterAISystem struct {
	logger zerolog.Logger
}

func NewMonsterAISystem(logger zerolog.Logger) *MonsterAISystem {
	return &MonsterAISystem{logger: logger.With().Str("component", "monster_ai").Logger()}
}

// Run visits every monster with a viewshed and a position and returns how many it saw
func (s *MonsterAISystem) Run(w *ecs.World) int {
	monsters := w.Query().With(w.Viewsheds).With(w.Positions).With(w.Monsters).Execute()

	var target *core.Coordinate
	if players := w.Query().With(w.Positions).With(w.Players).Execute(); len(players) > 0 {
		pos, _ := w.Positions.Get(players[0])
		c := pos.Coordinate()
		target = &c
	}

	for _, e := range monsters {
		name := "unnamed"
		if n, ok := w.Names.Get(e); ok {
			name = n.Name
		}
		pos, _ := w.Positions.Get(e)
		ev := s.logger.Debug().
			Uint64("entity", uint64(e)).
			Str("name", name).
			Int("x", pos.X).
			Int("y", pos.Y)
		if target != nil {
			ev = ev.Int("player_distance", pos.Coordinate().ChebyshevTo(*target))
		}
		ev.Msg("Monster considers its own existence")
	}

	return len(monsters)
}
