package systems

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/ecs"
)

// VisibilitySystem recomputes stale viewsheds and folds the player's view into
// the map's Visible and Revealed layers.
type VisibilitySystem struct {
	logger zerolog.Logger
}

func NewVisibilitySystem(logger zerolog.Logger) *VisibilitySystem {
	return &VisibilitySystem{logger: logger.With().Str("component", "visibility").Logger()}
}

// Run processes every entity with a Viewshed and a Position and returns the
// entities whose view was recomputed, ordered by ID.
func (s *VisibilitySystem) Run(w *ecs.World, m *core.Map) []ecs.Entity {
	var updated []ecs.Entity

	for _, e := range w.Query().With(w.Viewsheds).With(w.Positions).Execute() {
		vs, _ := w.Viewsheds.Get(e)
		if !vs.Dirty {
			continue
		}
		pos, _ := w.Positions.Get(e)

		vs.VisibleTiles = FieldOfView(m, pos.Coordinate(), vs.Range)
		vs.Dirty = false
		updated = append(updated, e)

		s.logger.Debug().
			Uint64("entity", uint64(e)).
			Int("x", pos.X).
			Int("y", pos.Y).
			Int("visible_tiles", len(vs.VisibleTiles)).
			Msg("Viewshed recomputed")

		if !w.Players.Has(e) {
			continue
		}

		m.ClearVisible()
		for _, c := range vs.VisibleTiles {
			m.Reveal(c.X, c.Y)
		}
	}

	return updated
}
