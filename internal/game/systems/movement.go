package systems

import (
	"github.com/mitchelldurbincs/roguecore/internal/game/components"
	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/ecs"
)

// TryMove shifts e by (dx, dy) unless the destination is off the grid or a
// wall. A successful move marks e's viewshed dirty. Entities without a
// Position never move.
func TryMove(w *ecs.World, m *core.Map, e ecs.Entity, dx, dy int) bool {
	pos, ok := w.Positions.Get(e)
	if !ok {
		return false
	}

	dest := core.Coordinate{X: pos.X + dx, Y: pos.Y + dy}
	if !m.InBounds(dest.X, dest.Y) || m.TileAt(dest.X, dest.Y).BlocksMovement() {
		return false
	}

	w.SetPosition(e, components.PositionAt(m.Clamp(dest)))
	return true
}
