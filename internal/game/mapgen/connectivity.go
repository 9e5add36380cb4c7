package mapgen

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
)

// ReachableFrom flood-fills orthogonally over floor tiles starting at start.
// A wall or off-grid start yields an empty set.
func ReachableFrom(m *core.Map, start core.Coordinate) mapset.Set[core.Coordinate] {
	visited := mapset.New[core.Coordinate]()
	if !m.IsWalkable(start.X, start.Y) {
		return visited
	}

	queue := []core.Coordinate{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.ValidNeighbors(m.Width, m.Height) {
			if visited.Has(n) || !m.IsWalkable(n.X, n.Y) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return visited
}

// UnreachableRooms returns the indices of rooms whose centers cannot be reached
// from the starting room.
func UnreachableRooms(m *core.Map) []int {
	if len(m.Rooms) == 0 {
		return nil
	}

	reachable := ReachableFrom(m, m.Rooms[0].Center())
	var missing []int
	for i, room := range m.Rooms {
		if !reachable.Has(room.Center()) {
			missing = append(missing, i)
		}
	}
	return missing
}

// IsConnected reports whether every room is reachable from Rooms[0]
func IsConnected(m *core.Map) bool {
	return len(m.Rooms) > 0 && len(UnreachableRooms(m)) == 0
}
