package systems

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
)

// octant transforms; column i maps (dx, dy) into octant i
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// FieldOfView returns the in-grid cells visible from origin within radius,
// sorted row-major. Walls block sight but are themselves visible. The origin is
// always included when it is on the grid.
func FieldOfView(m *core.Map, origin core.Coordinate, radius int) []core.Coordinate {
	seen := mapset.New[core.Coordinate]()
	if !m.InBounds(origin.X, origin.Y) {
		return []core.Coordinate{}
	}
	seen.Put(origin)

	if radius > 0 {
		for i := 0; i < 8; i++ {
			castLight(m, origin, 1, 1.0, 0.0, radius,
				multipliers[0][i], multipliers[1][i],
				multipliers[2][i], multipliers[3][i], seen)
		}
	}

	visible := make([]core.Coordinate, 0, seen.Size())
	seen.Each(func(c core.Coordinate) {
		visible = append(visible, c)
	})
	sort.Slice(visible, func(i, j int) bool { return visible[i].Less(visible[j]) })
	return visible
}

func castLight(m *core.Map, origin core.Coordinate, row int, start, end float64, radius, xx, xy, yx, yy int, seen mapset.Set[core.Coordinate]) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := origin.X + dx*xx + dy*xy
			y := origin.Y + dx*yx + dy*yy

			// off-grid cells are never recorded
			if m.InBounds(x, y) && dx*dx+dy*dy <= radiusSq {
				seen.Put(core.Coordinate{X: x, Y: y})
			}

			if blocked {
				if m.IsBlocking(x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if m.IsBlocking(x, y) && j < radius {
				blocked = true
				castLight(m, origin, j+1, start, lSlope, radius, xx, xy, yx, yy, seen)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
