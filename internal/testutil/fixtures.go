package testutil

import (
	"github.com/mitchelldurbincs/roguecore/internal/game/core"
)

// CreateOpenMap creates a map where every tile is floor
func CreateOpenMap(width, height int) *core.Map {
	m, err := core.NewMap(width, height)
	if err != nil {
		panic(err)
	}
	for i := range m.Tiles {
		m.Tiles[i] = core.TileFloor
	}
	return m
}

// CreateMapFromRows builds a map from ASCII rows: '#' is wall, anything else is
// floor. All rows must share the first row's width.
func CreateMapFromRows(rows ...string) *core.Map {
	if len(rows) == 0 {
		panic("testutil: no rows")
	}
	m, err := core.NewMap(len(rows[0]), len(rows))
	if err != nil {
		panic(err)
	}
	for y, row := range rows {
		if len(row) != m.Width {
			panic("testutil: ragged rows")
		}
		for x, ch := range row {
			if ch != '#' {
				m.SetTile(x, y, core.TileFloor)
			}
		}
	}
	return m
}

// CreateRoomMap creates a wall-ringed map with a single room covering its
// interior, registered as Rooms[0].
func CreateRoomMap(width, height int) *core.Map {
	m, err := core.NewMap(width, height)
	if err != nil {
		panic(err)
	}
	room := core.NewRect(0, 0, width-2, height-2)
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.SetTile(x, y, core.TileFloor)
		}
	}
	m.Rooms = append(m.Rooms, room)
	return m
}
