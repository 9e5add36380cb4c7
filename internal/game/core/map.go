package core

// Map is the dungeon grid plus the player's two visibility layers.
// Tiles is fixed after generation; only Visible and Revealed change afterwards.
type Map struct {
	Width, Height int
	Tiles         []TileType // length = Width*Height (row-major)
	Revealed      []bool     // ever seen by the player, never cleared
	Visible       []bool     // in the player's view this turn
	Rooms         []Rect     // generation order; Rooms[0] is the starting room
}

// NewMap returns an all-wall map with empty visibility layers
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height
	m := &Map{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileType, n),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}
	return m, nil
}

func (m *Map) Idx(x, y int) int { return NewCoordinate(x, y).ToIndex(m.Width) }

func (m *Map) XY(idx int) (int, int) {
	c := FromIndex(idx, m.Width)
	return c.X, c.Y
}

// InBounds checks if coordinates are within map boundaries
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile class at (x, y). Out-of-bounds reads report Wall.
func (m *Map) TileAt(x, y int) TileType {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.Idx(x, y)]
}

// IsBlocking reports whether (x, y) stops line of sight. Off-grid cells block.
func (m *Map) IsBlocking(x, y int) bool {
	return m.TileAt(x, y).BlocksSight()
}

// IsWalkable reports whether an entity may stand on (x, y)
func (m *Map) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && !m.Tiles[m.Idx(x, y)].BlocksMovement()
}

// Clamp pins a coordinate into the grid
func (m *Map) Clamp(c Coordinate) Coordinate {
	return Coordinate{X: clamp(c.X, 0, m.Width-1), Y: clamp(c.Y, 0, m.Height-1)}
}

// SetTile classifies (x, y); out-of-bounds writes are ignored
func (m *Map) SetTile(x, y int, t TileType) {
	if m.InBounds(x, y) {
		m.Tiles[m.Idx(x, y)] = t
	}
}

// ClearVisible resets the current-view layer
func (m *Map) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

// Reveal marks (x, y) as visible now and seen at least once
func (m *Map) Reveal(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	idx := m.Idx(x, y)
	m.Visible[idx] = true
	m.Revealed[idx] = true
}

// IsVisible reports whether (x, y) is in the player's current view
func (m *Map) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[m.Idx(x, y)]
}

// IsRevealed reports whether the player has ever seen (x, y)
func (m *Map) IsRevealed(x, y int) bool {
	return m.InBounds(x, y) && m.Revealed[m.Idx(x, y)]
}

// FloorCount returns the number of floor tiles
func (m *Map) FloorCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

// StartRoom returns the player's starting room
func (m *Map) StartRoom() (Rect, error) {
	if len(m.Rooms) == 0 {
		return Rect{}, ErrNoRooms
	}
	return m.Rooms[0], nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
