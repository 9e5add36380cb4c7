package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width       int
	Height      int
	MaxRooms    int // placement attempts, not a room target
	MinRoomSize int
	MaxRoomSize int
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(w, h int) MapConfig {
	return MapConfig{
		Width:       w,
		Height:      h,
		MaxRooms:    30,
		MinRoomSize: 6,
		MaxRoomSize: 10,
	}
}

// Validate checks the configuration before any tile is carved
func (c MapConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return core.ErrInvalidDimensions
	}
	if c.MinRoomSize < 2 {
		return fmt.Errorf("min room size must be at least 2, got %d", c.MinRoomSize)
	}
	if c.MaxRoomSize < c.MinRoomSize {
		return fmt.Errorf("max room size %d is below min room size %d", c.MaxRoomSize, c.MinRoomSize)
	}
	if c.MaxRooms < 1 {
		return fmt.Errorf("max rooms must be positive, got %d", c.MaxRooms)
	}
	return nil
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// Generate builds a rooms-and-corridors map with the default room settings
func Generate(width, height int, rng *rand.Rand) (*core.Map, error) {
	return NewGenerator(DefaultMapConfig(width, height), rng).GenerateMap()
}

// GenerateMap carves rooms into an all-wall grid and links each new room to the
// previous one with an L-shaped corridor.
func (g *Generator) GenerateMap() (*core.Map, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	m, err := core.NewMap(g.config.Width, g.config.Height)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < g.config.MaxRooms; attempt++ {
		room, ok := g.randomRoom(m)
		if !ok {
			continue
		}

		if overlapsAny(room, m.Rooms) {
			continue
		}

		carveRoom(m, room)

		if len(m.Rooms) > 0 {
			prev := m.Rooms[len(m.Rooms)-1].Center()
			next := room.Center()
			if g.rng.Intn(2) == 1 {
				carveHorizontal(m, prev.X, next.X, prev.Y)
				carveVertical(m, prev.Y, next.Y, next.X)
			} else {
				carveVertical(m, prev.Y, next.Y, prev.X)
				carveHorizontal(m, prev.X, next.X, next.Y)
			}
		}

		m.Rooms = append(m.Rooms, room)
	}

	if len(m.Rooms) == 0 {
		// Grid is too small for a random room; carve the largest legal one instead.
		if m.Width < 4 || m.Height < 4 {
			return nil, core.ErrMapTooSmall
		}
		room := core.NewRect(0, 0, m.Width-2, m.Height-2)
		carveRoom(m, room)
		m.Rooms = append(m.Rooms, room)
	}

	return m, nil
}

// randomRoom draws a room whose carved interior leaves the outer ring as wall
func (g *Generator) randomRoom(m *core.Map) (core.Rect, bool) {
	w := g.randRange(g.config.MinRoomSize, g.config.MaxRoomSize)
	h := g.randRange(g.config.MinRoomSize, g.config.MaxRoomSize)

	spanX := m.Width - w - 1
	spanY := m.Height - h - 1
	if spanX <= 0 || spanY <= 0 {
		return core.Rect{}, false
	}

	room := core.NewRect(g.rng.Intn(spanX), g.rng.Intn(spanY), w, h)
	if room.X1 < 0 || room.Y1 < 0 || room.X2 >= m.Width-1 || room.Y2 >= m.Height-1 {
		return core.Rect{}, false
	}
	return room, true
}

// randRange returns a value in [lo, hi]
func (g *Generator) randRange(lo, hi int) int {
	return g.rng.Intn(hi-lo+1) + lo
}

func overlapsAny(room core.Rect, rooms []core.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

func carveRoom(m *core.Map, room core.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.SetTile(x, y, core.TileFloor)
		}
	}
}

func carveHorizontal(m *core.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(x, y, core.TileFloor)
	}
}

func carveVertical(m *core.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(x, y, core.TileFloor)
	}
}
