package core

import "fmt"

// Coordinate represents a cell position on the map grid
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a map array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a map array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// ChebyshevTo returns the chessboard distance to another coordinate
func (c Coordinate) ChebyshevTo(other Coordinate) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Neighbors returns the four orthogonal neighbors of this coordinate
func (c Coordinate) Neighbors() []Coordinate {
	return []Coordinate{
		{X: c.X, Y: c.Y - 1}, // North
		{X: c.X + 1, Y: c.Y}, // East
		{X: c.X, Y: c.Y + 1}, // South
		{X: c.X - 1, Y: c.Y}, // West
	}
}

// ValidNeighbors returns only the orthogonal neighbors that are within the given bounds
func (c Coordinate) ValidNeighbors(width, height int) []Coordinate {
	neighbors := c.Neighbors()
	valid := make([]Coordinate, 0, 4)

	for _, n := range neighbors {
		if n.IsValid(width, height) {
			valid = append(valid, n)
		}
	}

	return valid
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// Sub returns a new coordinate that is the difference between this coordinate and another
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X - other.X,
		Y: c.Y - other.Y,
	}
}

// Less orders coordinates row-major, top-left first
func (c Coordinate) Less(other Coordinate) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents one of the eight compass directions
type Direction int

const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// DirectionVectors provides coordinate offsets for each direction
var DirectionVectors = map[Direction]Coordinate{
	North:     {X: 0, Y: -1},
	East:      {X: 1, Y: 0},
	South:     {X: 0, Y: 1},
	West:      {X: -1, Y: 0},
	NorthEast: {X: 1, Y: -1},
	SouthEast: {X: 1, Y: 1},
	SouthWest: {X: -1, Y: 1},
	NorthWest: {X: -1, Y: -1},
}

// String returns the compass name of the direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case NorthEast:
		return "northeast"
	case SouthEast:
		return "southeast"
	case SouthWest:
		return "southwest"
	case NorthWest:
		return "northwest"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Move returns a new coordinate moved one step in the given direction
func (c Coordinate) Move(direction Direction) Coordinate {
	if offset, ok := DirectionVectors[direction]; ok {
		return c.Add(offset)
	}
	return c
}
