package core

// TileType classifies a single map cell
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t is one of the known tile classes
func (t TileType) IsValid() bool { return t == TileWall || t == TileFloor }

// BlocksSight reports whether the tile stops line of sight
func (t TileType) BlocksSight() bool { return t == TileWall }

// BlocksMovement reports whether entities may not enter the tile
func (t TileType) BlocksMovement() bool { return t == TileWall }
