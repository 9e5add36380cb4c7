// Package components holds the plain data attached to entities.
package components

import "github.com/mitchelldurbincs/roguecore/internal/game/core"

// Position is an entity's cell on the map. Write it through ecs.World.SetPosition
// or systems.TryMove so the entity's viewshed is invalidated.
type Position struct {
	X, Y int
}

// Coordinate returns the position as a grid coordinate
func (p Position) Coordinate() core.Coordinate {
	return core.Coordinate{X: p.X, Y: p.Y}
}

// PositionAt builds a Position from a grid coordinate
func PositionAt(c core.Coordinate) Position {
	return Position{X: c.X, Y: c.Y}
}

// Viewshed caches the cells an entity can currently see.
// Dirty == false means VisibleTiles matches the last Position and Range.
type Viewshed struct {
	VisibleTiles []core.Coordinate
	Range        int
	Dirty        bool
}

// NewViewshed returns an empty viewshed that will be computed on the next visibility run
func NewViewshed(r int) Viewshed {
	return Viewshed{Range: r, Dirty: true}
}

// Sees reports whether c is in the cached view
func (v *Viewshed) Sees(c core.Coordinate) bool {
	for _, t := range v.VisibleTiles {
		if t == c {
			return true
		}
	}
	return false
}

// Renderable is the glyph and colors drawn for an entity
type Renderable struct {
	Glyph rune
	FG    RGB
	BG    RGB
}

// Player tags the entity whose view drives the map's visibility layers
type Player struct{}

// Monster tags non-player actors
type Monster struct{}

// Name is a display label
type Name struct {
	Name string
}
