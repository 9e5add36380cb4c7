package view

import (
	"fmt"

	"github.com/mitchelldurbincs/roguecore/internal/config"
	"github.com/mitchelldurbincs/roguecore/internal/game/components"
)

const (
	FloorGlyph = '.'
	WallGlyph  = '#'
	BlankGlyph = ' '
)

// Palette holds the map tile colors. Entity colors come from their Renderable.
type Palette struct {
	Floor      components.RGB
	Wall       components.RGB
	Background components.RGB
}

// DefaultPalette returns the classic teal floor and green wall scheme
func DefaultPalette() Palette {
	return Palette{
		Floor:      components.RGB{R: 0x00, G: 0x80, B: 0x80},
		Wall:       components.Green,
		Background: components.Black,
	}
}

// PaletteFromConfig parses the configured tile colors
func PaletteFromConfig(c config.ColorsConfig) (Palette, error) {
	p := DefaultPalette()

	floor, err := components.ParseHex(c.Floor)
	if err != nil {
		return p, fmt.Errorf("floor color: %w", err)
	}
	wall, err := components.ParseHex(c.Wall)
	if err != nil {
		return p, fmt.Errorf("wall color: %w", err)
	}

	p.Floor = floor
	p.Wall = wall
	return p, nil
}
