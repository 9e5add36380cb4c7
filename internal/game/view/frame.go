package view

import (
	"strings"

	"github.com/mitchelldurbincs/roguecore/internal/game/components"
	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/ecs"
)

// Cell is one drawable grid position
type Cell struct {
	Glyph rune
	FG    components.RGB
	BG    components.RGB
}

// Frame is a composed snapshot of the map and the entities on it, row-major
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
}

// At returns the cell at (x, y). Out of range positions read as blank.
func (f *Frame) At(x, y int) Cell {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return Cell{Glyph: BlankGlyph}
	}
	return f.Cells[y*f.Width+x]
}

// Row returns the glyphs of row y as a string
func (f *Frame) Row(y int) string {
	var sb strings.Builder
	sb.Grow(f.Width)
	for x := 0; x < f.Width; x++ {
		sb.WriteRune(f.At(x, y).Glyph)
	}
	return sb.String()
}

// Options control fog of war when composing a frame
type Options struct {
	// RevealAll draws every tile and entity at full color regardless of the
	// map's exploration layers. Debug only.
	RevealAll bool
}

// Compose draws the map and every positioned, renderable entity.
//
// Tiles are drawn only once revealed, in greyscale when not currently visible.
// Entities are drawn only on visible tiles, in ID order, so later entities
// cover earlier ones.
func Compose(m *core.Map, w *ecs.World, p Palette, opts Options) *Frame {
	f := &Frame{
		Width:  m.Width,
		Height: m.Height,
		Cells:  make([]Cell, len(m.Tiles)),
	}

	for idx, t := range m.Tiles {
		if !opts.RevealAll && !m.Revealed[idx] {
			f.Cells[idx] = Cell{Glyph: BlankGlyph, FG: p.Background, BG: p.Background}
			continue
		}

		cell := Cell{Glyph: FloorGlyph, FG: p.Floor, BG: p.Background}
		if t == core.TileWall {
			cell.Glyph = WallGlyph
			cell.FG = p.Wall
		}
		if !opts.RevealAll && !m.Visible[idx] {
			cell.FG = cell.FG.Greyscale()
		}
		f.Cells[idx] = cell
	}

	for _, e := range w.Query().With(w.Positions).With(w.Renderables).Execute() {
		pos, _ := w.Positions.Get(e)
		if !m.InBounds(pos.X, pos.Y) {
			continue
		}
		if !opts.RevealAll && !m.IsVisible(pos.X, pos.Y) {
			continue
		}
		r, _ := w.Renderables.Get(e)
		f.Cells[m.Idx(pos.X, pos.Y)] = Cell{Glyph: r.Glyph, FG: r.FG, BG: r.BG}
	}

	return f
}
