package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/roguecore/internal/game/view"
)

var HoverColor = color.RGBA{255, 255, 255, 64} // Semi-transparent white

type BoardRenderer struct {
	tileSize    int
	defaultFont font.Face
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(tileSize int, f font.Face) *BoardRenderer {
	return &BoardRenderer{tileSize: tileSize, defaultFont: f}
}

func (br *BoardRenderer) TileSize() int { return br.tileSize }

// Draw renders a composed frame as glyphs on their background color
func (br *BoardRenderer) Draw(screen *ebiten.Image, f *view.Frame) {
	if f == nil {
		return
	}

	ts := float32(br.tileSize)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			cell := f.At(x, y)
			if cell.Glyph == view.BlankGlyph {
				continue
			}

			screenX := float32(x) * ts
			screenY := float32(y) * ts
			vector.DrawFilledRect(screen, screenX, screenY, ts, ts, cell.BG.ToColor(), false)

			if br.defaultFont == nil {
				continue
			}
			glyph := string(cell.Glyph)
			b := text.BoundString(br.defaultFont, glyph)
			textW := b.Max.X - b.Min.X
			textH := b.Max.Y - b.Min.Y

			tx := int(screenX) + (br.tileSize-textW)/2 - b.Min.X
			ty := int(screenY) + (br.tileSize+textH)/2 - b.Max.Y
			text.Draw(screen, glyph, br.defaultFont, tx, ty, cell.FG.ToColor())
		}
	}
}

// DrawHover highlights the tile under the cursor
func (br *BoardRenderer) DrawHover(screen *ebiten.Image, x, y int) {
	ts := float32(br.tileSize)
	vector.DrawFilledRect(screen, float32(x)*ts, float32(y)*ts, ts, ts, HoverColor, false)
}
