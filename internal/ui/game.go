package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/roguecore/internal/config"
	"github.com/mitchelldurbincs/roguecore/internal/game"
	"github.com/mitchelldurbincs/roguecore/internal/ui/input"
	"github.com/mitchelldurbincs/roguecore/internal/ui/renderer"
)

// statusRows is the number of tile rows reserved under the map for text
const statusRows = 2

var statusTextColor = color.RGBA{200, 200, 200, 255}

// ScreenSize returns the logical screen size needed for a map of w x h tiles
func ScreenSize(w, h, tileSize int) (int, int) {
	return w * tileSize, (h + statusRows) * tileSize
}

// UIGame holds the game engine instance and UI-specific state
type UIGame struct {
	engine        *game.Engine
	boardRenderer *renderer.BoardRenderer
	inputHandler  *input.Handler
	defaultFont   font.Face
	scale         int
}

// NewUIGame creates a new Ebitengine game instance. Tile size and scale are
// fixed for the lifetime of the window; later config reloads do not resize it.
func NewUIGame(engine *game.Engine, c config.UIGameConfig) (*UIGame, error) {
	if c.TileSize <= 0 || c.Scale <= 0 {
		return nil, fmt.Errorf("tile size and scale must be positive, got %d and %d", c.TileSize, c.Scale)
	}
	g := &UIGame{
		engine:      engine,
		defaultFont: basicfont.Face7x13,
		scale:       c.Scale,
	}

	g.boardRenderer = renderer.NewBoardRenderer(c.TileSize, g.defaultFont)
	g.inputHandler = input.NewHandler(c.TileSize)

	return g, nil
}

// WindowSize returns the initial window size in device pixels
func (g *UIGame) WindowSize() (int, int) {
	w, h := g.Layout(0, 0)
	return w * g.scale, h * g.scale
}

// Update feeds at most one command per frame to the engine's scheduler.
func (g *UIGame) Update() error {
	if pos, ok := g.engine.PlayerPosition(); ok {
		g.inputHandler.SetPlayerPosition(pos)
	}

	cmd := g.inputHandler.Update()
	if g.inputHandler.QuitRequested() {
		return ebiten.Termination
	}

	g.engine.Tick(cmd)
	return nil
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	m := g.engine.Map()
	g.boardRenderer.Draw(screen, g.engine.Frame())

	hx, hy := g.inputHandler.GetHoveredTile()
	if m.InBounds(hx, hy) {
		g.boardRenderer.DrawHover(screen, hx, hy)
	}

	baseY := m.Height*g.boardRenderer.TileSize() + 13
	text.Draw(screen, g.engine.StatusLine(), g.defaultFont, 5, baseY, statusTextColor)

	if label := g.hoverLabel(hx, hy); label != "" {
		text.Draw(screen, label, g.defaultFont, 5, baseY+15, statusTextColor)
	}
}

// hoverLabel names the visible entity under the cursor, if any
func (g *UIGame) hoverLabel(x, y int) string {
	if !g.engine.Map().IsVisible(x, y) {
		return ""
	}
	w := g.engine.World()
	for _, e := range w.Query().With(w.Positions).With(w.Names).Execute() {
		pos, _ := w.Positions.Get(e)
		if pos.X == x && pos.Y == y {
			name, _ := w.Names.Get(e)
			return gotext.Get("You see: %s", name.Name)
		}
	}
	return ""
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	m := g.engine.Map()
	return ScreenSize(m.Width, m.Height, g.boardRenderer.TileSize())
}
