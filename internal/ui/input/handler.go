package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	cmd "github.com/mitchelldurbincs/roguecore/internal/game/input"
)

type binding struct {
	key     ebiten.Key
	command cmd.Command
}

// bindings are checked in order; the first key pressed this frame wins
var bindings = []binding{
	{ebiten.KeyArrowLeft, cmd.MoveDir(core.West)},
	{ebiten.KeyNumpad4, cmd.MoveDir(core.West)},
	{ebiten.KeyH, cmd.MoveDir(core.West)},
	{ebiten.KeyArrowRight, cmd.MoveDir(core.East)},
	{ebiten.KeyNumpad6, cmd.MoveDir(core.East)},
	{ebiten.KeyL, cmd.MoveDir(core.East)},
	{ebiten.KeyArrowUp, cmd.MoveDir(core.North)},
	{ebiten.KeyNumpad8, cmd.MoveDir(core.North)},
	{ebiten.KeyK, cmd.MoveDir(core.North)},
	{ebiten.KeyArrowDown, cmd.MoveDir(core.South)},
	{ebiten.KeyNumpad2, cmd.MoveDir(core.South)},
	{ebiten.KeyJ, cmd.MoveDir(core.South)},

	{ebiten.KeyNumpad9, cmd.MoveDir(core.NorthEast)},
	{ebiten.KeyU, cmd.MoveDir(core.NorthEast)},
	{ebiten.KeyNumpad7, cmd.MoveDir(core.NorthWest)},
	{ebiten.KeyY, cmd.MoveDir(core.NorthWest)},
	{ebiten.KeyNumpad3, cmd.MoveDir(core.SouthEast)},
	{ebiten.KeyN, cmd.MoveDir(core.SouthEast)},
	{ebiten.KeyNumpad1, cmd.MoveDir(core.SouthWest)},
	{ebiten.KeyB, cmd.MoveDir(core.SouthWest)},

	{ebiten.KeyNumpad5, cmd.Wait()},
	{ebiten.KeySpace, cmd.Wait()},
	{ebiten.KeyPeriod, cmd.Wait()},
}

// Handler turns ebiten keyboard and mouse state into game commands
type Handler struct {
	// Mouse state
	mouseX, mouseY int

	// UI state
	tileSize     int
	boardOffsetX int
	boardOffsetY int

	player    core.Coordinate
	hasPlayer bool

	quit bool
}

func NewHandler(tileSize int) *Handler {
	return &Handler{tileSize: tileSize}
}

// Update samples input for this frame and returns at most one command
func (h *Handler) Update() cmd.Command {
	h.mouseX, h.mouseY = GetCursorPosition()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.quit = true
	}

	// Clicking next to the player steps towards the click
	if IsLeftClickJustPressed() {
		return h.clickCommand()
	}

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			return b.command
		}
	}
	return cmd.None
}

// QuitRequested reports whether escape has been pressed
func (h *Handler) QuitRequested() bool {
	return h.quit
}

// SetPlayerPosition records where the player is so clicks can be turned into steps
func (h *Handler) SetPlayerPosition(c core.Coordinate) {
	h.player = c
	h.hasPlayer = true
}

func (h *Handler) clickCommand() cmd.Command {
	if !h.hasPlayer {
		return cmd.None
	}
	x, y := h.GetHoveredTile()
	c := cmd.Move(sign(x-h.player.X), sign(y-h.player.Y))
	if !c.Recognized() {
		return cmd.Wait()
	}
	return c
}

func (h *Handler) SetBoardOffset(x, y int) {
	h.boardOffsetX = x
	h.boardOffsetY = y
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
