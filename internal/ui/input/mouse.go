package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func IsLeftClickJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func GetCursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// GetHoveredTile returns the map cell under the cursor
func (h *Handler) GetHoveredTile() (int, int) {
	return h.screenToTile(h.mouseX, h.mouseY)
}

func (h *Handler) screenToTile(x, y int) (int, int) {
	if h.tileSize <= 0 {
		return -1, -1
	}
	tx, ty := x-h.boardOffsetX, y-h.boardOffsetY
	if tx < 0 || ty < 0 {
		return -1, -1
	}
	return tx / h.tileSize, ty / h.tileSize
}
