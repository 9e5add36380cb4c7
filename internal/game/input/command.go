// Package input defines the discrete commands the scheduler accepts.
package input

import (
	"fmt"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
)

// Kind classifies a command
type Kind int

const (
	KindNone Kind = iota
	KindMove
	KindWait
)

// Command is at most one player action per frame. The zero value is "no input".
type Command struct {
	Kind   Kind
	DX, DY int
}

// None is the absence of input
var None = Command{}

// Move builds a movement command
func Move(dx, dy int) Command {
	return Command{Kind: KindMove, DX: dx, DY: dy}
}

// MoveDir builds a one-step movement command from a compass direction
func MoveDir(d core.Direction) Command {
	v, ok := core.DirectionVectors[d]
	if !ok {
		return None
	}
	return Move(v.X, v.Y)
}

// Wait skips the player's action but still advances a turn
func Wait() Command {
	return Command{Kind: KindWait}
}

// Recognized reports whether the command takes a turn: a single-step move
// in any of the eight directions, or a wait.
func (c Command) Recognized() bool {
	switch c.Kind {
	case KindWait:
		return true
	case KindMove:
		if c.DX == 0 && c.DY == 0 {
			return false
		}
		return c.DX >= -1 && c.DX <= 1 && c.DY >= -1 && c.DY <= 1
	default:
		return false
	}
}

func (c Command) String() string {
	switch c.Kind {
	case KindNone:
		return "none"
	case KindMove:
		return fmt.Sprintf("move(%d,%d)", c.DX, c.DY)
	case KindWait:
		return "wait"
	default:
		return fmt.Sprintf("Command(%d)", int(c.Kind))
	}
}
