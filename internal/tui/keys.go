package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/input"
)

var keyCommands = map[tcell.Key]input.Command{
	tcell.KeyLeft:  input.MoveDir(core.West),
	tcell.KeyRight: input.MoveDir(core.East),
	tcell.KeyUp:    input.MoveDir(core.North),
	tcell.KeyDown:  input.MoveDir(core.South),
	tcell.KeyHome:  input.MoveDir(core.NorthWest),
	tcell.KeyPgUp:  input.MoveDir(core.NorthEast),
	tcell.KeyEnd:   input.MoveDir(core.SouthWest),
	tcell.KeyPgDn:  input.MoveDir(core.SouthEast),
}

// vi keys plus the digit row for terminals without a numpad mode
var runeCommands = map[rune]input.Command{
	'h': input.MoveDir(core.West),
	'4': input.MoveDir(core.West),
	'l': input.MoveDir(core.East),
	'6': input.MoveDir(core.East),
	'k': input.MoveDir(core.North),
	'8': input.MoveDir(core.North),
	'j': input.MoveDir(core.South),
	'2': input.MoveDir(core.South),
	'y': input.MoveDir(core.NorthWest),
	'7': input.MoveDir(core.NorthWest),
	'u': input.MoveDir(core.NorthEast),
	'9': input.MoveDir(core.NorthEast),
	'b': input.MoveDir(core.SouthWest),
	'1': input.MoveDir(core.SouthWest),
	'n': input.MoveDir(core.SouthEast),
	'3': input.MoveDir(core.SouthEast),
	'.': input.Wait(),
	'5': input.Wait(),
	' ': input.Wait(),
}

// CommandForKey maps a key press to a game command. Unbound keys map to None.
func CommandForKey(key tcell.Key, r rune) input.Command {
	if key == tcell.KeyRune {
		if c, ok := runeCommands[r]; ok {
			return c
		}
		return input.None
	}
	if c, ok := keyCommands[key]; ok {
		return c
	}
	return input.None
}

// IsQuitKey reports whether the key ends the session
func IsQuitKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q')
}
