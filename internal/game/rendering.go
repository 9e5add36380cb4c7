package game

import (
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/mitchelldurbincs/roguecore/internal/game/components"
	"github.com/mitchelldurbincs/roguecore/internal/game/events"
	"github.com/mitchelldurbincs/roguecore/internal/game/view"
)

// Frame composes the current view of the dungeon with the engine's palette
func (e *Engine) Frame() *view.Frame {
	return view.Compose(e.m, e.world, e.palette, view.Options{RevealAll: e.revealMap})
}

// ASCII returns the current frame as plain text rows
func (e *Engine) ASCII() string {
	f := e.Frame()

	var sb strings.Builder
	sb.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		sb.WriteString(f.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Board returns the current frame with ANSI true-color codes and a status line
func (e *Engine) Board() string {
	f := e.Frame()

	var sb strings.Builder
	sb.Grow(f.Width * f.Height * 24)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			writeCell(&sb, f.At(x, y))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(e.StatusLine())
	sb.WriteByte('\n')
	return sb.String()
}

// StatusLine summarises the turn and the player's position
func (e *Engine) StatusLine() string {
	pos, ok := e.PlayerPosition()
	if !ok {
		return gotext.Get("Turn %d", e.turn)
	}
	return gotext.Get("Turn %d  Position %s  State %s", e.turn, pos.String(), e.RunState().String())
}

// Messages returns player-facing lines for the turn in progress or, between
// turns, the one that just ended
func (e *Engine) Messages() []string {
	var out []string
	for _, ev := range e.eventBus.Journal() {
		switch ev := ev.(type) {
		case *events.GameStartedEvent:
			out = append(out, gotext.Get("You enter the dungeon."))
		case *events.MoveBlockedEvent:
			if ev.Entity == uint64(e.player) {
				out = append(out, gotext.Get("Something blocks your way."))
			}
		}
	}
	return out
}

func writeCell(sb *strings.Builder, c view.Cell) {
	if c.Glyph == view.BlankGlyph {
		sb.WriteRune(c.Glyph)
		return
	}
	style := color.NewRGBStyle(toANSI(c.FG), toANSI(c.BG))
	sb.WriteString(style.Sprint(string(c.Glyph)))
}

func toANSI(c components.RGB) color.RGBColor {
	return color.RGB(c.R, c.G, c.B)
}
