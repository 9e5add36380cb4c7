package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/roguecore/internal/game"
	"github.com/mitchelldurbincs/roguecore/internal/game/components"
	"github.com/mitchelldurbincs/roguecore/internal/game/events"
	"github.com/mitchelldurbincs/roguecore/internal/game/view"
)

// App drives an engine from a terminal. Every key press runs a full turn.
type App struct {
	screen tcell.Screen
	engine *game.Engine
	sound  *Sound
	logger zerolog.Logger
}

// NewApp wires an initialised screen to the engine. sound may be nil.
func NewApp(screen tcell.Screen, engine *game.Engine, sound *Sound, logger zerolog.Logger) *App {
	a := &App{
		screen: screen,
		engine: engine,
		sound:  sound,
		logger: logger.With().Str("component", "tui").Logger(),
	}

	if sound != nil {
		engine.EventBus().SubscribeFunc(events.TypeMoveBlocked, func(events.Event) {
			a.sound.Bump()
		})
	}

	return a
}

// Run processes terminal events until a quit key, ctx cancellation or a
// closed screen.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, 16)
	go pollEvents(ctx, a.screen, eventChan)

	a.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()
		}
	}
}

// pollEvents forwards screen events to out until the screen is finalized or
// ctx is done. out is closed when the screen stops delivering events.
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// HandleEvent applies one terminal event and reports whether to keep running
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuitKey(ev.Key(), ev.Rune()) {
			a.logger.Info().Int("turn", a.engine.Turn()).Msg("Quit requested")
			return false
		}
		cmd := CommandForKey(ev.Key(), ev.Rune())
		a.engine.Step(cmd)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Draw paints the current frame and the status line
func (a *App) Draw() {
	a.screen.Clear()

	f := a.engine.Frame()
	DrawFrame(a.screen, f)
	drawText(a.screen, 0, f.Height, a.engine.StatusLine())
	for i, msg := range a.engine.Messages() {
		drawText(a.screen, 0, f.Height+1+i, msg)
	}

	a.screen.Show()
}

// DrawFrame writes every non-blank cell of f at its grid position
func DrawFrame(screen tcell.Screen, f *view.Frame) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			cell := f.At(x, y)
			if cell.Glyph == view.BlankGlyph {
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(cell.FG)).Background(toTcell(cell.BG))
			screen.SetContent(x, y, cell.Glyph, nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func toTcell(c components.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
