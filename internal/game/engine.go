package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/ecs"
	"github.com/mitchelldurbincs/roguecore/internal/game/events"
	"github.com/mitchelldurbincs/roguecore/internal/game/input"
	"github.com/mitchelldurbincs/roguecore/internal/game/states"
	"github.com/mitchelldurbincs/roguecore/internal/game/systems"
	"github.com/mitchelldurbincs/roguecore/internal/game/view"
)

// Engine owns one dungeon session: the map, the entity world and the turn
// scheduler. It is not safe for concurrent use; drive it from one goroutine.
type Engine struct {
	m      *core.Map
	world  *ecs.World
	player ecs.Entity

	rng       *rand.Rand
	seed      int64
	sessionID string
	turn      int

	logger       zerolog.Logger
	eventBus     *events.EventBus
	stateMachine *states.StateMachine

	visibility *systems.VisibilitySystem
	monsterAI  *systems.MonsterAISystem

	palette   view.Palette
	revealMap bool
}

// Tick advances the scheduler by one phase and returns the resulting state.
//
// In AwaitingInput a recognized command is applied and the engine moves to
// Running; anything else leaves it frozen. In Running the command is ignored,
// the systems run in order, deferred world changes are committed and the
// engine returns to AwaitingInput.
func (e *Engine) Tick(cmd input.Command) states.RunState {
	switch e.stateMachine.Current() {
	case states.AwaitingInput:
		if !cmd.Recognized() {
			return states.AwaitingInput
		}
		e.beginTurn(cmd)
		e.transition(states.Running, "player acted")

	case states.Running:
		e.endTurn()
		e.transition(states.AwaitingInput, "turn complete")
	}

	return e.stateMachine.Current()
}

// Step runs a full turn for cmd: the input phase and, when cmd was accepted,
// the simulation phase.
func (e *Engine) Step(cmd input.Command) states.RunState {
	if !e.Tick(cmd).AcceptsInput() {
		return e.Tick(input.None)
	}
	return e.stateMachine.Current()
}

func (e *Engine) beginTurn(cmd input.Command) {
	e.turn++
	e.stateMachine.GetContext().Turn = e.turn

	e.eventBus.Publish(events.NewTurnStartedEvent(e.sessionID, e.turn, cmd.String()))

	switch cmd.Kind {
	case input.KindMove:
		e.movePlayer(cmd.DX, cmd.DY)
	case input.KindWait:
		e.logger.Debug().Int("turn", e.turn).Msg("Player waits")
	}
}

func (e *Engine) movePlayer(dx, dy int) {
	pos, ok := e.world.Positions.Get(e.player)
	if !ok {
		return
	}
	from := *pos

	if systems.TryMove(e.world, e.m, e.player, dx, dy) {
		to, _ := e.world.Positions.Get(e.player)
		e.eventBus.Publish(events.NewEntityMovedEvent(
			e.sessionID, uint64(e.player), from.X, from.Y, to.X, to.Y, e.turn,
		))
		return
	}

	e.eventBus.Publish(events.NewMoveBlockedEvent(
		e.sessionID, uint64(e.player), from.X, from.Y, from.X+dx, from.Y+dy, e.turn,
	))
}

func (e *Engine) endTurn() {
	started := e.stateMachine.GetContext().TurnStarted
	viewsheds, monsters, committed := e.runSystems()

	e.eventBus.Publish(events.NewTurnEndedEvent(
		e.sessionID, e.turn, viewsheds, monsters, committed, time.Since(started),
	))
}

// runSystems runs visibility, then monster AI, then commits deferred changes
func (e *Engine) runSystems() (viewsheds, monsters, committed int) {
	updated := e.visibility.Run(e.world, e.m)
	for _, ent := range updated {
		vs, _ := e.world.Viewsheds.Get(ent)
		e.eventBus.Publish(events.NewViewshedUpdatedEvent(
			e.sessionID, uint64(ent), len(vs.VisibleTiles), e.world.Players.Has(ent), e.turn,
		))
	}

	monsters = e.monsterAI.Run(e.world)
	committed = e.world.Maintain()

	return len(updated), monsters, committed
}

func (e *Engine) transition(target states.RunState, reason string) {
	if err := e.stateMachine.TransitionTo(target, reason); err != nil {
		e.logger.Error().
			Err(err).
			Int("turn", e.turn).
			Str("target", target.String()).
			Msg("Failed to transition run state")
	}
}

// Map returns the dungeon map
func (e *Engine) Map() *core.Map { return e.m }

// World returns the entity world
func (e *Engine) World() *ecs.World { return e.world }

// Player returns the player entity
func (e *Engine) Player() ecs.Entity { return e.player }

// Despawn removes ent from the world during the next commit phase
func (e *Engine) Despawn(ent ecs.Entity) {
	e.world.Defer(func(w *ecs.World) { w.DestroyEntity(ent) })
}

// PlayerPosition returns the player's current coordinate
func (e *Engine) PlayerPosition() (core.Coordinate, bool) {
	if !e.world.Alive(e.player) {
		return core.Coordinate{}, false
	}
	pos, ok := e.world.Positions.Get(e.player)
	if !ok {
		return core.Coordinate{}, false
	}
	return pos.Coordinate(), true
}

// RunState returns the scheduler's current state
func (e *Engine) RunState() states.RunState { return e.stateMachine.Current() }

// Turn returns the number of turns started so far
func (e *Engine) Turn() int { return e.turn }

func (e *Engine) SessionID() string { return e.sessionID }

func (e *Engine) Seed() int64 { return e.seed }

// EventBus returns the bus every engine event is published on
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }

func (e *Engine) StateMachine() *states.StateMachine { return e.stateMachine }

// Rng returns the session's random source
func (e *Engine) Rng() *rand.Rand { return e.rng }
