package game

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/roguecore/internal/game/core"
	"github.com/mitchelldurbincs/roguecore/internal/game/ecs"
	"github.com/mitchelldurbincs/roguecore/internal/game/events"
	"github.com/mitchelldurbincs/roguecore/internal/game/input"
	"github.com/mitchelldurbincs/roguecore/internal/game/mapgen"
	"github.com/mitchelldurbincs/roguecore/internal/game/states"
	"github.com/mitchelldurbincs/roguecore/internal/testutil"
)

func newTestEngine(t *testing.T, width, height int, seed int64) *Engine {
	t.Helper()
	cfg := DefaultGameConfig()
	cfg.Map = mapgen.DefaultMapConfig(width, height)
	cfg.Rng = testutil.NewTestRNG(seed)
	cfg.Seed = seed

	engine, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, engine)
	return engine
}

// newRoomEngine builds a 6x6 dungeon: a single 4x4 room with the player at (2,2)
func newRoomEngine(t *testing.T) *Engine {
	return newTestEngine(t, 6, 6, 12345)
}

func recordEvents(bus *events.EventBus) *[]string {
	var seen []string
	for _, typ := range []string{
		events.TypeTurnStarted,
		events.TypeTurnEnded,
		events.TypeEntityMoved,
		events.TypeMoveBlocked,
		events.TypeViewshedUpdated,
		events.TypeStateTransition,
	} {
		bus.SubscribeFunc(typ, func(e events.Event) {
			seen = append(seen, e.Type())
		})
	}
	return &seen
}

func names(w *ecs.World) []string {
	var out []string
	for _, e := range w.Query().With(w.Names).Execute() {
		n, _ := w.Names.Get(e)
		out = append(out, n.Name)
	}
	return out
}

func TestNewEngine(t *testing.T) {
	engine := newTestEngine(t, 80, 50, 42)
	m := engine.Map()

	assert.Equal(t, 80, m.Width)
	assert.Equal(t, 50, m.Height)
	require.NotEmpty(t, m.Rooms)
	assert.Equal(t, states.AwaitingInput, engine.RunState())
	assert.Equal(t, 0, engine.Turn())
	assert.Equal(t, int64(42), engine.Seed())

	_, err := uuid.Parse(engine.SessionID())
	assert.NoError(t, err, "session IDs are UUIDs")

	pos, ok := engine.PlayerPosition()
	require.True(t, ok)
	assert.Equal(t, m.Rooms[0].Center(), pos)

	w := engine.World()
	assert.True(t, w.Players.Has(engine.Player()))
	assert.Equal(t, len(m.Rooms)-1, w.Monsters.Count())

	// the initial systems pass leaves every viewshed fresh
	for _, e := range w.Viewsheds.All() {
		vs, _ := w.Viewsheds.Get(e)
		assert.False(t, vs.Dirty, "entity %d", e)
	}
	assert.True(t, m.IsVisible(pos.X, pos.Y))
	assert.True(t, m.IsRevealed(pos.X, pos.Y))
}

func TestNewEngine_GeneratesSessionAndSeed(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Map = mapgen.DefaultMapConfig(40, 30)

	a, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	b, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotZero(t, a.Seed())
	assert.NotNil(t, a.Rng())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}

func TestNewEngine_UsesProvidedSessionID(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Map = mapgen.DefaultMapConfig(40, 30)
	cfg.Seed = 3
	cfg.SessionID = "session-under-test"

	engine, err := NewEngine(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "session-under-test", engine.SessionID())
	assert.Equal(t, "session-under-test", engine.StateMachine().GetContext().SessionID)
}

func TestNewEngine_Errors(t *testing.T) {
	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		engine, err := NewEngine(ctx, DefaultGameConfig())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, engine)
	})

	t.Run("map too small", func(t *testing.T) {
		cfg := DefaultGameConfig()
		cfg.Map = mapgen.MapConfig{Width: 3, Height: 3, MaxRooms: 1, MinRoomSize: 2, MaxRoomSize: 2}
		cfg.Seed = 1

		_, err := NewEngine(context.Background(), cfg)
		assert.ErrorIs(t, err, core.ErrMapTooSmall)
	})

	t.Run("invalid map config", func(t *testing.T) {
		cfg := DefaultGameConfig()
		cfg.Map.MinRoomSize = 1
		cfg.Seed = 1

		_, err := NewEngine(context.Background(), cfg)
		assert.Error(t, err)
	})
}

func TestEngine_Deterministic(t *testing.T) {
	for _, seed := range []int64{1, 7, 2024} {
		a := newTestEngine(t, 80, 50, seed)
		b := newTestEngine(t, 80, 50, seed)

		assert.Equal(t, a.Map().Tiles, b.Map().Tiles, "seed %d", seed)
		assert.Equal(t, a.Map().Rooms, b.Map().Rooms, "seed %d", seed)
		assert.Equal(t, names(a.World()), names(b.World()), "seed %d", seed)

		for i := 0; i < 20; i++ {
			d := core.Direction(i % 4)
			a.Step(input.MoveDir(d))
			b.Step(input.MoveDir(d))
		}
		pa, _ := a.PlayerPosition()
		pb, _ := b.PlayerPosition()
		assert.Equal(t, pa, pb, "seed %d", seed)
		assert.Equal(t, a.Map().Revealed, b.Map().Revealed, "seed %d", seed)
	}
}

func TestEngine_TickTransitions(t *testing.T) {
	tests := []struct {
		name      string
		cmd       input.Command
		wantState states.RunState
		wantTurn  int
	}{
		{"no input stays frozen", input.None, states.AwaitingInput, 0},
		{"zero move is not a command", input.Move(0, 0), states.AwaitingInput, 0},
		{"long move is not a command", input.Move(2, 0), states.AwaitingInput, 0},
		{"wait starts a turn", input.Wait(), states.Running, 1},
		{"move starts a turn", input.Move(1, 0), states.Running, 1},
		{"diagonal move starts a turn", input.Move(-1, -1), states.Running, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newRoomEngine(t)
			before, _ := engine.PlayerPosition()

			assert.Equal(t, tt.wantState, engine.Tick(tt.cmd))
			assert.Equal(t, tt.wantState, engine.RunState())
			assert.Equal(t, tt.wantTurn, engine.Turn())

			if tt.wantState == states.AwaitingInput {
				after, _ := engine.PlayerPosition()
				assert.Equal(t, before, after)
				assert.Empty(t, engine.StateMachine().GetHistory())
			}
		})
	}
}

func TestEngine_RunningIgnoresInput(t *testing.T) {
	engine := newRoomEngine(t)

	require.Equal(t, states.Running, engine.Tick(input.Move(1, 0)))
	pos, _ := engine.PlayerPosition()
	assert.Equal(t, core.NewCoordinate(3, 2), pos, "moves apply as soon as they are accepted")

	assert.Equal(t, states.AwaitingInput, engine.Tick(input.Move(1, 0)))
	after, _ := engine.PlayerPosition()
	assert.Equal(t, pos, after, "the command given while running is dropped")
	assert.Equal(t, 1, engine.Turn())

	history := engine.StateMachine().GetHistory()
	require.Len(t, history, 2)
	assert.Equal(t, states.AwaitingInput, history[0].From)
	assert.Equal(t, states.Running, history[0].To)
	assert.Equal(t, states.Running, history[1].From)
	assert.Equal(t, states.AwaitingInput, history[1].To)
}

func TestEngine_Step(t *testing.T) {
	engine := newRoomEngine(t)
	m := engine.Map()

	assert.Equal(t, states.AwaitingInput, engine.Step(input.MoveDir(core.West)))
	pos, _ := engine.PlayerPosition()
	assert.Equal(t, core.NewCoordinate(1, 2), pos)
	assert.Equal(t, 1, engine.Turn())

	// (0,2) is the outer wall
	assert.Equal(t, states.AwaitingInput, engine.Step(input.MoveDir(core.West)))
	pos, _ = engine.PlayerPosition()
	assert.Equal(t, core.NewCoordinate(1, 2), pos)
	assert.Equal(t, 2, engine.Turn())
	assert.True(t, m.IsVisible(1, 2))

	assert.Equal(t, states.AwaitingInput, engine.Step(input.None))
	assert.Equal(t, 2, engine.Turn())
}

func TestEngine_ViewshedDirtyUntilRunning(t *testing.T) {
	engine := newRoomEngine(t)
	w := engine.World()
	player := engine.Player()

	engine.Tick(input.MoveDir(core.East))
	vs, ok := w.Viewsheds.Get(player)
	require.True(t, ok)
	assert.True(t, vs.Dirty)

	engine.Tick(input.None)
	assert.False(t, vs.Dirty)
	assert.True(t, vs.Sees(core.NewCoordinate(3, 2)))
}

func TestEngine_EventOrder(t *testing.T) {
	t.Run("move", func(t *testing.T) {
		engine := newRoomEngine(t)
		seen := recordEvents(engine.EventBus())

		engine.Step(input.MoveDir(core.South))

		assert.Equal(t, []string{
			events.TypeTurnStarted,
			events.TypeEntityMoved,
			events.TypeStateTransition,
			events.TypeViewshedUpdated,
			events.TypeTurnEnded,
			events.TypeStateTransition,
		}, *seen)
	})

	t.Run("blocked", func(t *testing.T) {
		engine := newRoomEngine(t)
		engine.Step(input.MoveDir(core.West))
		seen := recordEvents(engine.EventBus())

		engine.Step(input.MoveDir(core.West))

		assert.Equal(t, []string{
			events.TypeTurnStarted,
			events.TypeMoveBlocked,
			events.TypeStateTransition,
			events.TypeTurnEnded,
			events.TypeStateTransition,
		}, *seen)
	})

	t.Run("wait", func(t *testing.T) {
		engine := newRoomEngine(t)
		seen := recordEvents(engine.EventBus())

		engine.Step(input.Wait())

		assert.Equal(t, []string{
			events.TypeTurnStarted,
			events.TypeStateTransition,
			events.TypeTurnEnded,
			events.TypeStateTransition,
		}, *seen)
	})
}

func TestEngine_EventPayloads(t *testing.T) {
	engine := newRoomEngine(t)
	bus := engine.EventBus()

	var moved *events.EntityMovedEvent
	var blocked *events.MoveBlockedEvent
	var ended []*events.TurnEndedEvent
	bus.SubscribeFunc(events.TypeEntityMoved, func(e events.Event) { moved = e.(*events.EntityMovedEvent) })
	bus.SubscribeFunc(events.TypeMoveBlocked, func(e events.Event) { blocked = e.(*events.MoveBlockedEvent) })
	bus.SubscribeFunc(events.TypeTurnEnded, func(e events.Event) { ended = append(ended, e.(*events.TurnEndedEvent)) })

	engine.Step(input.MoveDir(core.North))
	engine.Step(input.MoveDir(core.North))

	require.NotNil(t, moved)
	assert.Equal(t, uint64(engine.Player()), moved.Entity)
	assert.Equal(t, events.Point{X: 2, Y: 2}, moved.From)
	assert.Equal(t, events.Point{X: 2, Y: 1}, moved.To)
	assert.Equal(t, 1, moved.TurnNumber)
	assert.Equal(t, engine.SessionID(), moved.SessionID())

	require.NotNil(t, blocked)
	assert.Equal(t, events.Point{X: 2, Y: 1}, blocked.At)
	assert.Equal(t, events.Point{X: 2, Y: 0}, blocked.Target)
	assert.Equal(t, 2, blocked.TurnNumber)

	require.Len(t, ended, 2)
	assert.Equal(t, 1, ended[0].ViewshedsUpdated)
	assert.Equal(t, 0, ended[1].ViewshedsUpdated, "a blocked move leaves the viewshed clean")
	assert.Equal(t, 0, ended[1].MonstersProcessed)
}

func TestEngine_CommitsDeferredChanges(t *testing.T) {
	engine := newRoomEngine(t)
	w := engine.World()

	var committed int
	engine.EventBus().SubscribeFunc(events.TypeTurnEnded, func(e events.Event) {
		committed = e.(*events.TurnEndedEvent).CommandsCommitted
	})

	extra := w.CreateEntity()
	engine.Despawn(extra)

	engine.Tick(input.Wait())
	assert.True(t, w.Alive(extra), "deferred changes wait for the commit phase")

	engine.Tick(input.None)
	assert.False(t, w.Alive(extra))
	assert.Equal(t, 1, committed)
	assert.Zero(t, w.Pending())
}

func TestEngine_ExplorationLayers(t *testing.T) {
	engine := newTestEngine(t, 80, 50, 5)
	m := engine.Map()
	rng := testutil.NewTestRNG(99)

	countRevealed := func() int {
		n := 0
		for _, r := range m.Revealed {
			if r {
				n++
			}
		}
		return n
	}

	prev := countRevealed()
	require.Positive(t, prev)

	for i := 0; i < 200; i++ {
		before := append([]bool(nil), m.Revealed...)
		engine.Step(input.MoveDir(core.Direction(rng.Intn(4))))

		for idx := range m.Tiles {
			if before[idx] {
				require.True(t, m.Revealed[idx], "step %d: tile %d was forgotten", i, idx)
			}
			if m.Visible[idx] {
				require.True(t, m.Revealed[idx], "step %d: tile %d visible but not revealed", i, idx)
			}
		}

		now := countRevealed()
		require.GreaterOrEqual(t, now, prev)
		prev = now
	}
}

func TestEngine_PlayerPositionMissing(t *testing.T) {
	engine := newRoomEngine(t)
	engine.Despawn(engine.Player())

	_, ok := engine.PlayerPosition()
	assert.True(t, ok, "despawn waits for the commit phase")

	engine.Step(input.Wait())
	_, ok = engine.PlayerPosition()
	assert.False(t, ok)
	assert.False(t, engine.World().Alive(engine.Player()))

	// a turn without a player still cycles cleanly
	assert.Equal(t, states.AwaitingInput, engine.Step(input.MoveDir(core.East)))
	assert.Equal(t, 2, engine.Turn())
}
