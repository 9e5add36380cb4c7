package states

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/roguecore/internal/game/events"
)

func TestRunState_String(t *testing.T) {
	tests := []struct {
		state    RunState
		expected string
	}{
		{AwaitingInput, "AwaitingInput"},
		{Running, "Running"},
		{RunState(999), "Unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestRunState_Transitions(t *testing.T) {
	tests := []struct {
		from    RunState
		to      RunState
		allowed bool
	}{
		{AwaitingInput, Running, true},
		{Running, AwaitingInput, true},
		{AwaitingInput, AwaitingInput, false},
		{Running, Running, false},
		{RunState(7), AwaitingInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, AwaitingInput.AcceptsInput())
	assert.False(t, Running.AcceptsInput())
	assert.Empty(t, RunState(7).AllowedTransitions())
}

func TestStateMachine(t *testing.T) {
	logger := zerolog.Nop()

	setup := func() (*StateMachine, *TurnContext, *events.EventBus) {
		ctx := NewTurnContext("test-session", logger)
		bus := events.NewEventBus()
		return NewStateMachine(ctx, bus), ctx, bus
	}

	t.Run("NewStateMachine", func(t *testing.T) {
		sm, _, _ := setup()
		assert.Equal(t, AwaitingInput, sm.Current())
		assert.Len(t, sm.states, 2)
		assert.Empty(t, sm.GetHistory())
	})

	t.Run("Full turn cycle", func(t *testing.T) {
		sm, ctx, bus := setup()

		var published []*events.StateTransitionEvent
		bus.SubscribeFunc(events.TypeStateTransition, func(e events.Event) {
			published = append(published, e.(*events.StateTransitionEvent))
		})

		ctx.Turn = 1
		require.NoError(t, sm.TransitionTo(Running, "command accepted"))
		assert.Equal(t, Running, sm.Current())
		assert.False(t, ctx.TurnStarted.IsZero())

		time.Sleep(2 * time.Millisecond)
		require.NoError(t, sm.TransitionTo(AwaitingInput, "systems complete"))
		assert.Equal(t, AwaitingInput, sm.Current())
		assert.GreaterOrEqual(t, ctx.LastTurnDuration, 2*time.Millisecond)

		history := sm.GetHistory()
		require.Len(t, history, 2)
		assert.Equal(t, AwaitingInput, history[0].From)
		assert.Equal(t, Running, history[0].To)
		assert.Equal(t, "systems complete", history[1].Reason)

		require.Len(t, published, 2)
		assert.Equal(t, "test-session", published[0].SessionID())
		assert.Equal(t, "AwaitingInput", published[0].FromState)
		assert.Equal(t, "Running", published[0].ToState)
	})

	t.Run("Invalid transitions", func(t *testing.T) {
		sm, ctx, _ := setup()
		ctx.Turn = 1

		err := sm.TransitionTo(AwaitingInput, "no-op")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid transition")
		assert.Equal(t, AwaitingInput, sm.Current())

		require.NoError(t, sm.TransitionTo(Running, "go"))
		assert.Error(t, sm.TransitionTo(Running, "again"))
		assert.Equal(t, Running, sm.Current())
	})

	t.Run("Running requires a started turn", func(t *testing.T) {
		sm, _, _ := setup()

		err := sm.TransitionTo(Running, "too early")
		require.Error(t, err)
		assert.ErrorIs(t, err, errNoTurn)
		assert.Equal(t, AwaitingInput, sm.Current())
		assert.Empty(t, sm.GetHistory())
	})

	t.Run("Enter failure rolls back", func(t *testing.T) {
		sm, ctx, _ := setup()
		ctx.Turn = 1
		sm.RegisterState(&failingState{state: Running})

		err := sm.TransitionTo(Running, "broken")
		require.Error(t, err)
		assert.Equal(t, AwaitingInput, sm.Current())
	})

	t.Run("History is bounded", func(t *testing.T) {
		sm, ctx, _ := setup()
		sm.maxHistorySize = 4
		ctx.Turn = 1

		for i := 0; i < 5; i++ {
			require.NoError(t, sm.TransitionTo(Running, "tick"))
			require.NoError(t, sm.TransitionTo(AwaitingInput, "tock"))
		}

		history := sm.GetHistory()
		assert.Len(t, history, 4)
		assert.Equal(t, "tock", history[3].Reason)
	})

	t.Run("Nil bus", func(t *testing.T) {
		ctx := NewTurnContext("quiet", logger)
		ctx.Turn = 1
		sm := NewStateMachine(ctx, nil)
		assert.NoError(t, sm.TransitionTo(Running, "no publisher"))
		assert.True(t, sm.CanTransitionTo(AwaitingInput))
		assert.Same(t, ctx, sm.GetContext())
	})
}

type failingState struct {
	state RunState
}

func (s *failingState) RunState() RunState              { return s.state }
func (s *failingState) Enter(ctx *TurnContext) error    { return errors.New("enter failed") }
func (s *failingState) Exit(ctx *TurnContext) error     { return nil }
func (s *failingState) Validate(ctx *TurnContext) error { return nil }
