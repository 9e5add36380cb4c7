package states

import (
	"errors"
	"time"
)

var errNoTurn = errors.New("cannot run before a turn has been started")

// AwaitingInputState is the idle, render-only state
type AwaitingInputState struct{}

func NewAwaitingInputState() State {
	return &AwaitingInputState{}
}

func (s *AwaitingInputState) RunState() RunState {
	return AwaitingInput
}

func (s *AwaitingInputState) Enter(ctx *TurnContext) error {
	ctx.Logger.Debug().Int("turn", ctx.Turn).Msg("Waiting for input")
	return nil
}

func (s *AwaitingInputState) Exit(ctx *TurnContext) error {
	return nil
}

func (s *AwaitingInputState) Validate(ctx *TurnContext) error {
	return nil
}

// RunningState times one simulation step
type RunningState struct{}

func NewRunningState() State {
	return &RunningState{}
}

func (s *RunningState) RunState() RunState {
	return Running
}

func (s *RunningState) Enter(ctx *TurnContext) error {
	ctx.TurnStarted = time.Now()
	return nil
}

func (s *RunningState) Exit(ctx *TurnContext) error {
	ctx.LastTurnDuration = time.Since(ctx.TurnStarted)
	ctx.Logger.Debug().
		Int("turn", ctx.Turn).
		Dur("duration", ctx.LastTurnDuration).
		Msg("Turn simulated")
	return nil
}

func (s *RunningState) Validate(ctx *TurnContext) error {
	if ctx.Turn < 1 {
		return errNoTurn
	}
	return nil
}
