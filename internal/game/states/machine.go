package states

import (
	"fmt"
	"time"

	"github.com/mitchelldurbincs/roguecore/internal/game/events"
)

// State represents a run state with lifecycle callbacks
type State interface {
	// RunState returns the RunState this state represents
	RunState() RunState

	// Enter is called when transitioning into this state
	Enter(ctx *TurnContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *TurnContext) error

	// Validate checks if the state can be entered given the context
	Validate(ctx *TurnContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      RunState
	To        RunState
	Timestamp time.Time
	Reason    string
}

// StateMachine owns the scheduler's RunState and its transition history.
// It is driven from the engine's goroutine only.
type StateMachine struct {
	current        RunState
	states         map[RunState]State
	context        *TurnContext
	history        []Transition
	maxHistorySize int
	eventBus       events.Publisher
}

// NewStateMachine creates a state machine in AwaitingInput
func NewStateMachine(ctx *TurnContext, eventBus events.Publisher) *StateMachine {
	sm := &StateMachine{
		current:        AwaitingInput,
		states:         make(map[RunState]State),
		context:        ctx,
		history:        make([]Transition, 0, 64),
		maxHistorySize: 1000,
		eventBus:       eventBus,
	}

	sm.RegisterState(NewAwaitingInputState())
	sm.RegisterState(NewRunningState())

	return sm
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.states[state.RunState()] = state
}

// Current returns the current run state
func (sm *StateMachine) Current() RunState {
	return sm.current
}

// TransitionTo attempts to transition to the target state
func (sm *StateMachine) TransitionTo(target RunState, reason string) error {
	if !sm.current.CanTransitionTo(target) {
		return fmt.Errorf("invalid transition from %s to %s", sm.current, target)
	}

	currentState, hasCurrentState := sm.states[sm.current]
	targetState, hasTargetState := sm.states[target]
	if !hasTargetState {
		return fmt.Errorf("no state implementation for %s", target)
	}

	if err := targetState.Validate(sm.context); err != nil {
		return fmt.Errorf("target state validation failed: %w", err)
	}

	if hasCurrentState {
		if err := currentState.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from_state", sm.current.String()).
				Str("to_state", target.String()).
				Msg("Error exiting state")
			// Continue with transition despite exit error
		}
	}

	sm.addToHistory(Transition{
		From:      sm.current,
		To:        target,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	previous := sm.current
	sm.current = target

	if err := targetState.Enter(sm.context); err != nil {
		sm.current = previous
		return fmt.Errorf("failed to enter state %s: %w", target, err)
	}

	if sm.eventBus != nil {
		sm.eventBus.Publish(events.NewStateTransitionEvent(
			sm.context.SessionID,
			previous.String(),
			target.String(),
			reason,
		))
	}

	sm.context.Logger.Debug().
		Str("from_state", previous.String()).
		Str("to_state", target.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

// addToHistory adds a transition to the history, maintaining max size
func (sm *StateMachine) addToHistory(transition Transition) {
	sm.history = append(sm.history, transition)

	if len(sm.history) > sm.maxHistorySize {
		sm.history = sm.history[len(sm.history)-sm.maxHistorySize:]
	}
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetContext returns the turn context
func (sm *StateMachine) GetContext() *TurnContext {
	return sm.context
}

// CanTransitionTo checks if a transition to the target state is allowed
func (sm *StateMachine) CanTransitionTo(target RunState) bool {
	return sm.current.CanTransitionTo(target)
}
