package states

import "fmt"

// RunState is the scheduler's mode
type RunState int

const (
	// AwaitingInput - frozen until the player issues a command
	AwaitingInput RunState = iota

	// Running - advance the simulation by one turn
	Running
)

// String returns the string representation of a RunState
func (s RunState) String() string {
	switch s {
	case AwaitingInput:
		return "AwaitingInput"
	case Running:
		return "Running"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// AcceptsInput returns true if player commands are consumed in this state
func (s RunState) AcceptsInput() bool {
	return s == AwaitingInput
}

// AllowedTransitions returns the valid states this state can transition to.
// There is no terminal state.
func (s RunState) AllowedTransitions() []RunState {
	switch s {
	case AwaitingInput:
		return []RunState{Running}
	case Running:
		return []RunState{AwaitingInput}
	default:
		return []RunState{}
	}
}

// CanTransitionTo checks if a transition from this state to the target is allowed
func (s RunState) CanTransitionTo(target RunState) bool {
	for _, allowed := range s.AllowedTransitions() {
		if allowed == target {
			return true
		}
	}
	return false
}
