package states

import (
	"time"

	"github.com/rs/zerolog"
)

// TurnContext carries the per-session data states need on enter and exit
type TurnContext struct {
	SessionID string
	Logger    zerolog.Logger

	// Turn is the number of the turn being (or last) simulated; 0 before the first command
	Turn int

	// TurnStarted is when the current Running phase was entered
	TurnStarted time.Time

	// LastTurnDuration is how long the previous Running phase took
	LastTurnDuration time.Duration
}

// NewTurnContext creates a new turn context
func NewTurnContext(sessionID string, logger zerolog.Logger) *TurnContext {
	return &TurnContext{
		SessionID: sessionID,
		Logger:    logger.With().Str("session_id", sessionID).Logger(),
	}
}
