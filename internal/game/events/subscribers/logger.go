package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/roguecore/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("session_id", event.SessionID()).
		Uint64("seq", event.Sequence()).
		Time("event_time", event.Timestamp()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.logLevel)
	if ls.logLevel == zerolog.NoLevel || ls.logLevel == zerolog.Disabled {
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int64("seed", e.Seed).
			Int("map_width", e.MapWidth).
			Int("map_height", e.MapHeight).
			Int("rooms", e.Rooms).
			Int("monsters", e.Monsters)

	case *events.TurnStartedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Str("command", e.Command)

	case *events.TurnEndedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("viewsheds_updated", e.ViewshedsUpdated).
			Int("monsters_processed", e.MonstersProcessed).
			Int("commands_committed", e.CommandsCommitted).
			Dur("process_time", e.ProcessedTime)

	case *events.EntityMovedEvent:
		logEvent.
			Uint64("entity", e.Entity).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y).
			Int("turn", e.TurnNumber)

	case *events.MoveBlockedEvent:
		logEvent.
			Uint64("entity", e.Entity).
			Int("x", e.At.X).
			Int("y", e.At.Y).
			Int("target_x", e.Target.X).
			Int("target_y", e.Target.Y).
			Int("turn", e.TurnNumber)

	case *events.ViewshedUpdatedEvent:
		logEvent.
			Uint64("entity", e.Entity).
			Int("visible_tiles", e.VisibleTiles).
			Bool("is_player", e.IsPlayer).
			Int("turn", e.TurnNumber)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_state", e.FromState).
			Str("to_state", e.ToState).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
