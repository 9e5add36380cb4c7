package events

import (
	"time"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeTurnStarted     = "turn.started"
	TypeTurnEnded       = "turn.ended"
	TypeEntityMoved     = "entity.moved"
	TypeMoveBlocked     = "move.blocked"
	TypeViewshedUpdated = "viewshed.updated"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published once the map is built and entities are spawned
type GameStartedEvent struct {
	BaseEvent
	Seed      int64 `json:"seed"`
	MapWidth  int   `json:"map_width"`
	MapHeight int   `json:"map_height"`
	Rooms     int   `json:"rooms"`
	Monsters  int   `json:"monsters"`
}

func NewGameStartedEvent(sessionID string, seed int64, width, height, rooms, monsters int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, sessionID),
		Seed:      seed,
		MapWidth:  width,
		MapHeight: height,
		Rooms:     rooms,
		Monsters:  monsters,
	}
}

// TurnStartedEvent is published when the player's command is accepted
type TurnStartedEvent struct {
	BaseEvent
	TurnNumber int    `json:"turn"`
	Command    string `json:"command"`
}

func NewTurnStartedEvent(sessionID string, turn int, command string) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent:  newBase(TypeTurnStarted, sessionID),
		TurnNumber: turn,
		Command:    command,
	}
}

// TurnEndedEvent is published after the systems and the commit phase ran
type TurnEndedEvent struct {
	BaseEvent
	TurnNumber        int           `json:"turn"`
	ViewshedsUpdated  int           `json:"viewsheds_updated"`
	MonstersProcessed int           `json:"monsters_processed"`
	CommandsCommitted int           `json:"commands_committed"`
	ProcessedTime     time.Duration `json:"processed_time"`
}

func NewTurnEndedEvent(sessionID string, turn, viewsheds, monsters, committed int, processed time.Duration) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:         newBase(TypeTurnEnded, sessionID),
		TurnNumber:        turn,
		ViewshedsUpdated:  viewsheds,
		MonstersProcessed: monsters,
		CommandsCommitted: committed,
		ProcessedTime:     processed,
	}
}

// Point is a grid cell carried by events
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EntityMovedEvent is published after a successful move
type EntityMovedEvent struct {
	BaseEvent
	Entity     uint64 `json:"entity"`
	From       Point  `json:"from"`
	To         Point  `json:"to"`
	TurnNumber int    `json:"turn"`
}

func NewEntityMovedEvent(sessionID string, entity uint64, fromX, fromY, toX, toY, turn int) *EntityMovedEvent {
	return &EntityMovedEvent{
		BaseEvent:  newBase(TypeEntityMoved, sessionID),
		Entity:     entity,
		From:       Point{X: fromX, Y: fromY},
		To:         Point{X: toX, Y: toY},
		TurnNumber: turn,
	}
}

// MoveBlockedEvent is published when a move runs into a wall or the map edge
type MoveBlockedEvent struct {
	BaseEvent
	Entity     uint64 `json:"entity"`
	At         Point  `json:"at"`
	Target     Point  `json:"target"`
	TurnNumber int    `json:"turn"`
}

func NewMoveBlockedEvent(sessionID string, entity uint64, x, y, targetX, targetY, turn int) *MoveBlockedEvent {
	return &MoveBlockedEvent{
		BaseEvent:  newBase(TypeMoveBlocked, sessionID),
		Entity:     entity,
		At:         Point{X: x, Y: y},
		Target:     Point{X: targetX, Y: targetY},
		TurnNumber: turn,
	}
}

// ViewshedUpdatedEvent is published for every recomputed viewshed
type ViewshedUpdatedEvent struct {
	BaseEvent
	Entity       uint64 `json:"entity"`
	VisibleTiles int    `json:"visible_tiles"`
	IsPlayer     bool   `json:"is_player"`
	TurnNumber   int    `json:"turn"`
}

func NewViewshedUpdatedEvent(sessionID string, entity uint64, visible int, isPlayer bool, turn int) *ViewshedUpdatedEvent {
	return &ViewshedUpdatedEvent{
		BaseEvent:    newBase(TypeViewshedUpdated, sessionID),
		Entity:       entity,
		VisibleTiles: visible,
		IsPlayer:     isPlayer,
		TurnNumber:   turn,
	}
}

// StateTransitionEvent is published when the run state changes
type StateTransitionEvent struct {
	BaseEvent
	FromState string `json:"from_state"`
	ToState   string `json:"to_state"`
	Reason    string `json:"reason"`
}

func NewStateTransitionEvent(sessionID, fromState, toState, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, sessionID),
		FromState: fromState,
		ToState:   toState,
		Reason:    reason,
	}
}
