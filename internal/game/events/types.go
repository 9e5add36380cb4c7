package events

import (
	"time"
)

// Event is anything the engine announces on the bus
type Event interface {
	Type() string
	Timestamp() time.Time
	SessionID() string
	// Sequence is the bus-assigned publish order, starting at 1. Zero means
	// the event was never published.
	Sequence() uint64
}

// BaseEvent carries the fields shared by every event. Embed it by value and
// publish a pointer to the outer struct so the bus can stamp Seq.
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Session   string    `json:"session_id"`
	Seq       uint64    `json:"seq"`
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) SessionID() string    { return e.Session }
func (e BaseEvent) Sequence() uint64     { return e.Seq }

func (e *BaseEvent) setSeq(n uint64) { e.Seq = n }

type sequenced interface {
	setSeq(uint64)
}

func newBase(eventType, sessionID string) BaseEvent {
	return BaseEvent{EventType: eventType, Time: time.Now(), Session: sessionID}
}

// EventHandler handles a single event type registered with SubscribeFunc
type EventHandler func(Event)

// Subscriber receives every event it declares interest in
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher is the engine-facing half of the bus
type Publisher interface {
	Publish(Event)
}

// Bus is the full event bus surface
type Bus interface {
	Publisher
	Subscribe(Subscriber)
	SubscribeFunc(eventType string, handler EventHandler) string
	Unsubscribe(id string)
	Journal() []Event
}
