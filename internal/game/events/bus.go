package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// registration is one entry in the delivery list. Exactly one of sub and fn
// is set; fn registrations are bound to a single event type.
type registration struct {
	id        string
	sub       Subscriber
	fn        EventHandler
	eventType string
}

func (r registration) wants(eventType string) bool {
	if r.sub != nil {
		return r.sub.InterestedIn(eventType)
	}
	return r.eventType == eventType
}

func (r registration) deliver(e Event) {
	if r.sub != nil {
		r.sub.HandleEvent(e)
		return
	}
	r.fn(e)
}

// EventBus delivers events synchronously on the publishing goroutine.
// Subscribers and function handlers share one list and are called in the
// order they registered, so a seeded run produces the same handler order
// every time.
//
// The bus also keeps a journal of the turn in progress: it is cleared by
// every TurnStarted event and holds everything published since.
type EventBus struct {
	mu      sync.RWMutex
	regs    []registration
	nextFn  int
	seq     uint64
	journal []Event
	logger  zerolog.Logger
}

var _ Bus = (*EventBus)(nil)

// NewEventBus creates a new event bus instance
func NewEventBus() *EventBus {
	return &EventBus{
		logger: log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a subscriber. Re-subscribing an ID replaces the earlier
// registration in place.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	reg := registration{id: subscriber.ID(), sub: subscriber}
	if i := eb.indexOf(reg.id); i >= 0 {
		eb.regs[i] = reg
	} else {
		eb.regs = append(eb.regs, reg)
	}
	eb.logger.Debug().
		Str("subscriber_id", reg.id).
		Msg("Subscriber added to event bus")
}

// SubscribeFunc registers handler for one event type and returns an ID that
// Unsubscribe accepts.
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextFn++
	id := fmt.Sprintf("%s_func_%d", eventType, eb.nextFn)
	eb.regs = append(eb.regs, registration{id: id, fn: handler, eventType: eventType})

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("handler_id", id).
		Msg("Function handler added to event bus")
	return id
}

// Unsubscribe removes a subscriber or function handler by ID
func (eb *EventBus) Unsubscribe(id string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if i := eb.indexOf(id); i >= 0 {
		eb.regs = append(eb.regs[:i], eb.regs[i+1:]...)
		eb.logger.Debug().Str("subscriber_id", id).Msg("Subscriber removed from event bus")
	}
}

func (eb *EventBus) indexOf(id string) int {
	for i, r := range eb.regs {
		if r.id == id {
			return i
		}
	}
	return -1
}

// Publish stamps event with the bus's next sequence number, records it in the
// turn journal and delivers it. A panicking handler is logged and does not
// stop delivery to the others.
func (eb *EventBus) Publish(event Event) {
	eb.mu.Lock()
	eb.seq++
	if s, ok := event.(sequenced); ok {
		s.setSeq(eb.seq)
	}
	if event.Type() == TypeTurnStarted {
		eb.journal = eb.journal[:0]
	}
	eb.journal = append(eb.journal, event)
	seq := eb.seq
	regs := make([]registration, 0, len(eb.regs))
	for _, r := range eb.regs {
		if r.wants(event.Type()) {
			regs = append(regs, r)
		}
	}
	eb.mu.Unlock()

	eb.logger.Debug().
		Str("event_type", event.Type()).
		Str("session_id", event.SessionID()).
		Uint64("seq", seq).
		Int("handlers", len(regs)).
		Msg("Publishing event")

	// Handlers run unlocked so they may subscribe or publish themselves
	for _, r := range regs {
		eb.safeDeliver(r, event)
	}
}

func (eb *EventBus) safeDeliver(r registration, event Event) {
	defer func() {
		if p := recover(); p != nil {
			eb.logger.Error().
				Str("handler_id", r.id).
				Str("event_type", event.Type()).
				Interface("panic", p).
				Msg("Handler panicked while handling event")
		}
	}()
	r.deliver(event)
}

// Journal returns the events published since the most recent TurnStarted,
// oldest first. Before the first turn it holds the setup events.
func (eb *EventBus) Journal() []Event {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return append([]Event(nil), eb.journal...)
}

// Seq returns the sequence number of the last published event
func (eb *EventBus) Seq() uint64 {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return eb.seq
}

// GetSubscriberCount returns the number of Subscriber registrations
func (eb *EventBus) GetSubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	n := 0
	for _, r := range eb.regs {
		if r.sub != nil {
			n++
		}
	}
	return n
}

// GetFuncHandlerCount returns the number of function handlers for an event type
func (eb *EventBus) GetFuncHandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	n := 0
	for _, r := range eb.regs {
		if r.fn != nil && r.eventType == eventType {
			n++
		}
	}
	return n
}
