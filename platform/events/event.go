// Package events is the in-process event bus the modules use to notify
// each other without importing one another. Routing and ad-spend publish
// their outcomes here; anything interested subscribes by event name.
package events

import (
	"context"
	"time"
)

// Event is what flows over the bus. The name keys handler dispatch.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the timestamp so concrete events only declare their
// own payload fields.
type BaseEvent struct {
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// NewBaseEvent stamps an event with the current time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{Timestamp: time.Now()}
}

// Handler reacts to a single event type.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus publishes events to the handlers subscribed under their name.
type Bus interface {
	// Publish hands the event to each subscribed handler asynchronously.
	Publish(ctx context.Context, event Event)

	// PublishSync blocks until every handler has run, returning the
	// first handler error.
	PublishSync(ctx context.Context, event Event) error

	// Subscribe registers a handler under the name the event reports
	// from EventName.
	Subscribe(eventName string, handler Handler)
}
