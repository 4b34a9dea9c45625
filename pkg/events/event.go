package events

import "time"

// Event is the contract for everything published on the event bus.
type Event interface {
	// EventType returns the event code, e.g. "USER_REGISTERED".
	EventType() string

	// Payload returns the event data as a flat JSON-friendly map.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain value implementation the constructors below build.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
