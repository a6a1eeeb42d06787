package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is anything the journal publishes on the event bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is an Event rebuilt from the wire, where only the envelope's
// type, data and time survive.
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

// OwnerOf reads the user_id an event is addressed to. Every journal event
// carries one; false means the payload is malformed.
func OwnerOf(event Event) (uuid.UUID, bool) {
	raw, ok := event.Payload()["user_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
