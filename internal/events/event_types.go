package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntityInserted EventType = "entity_inserted"
	EventEntityUpdated  EventType = "entity_updated"
	EventEntityDeleted  EventType = "entity_deleted"
)

// Event records a successful mutation against an entity store.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Entity    string    `json:"entity"`
	EntityKey string    `json:"entity_key"`
	Timestamp time.Time `json:"timestamp"`
}
