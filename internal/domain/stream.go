package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamGeoreferenceChanged = "stream:georeference:changed"
)

// Georeference change operations
const (
	GeoreferenceSet     = "set"
	GeoreferenceUpdated = "update"
	GeoreferenceDeleted = "delete"
)

// GeoreferenceChangedEvent - published after any coordinate write
type GeoreferenceChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	DocumentID int64     `json:"document_id"`
	Operation  string    `json:"operation"`
	Points     int       `json:"points"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewGeoreferenceChangedEvent builds an event for a coordinate write of n points.
func NewGeoreferenceChangedEvent(documentID int64, operation string, points int) GeoreferenceChangedEvent {
	return GeoreferenceChangedEvent{
		EventID:    uuid.New(),
		DocumentID: documentID,
		Operation:  operation,
		Points:     points,
		OccurredAt: time.Now().UTC(),
	}
}

// StreamMessage - a message read from a Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
