package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is implemented by advisory events the rate provider publishes for the
// presentation layer. Events are informational only and never block a call.
type Event interface {
	EventType() string
}

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeOfflineModeEngaged EventType = "Rates.OfflineModeEngaged"
	EventTypeCacheCleared       EventType = "Rates.CacheCleared"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// OfflineModeEngaged is published when a live fetch failed and the provider
// fell back to the durable cache record.
type OfflineModeEngaged struct {
	EventID     uuid.UUID
	Reason      string        // why the live fetch failed
	SnapshotAge time.Duration // age of the cached snapshot being served
	Timestamp   time.Time
}

// CacheCleared is published after a cache-clear wiped both the in-memory
// snapshot and the durable record.
type CacheCleared struct {
	EventID   uuid.UUID
	Timestamp time.Time
}

func (e OfflineModeEngaged) EventType() string { return EventTypeOfflineModeEngaged.String() }
func (e CacheCleared) EventType() string       { return EventTypeCacheCleared.String() }
