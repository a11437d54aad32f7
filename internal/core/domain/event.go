package domain

import "time"

// SessionEventType is a type that represents the type of a session lifecycle event
type SessionEventType string

const (
	SessionEventCreated   SessionEventType = "session.created"
	SessionEventCompleted SessionEventType = "session.completed"
	SessionEventExpired   SessionEventType = "session.expired"
)

// SessionEvent is a struct that represents a session lifecycle notification
type SessionEvent struct {
	Type       SessionEventType `json:"type"`
	SessionID  string           `json:"session_id"`
	FileCount  int              `json:"file_count"`
	OccurredAt time.Time        `json:"occurred_at"`
}
