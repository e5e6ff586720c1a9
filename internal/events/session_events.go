package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the session lifecycle events the service emits
type EventType string

const (
	EventSessionStarted   EventType = "session.started"
	EventSessionSubmitted EventType = "session.submitted"
	EventSessionEnded     EventType = "session.ended"
)

const eventSource = "reading-test-service"

// SessionEvent is the envelope for all published session events
type SessionEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

type SessionStartedEvent struct {
	SessionID      string    `json:"session_id"`
	PassageID      uint      `json:"passage_id"`
	TotalQuestions int       `json:"total_questions"`
	StartedAt      time.Time `json:"started_at"`
}

type SessionSubmittedEvent struct {
	SessionID   string    `json:"session_id"`
	PassageID   uint      `json:"passage_id"`
	Score       int       `json:"score"`
	TotalMarks  int       `json:"total_marks"`
	Percentage  float64   `json:"percentage"`
	BandScore   float64   `json:"band_score"`
	TimeTaken   int       `json:"time_taken"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type SessionEndedEvent struct {
	SessionID string    `json:"session_id"`
	PassageID uint      `json:"passage_id"`
	TimeTaken int       `json:"time_taken"`
	EndedAt   time.Time `json:"ended_at"`
}

func newEvent(eventType EventType, data interface{}) *SessionEvent {
	return &SessionEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   "1.0",
		Data:      data,
	}
}

func NewSessionStartedEvent(data SessionStartedEvent) *SessionEvent {
	return newEvent(EventSessionStarted, data)
}

func NewSessionSubmittedEvent(data SessionSubmittedEvent) *SessionEvent {
	return newEvent(EventSessionSubmitted, data)
}

func NewSessionEndedEvent(data SessionEndedEvent) *SessionEvent {
	return newEvent(EventSessionEnded, data)
}
