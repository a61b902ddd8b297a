package domain

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// OutboxStatus represents the processing lifecycle status of an outbox event.
type OutboxStatus string

const (
	// OutboxStatus_Pending indicates the event is ready to be processed.
	OutboxStatus_Pending OutboxStatus = "PENDING"
	// OutboxStatus_Failed indicates the event exceeded retries and stopped processing.
	OutboxStatus_Failed OutboxStatus = "FAILED"
)

// OutboxTopic identifies the broker topic used for publishing outbox events.
type OutboxTopic string

const (
	// OutboxTopic_Users is the topic for user account events.
	OutboxTopic_Users OutboxTopic = "Users"
)

// DefaultOutboxMaxRetries is the number of publish attempts before an event is marked as failed.
const DefaultOutboxMaxRetries = 5

// OutboxEvent represents an event stored in the outbox.
type OutboxEvent struct {
	ID         uuid.UUID    `json:"id"`
	EntityType string       `json:"entity_type"`
	EntityID   uuid.UUID    `json:"entity_id"`
	Topic      OutboxTopic  `json:"topic"`
	EventType  EventType    `json:"event_type"`
	Payload    []byte       `json:"payload"`
	Status     OutboxStatus `json:"status"`
	RetryCount int          `json:"retry_count"`
	MaxRetries int          `json:"max_retries"`
	LastError  *string      `json:"last_error,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// GetID returns the event ID.
func (e *OutboxEvent) GetID() uuid.UUID { return e.ID }

// SetID assigns the event ID.
func (e *OutboxEvent) SetID(id uuid.UUID) { e.ID = id }

// NewUserOutboxEvent builds a pending outbox event carrying the user event as JSON payload.
func NewUserOutboxEvent(event UserEvent) (*OutboxEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user event: %w", err)
	}
	return &OutboxEvent{
		EntityType: "User",
		EntityID:   event.UserID,
		Topic:      OutboxTopic_Users,
		EventType:  event.Type,
		Payload:    payload,
		Status:     OutboxStatus_Pending,
		MaxRetries: DefaultOutboxMaxRetries,
		CreatedAt:  event.CreatedAt,
	}, nil
}
