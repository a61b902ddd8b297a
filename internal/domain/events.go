package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType identifies what happened to a user account.
type EventType string

const (
	// EventType_USER_REGISTERED is recorded when an account is created.
	EventType_USER_REGISTERED EventType = "USER.REGISTERED"
	// EventType_USER_DEACTIVATED is recorded when an account is soft deleted.
	EventType_USER_DEACTIVATED EventType = "USER.DEACTIVATED"
	// EventType_USER_RESTORED is recorded when a deactivated account is restored.
	EventType_USER_RESTORED EventType = "USER.RESTORED"
	// EventType_USER_DELETED is recorded when an account is removed for good.
	EventType_USER_DELETED EventType = "USER.DELETED"
	// EventType_USER_LOCKED_OUT is recorded when too many sign-in attempts failed.
	EventType_USER_LOCKED_OUT EventType = "USER.LOCKED_OUT"
)

// UserEvent represents a domain event about a user account.
type UserEvent struct {
	Type      EventType `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
