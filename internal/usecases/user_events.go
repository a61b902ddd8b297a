package usecases

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
)

// UserEventRecorder stores user events in the outbox for the message relay.
type UserEventRecorder struct {
	repo         *datastore.Repository
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewUserEventRecorder creates a UserEventRecorder.
func NewUserEventRecorder(repo *datastore.Repository, timeProvider domain.CurrentTimeProvider, logger *log.Logger) UserEventRecorder {
	return UserEventRecorder{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Record stores an event of the given type about the user. The account change
// is already committed at this point, so a failure is logged and not returned.
func (r UserEventRecorder) Record(ctx context.Context, eventType domain.EventType, userID uuid.UUID, email string) {
	event, err := domain.NewUserOutboxEvent(domain.UserEvent{
		Type:      eventType,
		UserID:    userID,
		Email:     email,
		CreatedAt: r.timeProvider.Now().UTC(),
	})
	if err == nil {
		_, err = datastore.Create(ctx, r.repo, event)
	}
	if err != nil {
		r.logger.Printf("UserEventRecorder: failed to record %s for user %s: %v", eventType, userID, err)
	}
}

func (r UserEventRecorder) now() time.Time {
	return r.timeProvider.Now().UTC()
}
