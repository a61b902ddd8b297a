package usecases

import (
	"context"
	"log"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
)

// relayBatchSize caps the number of events relayed per execution.
const relayBatchSize = 100

// RelayOutbox defines the interface for relaying outbox events
type RelayOutbox interface {
	// Execute processes pending outbox events and relays them
	Execute(ctx context.Context) error
}

// RelayOutboxImpl publishes pending outbox events to the event bus.
type RelayOutboxImpl struct {
	repo      *datastore.Repository
	publisher domain.EventPublisher
	logger    *log.Logger
}

// NewRelayOutboxImpl creates a new instance
func NewRelayOutboxImpl(repo *datastore.Repository, publisher domain.EventPublisher, logger *log.Logger) RelayOutboxImpl {
	return RelayOutboxImpl{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute processes pending outbox events, oldest first, and relays them.
// A failing event does not stop the batch.
func (r RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	events, err := datastore.ReadMany(spanCtx, r.repo, func(e *domain.OutboxEvent) bool {
		return e.Status == domain.OutboxStatus_Pending
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})
	if len(events) > relayBatchSize {
		events = events[:relayBatchSize]
	}

	for _, event := range events {
		if err := r.relayEvent(spanCtx, *event); err != nil {
			r.logger.Printf("relay failed for event %s: %v", event.ID, err)
		}
	}
	return nil
}

// relayEvent publishes a single event and deletes it. A publish failure bumps
// the retry counter and marks the event as failed once retries are exhausted.
func (r RelayOutboxImpl) relayEvent(ctx context.Context, event domain.OutboxEvent) error {
	pubErr := r.publisher.PublishEvent(ctx, event)
	if pubErr == nil {
		RecordOutboxRelayed(ctx, "published")
		return datastore.Delete[domain.OutboxEvent](ctx, r.repo, event.ID)
	}

	status := domain.OutboxStatus_Pending
	if event.RetryCount+1 >= event.MaxRetries {
		status = domain.OutboxStatus_Failed
	}
	RecordOutboxRelayed(ctx, string(status))

	msg := pubErr.Error()
	if err := datastore.Update(ctx, r.repo, event.ID, func(e *domain.OutboxEvent) {
		e.RetryCount++
		e.Status = status
		e.LastError = &msg
	}); err != nil {
		return err
	}
	return pubErr
}

// InitRelayOutbox is used to initialize the RelayOutbox in the dependency container
type InitRelayOutbox struct {
	Repo      *datastore.Repository `resolve:""`
	Logger    *log.Logger           `resolve:""`
	Publisher domain.EventPublisher `resolve:""`
}

// Initialize registers the RelayOutbox implementation in the dependency container
func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RelayOutbox](NewRelayOutboxImpl(iro.Repo, iro.Publisher, iro.Logger))
	return ctx, nil
}
