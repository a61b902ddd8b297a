package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// PublisherPubSub publishes outbox events to Google Cloud Pub/Sub.
	PublisherPubSub = "pubsub"
	// PublisherLog writes outbox events to the application log.
	PublisherLog = "log"
)

// PubSubEventPublisher implements domain.EventPublisher using Google Cloud Pub/Sub
type PubSubEventPublisher struct {
	Client *pubsubV2.Client
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher
func NewPubSubEventPublisher(client *pubsubV2.Client) PubSubEventPublisher {
	return PubSubEventPublisher{Client: client}
}

// PublishEvent publishes the given event to the appropriate Pub/Sub topic
func (p PubSubEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx, eventAttributes(event))
	defer span.End()

	result := p.Client.Publisher(string(event.Topic)).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_type":  string(event.EventType),
			"entity_type": event.EntityType,
			"entity_id":   event.EntityID.String(),
		},
	})

	_, err := result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// LogEventPublisher implements domain.EventPublisher by logging each event.
type LogEventPublisher struct {
	Logger *log.Logger
}

// PublishEvent writes the event to the log.
func (p LogEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	_, span := telemetry.Start(ctx, eventAttributes(event))
	defer span.End()

	p.Logger.Printf("LogEventPublisher: %s %s %s/%s %s", event.Topic, event.EventType, event.EntityType, event.EntityID, event.Payload)
	telemetry.RecordErrorAndStatus(span, nil)
	return nil
}

func eventAttributes(event domain.OutboxEvent) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("event_id", event.ID.String()),
		attribute.String("event_type", string(event.EventType)),
		attribute.String("topic", string(event.Topic)),
	)
}

// InitPublisher initializes the EventPublisher implementation
type InitPublisher struct {
	Logger    *log.Logger `resolve:""`
	Publisher string      `config:"EVENT_PUBLISHER" default:"pubsub"`
}

// Initialize registers the configured publisher as the implementation of domain.EventPublisher
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	switch i.Publisher {
	case PublisherPubSub:
		client, err := depend.Resolve[*pubsubV2.Client]()
		if err != nil {
			return ctx, fmt.Errorf("pubsub client not available: %w", err)
		}
		depend.Register[domain.EventPublisher](NewPubSubEventPublisher(client))
	case PublisherLog:
		depend.Register[domain.EventPublisher](LogEventPublisher{Logger: i.Logger})
	default:
		return ctx, fmt.Errorf("unknown EVENT_PUBLISHER %q", i.Publisher)
	}
	return ctx, nil
}
