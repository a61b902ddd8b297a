package workers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goccy/go-json"
	"github.com/teamgo/teamgo/internal/adapters/outbound/pubsub"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/usecases"
)

// AuditSubscriber consumes user events from Pub/Sub in batches and writes them
// to the audit trail. It idles when events are not published to Pub/Sub.
type AuditSubscriber struct {
	Logger              *log.Logger              `resolve:""`
	AuditUserEvents     usecases.AuditUserEvents `resolve:""`
	Publisher           string                   `config:"EVENT_PUBLISHER" default:"pubsub"`
	SubscriptionID      string                   `config:"PUBSUB_AUDIT_SUBSCRIPTION_ID" default:"users-audit"`
	Interval            time.Duration            `config:"AUDIT_BATCH_INTERVAL" default:"1s"`
	BatchSize           int                      `config:"AUDIT_BATCH_SIZE" default:"50"`
	client              *pubsubV2.Client
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker.
func (s AuditSubscriber) Run(ctx context.Context) error {
	if s.Publisher != pubsub.PublisherPubSub {
		s.Logger.Printf("AuditSubscriber: disabled for event publisher %q", s.Publisher)
		<-ctx.Done()
		return nil
	}

	if s.Interval <= 0 {
		return fmt.Errorf("AuditSubscriber: AUDIT_BATCH_INTERVAL must be positive, got %s", s.Interval)
	}
	if s.BatchSize < 1 {
		return fmt.Errorf("AuditSubscriber: AUDIT_BATCH_SIZE must be at least 1, got %d", s.BatchSize)
	}

	client := s.client
	if client == nil {
		var err error
		client, err = depend.Resolve[*pubsubV2.Client]()
		if err != nil {
			return err
		}
	}

	s.Logger.Println("AuditSubscriber: running...")

	msgCh := make(chan *pubsubV2.Message, s.BatchSize*2)
	receiveErrCh := make(chan error, 1)

	go func() {
		err := client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsubV2.Message) {
			select {
			case msgCh <- msg:
				// acked after the batch is audited
			case <-ctx.Done():
				msg.Nack()
			}
		})
		if err != nil {
			receiveErrCh <- err
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsubV2.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("AuditSubscriber: stopping...")
			return nil

		case err := <-receiveErrCh:
			return err

		case msg := <-msgCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

func (s AuditSubscriber) flush(ctx context.Context, batch []*pubsubV2.Message) {
	s.Logger.Printf("AuditSubscriber: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		defer func() { s.workerExecutionChan <- struct{}{} }()
	}

	events := make([]domain.UserEvent, 0, len(batch))
	valid := make([]*pubsubV2.Message, 0, len(batch))
	for _, msg := range batch {
		var event domain.UserEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			// an undecodable message never succeeds, drop it
			s.Logger.Printf("AuditSubscriber: dropping message %s: %v", msg.ID, err)
			msg.Ack()
			continue
		}
		events = append(events, event)
		valid = append(valid, msg)
	}
	if len(events) == 0 {
		return
	}

	err := s.AuditUserEvents.Execute(ctx, events)
	var validationErr *domain.ValidationErr
	switch {
	case err == nil:
	case errors.As(err, &validationErr):
		s.Logger.Printf("AuditSubscriber: dropping invalid batch: %v", err)
	default:
		s.Logger.Printf("AuditSubscriber: audit failed, batch will be redelivered: %v", err)
		for _, msg := range valid {
			msg.Nack()
		}
		return
	}

	for _, msg := range valid {
		msg.Ack()
	}
}
