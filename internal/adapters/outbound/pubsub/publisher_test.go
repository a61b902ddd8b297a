package pubsub

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgo/teamgo/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newTestClient(t *testing.T) *pubsubV2.Client {
	t.Helper()
	server := pstest.NewServer()
	t.Cleanup(func() {
		_ = server.Close()
	})

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	client, err := pubsubV2.NewClient(context.Background(), "test-project", option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestPubSubEventPublisher_PublishEvent(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	userID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"type":"USER.REGISTERED","user_id":"223e4567-e89b-12d3-a456-426614174000","email":"ada@example.com"}`)

	tests := map[string]struct {
		event       domain.OutboxEvent
		createTopic bool
		expectErr   bool
	}{
		"success-publish-event": {
			event: domain.OutboxEvent{
				ID:         eventID,
				EntityType: "User",
				EventType:  domain.EventType_USER_REGISTERED,
				EntityID:   userID,
				Topic:      domain.OutboxTopic_Users,
				Payload:    payload,
				CreatedAt:  fixedTime,
				MaxRetries: 3,
			},
			createTopic: true,
		},
		"error-topic-not-found": {
			event: domain.OutboxEvent{
				ID:         eventID,
				EntityType: "User",
				EventType:  domain.EventType_USER_REGISTERED,
				EntityID:   userID,
				Topic:      "non-existent-topic",
				Payload:    payload,
				CreatedAt:  fixedTime,
				MaxRetries: 3,
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			projectID := "test-project"
			subID := string(tt.event.Topic) + "-sub"
			if tt.createTopic {
				topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
					Name: "projects/" + projectID + "/topics/" + string(tt.event.Topic),
				})
				require.NoError(t, err)
				_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
					Name:  "projects/" + projectID + "/subscriptions/" + subID,
					Topic: topic.GetName(),
				})
				require.NoError(t, err)
			}

			publishCtx, publishCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer publishCancel()

			err := NewPubSubEventPublisher(client).PublishEvent(publishCtx, tt.event)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			receiveCtx, receiveCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer receiveCancel()

			messages := make([]*pubsubV2.Message, 0)
			err = client.Subscriber(subID).Receive(receiveCtx, func(ctx context.Context, msg *pubsubV2.Message) {
				messages = append(messages, msg)
				msg.Ack()
			})
			if err != nil && err != context.DeadlineExceeded {
				t.Fatalf("failed to receive: %v", err)
			}

			require.Len(t, messages, 1)
			msg := messages[0]
			assert.Equal(t, payload, msg.Data)
			assert.Equal(t, "USER.REGISTERED", msg.Attributes["event_type"])
			assert.Equal(t, "User", msg.Attributes["entity_type"])
			assert.Equal(t, userID.String(), msg.Attributes["entity_id"])
		})
	}
}

func TestLogEventPublisher_PublishEvent(t *testing.T) {
	var buf bytes.Buffer
	publisher := LogEventPublisher{Logger: log.New(&buf, "", 0)}

	err := publisher.PublishEvent(context.Background(), domain.OutboxEvent{
		EntityType: "User",
		EntityID:   uuid.MustParse("223e4567-e89b-12d3-a456-426614174000"),
		Topic:      domain.OutboxTopic_Users,
		EventType:  domain.EventType_USER_DELETED,
		Payload:    []byte(`{}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "LogEventPublisher: Users USER.DELETED User/223e4567-e89b-12d3-a456-426614174000 {}\n", buf.String())
}

func TestInitPublisher_Initialize(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, "", 0)

	tests := map[string]struct {
		publisher string
		setup     func()
		expectErr bool
		expected  any
	}{
		"pubsub": {
			publisher: PublisherPubSub,
			setup: func() {
				depend.Register(&pubsubV2.Client{})
			},
			expected: PubSubEventPublisher{},
		},
		"pubsub-without-client": {
			publisher: PublisherPubSub,
			expectErr: true,
		},
		"log": {
			publisher: PublisherLog,
			expected:  LogEventPublisher{},
		},
		"unknown": {
			publisher: "kafka",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			depend.ClearContainer()
			t.Cleanup(depend.ClearContainer)
			if tt.setup != nil {
				tt.setup()
			}

			init := &InitPublisher{Logger: logger, Publisher: tt.publisher}
			_, err := init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			res, err := depend.Resolve[domain.EventPublisher]()
			require.NoError(t, err)
			assert.IsType(t, tt.expected, res)
		})
	}
}
