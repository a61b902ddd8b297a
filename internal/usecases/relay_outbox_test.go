package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/datastore/mocks"
	"github.com/teamgo/teamgo/internal/domain"
	domain_mocks "github.com/teamgo/teamgo/internal/domain/mocks"
)

func TestRelayOutboxImpl_Execute(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	eventID2 := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")
	userID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	publishErr := "publish error"

	newEvent := func(id uuid.UUID, retries int, createdAt time.Time) *domain.OutboxEvent {
		return &domain.OutboxEvent{
			ID:         id,
			EntityType: "User",
			EntityID:   userID,
			Topic:      domain.OutboxTopic_Users,
			EventType:  domain.EventType_USER_REGISTERED,
			Payload:    []byte(`{}`),
			Status:     domain.OutboxStatus_Pending,
			RetryCount: retries,
			MaxRetries: 3,
			CreatedAt:  createdAt,
		}
	}

	tests := map[string]struct {
		events          []*domain.OutboxEvent
		setExpectations func(publisher *domain_mocks.MockEventPublisher)
		expectedLeft    map[uuid.UUID]domain.OutboxEvent
	}{
		"success-relay-and-delete": {
			events: []*domain.OutboxEvent{newEvent(eventID, 0, fixedTime)},
			setExpectations: func(publisher *domain_mocks.MockEventPublisher) {
				publisher.EXPECT().PublishEvent(mock.Anything, *newEvent(eventID, 0, fixedTime)).Return(nil)
			},
			expectedLeft: map[uuid.UUID]domain.OutboxEvent{},
		},
		"success-relay-multiple-events-oldest-first": {
			events: []*domain.OutboxEvent{
				newEvent(eventID, 0, fixedTime.Add(time.Minute)),
				newEvent(eventID2, 0, fixedTime),
			},
			setExpectations: func(publisher *domain_mocks.MockEventPublisher) {
				second := publisher.EXPECT().PublishEvent(mock.Anything, *newEvent(eventID2, 0, fixedTime)).Return(nil).Call
				publisher.EXPECT().PublishEvent(mock.Anything, *newEvent(eventID, 0, fixedTime.Add(time.Minute))).Return(nil).NotBefore(second)
			},
			expectedLeft: map[uuid.UUID]domain.OutboxEvent{},
		},
		"publish-error-retry": {
			events: []*domain.OutboxEvent{newEvent(eventID, 0, fixedTime)},
			setExpectations: func(publisher *domain_mocks.MockEventPublisher) {
				publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New(publishErr))
			},
			expectedLeft: map[uuid.UUID]domain.OutboxEvent{
				eventID: func() domain.OutboxEvent {
					e := newEvent(eventID, 1, fixedTime)
					e.LastError = &publishErr
					return *e
				}(),
			},
		},
		"publish-error-max-retries-exceeded": {
			events: []*domain.OutboxEvent{newEvent(eventID, 2, fixedTime)},
			setExpectations: func(publisher *domain_mocks.MockEventPublisher) {
				publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New(publishErr))
			},
			expectedLeft: map[uuid.UUID]domain.OutboxEvent{
				eventID: func() domain.OutboxEvent {
					e := newEvent(eventID, 3, fixedTime)
					e.Status = domain.OutboxStatus_Failed
					e.LastError = &publishErr
					return *e
				}(),
			},
		},
		"failed-events-are-skipped": {
			events: []*domain.OutboxEvent{
				func() *domain.OutboxEvent {
					e := newEvent(eventID, 3, fixedTime)
					e.Status = domain.OutboxStatus_Failed
					return e
				}(),
			},
			expectedLeft: map[uuid.UUID]domain.OutboxEvent{
				eventID: func() domain.OutboxEvent {
					e := newEvent(eventID, 3, fixedTime)
					e.Status = domain.OutboxStatus_Failed
					return *e
				}(),
			},
		},
		"empty-batch": {
			expectedLeft: map[uuid.UUID]domain.OutboxEvent{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepository(t)
			for _, e := range tt.events {
				_, err := datastore.Create(context.Background(), repo, e)
				require.NoError(t, err)
			}
			publisher := domain_mocks.NewMockEventPublisher(t)
			if tt.setExpectations != nil {
				tt.setExpectations(publisher)
			}

			relay := NewRelayOutboxImpl(repo, publisher, log.New(io.Discard, "", 0))
			require.NoError(t, relay.Execute(context.Background()))

			left, err := datastore.ReadMany(context.Background(), repo, func(*domain.OutboxEvent) bool { return true })
			require.NoError(t, err)
			got := map[uuid.UUID]domain.OutboxEvent{}
			for _, e := range left {
				got[e.ID] = *e
			}
			assert.Equal(t, tt.expectedLeft, got)
		})
	}
}

func TestRelayOutboxImpl_Execute_ReadError(t *testing.T) {
	session := mocks.NewMockSession(t)
	session.EXPECT().Scan(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("database error"))
	session.EXPECT().Close().Return(nil)

	repo, err := datastore.New(func(context.Context) (datastore.Session, error) {
		return session, nil
	})
	require.NoError(t, err)

	relay := NewRelayOutboxImpl(repo, domain_mocks.NewMockEventPublisher(t), log.New(io.Discard, "", 0))
	assert.EqualError(t, relay.Execute(context.Background()), "database error")
}

func TestInitRelayOutbox_Initialize(t *testing.T) {
	depend.ClearContainer()
	t.Cleanup(depend.ClearContainer)

	iro := InitRelayOutbox{
		Repo:      newTestRepository(t),
		Publisher: domain_mocks.NewMockEventPublisher(t),
		Logger:    log.New(io.Discard, "", 0),
	}

	ctx, err := iro.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredRelay, err := depend.Resolve[RelayOutbox]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredRelay)
}
