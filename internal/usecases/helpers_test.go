package usecases

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/teamgo/teamgo/internal/adapters/outbound/memory"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
)

var fixedTime = time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T) *datastore.Repository {
	t.Helper()
	repo, err := datastore.New(memory.NewStore().NewSession, datastore.WithTimeProvider(domain.FixedTime(fixedTime)))
	require.NoError(t, err)
	return repo
}

func newTestRecorder(repo *datastore.Repository) UserEventRecorder {
	return NewUserEventRecorder(repo, domain.FixedTime(fixedTime), log.New(io.Discard, "", 0))
}

func seedUser(t *testing.T, repo *datastore.Repository, email string, mutate ...func(*domain.User)) domain.User {
	t.Helper()
	user := &domain.User{
		Email:           email,
		NormalizedEmail: domain.NormalizeEmail(email),
		PasswordHash:    "hash",
		CreatedAt:       fixedTime,
		UpdatedAt:       fixedTime,
	}
	for _, m := range mutate {
		m(user)
	}
	_, err := datastore.Create(context.Background(), repo, user)
	require.NoError(t, err)
	return *user
}

func mustReadUser(t *testing.T, repo *datastore.Repository, id uuid.UUID) domain.User {
	t.Helper()
	user, found, err := datastore.Read[domain.User](context.Background(), repo, id)
	require.NoError(t, err)
	require.True(t, found)
	return *user
}

func recordedEvents(t *testing.T, repo *datastore.Repository) []domain.EventType {
	t.Helper()
	events, err := datastore.ReadMany(context.Background(), repo, func(*domain.OutboxEvent) bool { return true })
	require.NoError(t, err)
	types := make([]domain.EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.EventType)
	}
	return types
}
