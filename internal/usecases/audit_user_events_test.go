package usecases

import (
	"bytes"
	"context"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/teamgo/teamgo/internal/domain"
)

func TestAuditUserEventsImpl_Execute(t *testing.T) {
	userID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		events        []domain.UserEvent
		expectErr     bool
		expectedLines []string
	}{
		"writes-one-entry-per-event": {
			events: []domain.UserEvent{
				{Type: domain.EventType_USER_REGISTERED, UserID: userID, Email: "ada@example.com", CreatedAt: fixedTime},
				{Type: domain.EventType_USER_LOCKED_OUT, UserID: userID, Email: "ada@example.com", CreatedAt: fixedTime},
			},
			expectedLines: []string{
				"AUDIT USER.REGISTERED user=123e4567-e89b-12d3-a456-426614174000 email=ada@example.com at=2026-01-24T15:00:00Z",
				"AUDIT USER.LOCKED_OUT user=123e4567-e89b-12d3-a456-426614174000 email=ada@example.com at=2026-01-24T15:00:00Z",
			},
		},
		"empty-batch": {
			events: nil,
		},
		"missing-user": {
			events: []domain.UserEvent{
				{Type: domain.EventType_USER_REGISTERED, UserID: userID},
				{Type: domain.EventType_USER_DELETED},
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			a := NewAuditUserEventsImpl(log.New(&buf, "", 0))

			err := a.Execute(context.Background(), tt.events)
			if tt.expectErr {
				var validationErr *domain.ValidationErr
				assert.ErrorAs(t, err, &validationErr)
				assert.Empty(t, buf.String())
				return
			}
			assert.NoError(t, err)
			for _, line := range tt.expectedLines {
				assert.Contains(t, buf.String(), line)
			}
		})
	}
}

func TestInitAuditUserEvents_Initialize(t *testing.T) {
	depend.ClearContainer()
	t.Cleanup(depend.ClearContainer)

	i := InitAuditUserEvents{Logger: log.New(io.Discard, "", 0)}
	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[AuditUserEvents]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
