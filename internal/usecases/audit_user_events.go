package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AuditUserEvents writes the account events consumed from the event bus to the audit trail.
type AuditUserEvents interface {
	Execute(ctx context.Context, events []domain.UserEvent) error
}

// AuditUserEventsImpl writes audit entries to a logger.
type AuditUserEventsImpl struct {
	logger *log.Logger
}

// NewAuditUserEventsImpl creates a new instance
func NewAuditUserEventsImpl(logger *log.Logger) AuditUserEventsImpl {
	return AuditUserEventsImpl{logger: logger}
}

// Execute writes one audit entry per event. Events without a type or user are rejected.
func (a AuditUserEventsImpl) Execute(ctx context.Context, events []domain.UserEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	for _, e := range events {
		if e.Type == "" || e.UserID == uuid.Nil {
			err := domain.NewValidationErr("audit event requires a type and a user ID")
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}
	}

	for _, e := range events {
		a.logger.Printf("AUDIT %s user=%s email=%s at=%s",
			e.Type, e.UserID, e.Email, e.CreatedAt.Format(time.RFC3339),
		)
		UserEventsAudited.Add(spanCtx, 1, metric.WithAttributes(
			attribute.String("event_type", string(e.Type)),
		))
	}
	span.SetAttributes(attribute.Int("events", len(events)))
	return nil
}

// InitAuditUserEvents is used to initialize the AuditUserEvents in the dependency container
type InitAuditUserEvents struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the AuditUserEvents implementation in the dependency container
func (i InitAuditUserEvents) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AuditUserEvents](NewAuditUserEventsImpl(i.Logger))
	return ctx, nil
}
