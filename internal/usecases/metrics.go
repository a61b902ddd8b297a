package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter           = otel.Meter("usecases")
	UsersRegistered metric.Int64Counter
	SignInAttempts  metric.Int64Counter
	UserLockouts    metric.Int64Counter
	OutboxRelayed   metric.Int64Counter

	UserEventsAudited metric.Int64Counter
)

func init() {
	var err error
	UsersRegistered, err = meter.Int64Counter(
		"identity_users_registered_total",
		metric.WithDescription("Total user accounts registered"),
	)
	if err != nil {
		panic(err)
	}

	SignInAttempts, err = meter.Int64Counter(
		"identity_sign_in_attempts_total",
		metric.WithDescription("Total sign-in attempts by outcome"),
	)
	if err != nil {
		panic(err)
	}

	UserLockouts, err = meter.Int64Counter(
		"identity_user_lockouts_total",
		metric.WithDescription("Total accounts locked out after failed sign-ins"),
	)
	if err != nil {
		panic(err)
	}

	OutboxRelayed, err = meter.Int64Counter(
		"outbox_events_relayed_total",
		metric.WithDescription("Total outbox events processed by outcome"),
	)
	if err != nil {
		panic(err)
	}

	UserEventsAudited, err = meter.Int64Counter(
		"identity_user_events_audited_total",
		metric.WithDescription("Total account events written to the audit trail"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordSignInAttempt records a sign-in attempt with its outcome, e.g. "success" or "bad_credentials".
func RecordSignInAttempt(ctx context.Context, outcome string) {
	SignInAttempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordOutboxRelayed records the outcome of relaying one outbox event.
func RecordOutboxRelayed(ctx context.Context, outcome string) {
	OutboxRelayed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
