package sqlstore

import (
	"github.com/teamgo/teamgo/internal/domain"
)

var (
	userColumns = []string{
		"id",
		"email",
		"normalized_email",
		"password_hash",
		"access_failed_count",
		"lockout_end",
		"created_at",
		"updated_at",
		"deleted",
		"delete_time",
	}

	roleColumns = []string{
		"id",
		"name",
		"user_id",
	}

	outboxEventColumns = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"status",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

// IdentitySchema maps the identity entities to the users, roles and outbox_events tables.
func IdentitySchema() *Schema {
	s := NewSchema()

	Register(s, "users", userColumns,
		func(u *domain.User) []any {
			return []any{
				u.ID,
				u.Email,
				u.NormalizedEmail,
				u.PasswordHash,
				u.AccessFailedCount,
				u.LockoutEnd,
				u.CreatedAt,
				u.UpdatedAt,
				u.Deleted,
				u.DeleteTime,
			}
		},
		func(u *domain.User) []any {
			return []any{
				&u.ID,
				&u.Email,
				&u.NormalizedEmail,
				&u.PasswordHash,
				&u.AccessFailedCount,
				&u.LockoutEnd,
				&u.CreatedAt,
				&u.UpdatedAt,
				&u.Deleted,
				&u.DeleteTime,
			}
		},
	)

	Register(s, "roles", roleColumns,
		func(r *domain.Role) []any {
			return []any{r.ID, r.Name, r.UserID}
		},
		func(r *domain.Role) []any {
			return []any{&r.ID, &r.Name, &r.UserID}
		},
	)

	Register(s, "outbox_events", outboxEventColumns,
		func(e *domain.OutboxEvent) []any {
			return []any{
				e.ID,
				e.EntityType,
				e.EntityID,
				string(e.Topic),
				string(e.EventType),
				e.Payload,
				string(e.Status),
				e.RetryCount,
				e.MaxRetries,
				e.LastError,
				e.CreatedAt,
			}
		},
		func(e *domain.OutboxEvent) []any {
			return []any{
				&e.ID,
				&e.EntityType,
				&e.EntityID,
				&e.Topic,
				&e.EventType,
				&e.Payload,
				&e.Status,
				&e.RetryCount,
				&e.MaxRetries,
				&e.LastError,
				&e.CreatedAt,
			}
		},
	)

	return s
}
