package datastore

import (
	"context"

	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/domain"
)

// Session is a short-lived handle to the backing store. A session serves a
// single logical operation: staged changes become visible to other sessions
// only after Commit, and Close discards whatever was not committed.
type Session interface {
	// Add stages the entity for insertion. A uuid.Nil identifier is replaced
	// by a generated one before Add returns.
	Add(ctx context.Context, entity domain.Entity) error
	// Find loads the row identified by id into dst.
	// It reports false, without error, when no such row exists.
	Find(ctx context.Context, dst domain.Entity, id uuid.UUID) (bool, error)
	// Scan calls fn for every stored row of the type returned by newEntity.
	// Each row is loaded into a fresh value obtained from newEntity.
	Scan(ctx context.Context, newEntity func() domain.Entity, fn func(domain.Entity) error) error
	// Update stages a full-row update of the entity.
	Update(ctx context.Context, entity domain.Entity) error
	// Remove stages the deletion of the entity.
	Remove(ctx context.Context, entity domain.Entity) error
	// Commit applies every staged change as one unit.
	Commit(ctx context.Context) error
	// Close releases the session.
	Close() error
}

// SessionFactory opens a new Session.
type SessionFactory func(ctx context.Context) (Session, error)
