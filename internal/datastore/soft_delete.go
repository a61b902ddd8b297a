package datastore

import (
	"context"

	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/domain"
)

// SoftDeletablePtr is satisfied by *E when *E implements domain.SoftDeletable.
type SoftDeletablePtr[E any] interface {
	*E
	domain.SoftDeletable
}

// SoftDelete marks the entity as deleted and stamps the deletion time.
// The row stays readable through Read.
func SoftDelete[E any, T SoftDeletablePtr[E]](ctx context.Context, r *Repository, id uuid.UUID) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	now := r.timeProvider.Now().UTC()
	return Update[E, T](ctx, r, id, func(e T) {
		e.SetSoftDeleted(true)
		e.SetDeletedAt(&now)
	})
}

// Restore clears the deleted flag and the deletion time.
func Restore[E any, T SoftDeletablePtr[E]](ctx context.Context, r *Repository, id uuid.UUID) error {
	return Update[E, T](ctx, r, id, func(e T) {
		e.SetSoftDeleted(false)
		e.SetDeletedAt(nil)
	})
}

// ReadSoft returns the entities matching the predicate whose deleted flag equals deleted.
func ReadSoft[E any, T SoftDeletablePtr[E]](ctx context.Context, r *Repository, predicate func(T) bool, deleted bool) ([]T, error) {
	entities, err := ReadMany[E, T](ctx, r, predicate)
	if err != nil {
		return nil, err
	}
	filtered := make([]T, 0, len(entities))
	for _, e := range entities {
		if e.IsSoftDeleted() == deleted {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
