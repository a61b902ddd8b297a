package datastore

import (
	"context"

	"github.com/google/uuid"
)

// Set is a typed view of a Repository bound to one entity type.
type Set[E any, T EntityPtr[E]] struct {
	repo *Repository
}

// For returns the Set of entity type E.
func For[E any, T EntityPtr[E]](r *Repository) Set[E, T] {
	return Set[E, T]{repo: r}
}

// Repository returns the underlying repository.
func (s Set[E, T]) Repository() *Repository {
	return s.repo
}

// Create stores the entity and returns its identifier.
func (s Set[E, T]) Create(ctx context.Context, entity T) (uuid.UUID, error) {
	return Create[E, T](ctx, s.repo, entity)
}

// CreateWith builds, mutates and stores a new entity.
func (s Set[E, T]) CreateWith(ctx context.Context, mutate func(T)) (uuid.UUID, error) {
	return CreateWith[E, T](ctx, s.repo, mutate)
}

// Read loads the entity with the given identifier.
func (s Set[E, T]) Read(ctx context.Context, id uuid.UUID) (T, bool, error) {
	return Read[E, T](ctx, s.repo, id)
}

// ReadMany returns the entities matching the predicate.
func (s Set[E, T]) ReadMany(ctx context.Context, predicate func(T) bool) ([]T, error) {
	return ReadMany[E, T](ctx, s.repo, predicate)
}

// Update applies mutate to the stored entity.
func (s Set[E, T]) Update(ctx context.Context, id uuid.UUID, mutate func(T)) error {
	return Update[E, T](ctx, s.repo, id, mutate)
}

// Replace overwrites the stored entity with replacement.
func (s Set[E, T]) Replace(ctx context.Context, id uuid.UUID, replacement T) error {
	return Replace[E, T](ctx, s.repo, id, replacement)
}

// Delete removes the entity.
func (s Set[E, T]) Delete(ctx context.Context, id uuid.UUID) error {
	return Delete[E, T](ctx, s.repo, id)
}

// SoftSet is a Set of a soft-deletable entity type.
type SoftSet[E any, T SoftDeletablePtr[E]] struct {
	Set[E, T]
}

// ForSoft returns the SoftSet of entity type E.
func ForSoft[E any, T SoftDeletablePtr[E]](r *Repository) SoftSet[E, T] {
	return SoftSet[E, T]{Set: Set[E, T]{repo: r}}
}

// SoftDelete marks the entity as deleted.
func (s SoftSet[E, T]) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return SoftDelete[E, T](ctx, s.repo, id)
}

// Restore clears the deleted mark of the entity.
func (s SoftSet[E, T]) Restore(ctx context.Context, id uuid.UUID) error {
	return Restore[E, T](ctx, s.repo, id)
}

// ReadSoft returns the matching entities whose deleted flag equals deleted.
func (s SoftSet[E, T]) ReadSoft(ctx context.Context, predicate func(T) bool, deleted bool) ([]T, error) {
	return ReadSoft[E, T](ctx, s.repo, predicate, deleted)
}
