package datastore

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EntityPtr is satisfied by *E when *E implements domain.Entity.
type EntityPtr[E any] interface {
	*E
	domain.Entity
}

// Create stores the entity and returns its identifier. A caller-assigned
// identifier is kept; otherwise the backend generates one.
func Create[E any, T EntityPtr[E]](ctx context.Context, r *Repository, entity T) (uuid.UUID, error) {
	if err := r.checkOpen(); err != nil {
		return uuid.Nil, err
	}
	if (*E)(entity) == nil {
		return uuid.Nil, nilArgument("entity")
	}

	spanCtx, span := telemetry.Start(ctx, entityAttributes[E]())
	defer span.End()

	err := r.withSession(spanCtx, func(s Session) error {
		if err := s.Add(spanCtx, entity); err != nil {
			return err
		}
		return s.Commit(spanCtx)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, err
	}
	return entity.GetID(), nil
}

// CreateWith builds a zero-valued entity, applies mutate to it and stores it.
func CreateWith[E any, T EntityPtr[E]](ctx context.Context, r *Repository, mutate func(T)) (uuid.UUID, error) {
	if err := r.checkOpen(); err != nil {
		return uuid.Nil, err
	}
	if mutate == nil {
		return uuid.Nil, nilArgument("mutator")
	}
	entity := T(new(E))
	mutate(entity)
	return Create[E, T](ctx, r, entity)
}

// Read loads the entity with the given identifier.
// A missing entity is reported as (nil, false, nil).
func Read[E any, T EntityPtr[E]](ctx context.Context, r *Repository, id uuid.UUID) (T, bool, error) {
	if err := r.checkOpen(); err != nil {
		return nil, false, err
	}

	spanCtx, span := telemetry.Start(ctx, entityAttributes[E](attribute.String("entity.id", id.String())))
	defer span.End()

	var (
		entity T
		found  bool
	)
	err := r.withSession(spanCtx, func(s Session) error {
		e := T(new(E))
		ok, err := s.Find(spanCtx, e, id)
		if err != nil || !ok {
			return err
		}
		entity, found = e, true
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, err
	}
	return entity, found, nil
}

// ReadMany returns every stored entity matching the predicate, in no particular order.
func ReadMany[E any, T EntityPtr[E]](ctx context.Context, r *Repository, predicate func(T) bool) ([]T, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	if predicate == nil {
		return nil, nilArgument("predicate")
	}

	spanCtx, span := telemetry.Start(ctx, entityAttributes[E]())
	defer span.End()

	matches := make([]T, 0)
	err := r.withSession(spanCtx, func(s Session) error {
		return s.Scan(spanCtx, newEntity[E, T], func(e domain.Entity) error {
			if t := e.(T); predicate(t) {
				matches = append(matches, t)
			}
			return nil
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	span.SetAttributes(attribute.Int("entity.count", len(matches)))
	return matches, nil
}

// Update loads the entity, applies mutate and stores the result.
// The entity identifier is kept even if mutate changes it.
func Update[E any, T EntityPtr[E]](ctx context.Context, r *Repository, id uuid.UUID, mutate func(T)) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	if mutate == nil {
		return nilArgument("mutator")
	}

	spanCtx, span := telemetry.Start(ctx, entityAttributes[E](attribute.String("entity.id", id.String())))
	defer span.End()

	err := r.withSession(spanCtx, func(s Session) error {
		return updateInSession[E, T](spanCtx, s, id, mutate)
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// Replace overwrites every field of the stored entity with the fields of
// replacement, keeping the stored identifier.
func Replace[E any, T EntityPtr[E]](ctx context.Context, r *Repository, id uuid.UUID, replacement T) error {
	if err := r.checkOpen(); err != nil {
		return err
	}
	if (*E)(replacement) == nil {
		return nilArgument("replacement")
	}
	return Update[E, T](ctx, r, id, func(stored T) {
		*(*E)(stored) = *(*E)(replacement)
	})
}

// Delete removes the entity with the given identifier.
func Delete[E any, T EntityPtr[E]](ctx context.Context, r *Repository, id uuid.UUID) error {
	if err := r.checkOpen(); err != nil {
		return err
	}

	spanCtx, span := telemetry.Start(ctx, entityAttributes[E](attribute.String("entity.id", id.String())))
	defer span.End()

	err := r.withSession(spanCtx, func(s Session) error {
		e := T(new(E))
		found, err := s.Find(spanCtx, e, id)
		if err != nil {
			return err
		}
		if !found {
			return notFound[E](id)
		}
		if err := s.Remove(spanCtx, e); err != nil {
			return err
		}
		return s.Commit(spanCtx)
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

func updateInSession[E any, T EntityPtr[E]](ctx context.Context, s Session, id uuid.UUID, mutate func(T)) error {
	e := T(new(E))
	found, err := s.Find(ctx, e, id)
	if err != nil {
		return err
	}
	if !found {
		return notFound[E](id)
	}
	mutate(e)
	e.SetID(id)
	if err := s.Update(ctx, e); err != nil {
		return err
	}
	return s.Commit(ctx)
}

func newEntity[E any, T EntityPtr[E]]() domain.Entity {
	return T(new(E))
}

func entityName[E any]() string {
	return reflect.TypeFor[E]().Name()
}

func notFound[E any](id uuid.UUID) error {
	return domain.NewNotFoundErr(fmt.Sprintf("%s with ID %s not found", entityName[E](), id))
}

func entityAttributes[E any](extra ...attribute.KeyValue) trace.SpanStartOption {
	return trace.WithAttributes(append([]attribute.KeyValue{attribute.String("entity.type", entityName[E]())}, extra...)...)
}
