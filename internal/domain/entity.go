package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is a record persisted as a single row, addressed by its ID.
type Entity interface {
	// GetID returns the entity identifier. uuid.Nil means the identifier was not assigned yet.
	GetID() uuid.UUID
	// SetID assigns the entity identifier.
	SetID(id uuid.UUID)
}

// SoftDeletable is an Entity that can be marked as deleted without removing its row.
type SoftDeletable interface {
	Entity
	// IsSoftDeleted reports whether the entity is marked as deleted.
	IsSoftDeleted() bool
	// SetSoftDeleted sets the deleted flag.
	SetSoftDeleted(deleted bool)
	// DeletedAt returns the time the entity was marked as deleted, or nil.
	DeletedAt() *time.Time
	// SetDeletedAt sets the deletion time.
	SetDeletedAt(t *time.Time)
}

// SoftDelete holds the soft deletion state of an entity. Embedding it in an
// entity struct makes a pointer to that struct satisfy the SoftDeletable methods.
type SoftDelete struct {
	Deleted    bool       `json:"deleted"`
	DeleteTime *time.Time `json:"delete_time,omitempty"`
}

// IsSoftDeleted reports whether the entity is marked as deleted.
func (s *SoftDelete) IsSoftDeleted() bool {
	return s.Deleted
}

// SetSoftDeleted sets the deleted flag.
func (s *SoftDelete) SetSoftDeleted(deleted bool) {
	s.Deleted = deleted
}

// DeletedAt returns the deletion time.
func (s *SoftDelete) DeletedAt() *time.Time {
	return s.DeleteTime
}

// SetDeletedAt sets the deletion time.
func (s *SoftDelete) SetDeletedAt(t *time.Time) {
	s.DeleteTime = t
}
