package domain

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account of the identity user store.
// A soft-deleted user is a deactivated account.
type User struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	NormalizedEmail   string     `json:"normalized_email"`
	PasswordHash      string     `json:"password_hash"`
	AccessFailedCount int        `json:"access_failed_count"`
	LockoutEnd        *time.Time `json:"lockout_end,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	SoftDelete
}

// GetID returns the user ID.
func (u *User) GetID() uuid.UUID { return u.ID }

// SetID assigns the user ID.
func (u *User) SetID(id uuid.UUID) { u.ID = id }

// IsLockedOut reports whether sign-in is blocked at the given time.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

// NormalizeEmail returns the canonical form used for e-mail lookups.
func NormalizeEmail(email string) string {
	return strings.ToUpper(strings.TrimSpace(email))
}

// ValidateEmail checks that the address is a bare RFC 5322 address.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return NewValidationErr("email cannot be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return NewValidationErr("email is not a valid address")
	}
	return nil
}

// Role is a named permission set attached to a user.
type Role struct {
	ID     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

// GetID returns the role ID.
func (r *Role) GetID() uuid.UUID { return r.ID }

// SetID assigns the role ID.
func (r *Role) SetID(id uuid.UUID) { r.ID = id }

// Validate checks the role fields.
func (r Role) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return NewValidationErr("role name cannot be empty")
	}
	if len(name) > 64 {
		return NewValidationErr("role name must be at most 64 characters")
	}
	return nil
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns an encoded hash of the plain password.
	Hash(ctx context.Context, plain string) (string, error)
	// Verify reports whether the plain password matches the encoded hash.
	Verify(ctx context.Context, plain, encoded string) bool
}
