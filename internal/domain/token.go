package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessToken is a signed credential issued after a successful sign-in.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenIssuer issues access tokens for authenticated users.
type TokenIssuer interface {
	Issue(ctx context.Context, user User) (AccessToken, error)
}

// TokenVerifier checks access tokens and returns the ID of the user they were issued to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}
