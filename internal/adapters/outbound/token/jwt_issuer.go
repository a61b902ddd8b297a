// Package token issues signed JWT access tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/domain"
)

// Claims are the claims carried by an access token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer implements domain.TokenIssuer with HS256 signed tokens.
type JWTIssuer struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider domain.CurrentTimeProvider
}

// NewJWTIssuer creates a JWTIssuer.
func NewJWTIssuer(secret []byte, issuer string, ttl time.Duration, timeProvider domain.CurrentTimeProvider) JWTIssuer {
	return JWTIssuer{
		secret:       secret,
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue signs a token whose subject is the user ID.
func (i JWTIssuer) Issue(_ context.Context, user domain.User) (domain.AccessToken, error) {
	now := i.timeProvider.Now().UTC()
	expiresAt := now.Add(i.ttl)
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return domain.AccessToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// Parse validates a token issued by this issuer and returns its claims.
func (i JWTIssuer) Parse(token string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithTimeFunc(i.timeProvider.Now),
	)
	if err != nil {
		return Claims{}, err
	}
	return claims, nil
}

// Verify implements domain.TokenVerifier. Any invalid token, including one
// whose subject is not a user ID, is a *domain.UnauthorizedErr.
func (i JWTIssuer) Verify(_ context.Context, token string) (uuid.UUID, error) {
	claims, err := i.Parse(token)
	if err != nil {
		return uuid.Nil, domain.NewUnauthorizedErr("invalid access token")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.NewUnauthorizedErr("invalid access token subject")
	}
	return id, nil
}

// InitTokenIssuer registers the domain.TokenIssuer and domain.TokenVerifier.
type InitTokenIssuer struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Secret       string                     `config:"AUTH_TOKEN_SECRET"`
	Issuer       string                     `config:"AUTH_TOKEN_ISSUER" default:"teamgo"`
	TTL          time.Duration              `config:"AUTH_TOKEN_TTL" default:"1h"`
}

// Initialize registers a JWTIssuer.
func (i InitTokenIssuer) Initialize(ctx context.Context) (context.Context, error) {
	if len(i.Secret) < 32 {
		return ctx, errors.New("AUTH_TOKEN_SECRET must be at least 32 bytes")
	}
	issuer := NewJWTIssuer([]byte(i.Secret), i.Issuer, i.TTL, i.TimeProvider)
	depend.Register[domain.TokenIssuer](issuer)
	depend.Register[domain.TokenVerifier](issuer)
	return ctx, nil
}
