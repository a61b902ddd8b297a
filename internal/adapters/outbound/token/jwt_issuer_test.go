package token

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgo/teamgo/internal/domain"
)

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	secret := []byte("0123456789abcdef0123456789abcdef")
	user := domain.User{ID: uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"), Email: "ada@example.com"}

	issuer := NewJWTIssuer(secret, "teamgo", time.Hour, domain.FixedTime(fixedTime))
	token, err := issuer.Issue(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, fixedTime.Add(time.Hour), token.ExpiresAt)
	assert.NotEmpty(t, token.Value)

	tests := map[string]struct {
		parser    JWTIssuer
		expectErr bool
	}{
		"valid": {
			parser: issuer,
		},
		"expired": {
			parser:    NewJWTIssuer(secret, "teamgo", time.Hour, domain.FixedTime(fixedTime.Add(2*time.Hour))),
			expectErr: true,
		},
		"wrong-secret": {
			parser:    NewJWTIssuer([]byte("ffffffffffffffffffffffffffffffff"), "teamgo", time.Hour, domain.FixedTime(fixedTime)),
			expectErr: true,
		},
		"wrong-issuer": {
			parser:    NewJWTIssuer(secret, "other", time.Hour, domain.FixedTime(fixedTime)),
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := tt.parser.Parse(token.Value)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID.String(), claims.Subject)
			assert.Equal(t, user.Email, claims.Email)
		})
	}
}

func TestInitTokenIssuer_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)
	provider := domain.FixedTime(time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC))

	_, err := InitTokenIssuer{TimeProvider: provider, Secret: "short", TTL: time.Hour}.Initialize(context.Background())
	assert.Error(t, err)

	_, err = InitTokenIssuer{
		TimeProvider: provider,
		Secret:       "0123456789abcdef0123456789abcdef",
		Issuer:       "teamgo",
		TTL:          time.Hour,
	}.Initialize(context.Background())
	require.NoError(t, err)

	issuer, err := depend.Resolve[domain.TokenIssuer]()
	require.NoError(t, err)
	assert.NotNil(t, issuer)

	verifier, err := depend.Resolve[domain.TokenVerifier]()
	require.NoError(t, err)
	assert.NotNil(t, verifier)
}

func TestJWTIssuer_Verify(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	secret := []byte("0123456789abcdef0123456789abcdef")
	issuer := NewJWTIssuer(secret, "teamgo", time.Hour, domain.FixedTime(fixedTime))
	userID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	valid, err := issuer.Issue(context.Background(), domain.User{ID: userID, Email: "ada@example.com"})
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "teamgo",
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		},
	}).SignedString(secret)
	require.NoError(t, err)

	tests := map[string]struct {
		token      string
		expectedID uuid.UUID
		expectErr  bool
	}{
		"valid":       {token: valid.Value, expectedID: userID},
		"garbage":     {token: "not-a-jwt", expectErr: true},
		"empty":       {token: "", expectErr: true},
		"bad-subject": {token: badSubject, expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			id, err := issuer.Verify(context.Background(), tt.token)
			if tt.expectErr {
				var unauthorized *domain.UnauthorizedErr
				assert.ErrorAs(t, err, &unauthorized)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
