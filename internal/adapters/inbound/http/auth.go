package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/domain"
)

type callerKey struct{}

// callerID returns the ID of the user whose access token authorized the request.
func callerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(callerKey{}).(uuid.UUID)
	return id, ok
}

// requireBearer rejects requests without a valid "Authorization: Bearer <token>" header.
func requireBearer(verifier domain.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="teamgo"`)
				respondError(w, toError(domain.NewUnauthorizedErr("missing bearer token")))
				return
			}

			id, err := verifier.Verify(r.Context(), strings.TrimSpace(token))
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="teamgo", error="invalid_token"`)
				respondError(w, toError(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, id)))
		})
	}
}
