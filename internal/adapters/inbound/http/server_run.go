package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
	"github.com/teamgo/teamgo/internal/usecases"
)

// IdentityServer is the REST API HTTP server of the identity user store.
type IdentityServer struct {
	Port                   int                       `config:"HTTP_PORT" default:"8080"`
	Logger                 *log.Logger               `resolve:""`
	RegisterUserUseCase    usecases.RegisterUser     `resolve:""`
	AuthenticateUseCase    usecases.AuthenticateUser `resolve:""`
	GetUserUseCase         usecases.GetUser          `resolve:""`
	ListUsersUseCase       usecases.ListUsers        `resolve:""`
	DeactivateUserUseCase  usecases.DeactivateUser   `resolve:""`
	RestoreUserUseCase     usecases.RestoreUser      `resolve:""`
	DeleteUserUseCase      usecases.DeleteUser       `resolve:""`
	AssignRoleUseCase      usecases.AssignRole       `resolve:""`
	ListRolesUseCase       usecases.ListRoles        `resolve:""`
	RevokeRoleUseCase      usecases.RevokeRole       `resolve:""`
	TokenVerifier          domain.TokenVerifier      `resolve:""`
}

// Handler returns the router serving every endpoint of the server.
func (api IdentityServer) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/introspect", introspectHandler("TeamGo Introspection Graph"))

	r.Route("/api", func(r chi.Router) {
		r.Use(telemetry.Middleware("identity-api"))

		r.Post("/register", api.Register)
		r.Post("/login", api.Login)

		r.Group(func(r chi.Router) {
			r.Use(requireBearer(api.TokenVerifier))

			r.Get("/users", api.ListUsers)
			r.Route("/users/{userId}", func(r chi.Router) {
				r.Get("/", api.GetUser)
				r.Delete("/", api.DeactivateUser)
				r.Post("/restore", api.RestoreUser)
				r.Delete("/purge", api.DeleteUser)
				r.Get("/roles", api.ListRoles)
				r.Post("/roles", api.AssignRole)
			})
			r.Delete("/roles/{roleId}", api.RevokeRole)
		})
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(r)
}

// Run starts the HTTP server for the IdentityServer.
func (api IdentityServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("IdentityServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("IdentityServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("IdentityServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the IdentityServer is ready by performing a health check.
func (api IdentityServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
