package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/teamgo/teamgo/internal/adapters/inbound/http"
	"github.com/teamgo/teamgo/internal/adapters/inbound/workers"
	"github.com/teamgo/teamgo/internal/adapters/outbound/config"
	"github.com/teamgo/teamgo/internal/adapters/outbound/log"
	"github.com/teamgo/teamgo/internal/adapters/outbound/memory"
	"github.com/teamgo/teamgo/internal/adapters/outbound/password"
	"github.com/teamgo/teamgo/internal/adapters/outbound/postgres"
	"github.com/teamgo/teamgo/internal/adapters/outbound/pubsub"
	"github.com/teamgo/teamgo/internal/adapters/outbound/sqlite"
	"github.com/teamgo/teamgo/internal/adapters/outbound/time"
	"github.com/teamgo/teamgo/internal/adapters/outbound/token"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/telemetry"
	"github.com/teamgo/teamgo/internal/usecases"
)

// NewIdentityApp creates and returns a new instance of the identity server application.
// The initializers given by the caller run first.
func NewIdentityApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitDotEnv{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&time.InitCurrentTimeProvider{},
			&config.InitIdentityOptions{},

			// exactly one backend registers the datastore.SessionFactory
			&postgres.InitDB{},
			&sqlite.InitDB{},
			&memory.InitStore{},
			&datastore.InitRepository{},

			&password.InitPasswordHasher{},
			&token.InitTokenIssuer{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},

			&usecases.InitRegisterUser{},
			&usecases.InitAuthenticateUser{},
			&usecases.InitGetUser{},
			&usecases.InitListUsers{},
			&usecases.InitUserStatus{},
			&usecases.InitRoles{},
			&usecases.InitRelayOutbox{},
			&usecases.InitAuditUserEvents{},
		).
		Host(
			&http.IdentityServer{},
			&workers.MessageRelay{},
			&workers.AuditSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
