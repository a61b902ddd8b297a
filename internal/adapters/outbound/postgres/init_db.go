// Package postgres backs the datastore with PostgreSQL through pgx and otelsql.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/url"

	"github.com/Masterminds/squirrel"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/teamgo/teamgo/internal/adapters/outbound/sqlstore"
	"github.com/teamgo/teamgo/internal/datastore"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// InitDB connects to Postgres and migrates the identity schema when
// STORE_DRIVER is "postgres".
type InitDB struct {
	db            *sql.DB
	stats         metric.Registration
	skipMigration bool

	Logger   *log.Logger `resolve:""`
	Driver   string      `config:"STORE_DRIVER" default:"postgres"`
	User     string      `config:"DB_USER" default:"teamgo"`
	Password string      `config:"DB_PASS" default:"teamgo"`
	Host     string      `config:"DB_HOST" default:"localhost"`
	Port     string      `config:"DB_PORT" default:"5432"`
	Name     string      `config:"DB_NAME" default:"teamgo"`
	SSLMode  string      `config:"DB_SSLMODE" default:"disable"`
	MaxConns int32       `config:"DB_MAX_CONNS" default:"10"`
}

func (di *InitDB) dsn() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(di.User, di.Password),
		Host:     net.JoinHostPort(di.Host, di.Port),
		Path:     di.Name,
		RawQuery: url.Values{"sslmode": []string{di.SSLMode}}.Encode(),
	}
	return u.String()
}

// Initialize registers the *sql.DB and a datastore.SessionFactory in the dependency container.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	if di.Driver != "" && di.Driver != "postgres" {
		return ctx, nil
	}

	cfg, err := pgxpool.ParseConfig(di.dsn())
	if err != nil {
		return ctx, fmt.Errorf("parse postgres config: %w", err)
	}
	if di.MaxConns > 0 {
		cfg.MaxConns = di.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return ctx, fmt.Errorf("open pgx pool: %w", err)
	}

	attrs := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.Name),
	)
	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		attrs,
		otelsql.WithInstrumentAttributesGetter(queryAttributes(di.Logger)),
	)

	di.stats, err = otelsql.RegisterDBStatsMetrics(di.db, attrs)
	if err != nil {
		return ctx, fmt.Errorf("register db stats metrics: %w", err)
	}

	if !di.skipMigration {
		if err := migrateUp(di.db, di.Logger); err != nil {
			return ctx, err
		}
	}

	depend.Register(di.db)
	depend.Register[datastore.SessionFactory](NewStore(di.db).NewSession)
	di.Logger.Printf("InitDB: using postgres datastore at %s/%s", di.Host, di.Name)

	return ctx, nil
}

// NewStore returns a sqlstore.Store over the identity schema using "$n" placeholders.
func NewStore(db *sql.DB) *sqlstore.Store {
	return sqlstore.NewStore(db, sqlstore.IdentitySchema(), squirrel.Dollar)
}

// Close closes the database and unregisters its metrics.
func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Printf("InitDB: failed to close database connection: %v", err)
	}
	if di.stats == nil {
		return
	}
	if err := di.stats.Unregister(); err != nil {
		di.Logger.Printf("InitDB: failed to unregister db stats metrics: %v", err)
	}
}
