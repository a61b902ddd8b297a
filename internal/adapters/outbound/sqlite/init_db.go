// Package sqlite provides a single-file SQLite backend for local runs and tests.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"

	"github.com/Masterminds/squirrel"
	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/teamgo/teamgo/internal/adapters/outbound/sqlstore"
	"github.com/teamgo/teamgo/internal/datastore"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Open opens the database at dsn and applies the schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := otelsql.Open("sqlite", dsn,
		otelsql.WithAttributes(semconv.DBSystemNameKey.String("sqlite")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps ":memory:" databases shared and avoids SQLITE_BUSY on writes
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}

// NewStore returns a sqlstore.Store over the identity schema using "?" placeholders.
func NewStore(db *sql.DB) *sqlstore.Store {
	return sqlstore.NewStore(db, sqlstore.IdentitySchema(), squirrel.Question)
}

// InitDB opens the SQLite database when STORE_DRIVER is "sqlite".
type InitDB struct {
	db     *sql.DB
	Logger *log.Logger `resolve:""`
	Driver string      `config:"STORE_DRIVER" default:"postgres"`
	DSN    string      `config:"SQLITE_DSN" default:"file:teamgo.db"`
}

// Initialize registers the *sql.DB and a datastore.SessionFactory in the dependency container.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	if di.Driver != "sqlite" {
		return ctx, nil
	}
	db, err := Open(ctx, di.DSN)
	if err != nil {
		return ctx, err
	}
	di.db = db

	depend.Register(db)
	depend.Register[datastore.SessionFactory](NewStore(db).NewSession)
	di.Logger.Printf("InitDB: using sqlite datastore at %s", di.DSN)
	return ctx, nil
}

// Close closes the database.
func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Printf("InitDB: failed to close database connection: %v", err)
	}
}
