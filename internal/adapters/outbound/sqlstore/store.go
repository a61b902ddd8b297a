// Package sqlstore implements datastore sessions on top of database/sql.
// Each session runs inside its own transaction.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
)

// ErrRowNotFound is returned when an update or delete affects no row.
var ErrRowNotFound = errors.New("sqlstore: row not found")

// Store opens transactional sessions on a database.
type Store struct {
	db          *sql.DB
	schema      *Schema
	placeholder squirrel.PlaceholderFormat
}

// NewStore creates a Store. The placeholder format must match the driver, e.g.
// squirrel.Dollar for Postgres and squirrel.Question for SQLite.
func NewStore(db *sql.DB, schema *Schema, placeholder squirrel.PlaceholderFormat) *Store {
	return &Store{
		db:          db,
		schema:      schema,
		placeholder: placeholder,
	}
}

// NewSession begins a transaction. It matches datastore.SessionFactory.
func (s *Store) NewSession(ctx context.Context) (datastore.Session, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Session{
		tx:     tx,
		schema: s.schema,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(s.placeholder).RunWith(tx),
	}, nil
}

// Session executes statements inside a transaction that is committed by Commit
// and rolled back by Close otherwise.
type Session struct {
	tx     *sql.Tx
	schema *Schema
	sb     squirrel.StatementBuilderType
	done   bool
}

// Add inserts the entity, generating an ID when none is set.
func (s *Session) Add(ctx context.Context, entity domain.Entity) error {
	t, err := s.schema.Table(entity)
	if err != nil {
		return err
	}
	if entity.GetID() == uuid.Nil {
		entity.SetID(uuid.New())
	}
	_, err = s.sb.Insert(t.Name).
		Columns(t.Columns...).
		Values(t.Values(entity)...).
		ExecContext(ctx)
	return err
}

// Find loads the row with the given ID into dst.
func (s *Session) Find(ctx context.Context, dst domain.Entity, id uuid.UUID) (bool, error) {
	t, err := s.schema.Table(dst)
	if err != nil {
		return false, err
	}
	err = s.sb.Select(t.Columns...).
		From(t.Name).
		Where(squirrel.Eq{t.key(): id}).
		QueryRowContext(ctx).
		Scan(t.Targets(dst)...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Scan calls fn for every row of the table mapped to newEntity's type.
func (s *Session) Scan(ctx context.Context, newEntity func() domain.Entity, fn func(domain.Entity) error) error {
	t, err := s.schema.Table(newEntity())
	if err != nil {
		return err
	}
	rows, err := s.sb.Select(t.Columns...).
		From(t.Name).
		QueryContext(ctx)
	if err != nil {
		return err
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		e := newEntity()
		if err := rows.Scan(t.Targets(e)...); err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return rows.Err()
}

// Update writes every non-key column of the entity.
func (s *Session) Update(ctx context.Context, entity domain.Entity) error {
	t, err := s.schema.Table(entity)
	if err != nil {
		return err
	}
	values := t.Values(entity)
	q := s.sb.Update(t.Name)
	for i, col := range t.Columns[1:] {
		q = q.Set(col, values[i+1])
	}
	res, err := q.Where(squirrel.Eq{t.key(): entity.GetID()}).ExecContext(ctx)
	if err != nil {
		return err
	}
	return expectAffected(res, t, entity)
}

// Remove deletes the entity's row.
func (s *Session) Remove(ctx context.Context, entity domain.Entity) error {
	t, err := s.schema.Table(entity)
	if err != nil {
		return err
	}
	res, err := s.sb.Delete(t.Name).
		Where(squirrel.Eq{t.key(): entity.GetID()}).
		ExecContext(ctx)
	if err != nil {
		return err
	}
	return expectAffected(res, t, entity)
}

// Commit commits the transaction.
func (s *Session) Commit(_ context.Context) error {
	s.done = true
	return s.tx.Commit()
}

// Close rolls back the transaction unless it was committed.
func (s *Session) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func expectAffected(res sql.Result, t Table, entity domain.Entity) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", ErrRowNotFound, t.Name, entity.GetID())
	}
	return nil
}
