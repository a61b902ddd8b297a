// Package memory provides an in-process backend for the datastore façade.
// Rows are kept as JSON snapshots so callers never share memory with the store.
package memory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
)

var (
	// ErrSessionClosed is returned when a closed session is used.
	ErrSessionClosed = errors.New("memory: session is closed")
	// ErrDuplicateKey is returned by Commit when an inserted ID already exists.
	ErrDuplicateKey = errors.New("memory: duplicate key")
	// ErrRowNotFound is returned by Commit when an updated or removed row no longer exists.
	ErrRowNotFound = errors.New("memory: row not found")
)

// Store is an in-memory table set keyed by entity type.
type Store struct {
	mu     sync.RWMutex
	tables map[string]map[uuid.UUID][]byte
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		tables: map[string]map[uuid.UUID][]byte{},
	}
}

// NewSession opens a session on the store. It matches datastore.SessionFactory.
func (s *Store) NewSession(_ context.Context) (datastore.Session, error) {
	return &Session{store: s}, nil
}

// Len returns the number of committed rows of the entity's type.
func (s *Store) Len(entity domain.Entity) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[tableOf(entity)])
}

type changeKind int

const (
	changeInsert changeKind = iota
	changeUpdate
	changeRemove
)

type change struct {
	kind  changeKind
	table string
	id    uuid.UUID
	data  []byte
}

// Session stages changes in memory until Commit.
type Session struct {
	store   *Store
	pending []change
	closed  bool
}

// Add stages the entity for insertion, generating an ID when none is set.
func (s *Session) Add(_ context.Context, entity domain.Entity) error {
	if s.closed {
		return ErrSessionClosed
	}
	if entity.GetID() == uuid.Nil {
		entity.SetID(uuid.New())
	}
	return s.stage(changeInsert, entity)
}

// Find loads the row with the given ID into dst, seeing changes staged in this session.
func (s *Session) Find(_ context.Context, dst domain.Entity, id uuid.UUID) (bool, error) {
	if s.closed {
		return false, ErrSessionClosed
	}
	data, ok := s.view(tableOf(dst))[id]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("memory: failed to decode row %s: %w", id, err)
	}
	return true, nil
}

// Scan calls fn for every row of the table of newEntity's type.
func (s *Session) Scan(_ context.Context, newEntity func() domain.Entity, fn func(domain.Entity) error) error {
	if s.closed {
		return ErrSessionClosed
	}
	rows := s.view(tableOf(newEntity()))
	for id, data := range rows {
		e := newEntity()
		if err := json.Unmarshal(data, e); err != nil {
			return fmt.Errorf("memory: failed to decode row %s: %w", id, err)
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

// Update stages a full-row update.
func (s *Session) Update(_ context.Context, entity domain.Entity) error {
	if s.closed {
		return ErrSessionClosed
	}
	return s.stage(changeUpdate, entity)
}

// Remove stages the deletion of the entity's row.
func (s *Session) Remove(_ context.Context, entity domain.Entity) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.pending = append(s.pending, change{kind: changeRemove, table: tableOf(entity), id: entity.GetID()})
	return nil
}

// Commit applies the staged changes atomically. Nothing is applied when one change conflicts.
func (s *Session) Commit(_ context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	// validate against a scratch view first so a failing commit leaves the store untouched
	exists := map[string]map[uuid.UUID]bool{}
	present := func(table string, id uuid.UUID) bool {
		if m, ok := exists[table]; ok {
			if v, ok := m[id]; ok {
				return v
			}
		}
		_, ok := s.store.tables[table][id]
		return ok
	}
	mark := func(table string, id uuid.UUID, v bool) {
		if exists[table] == nil {
			exists[table] = map[uuid.UUID]bool{}
		}
		exists[table][id] = v
	}
	for _, c := range s.pending {
		switch c.kind {
		case changeInsert:
			if present(c.table, c.id) {
				return fmt.Errorf("%w: %s %s", ErrDuplicateKey, c.table, c.id)
			}
			mark(c.table, c.id, true)
		case changeUpdate:
			if !present(c.table, c.id) {
				return fmt.Errorf("%w: %s %s", ErrRowNotFound, c.table, c.id)
			}
		case changeRemove:
			if !present(c.table, c.id) {
				return fmt.Errorf("%w: %s %s", ErrRowNotFound, c.table, c.id)
			}
			mark(c.table, c.id, false)
		}
	}

	for _, c := range s.pending {
		table := s.store.tables[c.table]
		if table == nil {
			table = map[uuid.UUID][]byte{}
			s.store.tables[c.table] = table
		}
		switch c.kind {
		case changeInsert, changeUpdate:
			table[c.id] = c.data
		case changeRemove:
			delete(table, c.id)
		}
	}
	s.pending = nil
	return nil
}

// Close discards uncommitted changes.
func (s *Session) Close() error {
	s.closed = true
	s.pending = nil
	return nil
}

func (s *Session) stage(kind changeKind, entity domain.Entity) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("memory: failed to encode %s: %w", tableOf(entity), err)
	}
	s.pending = append(s.pending, change{kind: kind, table: tableOf(entity), id: entity.GetID(), data: data})
	return nil
}

// view returns the committed rows of the table overlaid with this session's staged changes.
func (s *Session) view(table string) map[uuid.UUID][]byte {
	s.store.mu.RLock()
	rows := make(map[uuid.UUID][]byte, len(s.store.tables[table]))
	for id, data := range s.store.tables[table] {
		rows[id] = data
	}
	s.store.mu.RUnlock()

	for _, c := range s.pending {
		if c.table != table {
			continue
		}
		switch c.kind {
		case changeInsert, changeUpdate:
			rows[c.id] = c.data
		case changeRemove:
			delete(rows, c.id)
		}
	}
	return rows
}

// tableOf keys tables by import path and type name.
func tableOf(entity domain.Entity) string {
	t := reflect.TypeOf(entity)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// InitStore registers an in-memory session factory when STORE_DRIVER is "memory".
type InitStore struct {
	Logger *log.Logger `resolve:""`
	Driver string      `config:"STORE_DRIVER" default:"postgres"`
}

// Initialize registers the datastore.SessionFactory of a new Store.
func (i InitStore) Initialize(ctx context.Context) (context.Context, error) {
	if i.Driver != "memory" {
		return ctx, nil
	}
	store := NewStore()
	depend.Register[datastore.SessionFactory](store.NewSession)
	i.Logger.Println("InitStore: using in-memory datastore")
	return ctx, nil
}
