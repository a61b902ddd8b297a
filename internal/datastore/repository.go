package datastore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/teamgo/teamgo/internal/domain"
)

var (
	// ErrClosed is returned by every operation of a Repository after Close.
	ErrClosed = errors.New("datastore: repository is closed")
	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("datastore: required argument is nil")
)

func nilArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrNilArgument, name)
}

// Repository is a generic create/read/update/delete façade over a session
// factory. Every operation opens its own session, performs one unit of work,
// commits and closes the session; the repository itself keeps no entity state.
//
// Operations are package-level generic functions taking the repository, see
// Create, Read, ReadMany, Update, Replace, Delete, SoftDelete, Restore and ReadSoft.
type Repository struct {
	factory      SessionFactory
	timeProvider domain.CurrentTimeProvider
	closed       atomic.Bool
}

// Option configures a Repository.
type Option func(*Repository)

// WithTimeProvider sets the clock used to stamp soft deletions.
func WithTimeProvider(p domain.CurrentTimeProvider) Option {
	return func(r *Repository) {
		if p != nil {
			r.timeProvider = p
		}
	}
}

// New creates a Repository opening sessions with the given factory.
func New(factory SessionFactory, opts ...Option) (*Repository, error) {
	if factory == nil {
		return nil, nilArgument("session factory")
	}
	r := &Repository{
		factory:      factory,
		timeProvider: domain.TimeProviderFunc(time.Now),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Factory returns the session factory of the repository.
func (r *Repository) Factory() (SessionFactory, error) {
	if r.closed.Load() {
		return nil, ErrClosed
	}
	return r.factory, nil
}

// Close releases the repository. Calling Close more than once has no effect.
func (r *Repository) Close() error {
	r.closed.Store(true)
	return nil
}

// withSession runs fn with a freshly opened session and closes it on every path.
func (r *Repository) withSession(ctx context.Context, fn func(s Session) error) (err error) {
	if r.closed.Load() {
		return ErrClosed
	}
	s, err := r.factory(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

func (r *Repository) checkOpen() error {
	if r.closed.Load() {
		return ErrClosed
	}
	return nil
}

// InitRepository builds the Repository from the registered SessionFactory and
// registers it in the dependency container.
type InitRepository struct {
	Factory      SessionFactory             `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	repo         *Repository
}

// Initialize registers the *Repository in the dependency container.
func (i *InitRepository) Initialize(ctx context.Context) (context.Context, error) {
	repo, err := New(i.Factory, WithTimeProvider(i.TimeProvider))
	if err != nil {
		return ctx, fmt.Errorf("failed to create repository: %w", err)
	}
	i.repo = repo
	depend.Register(repo)
	return ctx, nil
}

// Close releases the registered repository.
func (i *InitRepository) Close() {
	if i.repo == nil {
		return
	}
	if err := i.repo.Close(); err != nil {
		i.Logger.Printf("InitRepository: failed to close repository: %v", err)
	}
}
