package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
)

// RegisterUser defines the interface for the RegisterUser use case.
type RegisterUser interface {
	Execute(ctx context.Context, email, password string) (domain.User, error)
}

// RegisterUserImpl is the implementation of the RegisterUser use case.
type RegisterUserImpl struct {
	repo         *datastore.Repository
	hasher       domain.PasswordHasher
	options      domain.IdentityOptions
	timeProvider domain.CurrentTimeProvider
	events       UserEventRecorder
}

// NewRegisterUserImpl creates a new instance of RegisterUserImpl.
func NewRegisterUserImpl(
	repo *datastore.Repository,
	hasher domain.PasswordHasher,
	options domain.IdentityOptions,
	timeProvider domain.CurrentTimeProvider,
	events UserEventRecorder,
) RegisterUserImpl {
	return RegisterUserImpl{
		repo:         repo,
		hasher:       hasher,
		options:      options,
		timeProvider: timeProvider,
		events:       events,
	}
}

// Execute validates the credentials against the identity policies and creates the account.
func (r RegisterUserImpl) Execute(ctx context.Context, email, password string) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	email = strings.TrimSpace(email)
	if err := domain.ValidateEmail(email); telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	if err := r.options.Password.Validate(password); telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	normalized := domain.NormalizeEmail(email)
	if r.options.User.RequireUniqueEmail {
		existing, err := datastore.ReadMany(spanCtx, r.repo, func(u *domain.User) bool {
			return u.NormalizedEmail == normalized
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.User{}, err
		}
		if len(existing) > 0 {
			err := domain.NewConflictErr(fmt.Sprintf("email %s is already registered", email))
			telemetry.RecordErrorAndStatus(span, err)
			return domain.User{}, err
		}
	}

	hash, err := r.hasher.Hash(spanCtx, password)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	now := r.timeProvider.Now().UTC()
	user := &domain.User{
		Email:           email,
		NormalizedEmail: normalized,
		PasswordHash:    hash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := datastore.Create(spanCtx, r.repo, user); telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	UsersRegistered.Add(spanCtx, 1)
	r.events.Record(spanCtx, domain.EventType_USER_REGISTERED, user.ID, user.Email)
	return *user, nil
}

// InitRegisterUser initializes the RegisterUser use case.
type InitRegisterUser struct {
	Repo         *datastore.Repository      `resolve:""`
	Hasher       domain.PasswordHasher      `resolve:""`
	Options      domain.IdentityOptions     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the RegisterUser use case in the dependency container.
func (i InitRegisterUser) Initialize(ctx context.Context) (context.Context, error) {
	events := NewUserEventRecorder(i.Repo, i.TimeProvider, i.Logger)
	depend.Register[RegisterUser](NewRegisterUserImpl(i.Repo, i.Hasher, i.Options, i.TimeProvider, events))
	return ctx, nil
}
