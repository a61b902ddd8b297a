package usecases

import (
	"context"
	"sort"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
)

// AuthenticateUser defines the interface for the AuthenticateUser use case.
type AuthenticateUser interface {
	Execute(ctx context.Context, email, password string) (domain.User, domain.AccessToken, error)
}

// AuthenticateUserImpl is the implementation of the AuthenticateUser use case.
type AuthenticateUserImpl struct {
	repo         *datastore.Repository
	hasher       domain.PasswordHasher
	issuer       domain.TokenIssuer
	options      domain.IdentityOptions
	timeProvider domain.CurrentTimeProvider
	events       UserEventRecorder
}

// NewAuthenticateUserImpl creates a new instance of AuthenticateUserImpl.
func NewAuthenticateUserImpl(
	repo *datastore.Repository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	options domain.IdentityOptions,
	timeProvider domain.CurrentTimeProvider,
	events UserEventRecorder,
) AuthenticateUserImpl {
	return AuthenticateUserImpl{
		repo:         repo,
		hasher:       hasher,
		issuer:       issuer,
		options:      options,
		timeProvider: timeProvider,
		events:       events,
	}
}

// Execute verifies the credentials and issues an access token.
// Failed attempts count towards the lockout policy.
func (a AuthenticateUserImpl) Execute(ctx context.Context, email, password string) (domain.User, domain.AccessToken, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	user, err := a.findUser(spanCtx, email)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, domain.AccessToken{}, err
	}

	now := a.timeProvider.Now().UTC()
	if user.IsLockedOut(now) {
		RecordSignInAttempt(spanCtx, "locked_out")
		err := domain.NewUnauthorizedErr("account is locked out")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.User{}, domain.AccessToken{}, err
	}

	if !a.hasher.Verify(spanCtx, password, user.PasswordHash) {
		RecordSignInAttempt(spanCtx, "bad_credentials")
		err := a.recordFailure(spanCtx, user, now)
		if err == nil {
			err = domain.NewUnauthorizedErr("invalid credentials")
		}
		telemetry.RecordErrorAndStatus(span, err)
		return domain.User{}, domain.AccessToken{}, err
	}

	if user.AccessFailedCount > 0 || user.LockoutEnd != nil {
		err := datastore.Update(spanCtx, a.repo, user.ID, func(u *domain.User) {
			u.AccessFailedCount = 0
			u.LockoutEnd = nil
			u.UpdatedAt = now
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.User{}, domain.AccessToken{}, err
		}
		user.AccessFailedCount = 0
		user.LockoutEnd = nil
		user.UpdatedAt = now
	}

	token, err := a.issuer.Issue(spanCtx, *user)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, domain.AccessToken{}, err
	}

	RecordSignInAttempt(spanCtx, "success")
	return *user, token, nil
}

func (a AuthenticateUserImpl) findUser(ctx context.Context, email string) (*domain.User, error) {
	normalized := domain.NormalizeEmail(email)
	matches, err := datastore.ReadMany(ctx, a.repo, func(u *domain.User) bool {
		return u.NormalizedEmail == normalized
	})
	if err != nil {
		return nil, err
	}
	// oldest account first when unique e-mails are not enforced
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID.String() < matches[j].ID.String()
		}
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})

	var deactivated bool
	for _, u := range matches {
		if !u.IsSoftDeleted() {
			return u, nil
		}
		deactivated = true
	}
	if deactivated {
		RecordSignInAttempt(ctx, "deactivated")
		return nil, domain.NewUnauthorizedErr("account is deactivated")
	}
	RecordSignInAttempt(ctx, "unknown_user")
	return nil, domain.NewUnauthorizedErr("invalid credentials")
}

// recordFailure increments the failed attempts counter and locks the account
// once the configured maximum is reached.
func (a AuthenticateUserImpl) recordFailure(ctx context.Context, user *domain.User, now time.Time) error {
	var lockedOut bool
	err := datastore.Update(ctx, a.repo, user.ID, func(u *domain.User) {
		u.AccessFailedCount++
		u.UpdatedAt = now
		if u.AccessFailedCount >= a.options.Lockout.MaxFailedAccessAttempts {
			end := now.Add(a.options.Lockout.DefaultLockoutTimeSpan)
			u.LockoutEnd = &end
			u.AccessFailedCount = 0
			lockedOut = true
		}
	})
	if err != nil {
		return err
	}
	if lockedOut {
		UserLockouts.Add(ctx, 1)
		a.events.Record(ctx, domain.EventType_USER_LOCKED_OUT, user.ID, user.Email)
	}
	return nil
}

// InitAuthenticateUser initializes the AuthenticateUser use case.
type InitAuthenticateUser struct {
	Repo         *datastore.Repository      `resolve:""`
	Hasher       domain.PasswordHasher      `resolve:""`
	Issuer       domain.TokenIssuer         `resolve:""`
	Options      domain.IdentityOptions     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the AuthenticateUser use case in the dependency container.
func (i InitAuthenticateUser) Initialize(ctx context.Context) (context.Context, error) {
	events := NewUserEventRecorder(i.Repo, i.TimeProvider, i.Logger)
	depend.Register[AuthenticateUser](NewAuthenticateUserImpl(i.Repo, i.Hasher, i.Issuer, i.Options, i.TimeProvider, events))
	return ctx, nil
}
