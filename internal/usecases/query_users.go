package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
)

// GetUser defines the interface for the GetUser use case.
type GetUser interface {
	Query(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// GetUserImpl is the implementation of the GetUser use case.
type GetUserImpl struct {
	repo *datastore.Repository
}

// NewGetUserImpl creates a new instance of GetUserImpl.
func NewGetUserImpl(repo *datastore.Repository) GetUserImpl {
	return GetUserImpl{repo: repo}
}

// Query returns the user with the given ID, deactivated or not.
func (g GetUserImpl) Query(ctx context.Context, id uuid.UUID) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	user, err := findUser(spanCtx, g.repo, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	return *user, nil
}

// ListUsers defines the interface for the ListUsers use case.
type ListUsers interface {
	Query(ctx context.Context, deactivated bool) ([]domain.User, error)
}

// ListUsersImpl is the implementation of the ListUsers use case.
type ListUsersImpl struct {
	repo *datastore.Repository
}

// NewListUsersImpl creates a new instance of ListUsersImpl.
func NewListUsersImpl(repo *datastore.Repository) ListUsersImpl {
	return ListUsersImpl{repo: repo}
}

// Query returns the active users, or the deactivated ones when deactivated is true,
// ordered by creation time.
func (l ListUsersImpl) Query(ctx context.Context, deactivated bool) ([]domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	found, err := datastore.ReadSoft(spanCtx, l.repo, func(*domain.User) bool { return true }, deactivated)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	users := make([]domain.User, 0, len(found))
	for _, u := range found {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].Email < users[j].Email
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func findUser(ctx context.Context, repo *datastore.Repository, id uuid.UUID) (*domain.User, error) {
	user, found, err := datastore.Read[domain.User](ctx, repo, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NewNotFoundErr(fmt.Sprintf("user with ID %s not found", id))
	}
	return user, nil
}

// InitGetUser initializes the GetUser use case.
type InitGetUser struct {
	Repo *datastore.Repository `resolve:""`
}

// Initialize registers the GetUser use case in the dependency container.
func (i InitGetUser) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetUser](NewGetUserImpl(i.Repo))
	return ctx, nil
}

// InitListUsers initializes the ListUsers use case.
type InitListUsers struct {
	Repo *datastore.Repository `resolve:""`
}

// Initialize registers the ListUsers use case in the dependency container.
func (i InitListUsers) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListUsers](NewListUsersImpl(i.Repo))
	return ctx, nil
}
