package usecases

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
)

// AssignRole defines the interface for the AssignRole use case.
type AssignRole interface {
	Execute(ctx context.Context, userID uuid.UUID, name string) (domain.Role, error)
}

// AssignRoleImpl is the implementation of the AssignRole use case.
type AssignRoleImpl struct {
	repo *datastore.Repository
}

// NewAssignRoleImpl creates a new instance of AssignRoleImpl.
func NewAssignRoleImpl(repo *datastore.Repository) AssignRoleImpl {
	return AssignRoleImpl{repo: repo}
}

// Execute attaches a new role to an active user. Role names are unique per user, ignoring case.
func (a AssignRoleImpl) Execute(ctx context.Context, userID uuid.UUID, name string) (domain.Role, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	role := domain.Role{Name: strings.TrimSpace(name), UserID: &userID}
	if err := role.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Role{}, err
	}

	user, err := findUser(spanCtx, a.repo, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Role{}, err
	}
	if user.IsSoftDeleted() {
		err := domain.NewValidationErr(fmt.Sprintf("user with ID %s is deactivated", userID))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Role{}, err
	}

	existing, err := rolesOf(spanCtx, a.repo, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Role{}, err
	}
	for _, r := range existing {
		if strings.EqualFold(r.Name, role.Name) {
			err := domain.NewConflictErr(fmt.Sprintf("user already has role %s", r.Name))
			telemetry.RecordErrorAndStatus(span, err)
			return domain.Role{}, err
		}
	}

	if _, err := datastore.Create(spanCtx, a.repo, &role); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Role{}, err
	}
	return role, nil
}

// ListRoles defines the interface for the ListRoles use case.
type ListRoles interface {
	Query(ctx context.Context, userID uuid.UUID) ([]domain.Role, error)
}

// ListRolesImpl is the implementation of the ListRoles use case.
type ListRolesImpl struct {
	repo *datastore.Repository
}

// NewListRolesImpl creates a new instance of ListRolesImpl.
func NewListRolesImpl(repo *datastore.Repository) ListRolesImpl {
	return ListRolesImpl{repo: repo}
}

// Query returns the roles of the user ordered by name.
func (l ListRolesImpl) Query(ctx context.Context, userID uuid.UUID) ([]domain.Role, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if _, err := findUser(spanCtx, l.repo, userID); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	found, err := rolesOf(spanCtx, l.repo, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(found))
	for _, r := range found {
		roles = append(roles, *r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

// RevokeRole defines the interface for the RevokeRole use case.
type RevokeRole interface {
	Execute(ctx context.Context, roleID uuid.UUID) error
}

// RevokeRoleImpl is the implementation of the RevokeRole use case.
type RevokeRoleImpl struct {
	repo *datastore.Repository
}

// NewRevokeRoleImpl creates a new instance of RevokeRoleImpl.
func NewRevokeRoleImpl(repo *datastore.Repository) RevokeRoleImpl {
	return RevokeRoleImpl{repo: repo}
}

// Execute deletes the role.
func (r RevokeRoleImpl) Execute(ctx context.Context, roleID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := datastore.Delete[domain.Role](spanCtx, r.repo, roleID)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

func rolesOf(ctx context.Context, repo *datastore.Repository, userID uuid.UUID) ([]*domain.Role, error) {
	return datastore.ReadMany(ctx, repo, func(r *domain.Role) bool {
		return r.UserID != nil && *r.UserID == userID
	})
}

// InitRoles initializes the AssignRole, ListRoles and RevokeRole use cases.
type InitRoles struct {
	Repo *datastore.Repository `resolve:""`
}

// Initialize registers the use cases in the dependency container.
func (i InitRoles) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AssignRole](NewAssignRoleImpl(i.Repo))
	depend.Register[ListRoles](NewListRolesImpl(i.Repo))
	depend.Register[RevokeRole](NewRevokeRoleImpl(i.Repo))
	return ctx, nil
}
