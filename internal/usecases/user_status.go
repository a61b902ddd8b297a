package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
	"github.com/teamgo/teamgo/internal/telemetry"
)

// DeactivateUser defines the interface for the DeactivateUser use case.
type DeactivateUser interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// DeactivateUserImpl soft deletes user accounts.
type DeactivateUserImpl struct {
	repo   *datastore.Repository
	events UserEventRecorder
}

// NewDeactivateUserImpl creates a new instance of DeactivateUserImpl.
func NewDeactivateUserImpl(repo *datastore.Repository, events UserEventRecorder) DeactivateUserImpl {
	return DeactivateUserImpl{repo: repo, events: events}
}

// Execute marks the account as deactivated. Deactivating an inactive account is a no-op.
func (d DeactivateUserImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	user, err := findUser(spanCtx, d.repo, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if user.IsSoftDeleted() {
		telemetry.RecordErrorAndStatus(span, nil)
		return nil
	}

	err = datastore.SoftDelete[domain.User](spanCtx, d.repo, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	err = touchUser(spanCtx, d.repo, id, d.events.now())
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	d.events.Record(spanCtx, domain.EventType_USER_DEACTIVATED, id, user.Email)
	return nil
}

// RestoreUser defines the interface for the RestoreUser use case.
type RestoreUser interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// RestoreUserImpl reactivates soft deleted user accounts.
type RestoreUserImpl struct {
	repo   *datastore.Repository
	events UserEventRecorder
}

// NewRestoreUserImpl creates a new instance of RestoreUserImpl.
func NewRestoreUserImpl(repo *datastore.Repository, events UserEventRecorder) RestoreUserImpl {
	return RestoreUserImpl{repo: repo, events: events}
}

// Execute clears the deactivated mark. Restoring an active account is a no-op.
func (r RestoreUserImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	user, err := findUser(spanCtx, r.repo, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !user.IsSoftDeleted() {
		telemetry.RecordErrorAndStatus(span, nil)
		return nil
	}

	err = datastore.Restore[domain.User](spanCtx, r.repo, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	err = touchUser(spanCtx, r.repo, id, r.events.now())
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	r.events.Record(spanCtx, domain.EventType_USER_RESTORED, id, user.Email)
	return nil
}

// touchUser sets the account's UpdatedAt.
func touchUser(ctx context.Context, repo *datastore.Repository, id uuid.UUID, now time.Time) error {
	return datastore.Update[domain.User](ctx, repo, id, func(u *domain.User) {
		u.UpdatedAt = now
	})
}

// DeleteUser defines the interface for the DeleteUser use case.
type DeleteUser interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// DeleteUserImpl removes user accounts for good.
type DeleteUserImpl struct {
	repo   *datastore.Repository
	events UserEventRecorder
}

// NewDeleteUserImpl creates a new instance of DeleteUserImpl.
func NewDeleteUserImpl(repo *datastore.Repository, events UserEventRecorder) DeleteUserImpl {
	return DeleteUserImpl{repo: repo, events: events}
}

// Execute detaches the user's roles and deletes the account.
func (d DeleteUserImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	user, err := findUser(spanCtx, d.repo, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	// roles.user_id is ON DELETE SET NULL in SQL stores; the memory store has no foreign keys
	roles, err := rolesOf(spanCtx, d.repo, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	for _, role := range roles {
		err := datastore.Update(spanCtx, d.repo, role.ID, func(r *domain.Role) {
			r.UserID = nil
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
	}

	err = datastore.Delete[domain.User](spanCtx, d.repo, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	d.events.Record(spanCtx, domain.EventType_USER_DELETED, id, user.Email)
	return nil
}

// InitUserStatus initializes the DeactivateUser, RestoreUser and DeleteUser use cases.
type InitUserStatus struct {
	Repo         *datastore.Repository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the use cases in the dependency container.
func (i InitUserStatus) Initialize(ctx context.Context) (context.Context, error) {
	events := NewUserEventRecorder(i.Repo, i.TimeProvider, i.Logger)
	depend.Register[DeactivateUser](NewDeactivateUserImpl(i.Repo, events))
	depend.Register[RestoreUser](NewRestoreUserImpl(i.Repo, events))
	depend.Register[DeleteUser](NewDeleteUserImpl(i.Repo, events))
	return ctx, nil
}
