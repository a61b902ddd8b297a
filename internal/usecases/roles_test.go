package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
)

func TestAssignRoleImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		role        string
		missingUser bool
		deactivated bool
		expectedErr any
	}{
		"success": {
			role: "  reader ",
		},
		"empty-name": {
			role:        " ",
			expectedErr: &domain.ValidationErr{},
		},
		"duplicate-name": {
			role:        "ADMIN",
			expectedErr: &domain.ConflictErr{},
		},
		"missing-user": {
			role:        "reader",
			missingUser: true,
			expectedErr: &domain.NotFoundErr{},
		},
		"deactivated-user": {
			role:        "reader",
			deactivated: true,
			expectedErr: &domain.ValidationErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newTestRepository(t)
			user := seedUser(t, repo, "ada@example.com")
			_, err := datastore.Create(ctx, repo, &domain.Role{Name: "admin", UserID: &user.ID})
			require.NoError(t, err)
			if tt.deactivated {
				require.NoError(t, datastore.SoftDelete[domain.User](ctx, repo, user.ID))
			}
			userID := user.ID
			if tt.missingUser {
				userID = uuid.New()
			}

			got, err := NewAssignRoleImpl(repo).Execute(ctx, userID, tt.role)

			switch expected := tt.expectedErr.(type) {
			case nil:
				require.NoError(t, err)
				assert.Equal(t, "reader", got.Name)
				require.NotNil(t, got.UserID)
				assert.Equal(t, user.ID, *got.UserID)
				stored, found, err := datastore.Read[domain.Role](ctx, repo, got.ID)
				require.NoError(t, err)
				require.True(t, found)
				assert.Equal(t, got, *stored)
			case *domain.ValidationErr:
				assert.ErrorAs(t, err, &expected)
			case *domain.ConflictErr:
				assert.ErrorAs(t, err, &expected)
			case *domain.NotFoundErr:
				assert.ErrorAs(t, err, &expected)
			}
		})
	}
}

func TestListRolesImpl_Query(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	user := seedUser(t, repo, "ada@example.com")
	other := seedUser(t, repo, "bob@example.com")
	for _, name := range []string{"writer", "admin"} {
		_, err := datastore.Create(ctx, repo, &domain.Role{Name: name, UserID: &user.ID})
		require.NoError(t, err)
	}
	_, err := datastore.Create(ctx, repo, &domain.Role{Name: "reader", UserID: &other.ID})
	require.NoError(t, err)
	_, err = datastore.Create(ctx, repo, &domain.Role{Name: "orphan"})
	require.NoError(t, err)

	got, err := NewListRolesImpl(repo).Query(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "admin", got[0].Name)
	assert.Equal(t, "writer", got[1].Name)

	_, err = NewListRolesImpl(repo).Query(ctx, uuid.New())
	var notFound *domain.NotFoundErr
	assert.ErrorAs(t, err, &notFound)
}

func TestRevokeRoleImpl_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	user := seedUser(t, repo, "ada@example.com")
	roleID, err := datastore.Create(ctx, repo, &domain.Role{Name: "admin", UserID: &user.ID})
	require.NoError(t, err)

	uc := NewRevokeRoleImpl(repo)
	require.NoError(t, uc.Execute(ctx, roleID))

	_, found, err := datastore.Read[domain.Role](ctx, repo, roleID)
	require.NoError(t, err)
	assert.False(t, found)

	var notFound *domain.NotFoundErr
	assert.ErrorAs(t, uc.Execute(ctx, roleID), &notFound)
}

func TestInitRoles_Initialize(t *testing.T) {
	depend.ClearContainer()
	t.Cleanup(depend.ClearContainer)

	_, err := InitRoles{Repo: newTestRepository(t)}.Initialize(context.Background())
	require.NoError(t, err)

	_, err = depend.Resolve[AssignRole]()
	assert.NoError(t, err)
	_, err = depend.Resolve[ListRoles]()
	assert.NoError(t, err)
	_, err = depend.Resolve[RevokeRole]()
	assert.NoError(t, err)
}
