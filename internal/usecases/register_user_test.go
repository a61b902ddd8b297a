package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teamgo/teamgo/internal/datastore"
	"github.com/teamgo/teamgo/internal/domain"
	domain_mocks "github.com/teamgo/teamgo/internal/domain/mocks"
)

func TestRegisterUserImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		email           string
		password        string
		options         func(*domain.IdentityOptions)
		seed            func(t *testing.T, repo *datastore.Repository)
		setExpectations func(hasher *domain_mocks.MockPasswordHasher)
		expectedErr     any
		expectedEvents  []domain.EventType
	}{
		"success": {
			email:    " ada@example.com ",
			password: "s3cret-pass",
			setExpectations: func(hasher *domain_mocks.MockPasswordHasher) {
				hasher.EXPECT().Hash(mock.Anything, "s3cret-pass").Return("hashed", nil)
			},
			expectedEvents: []domain.EventType{domain.EventType_USER_REGISTERED},
		},
		"invalid-email": {
			email:       "not-an-email",
			password:    "s3cret-pass",
			expectedErr: &domain.ValidationErr{},
		},
		"weak-password": {
			email:       "ada@example.com",
			password:    "short",
			expectedErr: &domain.ValidationErr{},
		},
		"duplicate-email": {
			email:    "ADA@example.com",
			password: "s3cret-pass",
			seed: func(t *testing.T, repo *datastore.Repository) {
				seedUser(t, repo, "ada@example.com")
			},
			expectedErr: &domain.ConflictErr{},
		},
		"duplicate-email-allowed": {
			email:    "ada@example.com",
			password: "s3cret-pass",
			options: func(o *domain.IdentityOptions) {
				o.User.RequireUniqueEmail = false
			},
			seed: func(t *testing.T, repo *datastore.Repository) {
				seedUser(t, repo, "ada@example.com")
			},
			setExpectations: func(hasher *domain_mocks.MockPasswordHasher) {
				hasher.EXPECT().Hash(mock.Anything, "s3cret-pass").Return("hashed", nil)
			},
			expectedEvents: []domain.EventType{domain.EventType_USER_REGISTERED},
		},
		"hash-error": {
			email:    "ada@example.com",
			password: "s3cret-pass",
			setExpectations: func(hasher *domain_mocks.MockPasswordHasher) {
				hasher.EXPECT().Hash(mock.Anything, "s3cret-pass").Return("", errors.New("hash failed"))
			},
			expectedErr: errors.New("hash failed"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepository(t)
			if tt.seed != nil {
				tt.seed(t, repo)
			}
			hasher := domain_mocks.NewMockPasswordHasher(t)
			if tt.setExpectations != nil {
				tt.setExpectations(hasher)
			}
			options := domain.DefaultIdentityOptions()
			if tt.options != nil {
				tt.options(&options)
			}

			uc := NewRegisterUserImpl(repo, hasher, options, domain.FixedTime(fixedTime), newTestRecorder(repo))
			got, err := uc.Execute(context.Background(), tt.email, tt.password)

			switch expected := tt.expectedErr.(type) {
			case nil:
				require.NoError(t, err)
				assert.Equal(t, "ada@example.com", got.Email)
				assert.Equal(t, "ADA@EXAMPLE.COM", got.NormalizedEmail)
				assert.Equal(t, "hashed", got.PasswordHash)
				assert.Equal(t, fixedTime, got.CreatedAt)
				assert.Equal(t, got, mustReadUser(t, repo, got.ID))
			case *domain.ValidationErr:
				assert.ErrorAs(t, err, &expected)
			case *domain.ConflictErr:
				assert.ErrorAs(t, err, &expected)
			case error:
				assert.EqualError(t, err, expected.Error())
			}
			assert.ElementsMatch(t, tt.expectedEvents, recordedEvents(t, repo))
		})
	}
}

func TestInitRegisterUser_Initialize(t *testing.T) {
	depend.ClearContainer()
	t.Cleanup(depend.ClearContainer)

	repo := newTestRepository(t)
	i := InitRegisterUser{
		Repo:         repo,
		Hasher:       domain_mocks.NewMockPasswordHasher(t),
		Options:      domain.DefaultIdentityOptions(),
		TimeProvider: domain.FixedTime(fixedTime),
		Logger:       newTestRecorder(repo).logger,
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	registered, err := depend.Resolve[RegisterUser]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
