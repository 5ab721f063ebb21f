package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	tokens := auth.NewManager("test-secret", time.Hour)
	return NewUserService(repo, tokens), repo
}

func TestUserService_Register_Success(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterUserInput{
		Email:    "Alice@Example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
}

func TestUserService_Register_Validation(t *testing.T) {
	svc, _ := newUserService(t)

	tests := []struct {
		name  string
		input domain.RegisterUserInput
	}{
		{"missing email", domain.RegisterUserInput{Password: "secret-password"}},
		{"malformed email", domain.RegisterUserInput{Email: "not-an-email", Password: "secret-password"}},
		{"short password", domain.RegisterUserInput{Email: "a@b.c", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterUserInput{
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	token, got, err := svc.Authenticate(context.Background(), "Alice@Example.com", "secret-password")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", got.ID)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "alice@example.com", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	_, _, err = svc.Authenticate(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Authenticate_UnknownEmail(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
