package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type UserService struct {
	repo   ports.UserRepo
	tokens TokenIssuer
}

func NewUserService(repo ports.UserRepo, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error) {
	fields := make(map[string]string)
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		fields["email"] = "A valid email is required."
	}
	if len(input.Password) < 8 {
		fields["password"] = "The password must be at least 8 characters."
	}
	if len(fields) > 0 {
		return nil, &domain.FieldErrors{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          strings.ToLower(input.Email),
		PasswordHash:   string(hash),
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate checks the credentials and issues a session token.
// Unknown email and wrong password are indistinguishable to the
// caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
