package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cypress-app/cypress-api/internal/models"
	"github.com/cypress-app/cypress-api/internal/store"
)

// UserStore is the credential store the service reads and writes.
type UserStore interface {
	Create(ctx context.Context, email, hashedPassword string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service implements registration, login and per-request identity
// resolution on top of an injected credential store and token manager.
type Service struct {
	users  UserStore
	tokens *TokenManager
}

func NewService(users UserStore, tokens *TokenManager) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register hashes the password, persists the user and returns a fresh
// bearer token. A duplicate email surfaces as store.ErrDuplicateEmail.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(user.Email)
}

// Login verifies the credentials and returns a fresh bearer token.
// Unknown email and wrong password are indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email)
}

// ResolveUser verifies the token and loads the user it names.
func (s *Service) ResolveUser(ctx context.Context, token string) (*models.User, error) {
	email, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}

	return user, nil
}
