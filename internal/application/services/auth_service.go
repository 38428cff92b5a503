package services

import (
	"context"
	"errors"
	"fmt"

	"smart-grocery/internal/domain/entities"
	"smart-grocery/internal/domain/repositories"
	"smart-grocery/internal/infrastructure"
)

var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthResult is returned by both signup and login.
type AuthResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type AuthService struct {
	users  repositories.UserRepository
	hasher *infrastructure.PasswordHasher
	tokens *infrastructure.TokenService
}

func NewAuthService(users repositories.UserRepository, hasher *infrastructure.PasswordHasher, tokens *infrastructure.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

func (s *AuthService) Signup(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.NewUser(username, digest)
	if err := s.users.Create(ctx, user); err != nil {
		// The store's unique constraint is the authoritative guard; a
		// concurrent duplicate signup lands here and gets the same
		// conflict a sequential one would.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.result(user)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	// Unknown user and wrong password are answered identically.
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.result(user)
}

func (s *AuthService) result(user *entities.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{ID: user.ID, Username: user.Username, Token: token}, nil
}
