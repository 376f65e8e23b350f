package services

import (
	"errors"
	"strings"

	"fittrack/internal/apperrors"
	"fittrack/internal/models"
	"fittrack/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost factor the original deployment hashed with.
const bcryptCost = 10

// AuthUser is the client-visible projection of a user record.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by both Register and Login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// AuthService orchestrates registration and login over the user repository
// and the token service.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new account, hashes the password, and issues a token
// for the fresh user. Emails are unique case-insensitively; they are
// normalized to lowercase before storage and lookup.
func (s *AuthService) Register(email, name, password string) (*AuthResponse, error) {
	if email == "" || name == "" || password == "" {
		return nil, apperrors.Validation("All fields are required")
	}
	email = strings.ToLower(email)

	// Check-then-insert is not atomic under concurrent registrations; the
	// unique index on email backstops it with a duplicate-key error below.
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, apperrors.Conflict("Email already in use")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.Persistence("Failed to register user.", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Persistence("Failed to register user.", err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, apperrors.Conflict("Email already in use")
		}
		return nil, apperrors.Persistence("Failed to register user.", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to generate auth token.", err)
	}

	return &AuthResponse{
		Token: token,
		User:  AuthUser{ID: user.ID, Email: user.Email, Name: user.Name},
	}, nil
}

// Login authenticates by email and password and issues a fresh token.
// Unknown email and wrong password return the identical error so callers
// cannot tell which check failed.
func (s *AuthService) Login(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation("Email and password are required")
	}
	email = strings.ToLower(email)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, apperrors.Auth("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Auth("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to generate auth token.", err)
	}

	return &AuthResponse{
		Token: token,
		User:  AuthUser{ID: user.ID, Email: user.Email, Name: user.Name},
	}, nil
}
