package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user is inactive")
)

// Credentials is the stored login material for one user.
type Credentials struct {
	UserID       int64
	Username     string
	PasswordHash string
	Role         string
	Active       bool
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	GetCredentials(ctx context.Context, username string) (*Credentials, error)
}

// ErrNotFound is returned by Repository when no user matches.
var ErrNotFound = errors.New("user not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Login verifies the username/password pair and returns a session on success.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	creds, err := s.repo.GetCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !creds.Active {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := ParseRole(creds.Role)
	if err != nil {
		// A stored role outside the enumeration denies login rather than
		// passing gates as an unknown string.
		return nil, fmt.Errorf("user %q: %w", username, err)
	}

	return &Session{UserID: creds.UserID, Username: creds.Username, Role: role}, nil
}
