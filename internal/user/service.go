package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hgmendoza/recaudo/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	List(ctx context.Context) ([]*User, error)
	// Create returns ErrDuplicateUsername when the username is taken.
	Create(ctx context.Context, username, passwordHash string, role auth.Role, active bool) (*User, error)
	SetActive(ctx context.Context, id int64, active bool) error
	SetPassword(ctx context.Context, username, passwordHash string) error
}

type CreateParams struct {
	Username string
	Password string
	Role     string
	Active   bool
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Create registers an account with a bcrypt-hashed password. The role
// string must parse; an empty role defaults to agent.
func (s *Service) Create(ctx context.Context, p CreateParams) (*User, error) {
	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" || p.Password == "" {
		return nil, ErrMissingFields
	}

	if p.Role == "" {
		p.Role = string(auth.RoleAgent)
	}

	role, err := auth.ParseRole(p.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u, err := s.repo.Create(ctx, p.Username, string(hash), role, p.Active)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// SetActive toggles whether an account can log in.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// ResetPassword replaces an account's password from the ops console.
func (s *Service) ResetPassword(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.repo.SetPassword(ctx, username, string(hash))
}
