package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hgmendoza/recaudo/internal/auth"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetCredentials(ctx context.Context, username string) (*auth.Credentials, error) {
	query := `
		SELECT id, username, password_hash, role, active
		FROM users
		WHERE username = $1
	`

	var creds auth.Credentials

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&creds.UserID, &creds.Username, &creds.PasswordHash, &creds.Role, &creds.Active,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, auth.ErrNotFound
		}

		return nil, fmt.Errorf("getting credentials: %w", err)
	}

	return &creds, nil
}
