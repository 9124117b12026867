package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hgmendoza/recaudo/internal/reference"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectColumns = `id, client_id, name, management_unit, product, payment_channel, collection_notes`

type scanner interface {
	Scan(dest ...any) error
}

func scanRow(s scanner) (*reference.Row, error) {
	var row reference.Row

	if err := s.Scan(
		&row.ID, &row.ClientID, &row.Name, &row.ManagementUnit,
		&row.Product, &row.PaymentChannel, &row.CollectionNotes,
	); err != nil {
		return nil, err
	}

	return &row, nil
}

func (s *Store) GetByClientID(ctx context.Context, clientID string) (*reference.Row, error) {
	query := `SELECT ` + selectColumns + `
		FROM base_general
		WHERE upper(client_id) = upper($1)`

	row, err := scanRow(s.db.QueryRowContext(ctx, query, clientID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, reference.ErrNotFound
		}

		return nil, fmt.Errorf("getting reference row: %w", err)
	}

	return row, nil
}

func (s *Store) SearchPrefix(ctx context.Context, prefix string, limit int) ([]*reference.Row, error) {
	query := `SELECT ` + selectColumns + `
		FROM base_general
		WHERE client_id ILIKE $1 || '%'
		ORDER BY client_id ASC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("searching reference rows: %w", err)
	}
	defer rows.Close()

	var out []*reference.Row

	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reference row: %w", err)
		}

		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reference rows: %w", err)
	}

	return out, nil
}

type loadTx struct {
	tx *sql.Tx
}

func (s *Store) BeginLoad(ctx context.Context) (reference.LoadTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning load tx: %w", err)
	}

	return &loadTx{tx: tx}, nil
}

func (t *loadTx) Commit() error   { return t.tx.Commit() }
func (t *loadTx) Rollback() error { return t.tx.Rollback() }

func (t *loadTx) Get(ctx context.Context, clientID string) (*reference.Row, error) {
	query := `SELECT ` + selectColumns + `
		FROM base_general
		WHERE upper(client_id) = upper($1)`

	row, err := scanRow(t.tx.QueryRowContext(ctx, query, clientID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, reference.ErrNotFound
		}

		return nil, fmt.Errorf("getting reference row: %w", err)
	}

	return row, nil
}

func (t *loadTx) Insert(ctx context.Context, row *reference.Row) error {
	query := `
		INSERT INTO base_general (client_id, name, management_unit, product, payment_channel, collection_notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := t.tx.QueryRowContext(ctx, query,
		row.ClientID, row.Name, row.ManagementUnit,
		row.Product, row.PaymentChannel, row.CollectionNotes,
	).Scan(&row.ID)
	if err != nil {
		return fmt.Errorf("inserting reference row: %w", err)
	}

	return nil
}

func (t *loadTx) Update(ctx context.Context, row *reference.Row) error {
	query := `
		UPDATE base_general
		SET name = $1, management_unit = $2, product = $3, payment_channel = $4, collection_notes = $5
		WHERE id = $6
	`

	if _, err := t.tx.ExecContext(ctx, query,
		row.Name, row.ManagementUnit, row.Product,
		row.PaymentChannel, row.CollectionNotes, row.ID,
	); err != nil {
		return fmt.Errorf("updating reference row: %w", err)
	}

	return nil
}
