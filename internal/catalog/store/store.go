package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hgmendoza/recaudo/internal/catalog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// tableFor maps a catalog kind onto its table. Both tables share the
// id/name/active shape.
func tableFor(kind catalog.Kind) (string, error) {
	switch kind {
	case catalog.KindArrangementType:
		return "arrangement_types", nil
	case catalog.KindCollectionChannel:
		return "collection_channels", nil
	}

	return "", fmt.Errorf("unknown catalog kind %q", kind)
}

func (s *Store) ListActive(ctx context.Context, kind catalog.Kind) ([]*catalog.Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT id, name, active FROM %s WHERE active ORDER BY name ASC", table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	var entries []*catalog.Entry

	for rows.Next() {
		var e catalog.Entry

		if err := rows.Scan(&e.ID, &e.Name, &e.Active); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}

	return entries, nil
}

func (s *Store) Exists(ctx context.Context, kind catalog.Kind, id int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", table)

	var exists bool

	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking %s: %w", table, err)
	}

	return exists, nil
}

func (s *Store) Upsert(ctx context.Context, kind catalog.Kind, name string, active bool) (*catalog.Entry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name, active)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET active = EXCLUDED.active
		RETURNING id, name, active`, table)

	var e catalog.Entry

	if err := s.db.QueryRowContext(ctx, query, name, active).Scan(&e.ID, &e.Name, &e.Active); err != nil {
		return nil, fmt.Errorf("upserting into %s: %w", table, err)
	}

	return &e, nil
}
