// Package staging implements the bulk path for large reference uploads:
// truncate the landing table, stream the file in through Postgres COPY,
// then reconcile against base_general with a single rank-1 dedup query.
// Everything runs inside one transaction on one raw pgx connection.
package staging

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/hgmendoza/recaudo/internal/reffile"
)

// Mode selects how the dedup set is applied to base_general.
type Mode string

const (
	// ModeInsert writes only keys with no existing match.
	ModeInsert Mode = "insert"
	// ModeUpsert inserts new keys and overwrites existing ones.
	ModeUpsert Mode = "upsert"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeInsert, ModeUpsert:
		return Mode(s), nil
	case "":
		return ModeUpsert, nil
	}

	return "", fmt.Errorf("unknown load mode: %q", s)
}

// Summary describes one staged load.
type Summary struct {
	TotalStaged int64
	DedupCount  int64
	NewCount    int64
	Inserted    int64
	Updated     int64
	Elapsed     time.Duration
}

func (s *Summary) String() string {
	return fmt.Sprintf(
		"Carga masiva: %d filas en staging, %d únicas tras dedup, %d insertadas, %d actualizadas (%.2fs)",
		s.TotalStaged, s.DedupCount, s.Inserted, s.Updated, s.Elapsed.Seconds())
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadFile runs the staged variant against the upload persisted at path.
// The file is removed on every exit path, success or failure.
func (s *Store) LoadFile(ctx context.Context, path string, mode Mode) (*Summary, error) {
	defer os.Remove(path)

	ds, err := reffile.ParseFile(path)
	if err != nil {
		return nil, err
	}

	return s.Load(ctx, ds, mode)
}

// Load stages the dataset and reconciles it into base_general.
func (s *Store) Load(ctx context.Context, ds *reffile.Dataset, mode Mode) (*Summary, error) {
	start := time.Now()

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	var summary *Summary

	// COPY needs the pgx connection underneath database/sql.
	err = conn.Raw(func(driverConn any) error {
		pgxConn := driverConn.(*stdlib.Conn).Conn()

		summary, err = load(ctx, pgxConn, ds, mode)

		return err
	})
	if err != nil {
		return nil, err
	}

	summary.Elapsed = time.Since(start)

	return summary, nil
}

func load(ctx context.Context, conn *pgx.Conn, ds *reffile.Dataset, mode Mode) (*Summary, error) {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning staging tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE base_general_staging`); err != nil {
		return nil, fmt.Errorf("truncating staging: %w", err)
	}

	staged, err := tx.CopyFrom(ctx,
		pgx.Identifier{"base_general_staging"},
		[]string{"client_id", "name", "management_unit", "product", "payment_channel", "collection_notes"},
		copySource(ds.Rows),
	)
	if err != nil {
		return nil, fmt.Errorf("copying into staging: %w", err)
	}

	summary := &Summary{TotalStaged: staged}

	if err := tx.QueryRow(ctx, countsQuery).Scan(&summary.DedupCount, &summary.NewCount); err != nil {
		return nil, fmt.Errorf("counting staged rows: %w", err)
	}

	switch mode {
	case ModeInsert:
		if _, err := tx.Exec(ctx, insertQuery); err != nil {
			return nil, fmt.Errorf("applying staged inserts: %w", err)
		}

		summary.Inserted = summary.NewCount
	case ModeUpsert:
		if _, err := tx.Exec(ctx, upsertQuery); err != nil {
			return nil, fmt.Errorf("applying staged upsert: %w", err)
		}

		summary.Inserted = summary.NewCount
		summary.Updated = max(summary.DedupCount-summary.NewCount, 0)
	default:
		return nil, fmt.Errorf("unknown load mode: %q", mode)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing staged load: %w", err)
	}

	return summary, nil
}

// copySource feeds staging rows into COPY, trimming every field and
// coercing empties to NULL at load time.
func copySource(rows []reffile.Row) pgx.CopyFromSource {
	return pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		r := rows[i]

		return []any{
			nullTrim(r.ClientID),
			nullTrim(r.Name),
			nullTrim(r.ManagementUnit),
			nullTrim(r.Product),
			nullTrim(r.PaymentChannel),
			nullTrim(r.CollectionNotes),
		}, nil
	})
}

func nullTrim(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return s
}

// rankedCTE keeps one row per case-folded key: the highest staging id wins,
// so the row loaded last from the file is the one applied.
const rankedCTE = `
	WITH ranked AS (
		SELECT id, client_id, name, management_unit, product, payment_channel, collection_notes,
		       ROW_NUMBER() OVER (
		           PARTITION BY upper(btrim(client_id))
		           ORDER BY id DESC
		       ) AS rn
		FROM base_general_staging
		WHERE client_id IS NOT NULL AND btrim(client_id) <> ''
	)
`

const countsQuery = rankedCTE + `
	SELECT
		count(*) FILTER (WHERE rn = 1) AS dedup_count,
		count(*) FILTER (WHERE rn = 1 AND NOT EXISTS (
			SELECT 1 FROM base_general b
			WHERE upper(b.client_id) = upper(btrim(ranked.client_id))
		)) AS new_count
	FROM ranked
`

const insertQuery = rankedCTE + `
	INSERT INTO base_general (client_id, name, management_unit, product, payment_channel, collection_notes)
	SELECT btrim(client_id),
	       coalesce(name, ''),
	       coalesce(management_unit, ''),
	       coalesce(product, ''),
	       coalesce(payment_channel, ''),
	       coalesce(collection_notes, '')
	FROM ranked
	WHERE rn = 1 AND NOT EXISTS (
		SELECT 1 FROM base_general b
		WHERE upper(b.client_id) = upper(btrim(ranked.client_id))
	)
`

const upsertQuery = rankedCTE + `
	INSERT INTO base_general (client_id, name, management_unit, product, payment_channel, collection_notes)
	SELECT btrim(client_id),
	       coalesce(name, ''),
	       coalesce(management_unit, ''),
	       coalesce(product, ''),
	       coalesce(payment_channel, ''),
	       coalesce(collection_notes, '')
	FROM ranked
	WHERE rn = 1
	ON CONFLICT ((upper(client_id))) DO UPDATE SET
		name = EXCLUDED.name,
		management_unit = EXCLUDED.management_unit,
		product = EXCLUDED.product,
		payment_channel = EXCLUDED.payment_channel,
		collection_notes = EXCLUDED.collection_notes
`
