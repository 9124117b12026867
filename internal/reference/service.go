package reference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hgmendoza/recaudo/internal/reffile"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reference
type Repository interface {
	GetByClientID(ctx context.Context, clientID string) (*Row, error)
	SearchPrefix(ctx context.Context, prefix string, limit int) ([]*Row, error)

	BeginLoad(ctx context.Context) (LoadTx, error)
}

// LoadTx is the transactional scope of one direct-variant load. The whole
// file commits or rolls back as a unit.
type LoadTx interface {
	Get(ctx context.Context, clientID string) (*Row, error)
	Insert(ctx context.Context, row *Row) error
	Update(ctx context.Context, row *Row) error
	Commit() error
	Rollback() error
}

// LoadStats is the outcome of a direct-variant load.
// Inserted + Updated + Skipped equals the input row count.
type LoadStats struct {
	Inserted int
	Updated  int
	Skipped  int
}

func (s LoadStats) String() string {
	return fmt.Sprintf("Base cargada. Insertados: %d | Actualizados: %d | Omitidos: %d",
		s.Inserted, s.Updated, s.Skipped)
}

const searchLimit = 10

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Lookup returns the reference row for an exact client key.
func (s *Service) Lookup(ctx context.Context, clientID string) (*Row, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrNotFound
	}

	return s.repo.GetByClientID(ctx, clientID)
}

// Search returns up to 10 rows whose client key starts with term. Terms
// shorter than two characters return nothing, matching the autocomplete
// contract.
func (s *Service) Search(ctx context.Context, term string) ([]*Row, error) {
	term = strings.TrimSpace(term)
	if len(term) < 2 {
		return nil, nil
	}

	return s.repo.SearchPrefix(ctx, term, searchLimit)
}

// Load applies a parsed upload with the direct upsert variant: one
// lookup-then-write per row, one transaction for the whole file. Rows with
// an empty key after trimming are skipped. Duplicate keys within the file
// are intentionally not collapsed here; each occurrence runs its own
// lookup-then-write (the staging variant dedups instead).
func (s *Service) Load(ctx context.Context, ds *reffile.Dataset) (*LoadStats, error) {
	stats := &LoadStats{Skipped: ds.Malformed}

	tx, err := s.repo.BeginLoad(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	for _, in := range ds.Rows {
		clientID := strings.TrimSpace(in.ClientID)
		if clientID == "" {
			stats.Skipped++
			continue
		}

		row := &Row{
			ClientID:        clientID,
			Name:            in.Name,
			ManagementUnit:  in.ManagementUnit,
			Product:         in.Product,
			PaymentChannel:  in.PaymentChannel,
			CollectionNotes: in.CollectionNotes,
		}

		existing, err := tx.Get(ctx, clientID)

		switch {
		case err == nil:
			row.ID = existing.ID
			if err := tx.Update(ctx, row); err != nil {
				return nil, fmt.Errorf("updating %s: %w", clientID, err)
			}

			stats.Updated++
		case errors.Is(err, ErrNotFound):
			if err := tx.Insert(ctx, row); err != nil {
				return nil, fmt.Errorf("inserting %s: %w", clientID, err)
			}

			stats.Inserted++
		default:
			return nil, fmt.Errorf("looking up %s: %w", clientID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit load: %w", err)
	}

	return stats, nil
}
