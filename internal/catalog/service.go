package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyName = errors.New("catalog name is required")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	ListActive(ctx context.Context, kind Kind) ([]*Entry, error)
	Exists(ctx context.Context, kind Kind, id int64) (bool, error)
	// Upsert keys on the trimmed name: an existing entry gets its active
	// flag overwritten, a new one is inserted.
	Upsert(ctx context.Context, kind Kind, name string, active bool) (*Entry, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListActive returns the usable entries of one catalog, ordered by name.
func (s *Service) ListActive(ctx context.Context, kind Kind) ([]*Entry, error) {
	return s.repo.ListActive(ctx, kind)
}

// Save upserts an entry by name. Saving an existing name with active=false
// retires it without breaking records that already reference it.
func (s *Service) Save(ctx context.Context, kind Kind, name string, active bool) (*Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	entry, err := s.repo.Upsert(ctx, kind, name, active)
	if err != nil {
		return nil, fmt.Errorf("saving catalog entry: %w", err)
	}

	return entry, nil
}

// ArrangementTypeExists reports whether an arrangement type id is valid.
func (s *Service) ArrangementTypeExists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, KindArrangementType, id)
}

// CollectionChannelExists reports whether a collection channel id is valid.
func (s *Service) CollectionChannelExists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, KindCollectionChannel, id)
}
