package catalog

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("catalog entry not found")

// Kind selects which of the two record catalogs an operation targets.
type Kind string

const (
	KindArrangementType   Kind = "arrangement_type"
	KindCollectionChannel Kind = "collection_channel"
)

func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindArrangementType, KindCollectionChannel:
		return Kind(raw), nil
	}

	return "", fmt.Errorf("unknown catalog kind %q", raw)
}

// Entry is one row of either catalog.
type Entry struct {
	ID     int64
	Name   string
	Active bool
}
