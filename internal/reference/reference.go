package reference

import "errors"

// Row is one client in the daily-refreshed reference table. ClientID is
// stored trimmed; at most one row exists per case-folded key.
type Row struct {
	ID              int64
	ClientID        string
	Name            string
	ManagementUnit  string
	Product         string
	PaymentChannel  string
	CollectionNotes string
}

var ErrNotFound = errors.New("client not found in reference table")
