package record

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrForbidden      = errors.New("record belongs to another agent")
	ErrClientNotFound = errors.New("client not found in daily base")
	ErrBadCatalog     = errors.New("unknown arrangement type or collection channel")
)

// Record is one collection arrangement captured by an agent. The *Snap
// fields copy the reference row at save time and never change when the
// daily base is refreshed later.
type Record struct {
	ID       int64
	ClientID string

	NameSnap            string
	ManagementUnitSnap  string
	ProductSnap         string
	PaymentChannelSnap  string
	CollectionNotesSnap string

	ArrangementTypeID   int64
	CollectionChannelID int64

	PromiseDate         time.Time
	Phone               *string
	Week                *int
	InitialPaymentCents *int64
	WeeklyPaymentCents  *int64
	DurationWeeks       *int
	Notes               *string

	FileAgreement *string
	FilePayment   *string
	FileAction    *string

	CreatedBy int64
	CreatedAt time.Time

	// Loaded via JOIN for listings and exports.
	CreatorUsername       string
	ArrangementTypeName   string
	CollectionChannelName string
}
