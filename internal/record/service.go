package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hgmendoza/recaudo/internal/auth"
	"github.com/hgmendoza/recaudo/internal/reference"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=record
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id int64) (*Record, error)
	Update(ctx context.Context, rec *Record) error
	List(ctx context.Context, filter ListFilter) ([]*Record, error)
}

// ReferenceLookup resolves a client key against the daily base.
type ReferenceLookup interface {
	Lookup(ctx context.Context, clientID string) (*reference.Row, error)
}

// CatalogChecker verifies that a catalog row exists and is usable.
type CatalogChecker interface {
	ArrangementTypeExists(ctx context.Context, id int64) (bool, error)
	CollectionChannelExists(ctx context.Context, id int64) (bool, error)
}

type ListFilter struct {
	CreatedBy *int64
	Week      *int
	OrderAsc  bool
	Limit     int
}

// SaveParams carries the operator-entered fields of a create or edit.
// Evidence filenames are the stored names produced by the upload store.
type SaveParams struct {
	ClientID            string
	ArrangementTypeID   int64
	CollectionChannelID int64
	PromiseDate         *time.Time
	Phone               string
	Week                *int
	InitialPaymentCents *int64
	WeeklyPaymentCents  *int64
	DurationWeeks       *int
	Notes               string

	FileAgreement *string
	FilePayment   *string
	FileAction    *string
}

// EvidenceUpdate mutates one evidence slot on edit: Remove clears it,
// Set replaces it with a newly stored file. Set wins over Remove.
type EvidenceUpdate struct {
	Remove bool
	Set    *string
}

type EvidenceChanges struct {
	Agreement EvidenceUpdate
	Payment   EvidenceUpdate
	Action    EvidenceUpdate
}

type Service struct {
	repo     Repository
	refs     ReferenceLookup
	catalogs CatalogChecker
}

func NewService(repo Repository, refs ReferenceLookup, catalogs CatalogChecker) *Service {
	return &Service{repo: repo, refs: refs, catalogs: catalogs}
}

// canTouch reports whether the session may view or edit rec. Plain agents
// only reach their own records; elevated roles reach all.
func canTouch(sess *auth.Session, rec *Record) bool {
	if sess.Role.Elevated() {
		return true
	}

	return rec.CreatedBy == sess.UserID
}

func (s *Service) checkCatalogs(ctx context.Context, p SaveParams) error {
	ok, err := s.catalogs.ArrangementTypeExists(ctx, p.ArrangementTypeID)
	if err != nil {
		return fmt.Errorf("checking arrangement type: %w", err)
	}

	if !ok {
		return ErrBadCatalog
	}

	ok, err = s.catalogs.CollectionChannelExists(ctx, p.CollectionChannelID)
	if err != nil {
		return fmt.Errorf("checking collection channel: %w", err)
	}

	if !ok {
		return ErrBadCatalog
	}

	return nil
}

func (s *Service) snapshot(ctx context.Context, rec *Record, clientID string) error {
	base, err := s.refs.Lookup(ctx, clientID)
	if err != nil {
		if errors.Is(err, reference.ErrNotFound) {
			return ErrClientNotFound
		}

		return fmt.Errorf("looking up client: %w", err)
	}

	rec.ClientID = base.ClientID
	rec.NameSnap = base.Name
	rec.ManagementUnitSnap = base.ManagementUnit
	rec.ProductSnap = base.Product
	rec.PaymentChannelSnap = base.PaymentChannel
	rec.CollectionNotesSnap = base.CollectionNotes

	return nil
}

// Create validates the client key and catalog references, snapshots the
// reference row, and persists the record for the session user.
func (s *Service) Create(ctx context.Context, sess *auth.Session, p SaveParams) (*Record, error) {
	if err := s.checkCatalogs(ctx, p); err != nil {
		return nil, err
	}

	// Default to the local calendar day, not UTC midnight.
	now := time.Now()
	promiseDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if p.PromiseDate != nil {
		promiseDate = *p.PromiseDate
	}

	rec := &Record{
		ArrangementTypeID:   p.ArrangementTypeID,
		CollectionChannelID: p.CollectionChannelID,
		PromiseDate:         promiseDate,
		Phone:               optional(p.Phone),
		Week:                p.Week,
		InitialPaymentCents: p.InitialPaymentCents,
		WeeklyPaymentCents:  p.WeeklyPaymentCents,
		DurationWeeks:       p.DurationWeeks,
		Notes:               optional(p.Notes),
		FileAgreement:       p.FileAgreement,
		FilePayment:         p.FilePayment,
		FileAction:          p.FileAction,
		CreatedBy:           sess.UserID,
	}

	if err := s.snapshot(ctx, rec, p.ClientID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	return rec, nil
}

// Get returns one record, enforcing ownership for plain agents.
func (s *Service) Get(ctx context.Context, sess *auth.Session, id int64) (*Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canTouch(sess, rec) {
		return nil, ErrForbidden
	}

	return rec, nil
}

// Update edits a record in place: fresh snapshot, field overwrite and
// evidence slot changes. It returns the updated record plus the stored
// filenames the edit orphaned (removed or replaced), which the caller
// deletes from disk after the write lands.
func (s *Service) Update(ctx context.Context, sess *auth.Session, id int64, p SaveParams, ev EvidenceChanges) (*Record, []string, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !canTouch(sess, rec) {
		return nil, nil, ErrForbidden
	}

	if err := s.checkCatalogs(ctx, p); err != nil {
		return nil, nil, err
	}

	if err := s.snapshot(ctx, rec, p.ClientID); err != nil {
		return nil, nil, err
	}

	rec.ArrangementTypeID = p.ArrangementTypeID
	rec.CollectionChannelID = p.CollectionChannelID

	if p.PromiseDate != nil {
		rec.PromiseDate = *p.PromiseDate
	}

	rec.Phone = optional(p.Phone)
	rec.Week = p.Week
	rec.InitialPaymentCents = p.InitialPaymentCents
	rec.WeeklyPaymentCents = p.WeeklyPaymentCents
	rec.DurationWeeks = p.DurationWeeks
	rec.Notes = optional(p.Notes)

	var orphaned []string

	orphaned = applyEvidence(&rec.FileAgreement, ev.Agreement, orphaned)
	orphaned = applyEvidence(&rec.FilePayment, ev.Payment, orphaned)
	orphaned = applyEvidence(&rec.FileAction, ev.Action, orphaned)

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("updating record: %w", err)
	}

	return rec, orphaned, nil
}

// applyEvidence mutates one slot and accumulates filenames that no record
// references anymore.
func applyEvidence(slot **string, up EvidenceUpdate, orphaned []string) []string {
	if up.Remove && *slot != nil {
		orphaned = append(orphaned, **slot)
		*slot = nil
	}

	if up.Set != nil {
		if *slot != nil {
			orphaned = append(orphaned, **slot)
		}

		*slot = up.Set
	}

	return orphaned
}

const defaultListLimit = 100

// List returns recent records, newest first. Plain agents only see their
// own records regardless of the filter they pass.
func (s *Service) List(ctx context.Context, sess *auth.Session, filter ListFilter) ([]*Record, error) {
	if !sess.Role.Elevated() {
		filter.CreatedBy = &sess.UserID
	}

	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}

	return s.repo.List(ctx, filter)
}

// ListWeek returns every record for a week, ascending by id, for export.
func (s *Service) ListWeek(ctx context.Context, week int) ([]*Record, error) {
	return s.repo.List(ctx, ListFilter{Week: &week, OrderAsc: true})
}

// WeekSummary aggregates the session user's records for one week.
type WeekSummary struct {
	Total             int
	ByArrangement     map[string]int
	ByChannel         map[string]int
	InitialTotalCents int64
	WeeklyTotalCents  int64
}

func (s *Service) WeekSummary(ctx context.Context, sess *auth.Session, week *int) (*WeekSummary, error) {
	recs, err := s.repo.List(ctx, ListFilter{CreatedBy: &sess.UserID, Week: week})
	if err != nil {
		return nil, err
	}

	sum := &WeekSummary{
		Total:         len(recs),
		ByArrangement: make(map[string]int),
		ByChannel:     make(map[string]int),
	}

	for _, r := range recs {
		sum.ByArrangement[r.ArrangementTypeName]++
		sum.ByChannel[r.CollectionChannelName]++

		if r.InitialPaymentCents != nil {
			sum.InitialTotalCents += *r.InitialPaymentCents
		}

		if r.WeeklyPaymentCents != nil {
			sum.WeeklyTotalCents += *r.WeeklyPaymentCents
		}
	}

	return sum, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
