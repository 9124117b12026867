package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hgmendoza/recaudo/internal/record"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectColumns = `
	r.id, r.client_id,
	r.name_snap, r.management_unit_snap, r.product_snap,
	r.payment_channel_snap, r.collection_notes_snap,
	r.arrangement_type_id, r.collection_channel_id,
	r.promise_date, r.phone, r.week,
	r.initial_payment_cents, r.weekly_payment_cents, r.duration_weeks,
	r.notes, r.file_agreement, r.file_payment, r.file_action,
	r.created_by, r.created_at,
	u.username, at.name, cc.name`

const fromJoins = `
	FROM records r
	JOIN users u ON u.id = r.created_by
	JOIN arrangement_types at ON at.id = r.arrangement_type_id
	JOIN collection_channels cc ON cc.id = r.collection_channel_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*record.Record, error) {
	var rec record.Record

	err := s.Scan(
		&rec.ID, &rec.ClientID,
		&rec.NameSnap, &rec.ManagementUnitSnap, &rec.ProductSnap,
		&rec.PaymentChannelSnap, &rec.CollectionNotesSnap,
		&rec.ArrangementTypeID, &rec.CollectionChannelID,
		&rec.PromiseDate, &rec.Phone, &rec.Week,
		&rec.InitialPaymentCents, &rec.WeeklyPaymentCents, &rec.DurationWeeks,
		&rec.Notes, &rec.FileAgreement, &rec.FilePayment, &rec.FileAction,
		&rec.CreatedBy, &rec.CreatedAt,
		&rec.CreatorUsername, &rec.ArrangementTypeName, &rec.CollectionChannelName,
	)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *Store) Create(ctx context.Context, rec *record.Record) error {
	query := `
		INSERT INTO records (
			client_id, name_snap, management_unit_snap, product_snap,
			payment_channel_snap, collection_notes_snap,
			arrangement_type_id, collection_channel_id,
			promise_date, phone, week,
			initial_payment_cents, weekly_payment_cents, duration_weeks,
			notes, file_agreement, file_payment, file_action, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query,
		rec.ClientID, rec.NameSnap, rec.ManagementUnitSnap, rec.ProductSnap,
		rec.PaymentChannelSnap, rec.CollectionNotesSnap,
		rec.ArrangementTypeID, rec.CollectionChannelID,
		rec.PromiseDate, rec.Phone, rec.Week,
		rec.InitialPaymentCents, rec.WeeklyPaymentCents, rec.DurationWeeks,
		rec.Notes, rec.FileAgreement, rec.FilePayment, rec.FileAction, rec.CreatedBy,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id int64) (*record.Record, error) {
	query := "SELECT" + selectColumns + fromJoins + " WHERE r.id = $1"

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, record.ErrNotFound
		}

		return nil, fmt.Errorf("getting record: %w", err)
	}

	return rec, nil
}

func (s *Store) Update(ctx context.Context, rec *record.Record) error {
	query := `
		UPDATE records SET
			client_id = $1, name_snap = $2, management_unit_snap = $3,
			product_snap = $4, payment_channel_snap = $5, collection_notes_snap = $6,
			arrangement_type_id = $7, collection_channel_id = $8,
			promise_date = $9, phone = $10, week = $11,
			initial_payment_cents = $12, weekly_payment_cents = $13,
			duration_weeks = $14, notes = $15,
			file_agreement = $16, file_payment = $17, file_action = $18
		WHERE id = $19`

	res, err := s.db.ExecContext(ctx, query,
		rec.ClientID, rec.NameSnap, rec.ManagementUnitSnap,
		rec.ProductSnap, rec.PaymentChannelSnap, rec.CollectionNotesSnap,
		rec.ArrangementTypeID, rec.CollectionChannelID,
		rec.PromiseDate, rec.Phone, rec.Week,
		rec.InitialPaymentCents, rec.WeeklyPaymentCents,
		rec.DurationWeeks, rec.Notes,
		rec.FileAgreement, rec.FilePayment, rec.FileAction,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if affected == 0 {
		return record.ErrNotFound
	}

	return nil
}

func (s *Store) List(ctx context.Context, filter record.ListFilter) ([]*record.Record, error) {
	var (
		where []string
		args  []any
	)

	if filter.CreatedBy != nil {
		args = append(args, *filter.CreatedBy)
		where = append(where, fmt.Sprintf("r.created_by = $%d", len(args)))
	}

	if filter.Week != nil {
		args = append(args, *filter.Week)
		where = append(where, fmt.Sprintf("r.week = $%d", len(args)))
	}

	query := "SELECT" + selectColumns + fromJoins

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	if filter.OrderAsc {
		query += " ORDER BY r.id ASC"
	} else {
		query += " ORDER BY r.id DESC"
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var recs []*record.Record

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	return recs, nil
}
