// Package export renders weekly record exports as CSV that opens
// cleanly in Excel: UTF-8 BOM up front and CRLF line endings.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hgmendoza/recaudo/internal/currency"
	"github.com/hgmendoza/recaudo/internal/record"
)

//go:generate mockgen -source=export.go -destination=export_mock.go -package=export
type RecordLister interface {
	ListWeek(ctx context.Context, week int) ([]*record.Record, error)
}

var header = []string{
	"ID",
	"CLIENTE_UNICO",
	"NOMBRE_CTE",
	"GERENCIA",
	"PRODUCTO",
	"FIDIAPAGO",
	"GESTION_DESC",
	"FECHA_PROMESA",
	"TELEFONO",
	"SEMANA",
	"PAGO_INICIAL",
	"PAGO_SEMANAL",
	"DURACION_SEMANAS",
	"OBSERVACIONES",
	"CAPTURO",
	"FECHA_CAPTURA",
	"TIPO_CONVENIO",
	"BOCA_COBRANZA",
}

type Service struct {
	records RecordLister
}

func NewService(records RecordLister) *Service {
	return &Service{records: records}
}

// Filename names the download for a week.
func Filename(week int) string {
	return fmt.Sprintf("registros_semana_%d.csv", week)
}

// WriteWeek streams every record of the week, ascending by id.
func (s *Service) WriteWeek(ctx context.Context, w io.Writer, week int) error {
	recs, err := s.records.ListWeek(ctx, week)
	if err != nil {
		return fmt.Errorf("listing week %d: %w", week, err)
	}

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range recs {
		if err := cw.Write(row(rec)); err != nil {
			return fmt.Errorf("writing record %d: %w", rec.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

func row(rec *record.Record) []string {
	return []string{
		strconv.FormatInt(rec.ID, 10),
		rec.ClientID,
		rec.NameSnap,
		rec.ManagementUnitSnap,
		rec.ProductSnap,
		rec.PaymentChannelSnap,
		rec.CollectionNotesSnap,
		rec.PromiseDate.Format("2006-01-02"),
		strOrEmpty(rec.Phone),
		intOrEmpty(rec.Week),
		currency.FormatCents(rec.InitialPaymentCents),
		currency.FormatCents(rec.WeeklyPaymentCents),
		intOrEmpty(rec.DurationWeeks),
		strOrEmpty(rec.Notes),
		rec.CreatorUsername,
		rec.CreatedAt.Format("2006-01-02 15:04:05"),
		rec.ArrangementTypeName,
		rec.CollectionChannelName,
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}

	return strconv.Itoa(*v)
}
