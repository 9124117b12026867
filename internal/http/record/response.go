package record

import (
	"time"

	"github.com/hgmendoza/recaudo/internal/currency"
	"github.com/hgmendoza/recaudo/internal/record"
)

type recordResponse struct {
	ID int64 `json:"id"`

	ClientID        string `json:"cliente_unico"`
	Name            string `json:"nombre_cte"`
	ManagementUnit  string `json:"gerencia"`
	Product         string `json:"producto"`
	PaymentChannel  string `json:"fidiapago"`
	CollectionNotes string `json:"gestion_desc"`

	ArrangementTypeID     int64  `json:"tipo_convenio_id"`
	ArrangementTypeName   string `json:"tipo_convenio,omitempty"`
	CollectionChannelID   int64  `json:"boca_cobranza_id"`
	CollectionChannelName string `json:"boca_cobranza,omitempty"`

	PromiseDate    string  `json:"fecha_promesa"`
	Phone          *string `json:"telefono,omitempty"`
	Week           *int    `json:"semana,omitempty"`
	InitialPayment string  `json:"pago_inicial,omitempty"`
	WeeklyPayment  string  `json:"pago_semanal,omitempty"`
	DurationWeeks  *int    `json:"duracion,omitempty"`
	Notes          *string `json:"observaciones,omitempty"`

	FileAgreement *string `json:"archivo_convenio,omitempty"`
	FilePayment   *string `json:"archivo_pago,omitempty"`
	FileAction    *string `json:"archivo_gestion,omitempty"`

	CreatedBy       int64     `json:"capturo_id"`
	CreatorUsername string    `json:"capturo,omitempty"`
	CreatedAt       time.Time `json:"fecha_captura"`
}

func toResponse(rec *record.Record) recordResponse {
	return recordResponse{
		ID:                    rec.ID,
		ClientID:              rec.ClientID,
		Name:                  rec.NameSnap,
		ManagementUnit:        rec.ManagementUnitSnap,
		Product:               rec.ProductSnap,
		PaymentChannel:        rec.PaymentChannelSnap,
		CollectionNotes:       rec.CollectionNotesSnap,
		ArrangementTypeID:     rec.ArrangementTypeID,
		ArrangementTypeName:   rec.ArrangementTypeName,
		CollectionChannelID:   rec.CollectionChannelID,
		CollectionChannelName: rec.CollectionChannelName,
		PromiseDate:           rec.PromiseDate.Format(time.DateOnly),
		Phone:                 rec.Phone,
		Week:                  rec.Week,
		InitialPayment:        currency.FormatCents(rec.InitialPaymentCents),
		WeeklyPayment:         currency.FormatCents(rec.WeeklyPaymentCents),
		DurationWeeks:         rec.DurationWeeks,
		Notes:                 rec.Notes,
		FileAgreement:         rec.FileAgreement,
		FilePayment:           rec.FilePayment,
		FileAction:            rec.FileAction,
		CreatedBy:             rec.CreatedBy,
		CreatorUsername:       rec.CreatorUsername,
		CreatedAt:             rec.CreatedAt,
	}
}

func toResponseList(recs []*record.Record) []recordResponse {
	resp := make([]recordResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, toResponse(rec))
	}

	return resp
}
