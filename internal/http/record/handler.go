package record

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hgmendoza/recaudo/internal/currency"
	"github.com/hgmendoza/recaudo/internal/http/middleware"
	"github.com/hgmendoza/recaudo/internal/record"
	"github.com/hgmendoza/recaudo/internal/upload"
)

type Handler struct {
	svc      *record.Service
	uploads  *upload.Store
	maxBytes int64
}

func NewHandler(svc *record.Service, uploads *upload.Store, maxBytes int64) *Handler {
	return &Handler{svc: svc, uploads: uploads, maxBytes: maxBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/summary", h.summary)
	r.Get("/{id}", h.get)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
}

// evidence slots as the form names them
const (
	fieldAgreement = "archivo_convenio"
	fieldPayment   = "archivo_pago"
	fieldAction    = "archivo_gestion"
)

func parseSaveParams(r *http.Request) (record.SaveParams, error) {
	p := record.SaveParams{
		ClientID: r.FormValue("cliente_unico"),
		Phone:    r.FormValue("telefono"),
		Notes:    r.FormValue("observaciones"),
	}

	var err error

	p.ArrangementTypeID, err = strconv.ParseInt(r.FormValue("tipo_convenio_id"), 10, 64)
	if err != nil {
		return p, errors.New("tipo_convenio_id is required")
	}

	p.CollectionChannelID, err = strconv.ParseInt(r.FormValue("boca_cobranza_id"), 10, 64)
	if err != nil {
		return p, errors.New("boca_cobranza_id is required")
	}

	if s := r.FormValue("fecha_promesa"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return p, errors.New("fecha_promesa must be YYYY-MM-DD")
		}

		p.PromiseDate = &t
	}

	if s := r.FormValue("semana"); s != "" {
		week, err := strconv.Atoi(s)
		if err != nil {
			return p, errors.New("semana must be a number")
		}

		p.Week = &week
	}

	if s := r.FormValue("duracion"); s != "" {
		weeks, err := strconv.Atoi(s)
		if err != nil || weeks < 1 {
			return p, errors.New("duracion must be a whole number of at least 1")
		}

		p.DurationWeeks = &weeks
	}

	p.InitialPaymentCents, err = currency.ParseCents(r.FormValue("pago_inicial"))
	if err != nil {
		return p, errors.New("pago_inicial is not a valid amount")
	}

	p.WeeklyPaymentCents, err = currency.ParseCents(r.FormValue("pago_semanal"))
	if err != nil {
		return p, errors.New("pago_semanal is not a valid amount")
	}

	return p, nil
}

// saveEvidence stores one uploaded slot, returning nil when the slot was
// not part of the form.
func (h *Handler) saveEvidence(r *http.Request, field string) (*string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, err
	}
	defer file.Close()

	stored, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (h *Handler) removeStored(names ...*string) {
	for _, name := range names {
		if name == nil {
			continue
		}

		if err := h.uploads.Remove(*name); err != nil {
			slog.Error("failed to remove upload", "file", *name, "error", err)
		}
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, record.ErrClientNotFound),
		errors.Is(err, record.ErrBadCatalog):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, record.ErrForbidden):
		http.Error(w, "insufficient permissions", http.StatusForbidden)
	case errors.Is(err, record.ErrNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.Is(err, upload.ErrBadExtension):
		http.Error(w, "file type not allowed", http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.FromContext(r.Context())

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		middleware.TooLarge(w, h.maxBytes)
		return
	}

	p, err := parseSaveParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if p.FileAgreement, err = h.saveEvidence(r, fieldAgreement); err != nil {
		h.writeServiceError(w, err)
		return
	}

	if p.FilePayment, err = h.saveEvidence(r, fieldPayment); err != nil {
		h.removeStored(p.FileAgreement)
		h.writeServiceError(w, err)

		return
	}

	if p.FileAction, err = h.saveEvidence(r, fieldAction); err != nil {
		h.removeStored(p.FileAgreement, p.FilePayment)
		h.writeServiceError(w, err)

		return
	}

	rec, err := h.svc.Create(r.Context(), sess, p)
	if err != nil {
		h.removeStored(p.FileAgreement, p.FilePayment, p.FileAction)
		h.writeServiceError(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func removeFlag(r *http.Request, field string) bool {
	v := r.FormValue(field)
	return v == "1" || v == "true"
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.FromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		middleware.TooLarge(w, h.maxBytes)
		return
	}

	p, err := parseSaveParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ev := record.EvidenceChanges{
		Agreement: record.EvidenceUpdate{Remove: removeFlag(r, "eliminar_convenio")},
		Payment:   record.EvidenceUpdate{Remove: removeFlag(r, "eliminar_pago")},
		Action:    record.EvidenceUpdate{Remove: removeFlag(r, "eliminar_gestion")},
	}

	if ev.Agreement.Set, err = h.saveEvidence(r, fieldAgreement); err != nil {
		h.writeServiceError(w, err)
		return
	}

	if ev.Payment.Set, err = h.saveEvidence(r, fieldPayment); err != nil {
		h.removeStored(ev.Agreement.Set)
		h.writeServiceError(w, err)

		return
	}

	if ev.Action.Set, err = h.saveEvidence(r, fieldAction); err != nil {
		h.removeStored(ev.Agreement.Set, ev.Payment.Set)
		h.writeServiceError(w, err)

		return
	}

	rec, orphaned, err := h.svc.Update(r.Context(), sess, id, p, ev)
	if err != nil {
		h.removeStored(ev.Agreement.Set, ev.Payment.Set, ev.Action.Set)
		h.writeServiceError(w, err)

		return
	}

	// Old evidence is deleted only after the row update landed.
	for _, name := range orphaned {
		if err := h.uploads.Remove(name); err != nil {
			slog.Error("failed to remove replaced upload", "file", name, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.FromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Get(r.Context(), sess, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rec)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.FromContext(r.Context())

	filter := record.ListFilter{}

	if s := r.URL.Query().Get("semana"); s != "" {
		if week, err := strconv.Atoi(s); err == nil {
			filter.Week = &week
		}
	}

	if s := r.URL.Query().Get("capturo"); s != "" {
		if userID, err := strconv.ParseInt(s, 10, 64); err == nil {
			filter.CreatedBy = &userID
		}
	}

	recs, err := h.svc.List(r.Context(), sess, filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(recs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type summaryResponse struct {
	Total             int            `json:"total"`
	ByArrangement     map[string]int `json:"por_tipo_convenio"`
	ByChannel         map[string]int `json:"por_boca_cobranza"`
	InitialPaymentSum string         `json:"suma_pago_inicial"`
	WeeklyPaymentSum  string         `json:"suma_pago_semanal"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.FromContext(r.Context())

	var week *int

	if s := r.URL.Query().Get("semana"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "semana must be a number", http.StatusBadRequest)
			return
		}

		week = &v
	}

	sum, err := h.svc.WeekSummary(r.Context(), sess, week)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summaryResponse{
		Total:             sum.Total,
		ByArrangement:     sum.ByArrangement,
		ByChannel:         sum.ByChannel,
		InitialPaymentSum: currency.FormatCents(&sum.InitialTotalCents),
		WeeklyPaymentSum:  currency.FormatCents(&sum.WeeklyTotalCents),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
