package reference

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/hgmendoza/recaudo/internal/http/middleware"
	"github.com/hgmendoza/recaudo/internal/reference"
	"github.com/hgmendoza/recaudo/internal/reference/staging"
	"github.com/hgmendoza/recaudo/internal/reffile"
)

type Handler struct {
	svc      *reference.Service
	staged   *staging.Store
	maxBytes int64
}

func NewHandler(svc *reference.Service, staged *staging.Store, maxBytes int64) *Handler {
	return &Handler{svc: svc, staged: staged, maxBytes: maxBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/search", h.search)
	r.Get("/clients/{clientID}", h.client)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/upload", h.upload)
		r.Post("/upload/staged", h.uploadStaged)
	})
}

type uploadResponse struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		middleware.TooLarge(w, h.maxBytes)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ds, err := reffile.Parse(header.Filename, file)
	if err != nil {
		var missing *reffile.MissingColumnsError
		if errors.As(err, &missing) {
			http.Error(w, missing.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "could not read file: "+err.Error(), http.StatusBadRequest)

		return
	}

	stats, err := h.svc.Load(r.Context(), ds)
	if err != nil {
		http.Error(w, "load failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(uploadResponse{
		Message:  stats.String(),
		Inserted: stats.Inserted,
		Updated:  stats.Updated,
		Skipped:  stats.Skipped,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type stagedResponse struct {
	Message     string  `json:"message"`
	TotalStaged int64   `json:"total_staged"`
	DedupCount  int64   `json:"dedup_count"`
	Inserted    int64   `json:"inserted"`
	Updated     int64   `json:"updated"`
	Seconds     float64 `json:"seconds"`
}

func (h *Handler) uploadStaged(w http.ResponseWriter, r *http.Request) {
	mode, err := staging.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		middleware.TooLarge(w, h.maxBytes)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// The staged loader reads from disk so the upload survives the request
	// body; it owns the temp file from here.
	tmp, err := os.CreateTemp("", "base-*"+filepath.Ext(header.Filename))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	tmp.Close()

	summary, err := h.staged.LoadFile(r.Context(), tmp.Name(), mode)
	if err != nil {
		var missing *reffile.MissingColumnsError
		if errors.As(err, &missing) {
			http.Error(w, missing.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "staged load failed: "+err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(stagedResponse{
		Message:     summary.String(),
		TotalStaged: summary.TotalStaged,
		DedupCount:  summary.DedupCount,
		Inserted:    summary.Inserted,
		Updated:     summary.Updated,
		Seconds:     summary.Elapsed.Seconds(),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type clientResponse struct {
	ClientID        string `json:"cliente_unico"`
	Name            string `json:"nombre_cte"`
	ManagementUnit  string `json:"gerencia"`
	Product         string `json:"producto"`
	PaymentChannel  string `json:"fidiapago"`
	CollectionNotes string `json:"gestion_desc"`
}

func toClientResponse(row *reference.Row) clientResponse {
	return clientResponse{
		ClientID:        row.ClientID,
		Name:            row.Name,
		ManagementUnit:  row.ManagementUnit,
		Product:         row.Product,
		PaymentChannel:  row.PaymentChannel,
		CollectionNotes: row.CollectionNotes,
	}
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]clientResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, toClientResponse(row))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) client(w http.ResponseWriter, r *http.Request) {
	row, err := h.svc.Lookup(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		if errors.Is(err, reference.ErrNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toClientResponse(row)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
