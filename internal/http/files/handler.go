package files

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/hgmendoza/recaudo/internal/upload"
)

// Handler serves stored evidence files to logged-in users.
type Handler struct {
	uploads *upload.Store
}

func NewHandler(uploads *upload.Store) *Handler {
	return &Handler{uploads: uploads}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{name}", h.serve)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	path, err := h.uploads.Path(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, "invalid filename", http.StatusBadRequest)
		return
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "file not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	http.ServeFile(w, r, path)
}
