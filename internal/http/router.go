package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hgmendoza/recaudo/internal/http/authapi"
	"github.com/hgmendoza/recaudo/internal/http/catalog"
	"github.com/hgmendoza/recaudo/internal/http/exportcsv"
	"github.com/hgmendoza/recaudo/internal/http/files"
	"github.com/hgmendoza/recaudo/internal/http/middleware"
	"github.com/hgmendoza/recaudo/internal/http/record"
	"github.com/hgmendoza/recaudo/internal/http/reference"
	"github.com/hgmendoza/recaudo/internal/http/useradmin"
)

type Config struct {
	Sessions       *middleware.Sessions
	MaxUploadBytes int64

	Auth      *authapi.Handler
	Records   *record.Handler
	Reference *reference.Handler
	Catalogs  *catalog.Handler
	Users     *useradmin.Handler
	Export    *exportcsv.Handler
	Files     *files.Handler
}

func New(cfg Config) http.Handler {
	router := chi.NewRouter()

	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			cfg.Auth.Routes(r)
		})

		// everything below requires a session
		r.Group(func(r chi.Router) {
			r.Use(cfg.Sessions.Authenticate)
			r.Use(middleware.LimitBody(cfg.MaxUploadBytes))

			r.Route("/records", cfg.Records.Routes)
			r.Route("/base", cfg.Reference.Routes)
			r.Route("/catalogs", cfg.Catalogs.Routes)

			r.Route("/export", func(r chi.Router) {
				r.Use(middleware.RequireElevated)
				cfg.Export.Routes(r)
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Use(chimw.AllowContentType("application/json"))
				cfg.Users.Routes(r)
			})
		})
	})

	router.Route("/uploads", func(r chi.Router) {
		r.Use(cfg.Sessions.Authenticate)
		cfg.Files.Routes(r)
	})

	return router
}
