package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/hgmendoza/recaudo/internal/auth"
	authStore "github.com/hgmendoza/recaudo/internal/auth/store"
	"github.com/hgmendoza/recaudo/internal/catalog"
	catalogStore "github.com/hgmendoza/recaudo/internal/catalog/store"
	"github.com/hgmendoza/recaudo/internal/config"
	"github.com/hgmendoza/recaudo/internal/database"
	"github.com/hgmendoza/recaudo/internal/export"
	recaudoHttp "github.com/hgmendoza/recaudo/internal/http"
	authHandler "github.com/hgmendoza/recaudo/internal/http/authapi"
	catalogHandler "github.com/hgmendoza/recaudo/internal/http/catalog"
	exportHandler "github.com/hgmendoza/recaudo/internal/http/exportcsv"
	filesHandler "github.com/hgmendoza/recaudo/internal/http/files"
	"github.com/hgmendoza/recaudo/internal/http/middleware"
	recordHandler "github.com/hgmendoza/recaudo/internal/http/record"
	referenceHandler "github.com/hgmendoza/recaudo/internal/http/reference"
	userHandler "github.com/hgmendoza/recaudo/internal/http/useradmin"
	"github.com/hgmendoza/recaudo/internal/record"
	recordStore "github.com/hgmendoza/recaudo/internal/record/store"
	"github.com/hgmendoza/recaudo/internal/reference"
	referenceStore "github.com/hgmendoza/recaudo/internal/reference/store"
	"github.com/hgmendoza/recaudo/internal/reference/staging"
	"github.com/hgmendoza/recaudo/internal/upload"
	"github.com/hgmendoza/recaudo/internal/user"
	userStore "github.com/hgmendoza/recaudo/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString(), database.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	uploads, err := upload.New(cfg.Upload.Dir, cfg.AllowedExtensions())
	if err != nil {
		slog.Error("failed to prepare upload dir", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokens(cfg.Auth.SecretKey, cfg.Auth.SessionTTL)

	var (
		authService      = auth.NewService(authStore.New(db))
		catalogService   = catalog.NewService(catalogStore.New(db))
		referenceService = reference.NewService(referenceStore.New(db))
		stagingStore     = staging.New(db)
		recordService    = record.NewService(recordStore.New(db), referenceService, catalogService)
		exportService    = export.NewService(recordService)
		userService      = user.NewService(userStore.New(db))
	)

	router := recaudoHttp.New(recaudoHttp.Config{
		Sessions:       middleware.NewSessions(tokens),
		MaxUploadBytes: cfg.Upload.MaxBytes,
		Auth:           authHandler.NewHandler(authService, tokens),
		Records:        recordHandler.NewHandler(recordService, uploads, cfg.Upload.MaxBytes),
		Reference:      referenceHandler.NewHandler(referenceService, stagingStore, cfg.Upload.MaxBytes),
		Catalogs:       catalogHandler.NewHandler(catalogService),
		Users:          userHandler.NewHandler(userService),
		Export:         exportHandler.NewHandler(exportService),
		Files:          filesHandler.NewHandler(uploads),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
