package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/hgmendoza/recaudo/cmd/ops/internal/view"
	"github.com/hgmendoza/recaudo/internal/auth"
	"github.com/hgmendoza/recaudo/internal/catalog"
	catalogStore "github.com/hgmendoza/recaudo/internal/catalog/store"
	"github.com/hgmendoza/recaudo/internal/config"
	"github.com/hgmendoza/recaudo/internal/database"
	"github.com/hgmendoza/recaudo/internal/record"
	recordStore "github.com/hgmendoza/recaudo/internal/record/store"
	"github.com/hgmendoza/recaudo/internal/reference"
	referenceStore "github.com/hgmendoza/recaudo/internal/reference/store"
	"github.com/hgmendoza/recaudo/internal/reference/staging"
	"github.com/hgmendoza/recaudo/internal/user"
	userStore "github.com/hgmendoza/recaudo/internal/user/store"
)

type model struct {
	db               *sql.DB
	recordService    *record.Service
	referenceService *reference.Service
	stagingStore     *staging.Store
	userService      *user.Service
	opsSession       *auth.Session

	currentView View

	recordsView  view.RecordsModel
	usersView    view.UsersModel
	baseLoadView view.BaseLoadModel
	schemaView   view.SchemaModel
	resetView    view.ResetModel
}

type View int

const (
	ViewMenu     View = 0
	ViewRecords  View = 1
	ViewUsers    View = 2
	ViewBaseLoad View = 3
	ViewSchema   View = 4
	ViewReset    View = 5
)

func initialModel() model {
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

	catalogSvc := catalog.NewService(catalogStore.New(db))
	refSvc := reference.NewService(referenceStore.New(db))
	stagingSt := staging.New(db)
	recordSvc := record.NewService(recordStore.New(db), refSvc, catalogSvc)
	userSvc := user.NewService(userStore.New(db))

	// The console talks to the database directly, so it acts as admin.
	opsSession := &auth.Session{Username: "ops", Role: auth.RoleAdmin}

	return model{
		db:               db,
		recordService:    recordSvc,
		referenceService: refSvc,
		stagingStore:     stagingSt,
		userService:      userSvc,
		opsSession:       opsSession,
		currentView:      ViewMenu,
		recordsView:      view.NewRecordsModel(recordSvc, opsSession),
		usersView:        view.NewUsersModel(userSvc),
		baseLoadView:     view.NewBaseLoadModel(refSvc, stagingSt),
		schemaView:       view.NewSchemaModel(db),
		resetView:        view.NewResetModel(userSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewRecords
				m.recordsView = view.NewRecordsModel(m.recordService, m.opsSession)

				return m, m.recordsView.Init()
			case "2":
				m.currentView = ViewUsers
				m.usersView = view.NewUsersModel(m.userService)

				return m, m.usersView.Init()
			case "3":
				m.currentView = ViewBaseLoad
				m.baseLoadView = view.NewBaseLoadModel(m.referenceService, m.stagingStore)

				return m, m.baseLoadView.Init()
			case "4":
				m.currentView = ViewSchema
				m.schemaView = view.NewSchemaModel(m.db)

				return m, m.schemaView.Init()
			case "5":
				m.currentView = ViewReset
				m.resetView = view.NewResetModel(m.userService)

				return m, m.resetView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewRecords:
		var newModel tea.Model
		newModel, cmd = m.recordsView.Update(msg)
		m.recordsView = newModel.(view.RecordsModel)
	case ViewUsers:
		var newModel tea.Model
		newModel, cmd = m.usersView.Update(msg)
		m.usersView = newModel.(view.UsersModel)
	case ViewBaseLoad:
		var newModel tea.Model
		newModel, cmd = m.baseLoadView.Update(msg)
		m.baseLoadView = newModel.(view.BaseLoadModel)
	case ViewSchema:
		var newModel tea.Model
		newModel, cmd = m.schemaView.Update(msg)
		m.schemaView = newModel.(view.SchemaModel)
	case ViewReset:
		var newModel tea.Model
		newModel, cmd = m.resetView.Update(msg)
		m.resetView = newModel.(view.ResetModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Recaudo Ops\n\n" +
				"1. Ver registros\n" +
				"2. Crear usuarios\n" +
				"3. Cargar base general\n" +
				"4. Aplicar esquema\n" +
				"5. Restablecer contraseña\n\n" +
				"q. Salir",
		)
	case ViewRecords:
		return m.recordsView.View()
	case ViewUsers:
		return m.usersView.View()
	case ViewBaseLoad:
		return m.baseLoadView.View()
	case ViewSchema:
		return m.schemaView.View()
	case ViewReset:
		return m.resetView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run ops console", "error", err)
		os.Exit(1)
	}
}
