package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hgmendoza/recaudo/internal/reference"
	"github.com/hgmendoza/recaudo/internal/reference/staging"
	"github.com/hgmendoza/recaudo/internal/reffile"
)

const (
	variantDirect = "direct"
	variantStaged = "staged"
)

// BaseLoadModel loads a reference file straight from a path on the host,
// skipping the HTTP upload limit. Meant for the big daily files.
type BaseLoadModel struct {
	CommonModel
	referenceService *reference.Service
	stagingStore     *staging.Store

	form    *huh.Form
	running bool
	status  string

	formPath    string
	formVariant string
	formMode    string
}

func NewBaseLoadModel(refSvc *reference.Service, stagingStore *staging.Store) BaseLoadModel {
	m := BaseLoadModel{
		referenceService: refSvc,
		stagingStore:     stagingStore,
		formVariant:      variantStaged,
		formMode:         string(staging.ModeUpsert),
	}

	m.form = m.newForm()

	return m
}

func (m BaseLoadModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Archivo (CSV o XLSX)").
				Placeholder("/data/base_general.csv").
				Value(&m.formPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("la ruta es obligatoria")
					}
					if _, err := os.Stat(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("no se puede leer el archivo")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("variant").
				Title("Variante").
				Options(
					huh.NewOption("Staging + COPY (rápida)", variantStaged),
					huh.NewOption("Directa fila por fila", variantDirect),
				).
				Value(&m.formVariant),

			huh.NewSelect[string]().
				Key("mode").
				Title("Modo (solo staging)").
				Options(
					huh.NewOption("Upsert", string(staging.ModeUpsert)),
					huh.NewOption("Solo insertar", string(staging.ModeInsert)),
				).
				Value(&m.formMode),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m BaseLoadModel) Title() string     { return "Carga de base" }
func (m BaseLoadModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m BaseLoadModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m BaseLoadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case baseLoadDoneMsg:
		m.running = false

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.message
		}

		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && !m.running {
			return m, Back
		}
	}

	if m.running {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.running = true

	return m, m.loadCmd()
}

func (m BaseLoadModel) View() string {
	if m.running {
		return lipgloss.NewStyle().Padding(2).Render("Cargando base, espere...")
	}

	content := m.form.View()
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render("Cargar base general\n\n" + content)
}

type baseLoadDoneMsg struct {
	message string
	err     error
}

func (m BaseLoadModel) loadCmd() tea.Cmd {
	path := strings.TrimSpace(m.form.GetString("path"))
	variant := m.form.GetString("variant")
	mode := staging.Mode(m.form.GetString("mode"))

	return func() tea.Msg {
		ds, err := reffile.ParseFile(path)
		if err != nil {
			return baseLoadDoneMsg{err: err}
		}

		// The big daily files take longer than the standard db timeout.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if variant == variantDirect {
			stats, err := m.referenceService.Load(ctx, ds)
			if err != nil {
				return baseLoadDoneMsg{err: err}
			}

			return baseLoadDoneMsg{message: stats.String()}
		}

		summary, err := m.stagingStore.Load(ctx, ds, mode)
		if err != nil {
			return baseLoadDoneMsg{err: err}
		}

		return baseLoadDoneMsg{message: summary.String()}
	}
}
