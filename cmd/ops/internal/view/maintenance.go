package view

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hgmendoza/recaudo/internal/user"
)

// SchemaModel applies the schema file to the configured database. Safe to
// re-run: the DDL is written with IF NOT EXISTS throughout.
type SchemaModel struct {
	CommonModel
	db *sql.DB

	form    *huh.Form
	running bool
	status  string

	formPath string
}

func NewSchemaModel(db *sql.DB) SchemaModel {
	m := SchemaModel{db: db, formPath: "sql/init_schema.sql"}
	m.form = m.newForm()

	return m
}

func (m SchemaModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Archivo de esquema").
				Value(&m.formPath).
				Validate(func(s string) error {
					if _, err := os.Stat(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("no se puede leer el archivo")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m SchemaModel) Title() string     { return "Esquema" }
func (m SchemaModel) ShortHelp() string { return "Enter: apply | Esc: back" }

func (m SchemaModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SchemaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case schemaDoneMsg:
		m.running = false

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = "Esquema aplicado"
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

	return m, m.applyCmd()
}

func (m SchemaModel) View() string {
	if m.running {
		return lipgloss.NewStyle().Padding(2).Render("Aplicando esquema...")
	}

	content := m.form.View()
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render("Aplicar esquema\n\n" + content)
}

type schemaDoneMsg struct {
	err error
}

func (m SchemaModel) applyCmd() tea.Cmd {
	path := strings.TrimSpace(m.form.GetString("path"))

	return func() tea.Msg {
		ddl, err := os.ReadFile(path)
		if err != nil {
			return schemaDoneMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.db.ExecContext(ctx, string(ddl)); err != nil {
			return schemaDoneMsg{err: err}
		}

		return schemaDoneMsg{}
	}
}

// ResetModel resets an account password, the recovery path when the only
// admin locks themselves out.
type ResetModel struct {
	CommonModel
	userService *user.Service

	form   *huh.Form
	status string

	formUsername string
	formPassword string
}

func NewResetModel(userSvc *user.Service) ResetModel {
	m := ResetModel{userService: userSvc}
	m.form = m.newForm()

	return m
}

func (m ResetModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Usuario").
				Value(&m.formUsername).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("el usuario es obligatorio")
					}
					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Nueva contraseña").
				EchoMode(huh.EchoModePassword).
				Value(&m.formPassword).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("la contraseña es obligatoria")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m ResetModel) Title() string     { return "Contraseña" }
func (m ResetModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m ResetModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Contraseña de %q restablecida", msg.username)
		}

		m.formUsername = ""
		m.formPassword = ""
		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.resetCmd()
}

func (m ResetModel) View() string {
	content := m.form.View()
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render("Restablecer contraseña\n\n" + content)
}

type resetDoneMsg struct {
	username string
	err      error
}

func (m ResetModel) resetCmd() tea.Cmd {
	username := strings.TrimSpace(m.form.GetString("username"))
	password := m.form.GetString("password")

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.userService.ResetPassword(ctx, username, password); err != nil {
			return resetDoneMsg{err: err}
		}

		return resetDoneMsg{username: username}
	}
}
