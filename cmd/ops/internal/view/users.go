package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hgmendoza/recaudo/internal/auth"
	"github.com/hgmendoza/recaudo/internal/user"
)

// UsersModel creates accounts from the console. It is how the first admin
// gets bootstrapped on a fresh database.
type UsersModel struct {
	CommonModel
	userService *user.Service

	form   *huh.Form
	status string

	formUsername string
	formPassword string
	formRole     string
	formActive   bool
}

func NewUsersModel(userSvc *user.Service) UsersModel {
	m := UsersModel{
		userService: userSvc,
		formRole:    string(auth.RoleAgent),
		formActive:  true,
	}

	m.form = m.newForm()

	return m
}

func (m UsersModel) newForm() *huh.Form {
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
				Title("Contraseña").
				EchoMode(huh.EchoModePassword).
				Value(&m.formPassword).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("la contraseña es obligatoria")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("role").
				Title("Rol").
				Options(
					huh.NewOption("Agente", string(auth.RoleAgent)),
					huh.NewOption("Supervisor", string(auth.RoleSupervisor)),
					huh.NewOption("Gerente", string(auth.RoleGerente)),
					huh.NewOption("Admin", string(auth.RoleAdmin)),
				).
				Value(&m.formRole),

			huh.NewConfirm().
				Key("active").
				Title("¿Activo?").
				Value(&m.formActive),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m UsersModel) Title() string     { return "Usuarios" }
func (m UsersModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m UsersModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case userSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Usuario %q creado (rol %s)", msg.username, msg.role)
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

	return m, m.saveCmd()
}

func (m UsersModel) View() string {
	content := m.form.View()
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1, 2).Render("Crear usuario\n\n" + content)
}

type userSavedMsg struct {
	username string
	role     string
	err      error
}

func (m UsersModel) saveCmd() tea.Cmd {
	params := user.CreateParams{
		Username: m.form.GetString("username"),
		Password: m.form.GetString("password"),
		Role:     m.form.GetString("role"),
		Active:   m.form.GetBool("active"),
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		u, err := m.userService.Create(ctx, params)
		if err != nil {
			return userSavedMsg{err: err}
		}

		return userSavedMsg{username: u.Username, role: string(u.Role)}
	}
}
