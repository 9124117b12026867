package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hgmendoza/recaudo/internal/auth"
	"github.com/hgmendoza/recaudo/internal/currency"
	"github.com/hgmendoza/recaudo/internal/record"
)

// RecordsModel browses recent records across all agents.
type RecordsModel struct {
	CommonModel
	recordService *record.Service
	opsSession    *auth.Session

	table   table.Model
	records []*record.Record
	week    *int
	loading bool
	err     error
}

func NewRecordsModel(recordSvc *record.Service, opsSession *auth.Session) RecordsModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Cliente", Width: 14},
		{Title: "Nombre", Width: 28},
		{Title: "Tipo", Width: 16},
		{Title: "Boca", Width: 14},
		{Title: "Promesa", Width: 12},
		{Title: "Semana", Width: 7},
		{Title: "Inicial", Width: 10},
		{Title: "Capturó", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return RecordsModel{
		recordService: recordSvc,
		opsSession:    opsSession,
		table:         t,
	}
}

func (m RecordsModel) Title() string { return "Registros" }
func (m RecordsModel) ShortHelp() string {
	return "Esc: back | r: refresh | w: week filter on/off"
}

func (m RecordsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRecordsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.records = msg.records
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "w":
			if m.week == nil {
				_, week := timeNowISOWeek()
				m.week = &week
			} else {
				m.week = nil
			}

			m.loading = true

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m RecordsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Cargando registros...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := "Semana: todas"
	if m.week != nil {
		header = fmt.Sprintf("Semana: %d", *m.week)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
		),
	)
}

func (m *RecordsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.records))

	for _, rec := range m.records {
		week := ""
		if rec.Week != nil {
			week = fmt.Sprintf("%d", *rec.Week)
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", rec.ID),
			rec.ClientID,
			rec.NameSnap,
			rec.ArrangementTypeName,
			rec.CollectionChannelName,
			FormatDate(rec.PromiseDate),
			week,
			currency.FormatCents(rec.InitialPaymentCents),
			rec.CreatorUsername,
		})
	}

	m.table.SetRows(rows)
}

type loadRecordsMsg struct {
	records []*record.Record
	err     error
}

func (m RecordsModel) loadCmd() tea.Cmd {
	week := m.week

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := m.recordService.List(ctx, m.opsSession, record.ListFilter{Week: week})

		return loadRecordsMsg{records: records, err: err}
	}
}
