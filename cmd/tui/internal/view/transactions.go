package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/elelcahyani/uangku/internal/category"
	"github.com/elelcahyani/uangku/internal/ledger"
	"github.com/elelcahyani/uangku/internal/report"
	"github.com/elelcahyani/uangku/internal/transaction"
)

type transactionsState int

const (
	transactionsStateBrowse transactionsState = iota
	transactionsStateSearch
	transactionsStateAdd
)

// TransactionsModel is the transactions tab: a searchable, filterable
// table with add and delete.
type TransactionsModel struct {
	CommonModel
	svc *ledger.Service

	state  transactionsState
	table  table.Model
	search textinput.Model
	txs    []transaction.Transaction

	// Category filter cycling: index 0 is "all".
	filterIdx int

	form   *huh.Form
	status string

	// Form bindings
	formAmount   string
	formDesc     string
	formCategory string
	formType     string
	formDate     string
}

func NewTransactionsModel(svc *ledger.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 8},
		{Title: "Category", Width: 16},
		{Title: "Description", Width: 32},
		{Title: "Amount", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(MutedColor).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	search := textinput.New()
	search.Placeholder = "Search transactions..."
	search.CharLimit = 64

	m := TransactionsModel{
		svc:    svc,
		table:  t,
		search: search,
	}
	m.reload()

	return m
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) Capturing() bool {
	return m.state != transactionsStateBrowse
}
func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case transactionsStateSearch:
		return "Enter/Esc: done typing"
	case transactionsStateAdd:
		return "Navigate form | Esc: cancel"
	default:
		return "/: search | f: category filter | a: add | x: delete | Tab: switch tabs"
	}
}

func (m TransactionsModel) Init() tea.Cmd { return nil }

func (m *TransactionsModel) filterCategory() string {
	if m.filterIdx == 0 {
		return transaction.CategoryAll
	}

	cats := m.svc.Categories()
	if m.filterIdx-1 < len(cats) {
		return cats[m.filterIdx-1].Name
	}

	return transaction.CategoryAll
}

func (m *TransactionsModel) reload() {
	m.txs = m.svc.SearchTransactions(m.search.Value(), m.filterCategory())

	rows := make([]table.Row, len(m.txs))
	for i, tx := range m.txs {
		rows[i] = table.Row{
			tx.Date,
			string(tx.Type),
			tx.Category,
			tx.Description,
			report.FormatCurrency(tx.Amount),
		}
	}

	m.table.SetRows(rows)
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		m.reload()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case transactionsStateSearch:
		return m.updateSearch(msg)
	case transactionsStateAdd:
		return m.updateAdd(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "/":
			m.state = transactionsStateSearch
			m.table.Blur()

			return m, m.search.Focus()
		case "f":
			m.filterIdx = (m.filterIdx + 1) % (len(m.svc.Categories()) + 1)
			m.reload()

			return m, nil
		case "a":
			return m.enterAddMode()
		case "x":
			return m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			m.state = transactionsStateBrowse
			m.search.Blur()
			m.table.Focus()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.reload()

	return m, cmd
}

func (m TransactionsModel) deleteSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return m, nil
	}

	ctx, cancel := DbCtx()
	defer cancel()

	if err := m.svc.DeleteTransaction(ctx, m.txs[idx].ID); err != nil {
		m.status = fmt.Sprintf("Error deleting: %v", err)
		return m, nil
	}

	m.status = "Transaction deleted"
	m.reload()

	return m, Refresh
}

func (m TransactionsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formAmount = ""
	m.formDesc = ""
	m.formCategory = ""
	m.formType = string(transaction.TypeExpense)
	m.formDate = Today()

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", string(transaction.TypeExpense)),
					huh.NewOption("Income", string(transaction.TypeIncome)),
				).
				Value(&m.formType),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				OptionsFunc(func() []huh.Option[string] {
					cats := category.OfType(m.svc.Categories(), transaction.Type(m.formType))

					opts := make([]huh.Option[string], len(cats))
					for i, cat := range cats {
						opts[i] = huh.NewOption(cat.Name, cat.Name)
					}

					return opts
				}, &m.formType).
				Value(&m.formCategory),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("50000").
				Validate(validAmount).
				Value(&m.formAmount),

			huh.NewInput().
				Key("description").
				Title("Description").
				Validate(nonEmpty("description")).
				Value(&m.formDesc),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Validate(validDate).
				Value(&m.formDate),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = transactionsStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m TransactionsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = transactionsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	amount, _ := strconv.ParseFloat(m.form.GetString("amount"), 64)

	ctx, cancel := DbCtx()
	defer cancel()

	tx, err := m.svc.AddTransaction(ctx, transaction.AddParams{
		Amount:      amount,
		Description: m.form.GetString("description"),
		Category:    m.form.GetString("category"),
		Type:        transaction.Type(m.form.GetString("type")),
		Date:        m.form.GetString("date"),
	})

	switch {
	case err != nil:
		m.status = fmt.Sprintf("Error saving: %v", err)
	case tx == nil:
		m.status = "Rejected: missing required field"
	default:
		m.status = "Transaction added"
	}

	m.state = transactionsStateBrowse
	m.form = nil
	m.table.Focus()
	m.reload()

	return m, Refresh
}

func (m TransactionsModel) View() string {
	header := fmt.Sprintf("Search: %s   [f] Category: %s",
		m.search.View(),
		TitleStyle.Render(m.filterCategory()),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(MutedColor).
		Render(m.table.View())

	parts := []string{
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	}

	if m.status != "" {
		parts = append(parts, MutedStyle.Render(m.status))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.state == transactionsStateAdd && m.form != nil {
		panel := FormPanelStyle.Width(48).
			Render("Add Transaction\n\n" + m.form.View())

		return lipgloss.JoinVertical(lipgloss.Left, content, panel)
	}

	return content
}

func validAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("amount must be a positive number")
	}

	return nil
}

func validDate(s string) error {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}

	return nil
}

func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}

		return nil
	}
}
