package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/elelcahyani/uangku/internal/budget"
	"github.com/elelcahyani/uangku/internal/category"
	"github.com/elelcahyani/uangku/internal/ledger"
	"github.com/elelcahyani/uangku/internal/report"
	"github.com/elelcahyani/uangku/internal/transaction"
)

type budgetsState int

const (
	budgetsStateBrowse budgetsState = iota
	budgetsStateAdd
)

const budgetGaugeWidth = 30

// BudgetsModel shows each budget against actual spend for its month.
type BudgetsModel struct {
	CommonModel
	svc *ledger.Service

	state   budgetsState
	reports []report.BudgetReport
	cursor  int

	form   *huh.Form
	status string

	formCategory string
	formLimit    string
	formMonth    string
}

func NewBudgetsModel(svc *ledger.Service) BudgetsModel {
	m := BudgetsModel{svc: svc}
	m.reload()

	return m
}

func (m BudgetsModel) Title() string   { return "Budgets" }
func (m BudgetsModel) Capturing() bool { return m.state == budgetsStateAdd }
func (m BudgetsModel) ShortHelp() string {
	if m.state == budgetsStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "↑/↓: select | a: add | x: delete | Tab: switch tabs"
}

func (m BudgetsModel) Init() tea.Cmd { return nil }

func (m *BudgetsModel) reload() {
	m.reports = m.svc.BudgetStatus()

	if m.cursor >= len(m.reports) {
		m.cursor = len(m.reports) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m BudgetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(RefreshMsg); ok {
		m.reload()
		return m, nil
	}

	if m.state == budgetsStateAdd {
		return m.updateAdd(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.reports)-1 {
			m.cursor++
		}
	case "a":
		return m.enterAddMode()
	case "x":
		return m.deleteSelected()
	}

	return m, nil
}

func (m BudgetsModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.reports) {
		return m, nil
	}

	ctx, cancel := DbCtx()
	defer cancel()

	if err := m.svc.DeleteBudget(ctx, m.reports[m.cursor].ID); err != nil {
		m.status = fmt.Sprintf("Error deleting: %v", err)
		return m, nil
	}

	m.status = "Budget deleted"
	m.reload()

	return m, Refresh
}

func (m BudgetsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formCategory = ""
	m.formLimit = ""
	m.formMonth = CurrentMonth()

	expenseCats := category.OfType(m.svc.Categories(), transaction.TypeExpense)

	opts := make([]huh.Option[string], len(expenseCats))
	for i, cat := range expenseCats {
		opts[i] = huh.NewOption(cat.Name, cat.Name)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(opts...).
				Value(&m.formCategory),

			huh.NewInput().
				Key("limit").
				Title("Monthly limit").
				Placeholder("1000000").
				Validate(validAmount).
				Value(&m.formLimit),

			huh.NewInput().
				Key("month").
				Title("Month").
				Placeholder("YYYY-MM").
				Validate(validMonth).
				Value(&m.formMonth),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = budgetsStateAdd

	return m, m.form.Init()
}

func (m BudgetsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = budgetsStateBrowse
			m.form = nil

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

	limit, _ := strconv.ParseFloat(m.form.GetString("limit"), 64)

	ctx, cancel := DbCtx()
	defer cancel()

	b, err := m.svc.AddBudget(ctx, budget.AddParams{
		Category: m.form.GetString("category"),
		Limit:    limit,
		Month:    m.form.GetString("month"),
	})

	switch {
	case err != nil:
		m.status = fmt.Sprintf("Error saving: %v", err)
	case b == nil:
		m.status = "Rejected: missing required field"
	default:
		m.status = "Budget added"
	}

	m.state = budgetsStateBrowse
	m.form = nil
	m.reload()

	return m, Refresh
}

func (m BudgetsModel) View() string {
	if len(m.reports) == 0 && m.state != budgetsStateAdd {
		return MutedStyle.Render("No budgets yet. Press 'a' to add one.")
	}

	var b strings.Builder

	for i, rep := range m.reports {
		b.WriteString(m.budgetCard(rep, i == m.cursor))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(MutedStyle.Render(m.status))
	}

	content := b.String()

	if m.state == budgetsStateAdd && m.form != nil {
		panel := FormPanelStyle.Width(48).
			Render("Add Budget\n\n" + m.form.View())

		return lipgloss.JoinVertical(lipgloss.Left, content, panel)
	}

	return content
}

func (m BudgetsModel) budgetCard(rep report.BudgetReport, selected bool) string {
	color := StatusColor(rep.Status)

	marker := "  "
	if selected {
		marker = lipgloss.NewStyle().Foreground(AccentColor).Render("> ")
	}

	title := fmt.Sprintf("%s%s  %s", marker,
		TitleStyle.Render(rep.Category),
		MutedStyle.Render(rep.Month),
	)

	gauge := Gauge(rep.Percentage, budgetGaugeWidth, color)

	detail := fmt.Sprintf("%s / %s  (%.0f%%)  remaining %s",
		report.FormatCurrency(rep.Spent),
		report.FormatCurrency(rep.Limit),
		rep.Percentage,
		report.FormatCurrency(rep.Remaining),
	)

	if rep.Status == report.BudgetExceeded {
		detail += "  " + lipgloss.NewStyle().Foreground(DangerColor).Render("over budget")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "  "+gauge, "  "+detail)
}

func validMonth(s string) error {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[4] != '-' {
		return fmt.Errorf("month must be YYYY-MM")
	}

	for i, r := range s {
		if i == 4 {
			continue
		}

		if r < '0' || r > '9' {
			return fmt.Errorf("month must be YYYY-MM")
		}
	}

	return nil
}
