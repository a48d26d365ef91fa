package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elelcahyani/uangku/internal/ledger"
	"github.com/elelcahyani/uangku/internal/report"
	"github.com/elelcahyani/uangku/internal/transaction"
)

const (
	chartBarWidth   = 28
	recentCount     = 5
	monthLabelPad   = 4
	overviewCardGap = 1
)

// OverviewModel is the summary tab: current-month stat cards, the 6-month
// chart and the most recent transactions.
type OverviewModel struct {
	CommonModel
	svc *ledger.Service
}

func NewOverviewModel(svc *ledger.Service) OverviewModel {
	return OverviewModel{svc: svc}
}

func (m OverviewModel) Title() string     { return "Overview" }
func (m OverviewModel) ShortHelp() string { return "Tab: switch tabs | q: quit" }
func (m OverviewModel) Capturing() bool   { return false }

func (m OverviewModel) Init() tea.Cmd { return nil }

func (m OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.Width = size.Width
		m.Height = size.Height
	}

	return m, nil
}

func (m OverviewModel) View() string {
	stats := m.svc.MonthlyStats(CurrentMonth())
	trend := m.svc.Trend(time.Now())

	sections := []string{
		m.statsCards(stats),
		m.chart(trend),
		m.recentTransactions(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m OverviewModel) statsCards(stats report.MonthlySummary) string {
	balanceColor := IncomeColor
	if stats.Balance < 0 {
		balanceColor = DangerColor
	}

	cards := []string{
		card("Balance", report.FormatCurrency(stats.Balance), balanceColor),
		card("Income", report.FormatCurrency(stats.Income), IncomeColor),
		card("Expenses", report.FormatCurrency(stats.Expenses), ExpenseColor),
		card("Transactions", fmt.Sprintf("%d", stats.TransactionCount), AccentColor),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func card(label, value string, color lipgloss.Color) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		MutedStyle.Render(label),
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(value),
	)

	return CardStyle.MarginRight(overviewCardGap).Render(body)
}

func (m OverviewModel) chart(trend report.Trend) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Last 6 Months") + "\n\n")

	for _, p := range trend.Points {
		label := fmt.Sprintf("%-*s", monthLabelPad, p.Month)

		b.WriteString(fmt.Sprintf("%s %s %s\n", label,
			Bar(p.Income, trend.MaxValue, chartBarWidth, IncomeColor),
			MutedStyle.Render(report.CompactCurrency(p.Income)),
		))
		b.WriteString(fmt.Sprintf("%-*s %s %s\n", monthLabelPad, "",
			Bar(p.Expenses, trend.MaxValue, chartBarWidth, ExpenseColor),
			MutedStyle.Render(report.CompactCurrency(p.Expenses)),
		))
	}

	summary := fmt.Sprintf("Income %s | Expenses %s | Avg balance %s",
		report.FormatCurrency(trend.TotalIncome),
		report.FormatCurrency(trend.TotalExpenses),
		report.FormatCurrency(trend.AverageBalance),
	)
	b.WriteString("\n" + MutedStyle.Render(summary))

	return lipgloss.NewStyle().PaddingTop(1).Render(b.String())
}

func (m OverviewModel) recentTransactions() string {
	txs := m.svc.Transactions()
	if len(txs) > recentCount {
		txs = txs[:recentCount]
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("Recent Transactions") + "\n")

	if len(txs) == 0 {
		b.WriteString(MutedStyle.Render("No transactions yet"))
		return lipgloss.NewStyle().PaddingTop(1).Render(b.String())
	}

	for _, tx := range txs {
		sign := "-"
		color := ExpenseColor

		if tx.Type == transaction.TypeIncome {
			sign = "+"
			color = IncomeColor
		}

		amount := lipgloss.NewStyle().Foreground(color).
			Render(sign + report.FormatCurrency(tx.Amount))

		b.WriteString(fmt.Sprintf("%s  %-24s %-14s %s\n",
			tx.Date, clip(tx.Description, 24), clip(tx.Category, 14), amount))
	}

	return lipgloss.NewStyle().PaddingTop(1).Render(b.String())
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n-1] + "…"
}
