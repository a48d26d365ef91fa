// Package report is the aggregation engine: pure functions deriving
// monthly statistics, budget status and trend series from the raw
// collections. Every function is total and stateless; empty inputs yield
// zero-valued aggregates, never errors. Months are matched by string
// prefix against the transaction date, so malformed dates silently fall
// out of every bucket.
package report

import (
	"strings"
	"time"

	"github.com/elelcahyani/uangku/internal/budget"
	"github.com/elelcahyani/uangku/internal/transaction"
)

// MonthlySummary aggregates one calendar month of transactions.
type MonthlySummary struct {
	Income           float64 `json:"income"`
	Expenses         float64 `json:"expenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transactionCount"`
}

// Monthly sums the transactions whose date falls in the month identified
// by the YYYY-MM period key.
func Monthly(txs []transaction.Transaction, period string) MonthlySummary {
	var s MonthlySummary

	for _, tx := range txs {
		if !strings.HasPrefix(tx.Date, period) {
			continue
		}

		switch tx.Type {
		case transaction.TypeIncome:
			s.Income += tx.Amount
		case transaction.TypeExpense:
			s.Expenses += tx.Amount
		}

		s.TransactionCount++
	}

	s.Balance = s.Income - s.Expenses

	return s
}

// BudgetState classifies how far a budget has been consumed.
type BudgetState string

const (
	BudgetGood     BudgetState = "good"
	BudgetWarning  BudgetState = "warning"
	BudgetExceeded BudgetState = "exceeded"
)

const (
	warningThreshold  = 80
	exceededThreshold = 100
)

// BudgetReport is a budget joined with its recomputed spending figures.
// The stored Spent field on the budget itself is never consulted.
type BudgetReport struct {
	budget.Budget

	Spent      float64     `json:"spent"`
	Percentage float64     `json:"percentage"`
	Remaining  float64     `json:"remaining"`
	Status     BudgetState `json:"status"`
}

// BudgetStatus recomputes, for every budget, the total of matching expense
// transactions (same category name, date within the budgeted month) and
// derives percentage, remaining and status. Remaining may go negative once
// the limit is exceeded.
func BudgetStatus(budgets []budget.Budget, txs []transaction.Transaction) []BudgetReport {
	reports := make([]BudgetReport, len(budgets))

	for i, b := range budgets {
		var spent float64

		for _, tx := range txs {
			if tx.Type == transaction.TypeExpense &&
				tx.Category == b.Category &&
				strings.HasPrefix(tx.Date, b.Month) {
				spent += tx.Amount
			}
		}

		var percentage float64
		if b.Limit > 0 {
			percentage = spent / b.Limit * 100
		}

		status := BudgetGood

		switch {
		case percentage >= exceededThreshold:
			status = BudgetExceeded
		case percentage >= warningThreshold:
			status = BudgetWarning
		}

		reports[i] = BudgetReport{
			Budget:     b,
			Spent:      spent,
			Percentage: percentage,
			Remaining:  b.Limit - spent,
			Status:     status,
		}
	}

	return reports
}

// TrendMonths is the fixed width of the trend window.
const TrendMonths = 6

// MinChartScale floors the chart scale so near-zero data does not produce
// a degenerate chart.
const MinChartScale = 1_000_000

// TrendPoint is one month bucket of the trend series.
type TrendPoint struct {
	Month    string  `json:"month"` // short display label
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// Trend is the 6-month series plus its chart scale and aggregate totals.
type Trend struct {
	Points         []TrendPoint `json:"points"`
	MaxValue       float64      `json:"maxValue"`
	TotalIncome    float64      `json:"totalIncome"`
	TotalExpenses  float64      `json:"totalExpenses"`
	AverageBalance float64      `json:"averageBalance"`
}

// Indonesian short month names, matching the original display locale.
var monthLabels = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// SixMonthTrend buckets transactions into the 6 calendar months ending at
// ref's month, in chronological order. Months without transactions yield
// zero-valued buckets rather than being omitted.
func SixMonthTrend(txs []transaction.Transaction, ref time.Time) Trend {
	t := Trend{
		Points:   make([]TrendPoint, 0, TrendMonths),
		MaxValue: MinChartScale,
	}

	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	for i := TrendMonths - 1; i >= 0; i-- {
		m := firstOfMonth.AddDate(0, -i, 0)
		s := Monthly(txs, m.Format("2006-01"))

		t.Points = append(t.Points, TrendPoint{
			Month:    monthLabels[m.Month()-1],
			Income:   s.Income,
			Expenses: s.Expenses,
			Balance:  s.Balance,
		})

		t.TotalIncome += s.Income
		t.TotalExpenses += s.Expenses

		if s.Income > t.MaxValue {
			t.MaxValue = s.Income
		}

		if s.Expenses > t.MaxValue {
			t.MaxValue = s.Expenses
		}
	}

	t.AverageBalance = (t.TotalIncome - t.TotalExpenses) / TrendMonths

	return t
}
