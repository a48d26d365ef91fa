package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elelcahyani/uangku/internal/ledger"
	"github.com/elelcahyani/uangku/internal/report"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly", h.monthly)
	r.Get("/trend", h.trend)
}

type monthlyResponse struct {
	Month string `json:"month"`
	report.MonthlySummary

	FormattedIncome   string `json:"formattedIncome"`
	FormattedExpenses string `json:"formattedExpenses"`
	FormattedBalance  string `json:"formattedBalance"`
}

// monthly reports the stats for ?month=YYYY-MM, defaulting to the current
// month.
func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("month")
	if period == "" {
		period = time.Now().UTC().Format("2006-01")
	}

	stats := h.svc.MonthlyStats(period)

	resp := monthlyResponse{
		Month:             period,
		MonthlySummary:    stats,
		FormattedIncome:   report.FormatCurrency(stats.Income),
		FormattedExpenses: report.FormatCurrency(stats.Expenses),
		FormattedBalance:  report.FormatCurrency(stats.Balance),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// trend reports the 6-month series ending at ?date=YYYY-MM-DD, defaulting
// to today.
func (h *Handler) trend(w http.ResponseWriter, r *http.Request) {
	ref := time.Now().UTC()

	if s := r.URL.Query().Get("date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		ref = t
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.svc.Trend(ref)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
