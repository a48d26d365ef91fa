package export

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elelcahyani/uangku/internal/export"
	"github.com/elelcahyani/uangku/internal/ledger"
)

type Handler struct {
	svc    *export.Service
	ledger *ledger.Service
}

func NewHandler(svc *export.Service, ledger *ledger.Service) *Handler {
	return &Handler{svc: svc, ledger: ledger}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions.csv", h.transactionsCSV)
}

func (h *Handler) transactionsCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

	if err := h.svc.WriteCSV(w, h.ledger.Transactions()); err != nil {
		slog.Error("failed to write csv export", "error", err)
	}
}
