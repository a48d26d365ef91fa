package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elelcahyani/uangku/internal/ledger"
	"github.com/elelcahyani/uangku/internal/transaction"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

type createTransactionRequest struct {
	Amount      float64          `json:"amount"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Type        transaction.Type `json:"type"`
	Date        string           `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.AddTransaction(r.Context(), transaction.AddParams{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Date:        req.Date,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// The core rejects invalid input as a silent no-op; surface that as
	// 422 so API clients can tell nothing was recorded.
	if tx == nil {
		http.Error(w, "missing or invalid required field", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(*tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	categoryFilter := r.URL.Query().Get("category")
	if categoryFilter == "" {
		categoryFilter = transaction.CategoryAll
	}

	txs := h.svc.SearchTransactions(search, categoryFilter)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	// Deletion is idempotent: an unknown id still returns 204.
	if err := h.svc.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
