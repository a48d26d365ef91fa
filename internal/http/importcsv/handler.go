package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elelcahyani/uangku/internal/importer"
	"github.com/elelcahyani/uangku/internal/ledger"
)

// Uploads are small personal exports; 10 MB is generous.
const maxUploadSize = 10 << 20

type Handler struct {
	parser *importer.Parser
	svc    *ledger.Service
}

func NewHandler(parser *importer.Parser, svc *ledger.Service) *Handler {
	return &Handler{parser: parser, svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.parser.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	added, err := h.svc.AddTransactions(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importResponse{
		Imported: len(added),
		Skipped:  len(params) - len(added),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
