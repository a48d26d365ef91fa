package transaction

import (
	"time"

	"github.com/elelcahyani/uangku/internal/transaction"
)

type transactionResponse struct {
	ID          string           `json:"id"`
	Amount      float64          `json:"amount"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Type        transaction.Type `json:"type"`
	Date        string           `json:"date"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toResponse(tx transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Description: tx.Description,
		Category:    tx.Category,
		Type:        tx.Type,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
	}
}

func toResponseList(txs []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
