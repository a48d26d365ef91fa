package transaction

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction represents a single dated money movement.
type Transaction struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        Type      `json:"type"`
	Date        string    `json:"date"` // YYYY-MM-DD, user-chosen
	CreatedAt   time.Time `json:"createdAt"`
}

// AddParams holds the user-supplied fields of a new transaction.
type AddParams struct {
	Amount      float64
	Description string
	Category    string
	Type        Type
	Date        string
}

// Valid reports whether the params pass the add-transaction validation:
// a positive amount and non-empty description and category.
func (p AddParams) Valid() bool {
	return p.Amount > 0 && p.Description != "" && p.Category != ""
}

// Add returns a new collection with a freshly created transaction at the
// head (newest-first ordering is the contract). The input slice is never
// mutated. Invalid params are a no-op: the original collection is returned
// unchanged and the second return value is nil.
func Add(txs []Transaction, p AddParams) ([]Transaction, *Transaction) {
	if !p.Valid() {
		return txs, nil
	}

	tx := Transaction{
		ID:          uuid.NewString(),
		Amount:      p.Amount,
		Description: p.Description,
		Category:    p.Category,
		Type:        p.Type,
		Date:        p.Date,
		CreatedAt:   time.Now().UTC(),
	}

	out := make([]Transaction, 0, len(txs)+1)
	out = append(out, tx)
	out = append(out, txs...)

	return out, &tx
}

// Remove returns a new collection without the transaction matching id.
// A missing id is not an error; the result is simply an unchanged copy.
func Remove(txs []Transaction, id string) []Transaction {
	out := make([]Transaction, 0, len(txs))

	for _, tx := range txs {
		if tx.ID == id {
			continue
		}

		out = append(out, tx)
	}

	return out
}

// CategoryAll is the filter value matching every category.
const CategoryAll = "all"

// Filter returns the transactions matching both predicates, preserving the
// original relative order. A transaction matches the search term when its
// description or category contains it, case-insensitively; an empty term
// matches everything. The category filter is an exact match unless it is
// CategoryAll.
func Filter(txs []Transaction, search, category string) []Transaction {
	search = strings.ToLower(search)

	out := make([]Transaction, 0, len(txs))

	for _, tx := range txs {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(tx.Description), search) ||
			strings.Contains(strings.ToLower(tx.Category), search)

		matchesCategory := category == CategoryAll || tx.Category == category

		if matchesSearch && matchesCategory {
			out = append(out, tx)
		}
	}

	return out
}
