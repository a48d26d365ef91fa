package budget

import (
	"github.com/google/uuid"
)

// Budget is a per-category, per-month spending ceiling.
//
// Spent is persisted for compatibility with the stored format but is
// always 0 at creation and never read back: the authoritative spent value
// is recomputed from the transaction list by the report package.
type Budget struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Spent    float64 `json:"spent"`
	Month    string  `json:"month"` // YYYY-MM period key
}

// AddParams holds the user-supplied fields of a new budget.
type AddParams struct {
	Category string
	Limit    float64
	Month    string
}

// Valid reports whether the params pass the add-budget validation: a
// non-empty category and a positive limit.
func (p AddParams) Valid() bool {
	return p.Category != "" && p.Limit > 0
}

// Add appends a fresh budget with a zero spent field. Invalid params are a
// no-op: the original collection is returned unchanged with a nil second
// value. Budgets are never updated in place; the only other operation is
// Remove.
func Add(budgets []Budget, p AddParams) ([]Budget, *Budget) {
	if !p.Valid() {
		return budgets, nil
	}

	b := Budget{
		ID:       uuid.NewString(),
		Category: p.Category,
		Limit:    p.Limit,
		Spent:    0,
		Month:    p.Month,
	}

	out := make([]Budget, 0, len(budgets)+1)
	out = append(out, budgets...)
	out = append(out, b)

	return out, &b
}

// Remove returns a new collection without the budget matching id. A
// missing id is not an error.
func Remove(budgets []Budget, id string) []Budget {
	out := make([]Budget, 0, len(budgets))

	for _, b := range budgets {
		if b.ID == id {
			continue
		}

		out = append(out, b)
	}

	return out
}
