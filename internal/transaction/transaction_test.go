package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elelcahyani/uangku/internal/transaction"
)

func TestAdd(t *testing.T) {
	type testCase struct {
		name     string
		existing []transaction.Transaction
		params   transaction.AddParams
		wantAdd  bool
	}

	tests := []testCase{
		{
			name: "ValidExpense",
			params: transaction.AddParams{
				Amount:      50000,
				Description: "Coffee",
				Category:    "Food",
				Type:        transaction.TypeExpense,
				Date:        "2024-03-15",
			},
			wantAdd: true,
		},
		{
			name: "ZeroAmount",
			params: transaction.AddParams{
				Amount:      0,
				Description: "x",
				Category:    "y",
				Type:        transaction.TypeExpense,
				Date:        "2024-03-15",
			},
			wantAdd: false,
		},
		{
			name: "NegativeAmount",
			params: transaction.AddParams{
				Amount:      -100,
				Description: "x",
				Category:    "y",
				Type:        transaction.TypeExpense,
				Date:        "2024-03-15",
			},
			wantAdd: false,
		},
		{
			name: "EmptyDescription",
			params: transaction.AddParams{
				Amount:   100,
				Category: "y",
				Type:     transaction.TypeIncome,
				Date:     "2024-03-15",
			},
			wantAdd: false,
		},
		{
			name: "EmptyCategory",
			params: transaction.AddParams{
				Amount:      100,
				Description: "x",
				Type:        transaction.TypeIncome,
				Date:        "2024-03-15",
			},
			wantAdd: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tx := transaction.Add(tt.existing, tt.params)

			if !tt.wantAdd {
				assert.Nil(t, tx)
				assert.Len(t, got, len(tt.existing))

				return
			}

			require.NotNil(t, tx)
			require.Len(t, got, len(tt.existing)+1)

			// New transactions are prepended.
			head := got[0]
			assert.Equal(t, tx.ID, head.ID)
			assert.NotEmpty(t, head.ID)
			assert.Equal(t, tt.params.Amount, head.Amount)
			assert.Equal(t, tt.params.Description, head.Description)
			assert.Equal(t, tt.params.Category, head.Category)
			assert.Equal(t, tt.params.Type, head.Type)
			assert.Equal(t, tt.params.Date, head.Date)
			assert.False(t, head.CreatedAt.IsZero())
		})
	}
}

func TestAdd_PrependsAndDoesNotMutate(t *testing.T) {
	existing := []transaction.Transaction{
		{ID: "old", Description: "Old", Category: "Food", Amount: 1, Type: transaction.TypeExpense},
	}

	got, tx := transaction.Add(existing, transaction.AddParams{
		Amount:      200,
		Description: "New",
		Category:    "Food",
		Type:        transaction.TypeExpense,
		Date:        "2024-04-01",
	})

	require.NotNil(t, tx)
	require.Len(t, got, 2)
	assert.Equal(t, "New", got[0].Description)
	assert.Equal(t, "old", got[1].ID)

	// Original slice untouched.
	assert.Len(t, existing, 1)
	assert.Equal(t, "old", existing[0].ID)
}

func TestAdd_FreshIDs(t *testing.T) {
	params := transaction.AddParams{
		Amount:      10,
		Description: "x",
		Category:    "y",
		Type:        transaction.TypeIncome,
		Date:        "2024-01-01",
	}

	txs, first := transaction.Add(nil, params)
	txs, second := transaction.Add(txs, params)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRemove_Idempotent(t *testing.T) {
	txs := []transaction.Transaction{
		{ID: "a"},
		{ID: "b"},
		{ID: "c"},
	}

	once := transaction.Remove(txs, "b")
	twice := transaction.Remove(once, "b")

	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
	assert.Equal(t, "a", once[0].ID)
	assert.Equal(t, "c", once[1].ID)
}

func TestRemove_MissingIDIsNoOp(t *testing.T) {
	txs := []transaction.Transaction{{ID: "a"}}

	got := transaction.Remove(txs, "nope")
	assert.Equal(t, txs, got)
}

func TestFilter(t *testing.T) {
	txs := []transaction.Transaction{
		{ID: "1", Description: "Morning coffee", Category: "Food"},
		{ID: "2", Description: "Coffee beans", Category: "Shopping"},
		{ID: "3", Description: "Bus ticket", Category: "Transport"},
		{ID: "4", Description: "Lunch", Category: "Food"},
	}

	type testCase struct {
		name     string
		search   string
		category string
		wantIDs  []string
	}

	tests := []testCase{
		{
			name:     "EmptySearchAllCategories",
			search:   "",
			category: "all",
			wantIDs:  []string{"1", "2", "3", "4"},
		},
		{
			name:     "SearchOnly",
			search:   "coffee",
			category: "all",
			wantIDs:  []string{"1", "2"},
		},
		{
			name:     "CategoryOnly",
			search:   "",
			category: "Food",
			wantIDs:  []string{"1", "4"},
		},
		{
			// Both predicates must hold: transaction 2 matches the
			// search but not the category and is excluded.
			name:     "SearchAndCategory",
			search:   "coffee",
			category: "Food",
			wantIDs:  []string{"1"},
		},
		{
			name:     "SearchMatchesCategoryField",
			search:   "transp",
			category: "all",
			wantIDs:  []string{"3"},
		},
		{
			name:     "CaseInsensitive",
			search:   "COFFEE",
			category: "all",
			wantIDs:  []string{"1", "2"},
		},
		{
			name:     "NoMatches",
			search:   "pizza",
			category: "Transport",
			wantIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transaction.Filter(txs, tt.search, tt.category)

			ids := make([]string, 0, len(got))
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
