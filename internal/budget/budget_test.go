package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elelcahyani/uangku/internal/budget"
)

func TestAdd(t *testing.T) {
	type testCase struct {
		name    string
		params  budget.AddParams
		wantAdd bool
	}

	tests := []testCase{
		{
			name:    "Valid",
			params:  budget.AddParams{Category: "Food", Limit: 500000, Month: "2024-03"},
			wantAdd: true,
		},
		{
			name:    "EmptyCategory",
			params:  budget.AddParams{Limit: 500000, Month: "2024-03"},
			wantAdd: false,
		},
		{
			name:    "ZeroLimit",
			params:  budget.AddParams{Category: "Food", Month: "2024-03"},
			wantAdd: false,
		},
		{
			name:    "NegativeLimit",
			params:  budget.AddParams{Category: "Food", Limit: -1, Month: "2024-03"},
			wantAdd: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, b := budget.Add(nil, tt.params)

			if !tt.wantAdd {
				assert.Nil(t, b)
				assert.Empty(t, got)

				return
			}

			require.NotNil(t, b)
			require.Len(t, got, 1)
			assert.NotEmpty(t, b.ID)
			assert.Equal(t, tt.params.Category, b.Category)
			assert.Equal(t, tt.params.Limit, b.Limit)
			assert.Equal(t, tt.params.Month, b.Month)
			assert.Zero(t, b.Spent)
		})
	}
}

func TestRemove_Idempotent(t *testing.T) {
	budgets := []budget.Budget{{ID: "b1"}, {ID: "b2"}}

	once := budget.Remove(budgets, "b2")
	twice := budget.Remove(once, "b2")

	assert.Equal(t, once, twice)
	require.Len(t, once, 1)
	assert.Equal(t, "b1", once[0].ID)
}
