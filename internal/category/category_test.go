package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elelcahyani/uangku/internal/category"
	"github.com/elelcahyani/uangku/internal/transaction"
)

func TestDefaults(t *testing.T) {
	cats := category.Defaults()

	require.Len(t, cats, 12)
	assert.Len(t, category.OfType(cats, transaction.TypeIncome), 4)
	assert.Len(t, category.OfType(cats, transaction.TypeExpense), 8)

	colors := make(map[string]struct{})
	for _, cat := range cats {
		assert.NotEmpty(t, cat.ID)
		assert.NotEmpty(t, cat.Name)
		assert.Equal(t, category.DefaultIcon, cat.Icon)
		colors[cat.Color] = struct{}{}
	}

	// Every seed category carries a distinct color.
	assert.Len(t, colors, 12)
}

func TestAdd(t *testing.T) {
	type testCase struct {
		name    string
		params  category.AddParams
		wantAdd bool
	}

	tests := []testCase{
		{
			name:    "Valid",
			params:  category.AddParams{Name: "Pets", Color: "#10B981", Type: transaction.TypeExpense},
			wantAdd: true,
		},
		{
			name:    "EmptyName",
			params:  category.AddParams{Color: "#10B981", Type: transaction.TypeExpense},
			wantAdd: false,
		},
		{
			name:    "WhitespaceName",
			params:  category.AddParams{Name: "   ", Color: "#10B981", Type: transaction.TypeExpense},
			wantAdd: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cat := category.Add(nil, tt.params)

			if !tt.wantAdd {
				assert.Nil(t, cat)
				assert.Empty(t, got)

				return
			}

			require.NotNil(t, cat)
			require.Len(t, got, 1)
			assert.NotEmpty(t, cat.ID)
			assert.Equal(t, tt.params.Name, cat.Name)
			assert.Equal(t, tt.params.Color, cat.Color)
			assert.Equal(t, tt.params.Type, cat.Type)
			assert.Equal(t, category.DefaultIcon, cat.Icon)
		})
	}
}

func TestUpdate(t *testing.T) {
	cats := []category.Category{
		{ID: "c1", Name: "Food", Color: "#FBBF24", Icon: "Circle", Type: transaction.TypeExpense},
		{ID: "c2", Name: "Bills", Color: "#FB923C", Icon: "Circle", Type: transaction.TypeExpense},
	}

	got, updated := category.Update(cats, "c1", category.AddParams{
		Name:  "Groceries",
		Color: "#10B981",
		Type:  transaction.TypeExpense,
	})

	require.NotNil(t, updated)
	assert.Equal(t, "c1", updated.ID)
	assert.Equal(t, "Groceries", got[0].Name)
	assert.Equal(t, "#10B981", got[0].Color)
	assert.Equal(t, "Circle", got[0].Icon)

	// Original slice untouched, second entry untouched.
	assert.Equal(t, "Food", cats[0].Name)
	assert.Equal(t, "Bills", got[1].Name)
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	cats := []category.Category{{ID: "c1", Name: "Food"}}

	got, updated := category.Update(cats, "missing", category.AddParams{Name: "X"})
	assert.Nil(t, updated)
	assert.Equal(t, cats, got)
}

func TestRemove_Idempotent(t *testing.T) {
	cats := []category.Category{{ID: "c1"}, {ID: "c2"}}

	once := category.Remove(cats, "c1")
	twice := category.Remove(once, "c1")

	assert.Equal(t, once, twice)
	require.Len(t, once, 1)
	assert.Equal(t, "c2", once[0].ID)
}

func TestResolve(t *testing.T) {
	cats := []category.Category{
		{ID: "c1", Name: "Food", Color: "#FBBF24", Icon: "Circle", Type: transaction.TypeExpense},
		{ID: "c2", Name: "Food", Color: "#FFFFFF", Icon: "Circle", Type: transaction.TypeExpense},
	}

	t.Run("FirstMatchWins", func(t *testing.T) {
		got := category.Resolve(cats, "Food")
		assert.Equal(t, "c1", got.ID)
		assert.Equal(t, "#FBBF24", got.Color)
	})

	t.Run("UnresolvedGetsPlaceholder", func(t *testing.T) {
		got := category.Resolve(cats, "Ghost")
		assert.Empty(t, got.ID)
		assert.Equal(t, "Ghost", got.Name)
		assert.Equal(t, "#EC4899", got.Color)
		assert.Equal(t, category.DefaultIcon, got.Icon)
	})
}
