package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elelcahyani/uangku/internal/ledger/store"
	"github.com/elelcahyani/uangku/internal/transaction"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	txs := []transaction.Transaction{
		{ID: "t1", Amount: 50000, Description: "Coffee", Category: "Food", Type: transaction.TypeExpense, Date: "2024-03-15"},
	}

	require.NoError(t, s.Save(ctx, "transactions", txs))

	var got []transaction.Transaction

	ok, err := s.Load(ctx, "transactions", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, txs, got)
}

func TestFileStore_MissingKey(t *testing.T) {
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	var got []transaction.Transaction

	ok, err := s.Load(context.Background(), "transactions", &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestFileStore_CorruptValue(t *testing.T) {
	dir := t.TempDir()

	s, err := store.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "budgets.json"), []byte("{not json"), 0o644))

	var got []any

	_, err = s.Load(context.Background(), "budgets", &got)
	assert.Error(t, err)
}

func TestFileStore_OverwriteReplacesValue(t *testing.T) {
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "budgets", []string{"a", "b"}))
	require.NoError(t, s.Save(ctx, "budgets", []string{"c"}))

	var got []string

	ok, err := s.Load(ctx, "budgets", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"c"}, got)
}
