package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/elelcahyani/uangku/internal/budget"
	"github.com/elelcahyani/uangku/internal/category"
	"github.com/elelcahyani/uangku/internal/report"
	"github.com/elelcahyani/uangku/internal/transaction"
)

// Storage keys for the three persisted collections.
const (
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
	KeyBudgets      = "budgets"
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=ledger
type Store interface {
	// Load unmarshals the value stored under key into v. The boolean is
	// false when no value has been persisted yet.
	Load(ctx context.Context, key string, v any) (bool, error)
	Save(ctx context.Context, key string, v any) error
}

// Service owns the in-memory collections and their persistence lifecycle:
// it loads them once at startup, applies mutations copy-on-write, and
// writes the affected collection back to the store on every mutation.
// Aggregate views are recomputed from the current collections on each
// call.
type Service struct {
	store Store

	mu           sync.RWMutex
	transactions []transaction.Transaction
	categories   []category.Category
	budgets      []budget.Budget
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Init loads the persisted collections. A missing categories value is
// seeded with the default set; missing transactions and budgets start
// empty.
func (s *Service) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Load(ctx, KeyTransactions, &s.transactions); err != nil {
		return fmt.Errorf("loading transactions: %w", err)
	}

	ok, err := s.store.Load(ctx, KeyCategories, &s.categories)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	if !ok {
		s.categories = category.Defaults()
	}

	if _, err := s.store.Load(ctx, KeyBudgets, &s.budgets); err != nil {
		return fmt.Errorf("loading budgets: %w", err)
	}

	return nil
}

// AddTransaction validates and records a new transaction at the head of
// the collection, then persists. Validation rejections are silent no-ops
// returning (nil, nil).
func (s *Service) AddTransaction(ctx context.Context, p transaction.AddParams) (*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, tx := transaction.Add(s.transactions, p)
	if tx == nil {
		return nil, nil
	}

	if err := s.store.Save(ctx, KeyTransactions, txs); err != nil {
		return nil, fmt.Errorf("saving transactions: %w", err)
	}

	s.transactions = txs

	return tx, nil
}

// AddTransactions records a batch in one persistence write, skipping
// invalid entries. Used by the CSV importer.
func (s *Service) AddTransactions(ctx context.Context, params []transaction.AddParams) ([]transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.transactions
	added := make([]transaction.Transaction, 0, len(params))

	for _, p := range params {
		var tx *transaction.Transaction

		txs, tx = transaction.Add(txs, p)
		if tx != nil {
			added = append(added, *tx)
		}
	}

	if len(added) == 0 {
		return nil, nil
	}

	if err := s.store.Save(ctx, KeyTransactions, txs); err != nil {
		return nil, fmt.Errorf("saving transactions: %w", err)
	}

	s.transactions = txs

	return added, nil
}

// DeleteTransaction removes the matching transaction and persists. A
// missing id is not an error.
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := transaction.Remove(s.transactions, id)

	if err := s.store.Save(ctx, KeyTransactions, txs); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}

	s.transactions = txs

	return nil
}

// AddCategory appends a category and persists. Blank names are silent
// no-ops returning (nil, nil).
func (s *Service) AddCategory(ctx context.Context, p category.AddParams) (*category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, cat := category.Add(s.categories, p)
	if cat == nil {
		return nil, nil
	}

	if err := s.store.Save(ctx, KeyCategories, cats); err != nil {
		return nil, fmt.Errorf("saving categories: %w", err)
	}

	s.categories = cats

	return cat, nil
}

// UpdateCategory replaces the mutable fields of the matching category and
// persists. Unknown ids and blank names are silent no-ops. Historical
// transactions and budgets referencing the old name are left orphaned.
func (s *Service) UpdateCategory(ctx context.Context, id string, p category.AddParams) (*category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, cat := category.Update(s.categories, id, p)
	if cat == nil {
		return nil, nil
	}

	if err := s.store.Save(ctx, KeyCategories, cats); err != nil {
		return nil, fmt.Errorf("saving categories: %w", err)
	}

	s.categories = cats

	return cat, nil
}

// DeleteCategory removes the matching category and persists, without
// cascading to transactions or budgets.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats := category.Remove(s.categories, id)

	if err := s.store.Save(ctx, KeyCategories, cats); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}

	s.categories = cats

	return nil
}

// AddBudget appends a budget and persists. Invalid params are silent
// no-ops returning (nil, nil).
func (s *Service) AddBudget(ctx context.Context, p budget.AddParams) (*budget.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets, b := budget.Add(s.budgets, p)
	if b == nil {
		return nil, nil
	}

	if err := s.store.Save(ctx, KeyBudgets, budgets); err != nil {
		return nil, fmt.Errorf("saving budgets: %w", err)
	}

	s.budgets = budgets

	return b, nil
}

// DeleteBudget removes the matching budget and persists.
func (s *Service) DeleteBudget(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := budget.Remove(s.budgets, id)

	if err := s.store.Save(ctx, KeyBudgets, budgets); err != nil {
		return fmt.Errorf("saving budgets: %w", err)
	}

	s.budgets = budgets

	return nil
}

// Transactions returns a snapshot of the transaction collection,
// newest first.
func (s *Service) Transactions() []transaction.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]transaction.Transaction, len(s.transactions))
	copy(out, s.transactions)

	return out
}

// SearchTransactions returns the transactions matching the search term
// and category filter.
func (s *Service) SearchTransactions(search, categoryFilter string) []transaction.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return transaction.Filter(s.transactions, search, categoryFilter)
}

// Categories returns a snapshot of the category collection.
func (s *Service) Categories() []category.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]category.Category, len(s.categories))
	copy(out, s.categories)

	return out
}

// ResolveCategory looks a category up by name, falling back to a
// placeholder descriptor for orphaned references.
func (s *Service) ResolveCategory(name string) category.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return category.Resolve(s.categories, name)
}

// Budgets returns a snapshot of the budget collection.
func (s *Service) Budgets() []budget.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]budget.Budget, len(s.budgets))
	copy(out, s.budgets)

	return out
}

// MonthlyStats aggregates the given YYYY-MM period.
func (s *Service) MonthlyStats(period string) report.MonthlySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return report.Monthly(s.transactions, period)
}

// BudgetStatus recomputes spending against every budget.
func (s *Service) BudgetStatus() []report.BudgetReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return report.BudgetStatus(s.budgets, s.transactions)
}

// Trend buckets the last six months ending at ref's month.
func (s *Service) Trend(ref time.Time) report.Trend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return report.SixMonthTrend(s.transactions, ref)
}
