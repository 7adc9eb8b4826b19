package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/simaogato/budgetledger/internal/domain"
)

// Synchronized guards a BudgetLedger for use from multiple goroutines.
// Writes take the exclusive lock, reports share the read lock.
type Synchronized struct {
	mu     sync.RWMutex
	ledger *BudgetLedger
}

// NewSynchronized wraps l. The caller must not use l directly afterwards.
func NewSynchronized(l *BudgetLedger) *Synchronized {
	return &Synchronized{ledger: l}
}

func (s *Synchronized) RecordExpense(category string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.RecordExpense(category, amount)
}

func (s *Synchronized) Categories() []string {
	// The category set never changes after construction.
	return s.ledger.Categories()
}

func (s *Synchronized) Expenses() []domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Expenses()
}

func (s *Synchronized) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Len()
}

func (s *Synchronized) CategoryTotals() map[string]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.CategoryTotals()
}

func (s *Synchronized) UtilizationPercent() (map[string]decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.UtilizationPercent()
}

func (s *Synchronized) OverallSummary() domain.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.OverallSummary()
}
