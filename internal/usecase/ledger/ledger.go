package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/budgetledger/internal/domain"
)

// BudgetLedger holds a fixed budget and the expenses recorded against it.
// It is not safe for concurrent use; see Synchronized.
type BudgetLedger struct {
	budget   domain.Budget
	expenses []domain.Expense
}

// New creates a ledger over the given allocations with no expenses.
func New(allocations map[string]decimal.Decimal) (*BudgetLedger, error) {
	budget, err := domain.NewBudget(allocations)
	if err != nil {
		return nil, err
	}

	return &BudgetLedger{
		budget:   budget,
		expenses: make([]domain.Expense, 0),
	}, nil
}

// RecordExpense appends an expense for category.
// Returns ErrUnknownCategory or ErrInvalidAmount without touching the ledger.
func (l *BudgetLedger) RecordExpense(category string, amount decimal.Decimal) error {
	if !l.budget.Has(category) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}

	expense, err := domain.NewExpense(category, amount)
	if err != nil {
		return err
	}

	l.expenses = append(l.expenses, expense)
	return nil
}

// Budget returns the ledger's budget.
func (l *BudgetLedger) Budget() domain.Budget {
	return l.budget
}

// Categories returns the budget categories in sorted order.
func (l *BudgetLedger) Categories() []string {
	return l.budget.Categories()
}

// Expenses returns a copy of the recorded expenses in insertion order.
func (l *BudgetLedger) Expenses() []domain.Expense {
	out := make([]domain.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Len returns the number of recorded expenses.
func (l *BudgetLedger) Len() int {
	return len(l.expenses)
}

// CategoryTotals sums recorded expenses per category.
// Every budget category is present, with 0 when nothing was spent.
func (l *BudgetLedger) CategoryTotals() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, l.budget.Len())
	for _, category := range l.budget.Categories() {
		totals[category] = decimal.Zero
	}

	for _, e := range l.expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	return totals
}

// UtilizationPercent returns spent/allocated as a percentage per category,
// rounded to two places.
// A zero allocation reports 0 while unspent and ErrDivisionByZero otherwise.
func (l *BudgetLedger) UtilizationPercent() (map[string]decimal.Decimal, error) {
	totals := l.CategoryTotals()
	utilization := make(map[string]decimal.Decimal, len(totals))

	for _, category := range l.budget.Categories() {
		allocated, _ := l.budget.Allocation(category)
		spent := totals[category]

		if allocated.IsZero() {
			if !spent.IsZero() {
				return nil, fmt.Errorf("%w: %q has %s spent", domain.ErrDivisionByZero, category, spent)
			}
			utilization[category] = decimal.Zero
			continue
		}

		utilization[category] = domain.Percent(spent, allocated)
	}

	return utilization, nil
}

// OverallSummary compares the whole budget with everything spent.
func (l *BudgetLedger) OverallSummary() domain.Summary {
	spent := decimal.Zero
	for _, e := range l.expenses {
		spent = spent.Add(e.Amount)
	}

	return domain.NewSummary(l.budget.Total(), spent)
}
