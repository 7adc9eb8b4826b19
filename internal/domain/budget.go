package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Budget maps each category to its allocated amount.
// The category set is fixed once the budget is built.
type Budget struct {
	allocations map[string]decimal.Decimal
	categories  []string // sorted
}

// NewBudget builds a Budget from a copy of allocations.
// Returns ErrInvalidBudget if allocations is empty, a category name is blank,
// or an allocation is negative.
func NewBudget(allocations map[string]decimal.Decimal) (Budget, error) {
	if len(allocations) == 0 {
		return Budget{}, fmt.Errorf("%w: at least one category is required", ErrInvalidBudget)
	}

	b := Budget{
		allocations: make(map[string]decimal.Decimal, len(allocations)),
		categories:  make([]string, 0, len(allocations)),
	}

	for category, amount := range allocations {
		if strings.TrimSpace(category) == "" {
			return Budget{}, fmt.Errorf("%w: category name cannot be empty", ErrInvalidBudget)
		}
		if amount.IsNegative() {
			return Budget{}, fmt.Errorf("%w: allocation for %q cannot be negative", ErrInvalidBudget, category)
		}
		b.allocations[category] = amount
		b.categories = append(b.categories, category)
	}

	sort.Strings(b.categories)

	return b, nil
}

// Categories returns the budget categories in sorted order.
func (b Budget) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

// Allocation returns the amount allocated to category.
func (b Budget) Allocation(category string) (decimal.Decimal, bool) {
	amount, ok := b.allocations[category]
	return amount, ok
}

// Has reports whether category is part of the budget.
func (b Budget) Has(category string) bool {
	_, ok := b.allocations[category]
	return ok
}

// Total returns the sum of all allocations.
func (b Budget) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range b.allocations {
		total = total.Add(amount)
	}
	return total
}

// Len returns the number of categories.
func (b Budget) Len() int {
	return len(b.categories)
}
