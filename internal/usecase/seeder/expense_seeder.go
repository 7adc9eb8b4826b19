package seeder

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultExpenseCount is the number of expenses the demo records
const DefaultExpenseCount = 20

// Amount bounds for generated expenses, [min, max)
var (
	minAmount = decimal.NewFromInt(5)
	maxAmount = decimal.NewFromInt(100)
)

// DemoBudget returns the illustrative monthly budget used by the demo
func DemoBudget() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"Food":          decimal.NewFromInt(300),
		"Rent":          decimal.NewFromInt(800),
		"Entertainment": decimal.NewFromInt(150),
		"Transport":     decimal.NewFromInt(100),
	}
}

// RandomSource is the randomness the seeder draws from.
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// ExpenseRecorder is the ledger surface the seeder writes to
type ExpenseRecorder interface {
	Categories() []string
	RecordExpense(category string, amount decimal.Decimal) error
}

// ExpenseSeeder records randomly generated expenses for demonstrations
type ExpenseSeeder struct {
	rnd RandomSource
}

// NewExpenseSeeder creates a new ExpenseSeeder instance
func NewExpenseSeeder(rnd RandomSource) *ExpenseSeeder {
	return &ExpenseSeeder{
		rnd: rnd,
	}
}

// Seed records count expenses against random categories of the recorder.
// Amounts are uniform in [5, 100) rounded to cents.
func (s *ExpenseSeeder) Seed(recorder ExpenseRecorder, count int) error {
	if count < 0 {
		return errors.New("expense count cannot be negative")
	}

	categories := recorder.Categories()
	if len(categories) == 0 {
		return errors.New("recorder has no categories")
	}

	for i := 0; i < count; i++ {
		category := categories[s.rnd.IntN(len(categories))]
		amount := s.amount()

		if err := recorder.RecordExpense(category, amount); err != nil {
			return fmt.Errorf("failed to record expense %d: %w", i+1, err)
		}
	}

	return nil
}

func (s *ExpenseSeeder) amount() decimal.Decimal {
	span := maxAmount.Sub(minAmount)
	amount := minAmount.Add(span.Mul(decimal.NewFromFloat(s.rnd.Float64()))).Round(2)
	// Rounding can land exactly on the open upper bound
	if amount.GreaterThanOrEqual(maxAmount) {
		amount = maxAmount.Sub(decimal.New(1, -2))
	}
	return amount
}
