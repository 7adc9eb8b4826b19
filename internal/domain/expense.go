package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expenditure against a category
type Expense struct {
	ID       uuid.UUID
	Category string
	Amount   decimal.Decimal // Never negative
}

// NewExpense creates a validated expense with a fresh ID
func NewExpense(category string, amount decimal.Decimal) (Expense, error) {
	e := Expense{
		ID:       uuid.New(),
		Category: category,
		Amount:   amount,
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	return e, nil
}

// Validate ensures the expense adheres to domain rules
func (e *Expense) Validate() error {
	if e.Category == "" {
		return errors.New("expense category cannot be empty")
	}

	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, e.Amount)
	}

	return nil
}
