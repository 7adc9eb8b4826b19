package domain

import "errors"

var (
	// ErrInvalidBudget is returned when a budget is empty, names a blank
	// category or allocates a negative amount.
	ErrInvalidBudget = errors.New("invalid budget")

	// ErrUnknownCategory is returned when an expense targets a category
	// that is not part of the budget.
	ErrUnknownCategory = errors.New("category not in budget")

	// ErrInvalidAmount is returned for negative, non-finite or unparsable amounts.
	ErrInvalidAmount = errors.New("invalid expense amount")

	// ErrDivisionByZero is returned when utilization is requested for a
	// zero allocation that has spending recorded against it.
	ErrDivisionByZero = errors.New("division by zero allocation")
)
